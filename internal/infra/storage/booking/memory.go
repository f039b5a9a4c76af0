package booking

import (
	"context"
	"fmt"
	"sync"

	"github.com/docaid/DocAid-BookingService/internal/domain"
)

// MemoryRepository хранилище бронирований в памяти процесса.
// Записи хранятся в порядке добавления, id выдаются последовательно.
type MemoryRepository struct {
	mu          sync.RWMutex
	records     []*domain.Booking
	byID        map[int64]int
	byReference map[string]int
	nextID      int64
}

// NewMemoryRepository создаёт пустое хранилище
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		records:     make([]*domain.Booking, 0),
		byID:        make(map[int64]int),
		byReference: make(map[string]int),
		nextID:      1,
	}
}

// Append добавляет бронирование и возвращает сохранённую копию с присвоенным id.
// Id всегда назначает хранилище, переданное значение игнорируется (как BIGSERIAL в PostgreSQL).
func (r *MemoryRepository) Append(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.appendLocked(booking)
}

func (r *MemoryRepository) appendLocked(booking *domain.Booking) (*domain.Booking, error) {
	if booking == nil || booking.Reference == "" {
		return nil, fmt.Errorf("%w: reference is required", ErrInvalidBooking)
	}
	if _, exists := r.byReference[booking.Reference]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateReference, booking.Reference)
	}

	stored := booking.Clone()
	// id назначает хранилище
	stored.ID = r.nextID
	r.nextID++

	r.records = append(r.records, stored)
	r.byID[stored.ID] = len(r.records) - 1
	r.byReference[stored.Reference] = len(r.records) - 1

	return stored.Clone(), nil
}

// FindAll возвращает бронирования, подходящие под фильтр.
// Порядок: порядок добавления, либо сначала новые при filter.NewestFirst.
func (r *MemoryRepository) FindAll(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for _, b := range r.records {
		if filter.Matches(b) {
			result = append(result, b.Clone())
		}
	}

	if filter.NewestFirst {
		for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
			result[i], result[j] = result[j], result[i]
		}
	}

	return result, nil
}

// FindByID получает бронирование по id
func (r *MemoryRepository) FindByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return r.records[idx].Clone(), nil
}

// FindByReference получает бронирование по номеру
func (r *MemoryRepository) FindByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byReference[reference]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return r.records[idx].Clone(), nil
}

// Update изменяет запись на месте.
// Отменённое бронирование остаётся отменённым, первая отметка времени отмены сохраняется.
func (r *MemoryRepository) Update(ctx context.Context, id int64, patch domain.BookingPatch) (*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.updateLocked(id, patch)
}

func (r *MemoryRepository) updateLocked(id int64, patch domain.BookingPatch) (*domain.Booking, error) {
	idx, ok := r.byID[id]
	if !ok {
		return nil, ErrBookingNotFound
	}

	current := r.records[idx]
	if patch.Status != nil && !current.CanTransitionTo(*patch.Status) {
		return nil, fmt.Errorf("%w: booking %d", ErrTerminalStatus, id)
	}

	updated := current.Clone()
	if patch.Status != nil {
		updated.Status = *patch.Status
	}
	if patch.CancelledAt != nil && updated.CancelledAt == nil {
		cancelledAt := *patch.CancelledAt
		updated.CancelledAt = &cancelledAt
	}
	if !patch.UpdatedAt.IsZero() {
		updated.UpdatedAt = patch.UpdatedAt
	}

	r.records[idx] = updated
	return updated.Clone(), nil
}

// snapshot возвращает копию всех записей и следующий id
func (r *MemoryRepository) snapshot() ([]*domain.Booking, int64) {
	records := make([]*domain.Booking, len(r.records))
	for i, b := range r.records {
		records[i] = b.Clone()
	}
	return records, r.nextID
}

// restore заменяет содержимое хранилища
func (r *MemoryRepository) restore(records []*domain.Booking, nextID int64) {
	r.records = make([]*domain.Booking, 0, len(records))
	r.byID = make(map[int64]int, len(records))
	r.byReference = make(map[string]int, len(records))
	r.nextID = nextID

	for _, b := range records {
		r.records = append(r.records, b.Clone())
		r.byID[b.ID] = len(r.records) - 1
		r.byReference[b.Reference] = len(r.records) - 1
		if b.ID >= r.nextID {
			r.nextID = b.ID + 1
		}
	}
}
