package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/docaid/DocAid-BookingService/internal/domain"
	"github.com/docaid/DocAid-BookingService/pkg/types"
)

const fileFormatVersion = 1

// FileRepository хранилище бронирований в JSON-файле.
// Состояние держится в памяти, каждая мутация целиком перезаписывает файл
// через временный файл и rename.
type FileRepository struct {
	*MemoryRepository
	path string
}

type fileSnapshot struct {
	Version  int           `json:"version"`
	NextID   int64         `json:"next_id"`
	Bookings []fileBooking `json:"bookings"`
}

type fileBooking struct {
	ID              int64            `json:"id"`
	Reference       string           `json:"reference"`
	UserID          string           `json:"user_id"`
	DoctorID        string           `json:"doctor_id"`
	DoctorName      string           `json:"doctor_name"`
	DoctorSpecialty string           `json:"doctor_specialty"`
	Date            string           `json:"date"`
	TimeSlot        types.TimeString `json:"time_slot"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Phone           *string          `json:"phone,omitempty"`
	Status          string           `json:"status"`
	IsDemo          bool             `json:"is_demo"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	CancelledAt     *time.Time       `json:"cancelled_at,omitempty"`
}

// NewFileRepository открывает хранилище по пути path.
// Отсутствующий файл означает пустое хранилище. Даты восстанавливаются в зоне loc.
func NewFileRepository(path string, loc *time.Location) (*FileRepository, error) {
	if loc == nil {
		loc = time.Local
	}

	repo := &FileRepository{
		MemoryRepository: NewMemoryRepository(),
		path:             path,
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return repo, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrPersist, path, err)
	}

	var snap fileSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrPersist, path, err)
	}

	records := make([]*domain.Booking, 0, len(snap.Bookings))
	for _, fb := range snap.Bookings {
		b, err := fb.toDomain(loc)
		if err != nil {
			return nil, fmt.Errorf("%w: decode booking %d: %v", ErrPersist, fb.ID, err)
		}
		records = append(records, b)
	}
	repo.restore(records, snap.NextID)

	return repo, nil
}

// Append добавляет бронирование и сохраняет файл.
// При ошибке записи состояние в памяти откатывается.
func (r *FileRepository) Append(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	prev, prevNextID := r.snapshot()
	stored, err := r.appendLocked(booking)
	if err != nil {
		return nil, err
	}
	if err := r.flushLocked(); err != nil {
		r.restore(prev, prevNextID)
		return nil, err
	}
	return stored, nil
}

// Update изменяет запись и сохраняет файл
func (r *FileRepository) Update(ctx context.Context, id int64, patch domain.BookingPatch) (*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	prev, prevNextID := r.snapshot()
	updated, err := r.updateLocked(id, patch)
	if err != nil {
		return nil, err
	}
	if err := r.flushLocked(); err != nil {
		r.restore(prev, prevNextID)
		return nil, err
	}
	return updated, nil
}

func (r *FileRepository) flushLocked() error {
	records, nextID := r.snapshot()

	snap := fileSnapshot{
		Version:  fileFormatVersion,
		NextID:   nextID,
		Bookings: make([]fileBooking, 0, len(records)),
	}
	for _, b := range records {
		snap.Bookings = append(snap.Bookings, fileBookingFromDomain(b))
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrPersist, err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create dir %s: %v", ErrPersist, dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", ErrPersist, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write temp file: %v", ErrPersist, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close temp file: %v", ErrPersist, err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: rename %s: %v", ErrPersist, r.path, err)
	}

	return nil
}

func fileBookingFromDomain(b *domain.Booking) fileBooking {
	return fileBooking{
		ID:              b.ID,
		Reference:       b.Reference,
		UserID:          b.UserID,
		DoctorID:        b.DoctorID,
		DoctorName:      b.DoctorName,
		DoctorSpecialty: b.DoctorSpecialty,
		Date:            b.Date.Format(domain.DateFormat),
		TimeSlot:        b.TimeSlot,
		Name:            b.Name,
		Email:           b.Email,
		Phone:           b.Phone,
		Status:          string(b.Status),
		IsDemo:          b.IsDemo,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
		CancelledAt:     b.CancelledAt,
	}
}

func (fb fileBooking) toDomain(loc *time.Location) (*domain.Booking, error) {
	date, err := time.ParseInLocation(domain.DateFormat, fb.Date, loc)
	if err != nil {
		return nil, err
	}
	status, ok := domain.ParseBookingStatus(fb.Status)
	if !ok {
		return nil, fmt.Errorf("unknown status %q", fb.Status)
	}

	return &domain.Booking{
		ID:              fb.ID,
		Reference:       fb.Reference,
		UserID:          fb.UserID,
		DoctorID:        fb.DoctorID,
		DoctorName:      fb.DoctorName,
		DoctorSpecialty: fb.DoctorSpecialty,
		Date:            date,
		TimeSlot:        fb.TimeSlot,
		Name:            fb.Name,
		Email:           fb.Email,
		Phone:           fb.Phone,
		Status:          status,
		IsDemo:          fb.IsDemo,
		CreatedAt:       fb.CreatedAt,
		UpdatedAt:       fb.UpdatedAt,
		CancelledAt:     fb.CancelledAt,
	}, nil
}
