package intake

import (
	"context"
	"fmt"
	"sync"

	"github.com/docaid/DocAid-BookingService/internal/domain"
)

// MemoryRepository заявки пациентов в памяти процесса
type MemoryRepository struct {
	mu      sync.RWMutex
	records []*domain.PatientIntake
}

// NewMemoryRepository создаёт пустое хранилище
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make([]*domain.PatientIntake, 0)}
}

// Append сохраняет заявку
func (r *MemoryRepository) Append(ctx context.Context, intake *domain.PatientIntake) (*domain.PatientIntake, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkIntake(intake); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *intake
	r.records = append(r.records, &stored)

	out := stored
	return &out, nil
}

// List возвращает заявки, сначала новые. Пустой kind означает все виды.
func (r *MemoryRepository) List(ctx context.Context, kind domain.IntakeKind) ([]*domain.PatientIntake, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.PatientIntake, 0)
	for i := len(r.records) - 1; i >= 0; i-- {
		if kind != "" && r.records[i].Kind != kind {
			continue
		}
		intake := *r.records[i]
		result = append(result, &intake)
	}
	return result, nil
}

func checkIntake(intake *domain.PatientIntake) error {
	if intake == nil || intake.ID == "" || intake.Kind == "" {
		return fmt.Errorf("%w: id and kind are required", ErrInvalidIntake)
	}
	return nil
}
