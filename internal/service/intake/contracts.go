package intake

import (
	"context"
	"time"

	"github.com/docaid/DocAid-BookingService/internal/domain"
)

type IntakeRepository interface {
	Append(ctx context.Context, intake *domain.PatientIntake) (*domain.PatientIntake, error)
	List(ctx context.Context, kind domain.IntakeKind) ([]*domain.PatientIntake, error)
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
