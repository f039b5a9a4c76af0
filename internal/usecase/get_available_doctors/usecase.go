package get_available_doctors

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/docaid/DocAid-BookingService/internal/domain"
	"github.com/docaid/DocAid-BookingService/pkg/types"
)

// UseCase use case для получения врачей, доступных на дату
type UseCase struct {
	doctorRepo   DoctorRepository
	schedule     *domain.SlotSchedule
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	doctorRepo DoctorRepository,
	schedule *domain.SlotSchedule,
	location *time.Location,
	logger Logger,
) *UseCase {
	if schedule == nil {
		schedule = domain.DefaultSlotSchedule()
	}
	if location == nil {
		location = time.Local
	}

	return &UseCase{
		doctorRepo:   doctorRepo,
		schedule:     schedule,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных врачей.
// Фильтр зависит только от дня недели; прошедшая дата или выходной
// отмечаются в ответе, но не являются ошибкой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDoctors: date=%s", req.Date)

	// 1. Валидация входных данных
	raw := strings.TrimSpace(req.Date)
	if raw == "" {
		uc.logger.Warn("GetAvailableDoctors: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date, err := time.ParseInLocation(domain.DateFormat, raw, uc.location)
	if err != nil {
		uc.logger.Warn("GetAvailableDoctors: invalid date=%s: %v", raw, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	// 2. Фильтруем справочник по дню недели
	doctors := AvailableDoctors(uc.doctorRepo.All(), date)

	// 3. Отмечаем, можно ли записаться на эту дату
	bookable, reason := bookability(date, uc.timeProvider.Now())

	uc.logger.Info("GetAvailableDoctors: %d doctors available on %s (%s), bookable=%t",
		len(doctors), raw, date.Weekday(), bookable)

	return &Response{
		Date:     date,
		Weekday:  date.Weekday(),
		Bookable: bookable,
		Reason:   reason,
		Doctors:  doctors,
		Slots:    uc.schedule.Slots(),
	}, nil
}

// Slots возвращает сетку слотов дня
func (uc *UseCase) Slots() []types.TimeString {
	return uc.schedule.Slots()
}
