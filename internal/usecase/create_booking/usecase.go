package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/docaid/DocAid-BookingService/internal/domain"
	"github.com/docaid/DocAid-BookingService/internal/infra/catalog"
	"github.com/docaid/DocAid-BookingService/internal/infra/events"
	bookingRepo "github.com/docaid/DocAid-BookingService/internal/infra/storage/booking"
	"github.com/docaid/DocAid-BookingService/pkg/ptr"
	"github.com/docaid/DocAid-BookingService/pkg/types"
)

const maxReferenceAttempts = 3

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	doctorRepo   DoctorRepository
	references   ReferenceGenerator
	publisher    EventPublisher
	metrics      Metrics
	txManager    TransactionManager
	schedule     *domain.SlotSchedule
	policy       Policy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	doctorRepo DoctorRepository,
	references ReferenceGenerator,
	publisher EventPublisher,
	metrics Metrics,
	txManager TransactionManager,
	schedule *domain.SlotSchedule,
	policy Policy,
	logger Logger,
) *UseCase {
	if policy.Location == nil {
		policy.Location = DefaultPolicy().Location
	}
	if !policy.InitialStatus.IsValid() || policy.InitialStatus == domain.StatusCancelled {
		policy.InitialStatus = domain.StatusPending
	}
	if !policy.AdminInitialStatus.IsValid() || policy.AdminInitialStatus == domain.StatusCancelled {
		policy.AdminInitialStatus = domain.StatusConfirmed
	}
	if policy.DuplicateScope == "" {
		policy.DuplicateScope = domain.DuplicateScopeUser
	}
	if schedule == nil {
		schedule = domain.DefaultSlotSchedule()
	}

	return &UseCase{
		bookingRepo:  bookingRepo,
		doctorRepo:   doctorRepo,
		references:   references,
		publisher:    publisher,
		metrics:      metrics,
		txManager:    txManager,
		schedule:     schedule,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Validate проверяет запрос без создания бронирования.
// Проверки идут по порядку, первая неудачная возвращается как *ValidationError.
func (uc *UseCase) Validate(ctx context.Context, req *Request) (*ValidatedRequest, error) {
	validated, err := uc.validateStatic(req)
	if err != nil {
		return nil, err
	}
	if err := uc.checkDuplicate(ctx, validated); err != nil {
		return nil, err
	}
	return validated, nil
}

// Execute выполняет use case создания бронирования.
// Проверка дубликата и вставка выполняются в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, doctor=%s, date=%s, slot=%s",
		req.UserID, req.DoctorID, req.Date, req.TimeSlot)

	// 1. Проверки, не требующие хранилища
	validated, err := uc.validateStatic(req)
	if err != nil {
		uc.reject(err)
		return nil, err
	}

	// 2. Текущее время и начальный статус
	now := uc.timeProvider.Now()
	status := uc.policy.InitialStatus
	if req.Admin {
		status = uc.policy.AdminInitialStatus
	}

	var result *domain.Booking

	// 3. Проверка дубликата и сохранение в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Активная запись на тот же слот
		if err := uc.checkDuplicate(txCtx, validated); err != nil {
			return err
		}

		// 3.2. Свободный номер бронирования
		reference, err := uc.newReference(txCtx)
		if err != nil {
			return err
		}

		// 3.3. Создаем бронирование с денормализацией данных врача
		booking := &domain.Booking{
			Reference:       reference,
			UserID:          validated.UserID,
			DoctorID:        validated.Doctor.ID,
			DoctorName:      validated.Doctor.Name,
			DoctorSpecialty: validated.Doctor.Specialty,
			Date:            validated.Date,
			TimeSlot:        validated.TimeSlot,
			Name:            validated.Name,
			Email:           validated.Email,
			Phone:           validated.Phone,
			Status:          status,
			IsDemo:          uc.policy.DemoMode,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		// 3.4. Сохраняем бронирование
		created, err := uc.bookingRepo.Append(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrDuplicateBooking) {
				uc.logger.Warn("CreateBooking: slot taken concurrently: %v", err)
				return newValidationError(ErrDuplicateSlot, "timeSlot")
			}
			uc.logger.Error("CreateBooking: failed to append booking: %v", err)
			return fmt.Errorf("%w: failed to append booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		uc.reject(err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, reference=%s, status=%s",
		result.ID, result.Reference, result.Status)
	if uc.metrics != nil {
		uc.metrics.BookingCreated(string(result.Status))
	}

	// 4. Событие для сервиса уведомлений. В демо-режиме ничего не отправляем.
	if !uc.policy.DemoMode {
		event := events.NewBookingEvent(events.TypeBookingCreated, result, now)
		if err := uc.publisher.Publish(ctx, event); err != nil {
			uc.logger.Error("CreateBooking: failed to publish %s for %s: %v", event.Type, result.Reference, err)
		}
	}

	return &Response{Booking: result}, nil
}

// validateStatic выполняет проверки 1-6: поля, email, дата, выходной, слот, врач
func (uc *UseCase) validateStatic(req *Request) (*ValidatedRequest, error) {
	// 1. Обязательные поля
	if verr := validateRequiredFields(req); verr != nil {
		return nil, verr
	}

	// Длина полей ограничена схемой хранилища
	if verr := validateFieldLengths(req); verr != nil {
		return nil, verr
	}

	// 2. Email
	if !isValidEmail(req.Email) {
		return nil, newValidationError(ErrInvalidEmail, "email")
	}

	// 3. Дата не в прошлом
	date, err := parseDate(req.Date, uc.policy.Location)
	if err != nil {
		return nil, newValidationError(ErrInvalidDate, "date")
	}
	if isDateInPast(date, uc.timeProvider.Now()) {
		return nil, newValidationError(ErrPastDate, "date")
	}

	// 4. Только будние дни
	if domain.IsWeekend(date) {
		return nil, newValidationError(ErrWeekendDate, "date")
	}

	// 5. Слот из фиксированной сетки
	slot, err := types.NewTimeStringFromString(req.TimeSlot)
	if err != nil || !uc.schedule.Contains(slot) {
		return nil, newValidationError(ErrInvalidTimeSlot, "timeSlot")
	}

	// 6. Врач существует и принимает в этот день недели
	doctor, err := uc.doctorRepo.GetByID(strings.TrimSpace(req.DoctorID))
	if err != nil {
		if errors.Is(err, catalog.ErrDoctorNotFound) {
			return nil, newValidationError(ErrUnknownDoctor, "doctorId")
		}
		return nil, fmt.Errorf("%w: failed to get doctor: %v", ErrInternal, err)
	}
	if !doctor.IsAvailableOn(date.Weekday()) {
		return nil, newValidationError(ErrDoctorUnavailable, "doctorId")
	}

	return &ValidatedRequest{
		UserID:   strings.TrimSpace(req.UserID),
		Doctor:   doctor,
		Date:     date,
		TimeSlot: slot,
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Phone:    normalizePhone(req.Phone),
	}, nil
}

// checkDuplicate проверка 7: нет активной записи на (пользователь, дата, слот).
// При глобальной политике ключ не учитывает пользователя.
func (uc *UseCase) checkDuplicate(ctx context.Context, v *ValidatedRequest) error {
	filter := domain.BookingFilter{
		StartDate:  &v.Date,
		EndDate:    &v.Date,
		TimeSlot:   ptr.Ptr(v.TimeSlot),
		ActiveOnly: true,
	}
	if uc.policy.DuplicateScope != domain.DuplicateScopeGlobal {
		filter.UserID = ptr.Ptr(v.UserID)
	}

	existing, err := uc.bookingRepo.FindAll(ctx, filter)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to check duplicates: %v", err)
		return fmt.Errorf("%w: failed to check duplicates: %v", ErrInternal, err)
	}
	if len(existing) > 0 {
		uc.logger.Warn("CreateBooking: duplicate slot for user=%s date=%s slot=%s (existing id=%d)",
			v.UserID, v.Date.Format(domain.DateFormat), v.TimeSlot, existing[0].ID)
		return newValidationError(ErrDuplicateSlot, "timeSlot")
	}
	return nil
}

// newReference выдаёт номер, которого ещё нет в хранилище
func (uc *UseCase) newReference(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		reference := uc.references.NewReference(uc.policy.DemoMode)
		existing, err := uc.bookingRepo.FindAll(ctx, domain.BookingFilter{Reference: ptr.Ptr(reference)})
		if err != nil {
			return "", fmt.Errorf("%w: failed to check reference: %v", ErrInternal, err)
		}
		if len(existing) == 0 {
			return reference, nil
		}
		uc.logger.Warn("CreateBooking: reference %s already taken, retrying", reference)
	}
	return "", fmt.Errorf("%w: could not allocate a unique reference", ErrInternal)
}

func (uc *UseCase) reject(err error) {
	var verr *ValidationError
	if !errors.As(err, &verr) {
		return
	}
	uc.logger.Warn("CreateBooking: validation failed: %v", err)
	if uc.metrics != nil {
		uc.metrics.BookingRejected(verr.Code())
	}
}
