package bookings

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/docaid/DocAid-BookingService/internal/domain"
	"github.com/docaid/DocAid-BookingService/internal/infra/cache"
	"github.com/docaid/DocAid-BookingService/internal/infra/events"
	bookingRepo "github.com/docaid/DocAid-BookingService/internal/infra/storage/booking"
	"github.com/docaid/DocAid-BookingService/internal/service/bookings/models"
	"github.com/docaid/DocAid-BookingService/pkg/ptr"
)

// Settings параметры сервиса бронирований
type Settings struct {
	Location      *time.Location // Зона, в которой разбираются даты фильтров
	ClinicAddress string         // Адрес клиники в подтверждении
}

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	snapshots    SnapshotCache
	publisher    EventPublisher
	metrics      Metrics
	txManager    TransactionManager
	settings     Settings
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований.
// snapshots и metrics могут быть nil.
func NewService(
	bookingRepo BookingRepository,
	snapshots SnapshotCache,
	publisher EventPublisher,
	metrics Metrics,
	txManager TransactionManager,
	settings Settings,
	logger Logger,
) *Service {
	if settings.Location == nil {
		settings.Location = time.Local
	}
	if settings.ClinicAddress == "" {
		settings.ClinicAddress = DefaultClinicAddress
	}
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}

	return &Service{
		bookingRepo:  bookingRepo,
		snapshots:    snapshots,
		publisher:    publisher,
		metrics:      metrics,
		txManager:    txManager,
		settings:     settings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// List возвращает бронирования по фильтру.
// При ошибке хранилища отдаёт последнюю удачную выборку из кэша с флагом FromCache.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings for user=%s, admin=%t", req.Caller.UserID, req.Caller.Admin)

	filter, err := req.ToDomainFilter(s.settings.Location)
	if err != nil {
		s.logger.Warn("List: invalid filter for user=%s: %v", req.Caller.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, fromCache, err := s.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	s.logger.Info("List: fetched %d bookings for user=%s (fromCache=%t)", len(bookings), req.Caller.UserID, fromCache)
	return models.FromDomainBookingList(bookings, fromCache), nil
}

// Find читает бронирования из хранилища с откатом на кэш.
// Второе значение true, если данные взяты из кэша.
func (s *Service) Find(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, bool, error) {
	key := snapshotKey(filter)

	bookings, err := s.bookingRepo.FindAll(ctx, filter)
	if err == nil {
		if s.snapshots != nil {
			if putErr := s.snapshots.Put(ctx, key, bookings); putErr != nil {
				s.logger.Warn("Find: failed to refresh snapshot: %v", putErr)
			}
		}
		return bookings, false, nil
	}

	s.logger.Error("Find: repository error: %v", err)
	if s.snapshots == nil {
		return nil, false, fmt.Errorf("%w: Find - repository error: %v", ErrInternal, err)
	}

	cached, cacheErr := s.snapshots.Get(ctx, key)
	switch {
	case cacheErr == nil:
		s.recordFallback("hit")
		s.logger.Warn("Find: serving %d bookings from snapshot", len(cached))
		return cached, true, nil
	case errors.Is(cacheErr, cache.ErrMiss):
		s.recordFallback("miss")
	default:
		s.recordFallback("error")
		s.logger.Error("Find: snapshot read failed: %v", cacheErr)
	}

	return nil, false, fmt.Errorf("%w: %v", ErrUnavailable, err)
}

// Get получает бронирование по ID или номеру.
// Пользователь видит только свои бронирования, администратор любые.
func (s *Service) Get(ctx context.Context, idOrReference string, caller models.Caller) (*models.BookingResponse, error) {
	s.logger.Info("Get: fetching booking %s for user=%s", idOrReference, caller.UserID)

	booking, err := s.load(ctx, "Get", idOrReference)
	if err != nil {
		return nil, err
	}

	if err := s.checkAccess(booking, caller); err != nil {
		s.logger.Warn("Get: access denied for user=%s to booking %s", caller.UserID, idOrReference)
		return nil, err
	}

	s.logger.Info("Get: successfully fetched booking id=%d", booking.ID)
	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет бронирование.
// Повторная отмена не меняет запись и возвращает её как есть.
func (s *Service) Cancel(ctx context.Context, idOrReference string, caller models.Caller) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking %s by user=%s", idOrReference, caller.UserID)

	var (
		result  *domain.Booking
		changed bool
		now     = s.timeProvider.Now()
	)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Получаем бронирование
		booking, err := s.load(txCtx, "Cancel", idOrReference)
		if err != nil {
			return err
		}

		// 2. Проверяем права доступа
		if err := s.checkAccess(booking, caller); err != nil {
			s.logger.Warn("Cancel: access denied for user=%s to booking id=%d", caller.UserID, booking.ID)
			return err
		}

		// 3. Уже отменено - ничего не делаем
		if booking.IsCancelled() {
			s.logger.Info("Cancel: booking id=%d already cancelled", booking.ID)
			result = booking
			return nil
		}

		// 4. Отменяем
		updated, err := s.bookingRepo.Update(txCtx, booking.ID, domain.BookingPatch{
			Status:      ptr.Ptr(domain.StatusCancelled),
			CancelledAt: ptr.Ptr(now),
			UpdatedAt:   now,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("Cancel: repository error for booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		result = updated
		changed = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.logger.Info("Cancel: successfully cancelled booking id=%d", result.ID)
		if s.metrics != nil {
			s.metrics.BookingCancelled()
		}
		if !result.IsDemo {
			event := events.NewBookingEvent(events.TypeBookingCancelled, result, now)
			if err := s.publisher.Publish(ctx, event); err != nil {
				s.logger.Error("Cancel: failed to publish %s for %s: %v", event.Type, result.Reference, err)
			}
		}
	}

	return models.FromDomainBooking(result), nil
}

// Confirmation возвращает текстовое подтверждение бронирования
func (s *Service) Confirmation(ctx context.Context, idOrReference string, caller models.Caller) (string, error) {
	booking, err := s.load(ctx, "Confirmation", idOrReference)
	if err != nil {
		return "", err
	}

	if err := s.checkAccess(booking, caller); err != nil {
		s.logger.Warn("Confirmation: access denied for user=%s to booking id=%d", caller.UserID, booking.ID)
		return "", err
	}

	text, err := renderConfirmation(booking, s.settings.ClinicAddress)
	if err != nil {
		s.logger.Error("Confirmation: %v", err)
		return "", fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return text, nil
}

// Вспомогательные методы

// load ищет бронирование по числовому ID, иначе по номеру
func (s *Service) load(ctx context.Context, op, idOrReference string) (*domain.Booking, error) {
	key := strings.TrimSpace(idOrReference)
	if key == "" {
		return nil, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	var (
		booking *domain.Booking
		err     error
	)
	if id, parseErr := strconv.ParseInt(key, 10, 64); parseErr == nil {
		booking, err = s.bookingRepo.FindByID(ctx, id)
	} else {
		booking, err = s.bookingRepo.FindByReference(ctx, strings.ToUpper(key))
	}

	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking %s not found", op, key)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking %s: %v", op, key, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// checkAccess владелец или администратор
func (s *Service) checkAccess(booking *domain.Booking, caller models.Caller) error {
	if caller.Admin || booking.UserID == caller.UserID {
		return nil
	}
	return ErrAccessDenied
}

func (s *Service) recordFallback(result string) {
	if s.metrics != nil {
		s.metrics.CacheFallback(result)
	}
}
