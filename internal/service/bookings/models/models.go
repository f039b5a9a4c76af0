package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/docaid/DocAid-BookingService/internal/domain"
	"github.com/docaid/DocAid-BookingService/pkg/ptr"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidDate возвращается при некорректной дате фильтра
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidOrder возвращается при некорректном порядке сортировки
	ErrInvalidOrder = errors.New("invalid order")
)

// Порядок выдачи списка
const (
	OrderOldest = "oldest"
	OrderNewest = "newest"
)

// Request модели

// Caller кто обращается к сервису
type Caller struct {
	UserID string
	Admin  bool
}

// ListBookingsRequest запрос на получение списка бронирований.
// Администратор без UserID видит бронирования всех пользователей.
type ListBookingsRequest struct {
	Caller   Caller
	UserID   *string // Чьи бронирования (для администратора)
	DoctorID *string
	Status   *string
	From     *string // "2025-06-01"
	To       *string // "2025-06-30"
	Order    string  // oldest | newest
}

// ToDomainFilter конвертирует request в domain фильтр.
// Даты разбираются как полночь в зоне loc.
func (r *ListBookingsRequest) ToDomainFilter(loc *time.Location) (domain.BookingFilter, error) {
	filter := domain.BookingFilter{DoctorID: r.DoctorID}

	switch {
	case !r.Caller.Admin:
		filter.UserID = ptr.Ptr(r.Caller.UserID)
	case r.UserID != nil:
		filter.UserID = r.UserID
	}

	if r.Status != nil {
		status, ok := domain.ParseBookingStatus(*r.Status)
		if !ok {
			return filter, fmt.Errorf("%w: %q", ErrInvalidStatus, *r.Status)
		}
		filter.Status = &status
	}

	var err error
	if filter.StartDate, err = parseOptionalDate(r.From, loc); err != nil {
		return filter, err
	}
	if filter.EndDate, err = parseOptionalDate(r.To, loc); err != nil {
		return filter, err
	}

	switch strings.ToLower(r.Order) {
	case "", OrderOldest:
	case OrderNewest:
		filter.NewestFirst = true
	default:
		return filter, fmt.Errorf("%w: %q", ErrInvalidOrder, r.Order)
	}

	return filter, nil
}

func parseOptionalDate(raw *string, loc *time.Location) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(domain.DateFormat, strings.TrimSpace(*raw), loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, *raw)
	}
	return &t, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64   `json:"id"`
	Reference       string  `json:"bookingReference"`
	UserID          string  `json:"userId"`
	DoctorID        string  `json:"doctorId"`
	DoctorName      string  `json:"doctorName"`
	DoctorSpecialty string  `json:"doctorSpecialty"`
	Date            string  `json:"date"`     // "2025-06-10"
	TimeSlot        string  `json:"timeSlot"` // "10:00 AM"
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           *string `json:"phone,omitempty"`
	Status          string  `json:"status"`
	IsDemo          bool    `json:"isDemoBooking"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований.
// FromCache выставляется, когда хранилище недоступно и данные взяты из кэша.
type BookingListResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	FromCache bool              `json:"fromCache"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:              b.ID,
		Reference:       b.Reference,
		UserID:          b.UserID,
		DoctorID:        b.DoctorID,
		DoctorName:      b.DoctorName,
		DoctorSpecialty: b.DoctorSpecialty,
		Date:            b.Date.Format(domain.DateFormat),
		TimeSlot:        b.TimeSlot.Label(),
		Name:            b.Name,
		Email:           b.Email,
		Phone:           b.Phone,
		Status:          string(b.Status),
		IsDemo:          b.IsDemo,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking, fromCache bool) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings:  make([]BookingResponse, 0, len(bookings)),
		FromCache: fromCache,
	}

	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}

	return resp
}
