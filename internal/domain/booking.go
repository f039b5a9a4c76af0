package domain

import (
	"strings"
	"time"

	"github.com/docaid/DocAid-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValid reports whether the status is one of the known values
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// ParseBookingStatus parses a status case-insensitively
func ParseBookingStatus(raw string) (BookingStatus, bool) {
	s := BookingStatus(strings.ToLower(strings.TrimSpace(raw)))
	return s, s.IsValid()
}

// Booking represents a doctor appointment
type Booking struct {
	ID        int64
	Reference string // human-shareable, unique within the store
	UserID    string
	DoctorID  string
	Date      time.Time // calendar day, midnight in the service time zone
	TimeSlot  types.TimeString
	Name      string
	Email     string
	Phone     *string
	Status    BookingStatus
	IsDemo    bool

	// Denormalized data for history
	DoctorName      string
	DoctorSpecialty string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	CancelledAt *time.Time
}

// IsActive returns true unless the booking has been cancelled
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanTransitionTo reports whether the status change is allowed.
// Cancelled is terminal: the only permitted "transition" out of it is to itself.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	if !next.IsValid() {
		return false
	}
	if b.Status == StatusCancelled {
		return next == StatusCancelled
	}
	return true
}

// Clone returns a deep copy, so stored records are never shared with callers
func (b *Booking) Clone() *Booking {
	if b == nil {
		return nil
	}
	c := *b
	if b.Phone != nil {
		phone := *b.Phone
		c.Phone = &phone
	}
	if b.CancelledAt != nil {
		cancelledAt := *b.CancelledAt
		c.CancelledAt = &cancelledAt
	}
	return &c
}

// BookingPatch describes an in-place update of a booking
type BookingPatch struct {
	Status      *BookingStatus
	CancelledAt *time.Time
	UpdatedAt   time.Time
}

// BookingFilter selects bookings. Nil fields do not restrict the result.
type BookingFilter struct {
	UserID      *string
	DoctorID    *string
	Reference   *string
	Status      *BookingStatus
	StartDate   *time.Time // inclusive
	EndDate     *time.Time // inclusive
	TimeSlot    *types.TimeString
	ActiveOnly  bool // exclude cancelled bookings
	NewestFirst bool
}

// Matches applies the filter to a single booking
func (f BookingFilter) Matches(b *Booking) bool {
	if f.UserID != nil && b.UserID != *f.UserID {
		return false
	}
	if f.DoctorID != nil && b.DoctorID != *f.DoctorID {
		return false
	}
	if f.Reference != nil && b.Reference != *f.Reference {
		return false
	}
	if f.Status != nil && b.Status != *f.Status {
		return false
	}
	if f.ActiveOnly && !b.IsActive() {
		return false
	}
	if f.TimeSlot != nil && b.TimeSlot != *f.TimeSlot {
		return false
	}
	day := DateOnly(b.Date)
	if f.StartDate != nil && day.Before(DateOnly(*f.StartDate)) {
		return false
	}
	if f.EndDate != nil && day.After(DateOnly(*f.EndDate)) {
		return false
	}
	return true
}

// DateOnly truncates a timestamp to midnight in its own location
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether both timestamps fall on the same calendar day
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsWeekend reports whether the day is Saturday or Sunday
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
