package domain

import (
	"testing"
	"time"

	"github.com/docaid/DocAid-BookingService/pkg/ptr"
	"github.com/docaid/DocAid-BookingService/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSlotSchedule(t *testing.T) {
	s := DefaultSlotSchedule()
	slots := s.Slots()

	require.Len(t, slots, 18)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("09:30"), slots[1])
	assert.Equal(t, types.TimeString("17:30"), slots[17])
	assert.Equal(t, "5:30 PM", slots[17].Label())

	assert.True(t, s.Contains("12:00"))
	assert.False(t, s.Contains("12:15"))
	assert.False(t, s.Contains("18:00"))
	assert.False(t, s.Contains("08:30"))
}

func TestNewSlotSchedule_Invalid(t *testing.T) {
	_, err := NewSlotSchedule("10:00", "09:00", 30)
	assert.ErrorIs(t, err, ErrInvalidSchedule)

	_, err = NewSlotSchedule("09:00", "17:00", 0)
	assert.ErrorIs(t, err, ErrInvalidSchedule)

	_, err = NewSlotSchedule("nine", "17:00", 30)
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestSlots_ReturnsCopy(t *testing.T) {
	s := DefaultSlotSchedule()
	slots := s.Slots()
	slots[0] = "23:00"

	assert.Equal(t, types.TimeString("09:00"), s.Slots()[0])
}

func TestBooking_CanTransitionTo(t *testing.T) {
	b := &Booking{Status: StatusPending}
	assert.True(t, b.CanTransitionTo(StatusConfirmed))
	assert.True(t, b.CanTransitionTo(StatusCancelled))
	assert.False(t, b.CanTransitionTo("archived"))

	b.Status = StatusCancelled
	assert.False(t, b.CanTransitionTo(StatusPending))
	assert.False(t, b.CanTransitionTo(StatusConfirmed))
	assert.True(t, b.CanTransitionTo(StatusCancelled))
}

func TestBooking_Clone(t *testing.T) {
	now := time.Now()
	b := &Booking{ID: 1, Phone: ptr.Ptr("555"), CancelledAt: &now}

	c := b.Clone()
	*c.Phone = "777"

	assert.Equal(t, "555", *b.Phone)
	assert.Nil(t, (*Booking)(nil).Clone())
}

func TestBookingFilter_Matches(t *testing.T) {
	day := time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC)
	b := &Booking{
		UserID:   "u1",
		DoctorID: "dr-mehta",
		Date:     day,
		TimeSlot: "10:00",
		Status:   StatusConfirmed,
	}

	tests := []struct {
		name   string
		filter BookingFilter
		want   bool
	}{
		{name: "empty filter", filter: BookingFilter{}, want: true},
		{name: "user match", filter: BookingFilter{UserID: ptr.Ptr("u1")}, want: true},
		{name: "user mismatch", filter: BookingFilter{UserID: ptr.Ptr("u2")}, want: false},
		{name: "status mismatch", filter: BookingFilter{Status: ptr.Ptr(StatusPending)}, want: false},
		{name: "range inclusive", filter: BookingFilter{StartDate: &day, EndDate: &day}, want: true},
		{name: "range after", filter: BookingFilter{StartDate: ptr.Ptr(day.AddDate(0, 0, 1))}, want: false},
		{name: "slot mismatch", filter: BookingFilter{TimeSlot: ptr.Ptr(types.TimeString("10:30"))}, want: false},
		{name: "active only", filter: BookingFilter{ActiveOnly: true}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(b))
		})
	}

	b.Status = StatusCancelled
	assert.False(t, BookingFilter{ActiveOnly: true}.Matches(b))
}

func TestParseBookingStatus(t *testing.T) {
	s, ok := ParseBookingStatus(" Confirmed ")
	assert.True(t, ok)
	assert.Equal(t, StatusConfirmed, s)

	_, ok = ParseBookingStatus("done")
	assert.False(t, ok)
}

func TestDoctor_IsAvailableOn(t *testing.T) {
	d := &Doctor{Specialty: "Eye Specialist", AvailableDays: []time.Weekday{time.Monday, time.Wednesday}}

	assert.True(t, d.IsAvailableOn(time.Monday))
	assert.False(t, d.IsAvailableOn(time.Tuesday))
	assert.Equal(t, "eye-specialist", d.SpecialtySlug())
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, IsWeekend(time.Date(2030, 6, 8, 0, 0, 0, 0, time.UTC)))  // Saturday
	assert.True(t, IsWeekend(time.Date(2030, 6, 9, 0, 0, 0, 0, time.UTC)))  // Sunday
	assert.False(t, IsWeekend(time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC))) // Monday
}
