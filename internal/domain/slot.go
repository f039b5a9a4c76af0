package domain

import (
	"errors"
	"fmt"

	"github.com/docaid/DocAid-BookingService/pkg/types"
)

// ErrInvalidSchedule is returned for an inconsistent slot window
var ErrInvalidSchedule = errors.New("invalid slot schedule")

// SlotSchedule is the fixed ordered sequence of daily slots.
// First and Last are both offerable slot starts.
type SlotSchedule struct {
	First       types.TimeString
	Last        types.TimeString
	StepMinutes int
	slots       []types.TimeString
}

// NewSlotSchedule builds the slot sequence First, First+step, ..., Last
func NewSlotSchedule(first, last types.TimeString, stepMinutes int) (*SlotSchedule, error) {
	if err := first.Validate(); err != nil {
		return nil, fmt.Errorf("%w: first slot: %v", ErrInvalidSchedule, err)
	}
	if err := last.Validate(); err != nil {
		return nil, fmt.Errorf("%w: last slot: %v", ErrInvalidSchedule, err)
	}
	if stepMinutes < MinSlotStepMinutes || stepMinutes > MaxSlotStepMinutes {
		return nil, fmt.Errorf("%w: step must be between %d and %d minutes", ErrInvalidSchedule, MinSlotStepMinutes, MaxSlotStepMinutes)
	}
	if last.IsBefore(first) {
		return nil, fmt.Errorf("%w: last slot %s is before first slot %s", ErrInvalidSchedule, last, first)
	}

	slots := make([]types.TimeString, 0)
	for current := first; !current.IsAfter(last); {
		slots = append(slots, current)
		next, err := current.AddMinutes(stepMinutes)
		if err != nil {
			break
		}
		current = next
	}

	return &SlotSchedule{
		First:       first,
		Last:        last,
		StepMinutes: stepMinutes,
		slots:       slots,
	}, nil
}

// DefaultSlotSchedule returns 9:00 AM .. 5:30 PM in 30-minute steps
func DefaultSlotSchedule() *SlotSchedule {
	s, err := NewSlotSchedule(DefaultFirstSlot, DefaultLastSlot, DefaultSlotStepMinutes)
	if err != nil {
		panic(err)
	}
	return s
}

// Slots returns a copy of the ordered sequence
func (s *SlotSchedule) Slots() []types.TimeString {
	out := make([]types.TimeString, len(s.slots))
	copy(out, s.slots)
	return out
}

// Contains reports whether the time is one of the offerable slots
func (s *SlotSchedule) Contains(t types.TimeString) bool {
	for _, slot := range s.slots {
		if slot == t {
			return true
		}
	}
	return false
}
