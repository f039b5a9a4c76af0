package domain

import "github.com/docaid/DocAid-BookingService/pkg/types"

// Default slot window: 9:00 AM .. 5:30 PM every 30 minutes
const (
	DefaultFirstSlot       types.TimeString = "09:00"
	DefaultLastSlot        types.TimeString = "17:30"
	DefaultSlotStepMinutes                  = 30
	MinSlotStepMinutes                      = 5
	MaxSlotStepMinutes                      = 240
)

// Business validation constants
const (
	MinRating             = 1
	MaxRating             = 5
	MaxReviewLength       = 1000
	MaxNameLength         = 200
	MaxEmailLength        = 320
	MaxPhoneLength        = 64
	MaxUserIDLength       = 128
	MaxPatientAge         = 150
	MaxIssueLength        = 2000
	MaxAddressLength      = 500
	MaxDoctorNameLength   = 255
	DefaultSuggestedLimit = 3
	AnonymousAuthor       = "Anonymous User"
	ReferencePrefix       = "REF"
	DemoReferencePrefix   = "DEMO"
	PhoneNotProvided      = "Not provided"
)

// DuplicateScope selects the key of the duplicate-slot rule
type DuplicateScope string

const (
	// DuplicateScopeUser keys uniqueness by (user, date, slot)
	DuplicateScopeUser DuplicateScope = "user"
	// DuplicateScopeGlobal keys uniqueness by (date, slot) across all users
	DuplicateScopeGlobal DuplicateScope = "global"
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
