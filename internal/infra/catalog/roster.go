package catalog

import (
	"time"

	"github.com/docaid/DocAid-BookingService/internal/domain"
)

var weekdays = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}

// DefaultRoster встроенный справочник врачей
func DefaultRoster() []domain.Doctor {
	return []domain.Doctor{
		{
			ID:            "dr-mehta",
			Name:          "Dr. Aarav Mehta",
			Specialty:     "Cardiology",
			AvailableDays: weekdays,
			Experience:    "15+ years",
			Education:     "MBBS, MD (Cardiology) - AIIMS",
			ImageURL:      "https://res.cloudinary.com/dfpw0itu3/image/upload/v1741080437/f3iw2tfcvve32tn3uzwo.webp",
		},
		{
			ID:            "dr-patel",
			Name:          "Dr. Karan Patel",
			Specialty:     "Neurologist",
			AvailableDays: []time.Weekday{time.Tuesday, time.Wednesday, time.Thursday},
			Experience:    "18+ years",
			Education:     "MBBS, DM (Neurology) - CMC Vellore",
			ImageURL:      "https://res.cloudinary.com/dfpw0itu3/image/upload/v1741081036/fvgq0koechd7hzfbyjru.webp",
		},
		{
			ID:            "dr-menon",
			Name:          "Dr. Rajiv Menon",
			Specialty:     "Otology",
			AvailableDays: []time.Weekday{time.Tuesday, time.Wednesday, time.Thursday},
			Experience:    "14+ years",
			Education:     "MBBS, MS (ENT) - JIPMER",
			ImageURL:      "https://res.cloudinary.com/dfpw0itu3/image/upload/v1741081889/zd3xhyvxh93kwojkw6xp.jpg",
		},
		{
			ID:            "dr-sophia",
			Name:          "Dr. Sophia Rao",
			Specialty:     "Dermatology",
			AvailableDays: []time.Weekday{time.Monday, time.Wednesday, time.Friday},
			Experience:    "10+ years",
			Education:     "MBBS, MD (Dermatology) - Manipal University",
			ImageURL:      "https://res.cloudinary.com/dfpw0itu3/image/upload/v1741080751/kp9c1nxmqvsq8pq06z3q.avif",
		},
		{
			ID:            "dr-sharma",
			Name:          "Dr. Rohan Sharma",
			Specialty:     "Orthopedics",
			AvailableDays: []time.Weekday{time.Monday, time.Tuesday, time.Thursday, time.Friday},
			Experience:    "12+ years",
			Education:     "MBBS, MS (Orthopedics) - AIIMS",
			ImageURL:      "https://res.cloudinary.com/dfpw0itu3/image/upload/v1741081519/r9mxynyo58o1mytudule.jpg",
		},
		{
			ID:            "dr-das",
			Name:          "Dr. Meera Das",
			Specialty:     "General Doctor",
			AvailableDays: weekdays,
			Experience:    "8+ years",
			Education:     "MBBS - Government Medical College",
			ImageURL:      "https://res.cloudinary.com/dfpw0itu3/image/upload/v1741081738/ibcppbgwkbjbs6ptkn8o.avif",
		},
		{
			ID:            "dr-singh",
			Name:          "Dr. Ananya Singh",
			Specialty:     "Surgeon",
			AvailableDays: weekdays,
			Experience:    "20+ years",
			Education:     "MBBS, MS (General Surgery) - AIIMS",
			ImageURL:      "https://res.cloudinary.com/dfpw0itu3/image/upload/v1741523656/dxlgqsswqc3lgorzgp6c.jpg",
		},
		{
			ID:            "dr-rao",
			Name:          "Dr. Vikram Rao",
			Specialty:     "Psychotropic",
			AvailableDays: []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday},
			Experience:    "16+ years",
			Education:     "MBBS, MD (Psychiatry) - NIMHANS",
			ImageURL:      "https://res.cloudinary.com/dfpw0itu3/image/upload/v1741523821/uyrj8muyinx6wgzazcxj.jpg",
		},
		{
			ID:            "dr-kapoor",
			Name:          "Dr. Neha Kapoor",
			Specialty:     "Eye Specialist",
			AvailableDays: weekdays,
			Experience:    "11+ years",
			Education:     "MBBS, MS (Ophthalmology) - AIIMS",
			ImageURL:      "https://res.cloudinary.com/dfpw0itu3/image/upload/v1741523909/mhrsf70idkxavirlwk0c.jpg",
		},
	}
}
