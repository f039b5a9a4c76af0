package domain

import (
	"strings"
	"time"
)

// Doctor is static reference data; the roster is immutable at runtime
type Doctor struct {
	ID            string
	Name          string
	Specialty     string
	AvailableDays []time.Weekday // 0=Sunday..6=Saturday
	Experience    string
	Education     string
	ImageURL      string
}

// IsAvailableOn returns true if the doctor is offerable on the weekday
func (d *Doctor) IsAvailableOn(day time.Weekday) bool {
	for _, available := range d.AvailableDays {
		if available == day {
			return true
		}
	}
	return false
}

// SpecialtySlug returns the URL form of the specialty, e.g. "eye-specialist"
func (d *Doctor) SpecialtySlug() string {
	return Slugify(d.Specialty)
}

// Category groups doctors sharing a specialty
type Category struct {
	Name        string
	Slug        string
	DoctorCount int
}

// Slugify lowercases and joins words with dashes
func Slugify(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}
