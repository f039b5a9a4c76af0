package domain

import "time"

// Review is a patient's rating and comment for a doctor
type Review struct {
	ID         string
	DoctorID   string
	UserID     string
	AuthorName string
	Rating     int
	Comment    string
	CreatedAt  time.Time
}

// LikeSummary is the like counter of a doctor, optionally from one user's point of view
type LikeSummary struct {
	DoctorID string
	Count    int
	Liked    bool
}
