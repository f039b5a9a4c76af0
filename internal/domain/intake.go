package domain

import "time"

// IntakeKind is the kind of visit a patient asks for
type IntakeKind string

const (
	// IntakeClinic is a visit at the clinic
	IntakeClinic IntakeKind = "clinic"
	// IntakeHomeVisit is a doctor's visit at the patient's address
	IntakeHomeVisit IntakeKind = "home"
)

// ParseIntakeKind accepts "clinic" and "home"; empty means clinic
func ParseIntakeKind(raw string) (IntakeKind, bool) {
	switch IntakeKind(raw) {
	case "", IntakeClinic:
		return IntakeClinic, true
	case IntakeHomeVisit:
		return IntakeHomeVisit, true
	}
	return "", false
}

// PatientIntake is a patient's request for a visit, recorded for clinic staff.
// Address and Contact are set for home visits only.
type PatientIntake struct {
	ID        string
	Kind      IntakeKind
	UserID    string // empty for anonymous submissions
	Name      string
	Age       int
	Issue     string
	Doctor    string
	Address   string
	Contact   string
	CreatedAt time.Time
}
