package bookings

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/docaid/DocAid-BookingService/internal/domain"
)

// DefaultClinicAddress адрес клиники в подтверждении по умолчанию
const DefaultClinicAddress = "123 Medical Drive, Health City, HC 12345"

var confirmationTemplate = template.Must(template.New("confirmation").Parse(
	`BOOKING CONFIRMATION
--------------------
Reference: {{.Reference}}
Name: {{.Name}}
Email: {{.Email}}
Phone: {{.Phone}}
Doctor: {{.Doctor}} ({{.Specialty}})
Date: {{.Date}}
Time: {{.Time}}
Status: {{.Status}}
{{- if .Demo}}
(Demo Booking)
{{- end}}
{{- if .CancelledAt}}
Cancelled at: {{.CancelledAt}}
{{- end}}

Please arrive 10 minutes before your scheduled time.
If you need to reschedule or cancel, please contact us at least 24 hours in advance.
Clinic Address: {{.ClinicAddress}}
`))

type confirmationView struct {
	Reference     string
	Name          string
	Email         string
	Phone         string
	Doctor        string
	Specialty     string
	Date          string
	Time          string
	Status        string
	Demo          bool
	CancelledAt   string
	ClinicAddress string
}

// renderConfirmation формирует текстовое подтверждение бронирования
func renderConfirmation(b *domain.Booking, clinicAddress string) (string, error) {
	view := confirmationView{
		Reference:     b.Reference,
		Name:          b.Name,
		Email:         b.Email,
		Phone:         domain.PhoneNotProvided,
		Doctor:        b.DoctorName,
		Specialty:     b.DoctorSpecialty,
		Date:          b.Date.Format("Monday, January 2, 2006"),
		Time:          b.TimeSlot.Label(),
		Status:        string(b.Status),
		Demo:          b.IsDemo,
		ClinicAddress: clinicAddress,
	}
	if b.Phone != nil && *b.Phone != "" {
		view.Phone = *b.Phone
	}
	if view.Doctor == "" {
		view.Doctor = b.DoctorID
	}
	if b.CancelledAt != nil {
		view.CancelledAt = b.CancelledAt.Format("2006-01-02 15:04 MST")
	}

	var buf bytes.Buffer
	if err := confirmationTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render confirmation: %w", err)
	}
	return buf.String(), nil
}
