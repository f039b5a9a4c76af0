package models

import (
	"time"

	"github.com/docaid/DocAid-BookingService/internal/domain"
)

// SubmitIntakeRequest заявка пациента. Address и Contact обязательны для visitType=home.
type SubmitIntakeRequest struct {
	UserID    string `json:"-"`
	VisitType string `json:"visitType"`
	Name      string `json:"name"`
	Age       string `json:"age"`
	Issue     string `json:"issue"`
	Doctor    string `json:"doctor"`
	Address   string `json:"address"`
	Contact   string `json:"contact"`
}

// ListIntakeRequest фильтр списка заявок
type ListIntakeRequest struct {
	VisitType string
	Admin     bool
}

// IntakeResponse сохранённая заявка
type IntakeResponse struct {
	ID        string    `json:"id"`
	VisitType string    `json:"visitType"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Issue     string    `json:"issue"`
	Doctor    string    `json:"doctor"`
	Address   string    `json:"address,omitempty"`
	Contact   string    `json:"contact,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// IntakeListResponse список заявок, сначала новые
type IntakeListResponse struct {
	Intakes []IntakeResponse `json:"intakes"`
	Total   int              `json:"total"`
}

// FromDomainIntake конвертирует domain модель в DTO
func FromDomainIntake(i *domain.PatientIntake) IntakeResponse {
	return IntakeResponse{
		ID:        i.ID,
		VisitType: string(i.Kind),
		Name:      i.Name,
		Age:       i.Age,
		Issue:     i.Issue,
		Doctor:    i.Doctor,
		Address:   i.Address,
		Contact:   i.Contact,
		CreatedAt: i.CreatedAt,
	}
}

// FromDomainIntakes конвертирует список
func FromDomainIntakes(intakes []*domain.PatientIntake) *IntakeListResponse {
	resp := &IntakeListResponse{Intakes: make([]IntakeResponse, 0, len(intakes))}
	for _, i := range intakes {
		resp.Intakes = append(resp.Intakes, FromDomainIntake(i))
	}
	resp.Total = len(resp.Intakes)
	return resp
}
