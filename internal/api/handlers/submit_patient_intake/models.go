package submit_patient_intake

import (
	"github.com/docaid/DocAid-BookingService/internal/service/intake/models"
)

// SubmitIntakeRequest HTTP request model. Возраст приходит строкой, как в форме.
type SubmitIntakeRequest struct {
	VisitType string `json:"visitType"` // clinic | home, по умолчанию clinic
	Name      string `json:"name"`
	Age       string `json:"age"`
	Issue     string `json:"issue"`
	Doctor    string `json:"doctor"`
	Address   string `json:"address"`
	Contact   string `json:"contact"`
}

func (r *SubmitIntakeRequest) ToServiceRequest(userID string) *models.SubmitIntakeRequest {
	return &models.SubmitIntakeRequest{
		UserID:    userID,
		VisitType: r.VisitType,
		Name:      r.Name,
		Age:       r.Age,
		Issue:     r.Issue,
		Doctor:    r.Doctor,
		Address:   r.Address,
		Contact:   r.Contact,
	}
}
