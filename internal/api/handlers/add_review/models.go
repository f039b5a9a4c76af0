package add_review

import "github.com/docaid/DocAid-BookingService/internal/service/feedback/models"

// AddReviewRequest HTTP request model
type AddReviewRequest struct {
	AuthorName string `json:"authorName"` // пустое имя - "Anonymous User"
	Rating     int    `json:"rating"`     // 1..5
	Comment    string `json:"comment"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AddReviewRequest) ToServiceRequest(doctorID, userID string) *models.AddReviewRequest {
	return &models.AddReviewRequest{
		DoctorID:   doctorID,
		UserID:     userID,
		AuthorName: r.AuthorName,
		Rating:     r.Rating,
		Comment:    r.Comment,
	}
}
