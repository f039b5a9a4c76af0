package models

import (
	"time"

	"github.com/docaid/DocAid-BookingService/internal/domain"
)

// AddReviewRequest запрос на добавление отзыва
type AddReviewRequest struct {
	DoctorID   string `json:"-"`
	UserID     string `json:"-"`
	AuthorName string `json:"authorName"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

// ReviewResponse отзыв о враче
type ReviewResponse struct {
	ID         string    `json:"id"`
	DoctorID   string    `json:"doctorId"`
	AuthorName string    `json:"authorName"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ReviewListResponse список отзывов, сначала новые
type ReviewListResponse struct {
	Reviews       []ReviewResponse `json:"reviews"`
	AverageRating float64          `json:"averageRating"`
}

// LikesResponse счётчик лайков врача
type LikesResponse struct {
	DoctorID string `json:"doctorId"`
	Count    int    `json:"count"`
	Liked    bool   `json:"liked"`
}

// FromDomainReview конвертирует domain модель в DTO
func FromDomainReview(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:         r.ID,
		DoctorID:   r.DoctorID,
		AuthorName: r.AuthorName,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}

// FromDomainReviews конвертирует список отзывов и считает среднюю оценку
func FromDomainReviews(reviews []*domain.Review) *ReviewListResponse {
	resp := &ReviewListResponse{Reviews: make([]ReviewResponse, 0, len(reviews))}

	total := 0
	for _, r := range reviews {
		resp.Reviews = append(resp.Reviews, FromDomainReview(r))
		total += r.Rating
	}
	if len(reviews) > 0 {
		resp.AverageRating = float64(total) / float64(len(reviews))
	}
	return resp
}

// FromDomainLikes конвертирует счётчик лайков
func FromDomainLikes(s domain.LikeSummary) *LikesResponse {
	return &LikesResponse{DoctorID: s.DoctorID, Count: s.Count, Liked: s.Liked}
}
