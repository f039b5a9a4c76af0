package feedback

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/docaid/DocAid-BookingService/internal/domain"
	"github.com/docaid/DocAid-BookingService/internal/infra/catalog"
	"github.com/docaid/DocAid-BookingService/internal/service/feedback/models"
)

// Service сервис отзывов и лайков
type Service struct {
	feedbackRepo FeedbackRepository
	doctorRepo   DoctorRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(
	feedbackRepo FeedbackRepository,
	doctorRepo DoctorRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		feedbackRepo: feedbackRepo,
		doctorRepo:   doctorRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// AddReview добавляет отзыв о враче.
// Пустое имя автора заменяется на "Anonymous User".
func (s *Service) AddReview(ctx context.Context, req *models.AddReviewRequest) (*models.ReviewResponse, error) {
	s.logger.Info("AddReview: doctor=%s, user=%s, rating=%d", req.DoctorID, req.UserID, req.Rating)

	// 1. Врач существует
	if err := s.ensureDoctor(req.DoctorID); err != nil {
		return nil, err
	}

	// 2. Оценка и комментарий
	if req.Rating < domain.MinRating || req.Rating > domain.MaxRating {
		s.logger.Warn("AddReview: invalid rating=%d", req.Rating)
		return nil, ErrInvalidRating
	}
	comment := strings.TrimSpace(req.Comment)
	if comment == "" || utf8.RuneCountInString(comment) > domain.MaxReviewLength {
		s.logger.Warn("AddReview: invalid comment length=%d", utf8.RuneCountInString(comment))
		return nil, ErrInvalidComment
	}

	author := strings.TrimSpace(req.AuthorName)
	if author == "" {
		author = domain.AnonymousAuthor
	}
	if utf8.RuneCountInString(author) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: author name is too long", ErrInvalidInput)
	}

	// 3. Сохраняем
	review, err := s.feedbackRepo.AddReview(ctx, &domain.Review{
		ID:         uuid.NewString(),
		DoctorID:   req.DoctorID,
		UserID:     req.UserID,
		AuthorName: author,
		Rating:     req.Rating,
		Comment:    comment,
		CreatedAt:  s.timeProvider.Now(),
	})
	if err != nil {
		s.logger.Error("AddReview: repository error for doctor=%s: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: AddReview - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddReview: review id=%s added for doctor=%s", review.ID, review.DoctorID)
	resp := models.FromDomainReview(review)
	return &resp, nil
}

// ListReviews возвращает отзывы о враче, сначала новые
func (s *Service) ListReviews(ctx context.Context, doctorID string) (*models.ReviewListResponse, error) {
	if err := s.ensureDoctor(doctorID); err != nil {
		return nil, err
	}

	reviews, err := s.feedbackRepo.ListReviews(ctx, doctorID)
	if err != nil {
		s.logger.Error("ListReviews: repository error for doctor=%s: %v", doctorID, err)
		return nil, fmt.Errorf("%w: ListReviews - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReviews(reviews), nil
}

// ToggleLike ставит или снимает лайк пользователя
func (s *Service) ToggleLike(ctx context.Context, doctorID, userID string) (*models.LikesResponse, error) {
	s.logger.Info("ToggleLike: doctor=%s, user=%s", doctorID, userID)

	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if err := s.ensureDoctor(doctorID); err != nil {
		return nil, err
	}

	var summary domain.LikeSummary
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		summary, err = s.feedbackRepo.ToggleLike(txCtx, doctorID, userID)
		return err
	})
	if err != nil {
		s.logger.Error("ToggleLike: repository error for doctor=%s: %v", doctorID, err)
		return nil, fmt.Errorf("%w: ToggleLike - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ToggleLike: doctor=%s liked=%t count=%d", doctorID, summary.Liked, summary.Count)
	return models.FromDomainLikes(summary), nil
}

// Likes возвращает счётчик лайков. Пустой userID означает анонимный запрос.
func (s *Service) Likes(ctx context.Context, doctorID, userID string) (*models.LikesResponse, error) {
	if err := s.ensureDoctor(doctorID); err != nil {
		return nil, err
	}

	summary, err := s.feedbackRepo.Likes(ctx, doctorID, userID)
	if err != nil {
		s.logger.Error("Likes: repository error for doctor=%s: %v", doctorID, err)
		return nil, fmt.Errorf("%w: Likes - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainLikes(summary), nil
}

func (s *Service) ensureDoctor(doctorID string) error {
	if _, err := s.doctorRepo.GetByID(doctorID); err != nil {
		if errors.Is(err, catalog.ErrDoctorNotFound) {
			s.logger.Warn("feedback: doctor id=%s not found", doctorID)
			return ErrDoctorNotFound
		}
		return fmt.Errorf("%w: catalog error: %v", ErrInternal, err)
	}
	return nil
}
