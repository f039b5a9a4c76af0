package feedback

import (
	"context"
	"fmt"
	"sync"

	"github.com/docaid/DocAid-BookingService/internal/domain"
)

type likeKey struct {
	doctorID string
	userID   string
}

// MemoryRepository отзывы и лайки в памяти процесса
type MemoryRepository struct {
	mu      sync.RWMutex
	reviews map[string][]*domain.Review
	likes   map[likeKey]struct{}
	counts  map[string]int
}

// NewMemoryRepository создаёт пустое хранилище
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		reviews: make(map[string][]*domain.Review),
		likes:   make(map[likeKey]struct{}),
		counts:  make(map[string]int),
	}
}

// AddReview сохраняет отзыв
func (r *MemoryRepository) AddReview(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if review == nil || review.ID == "" || review.DoctorID == "" {
		return nil, fmt.Errorf("%w: id and doctor are required", ErrInvalidReview)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *review
	r.reviews[review.DoctorID] = append(r.reviews[review.DoctorID], &stored)

	out := stored
	return &out, nil
}

// ListReviews возвращает отзывы о враче, сначала новые
func (r *MemoryRepository) ListReviews(ctx context.Context, doctorID string) ([]*domain.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.reviews[doctorID]
	result := make([]*domain.Review, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		review := *stored[i]
		result = append(result, &review)
	}
	return result, nil
}

// ToggleLike ставит или снимает лайк пользователя
func (r *MemoryRepository) ToggleLike(ctx context.Context, doctorID, userID string) (domain.LikeSummary, error) {
	if err := ctx.Err(); err != nil {
		return domain.LikeSummary{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := likeKey{doctorID: doctorID, userID: userID}
	_, liked := r.likes[key]
	if liked {
		delete(r.likes, key)
		r.counts[doctorID]--
	} else {
		r.likes[key] = struct{}{}
		r.counts[doctorID]++
	}

	return domain.LikeSummary{DoctorID: doctorID, Count: r.counts[doctorID], Liked: !liked}, nil
}

// Likes возвращает количество лайков врача. Пустой userID означает анонимный запрос.
func (r *MemoryRepository) Likes(ctx context.Context, doctorID, userID string) (domain.LikeSummary, error) {
	if err := ctx.Err(); err != nil {
		return domain.LikeSummary{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	summary := domain.LikeSummary{DoctorID: doctorID, Count: r.counts[doctorID]}
	if userID != "" {
		_, summary.Liked = r.likes[likeKey{doctorID: doctorID, userID: userID}]
	}
	return summary, nil
}
