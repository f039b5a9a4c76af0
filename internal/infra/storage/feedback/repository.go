package feedback

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/docaid/DocAid-BookingService/internal/domain"
	"github.com/docaid/DocAid-BookingService/pkg/dbmetrics"
	"github.com/docaid/DocAid-BookingService/pkg/psqlbuilder"
)

const (
	reviewsTable = "doctor_reviews"
	likesTable   = "doctor_likes"
)

// Repository отзывы и лайки в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отзывов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// AddReview сохраняет отзыв
func (r *Repository) AddReview(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	if review == nil || review.ID == "" || review.DoctorID == "" {
		return nil, fmt.Errorf("%w: id and doctor are required", ErrInvalidReview)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(reviewsTable).
		Columns("id", "doctor_id", "user_id", "author_name", "rating", "comment", "created_at").
		Values(review.ID, review.DoctorID, review.UserID, review.AuthorName, review.Rating, review.Comment, review.CreatedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: AddReview - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: AddReview - execute insert: %v", ErrExecQuery, err)
	}

	stored := *review
	return &stored, nil
}

// ListReviews возвращает отзывы о враче, сначала новые
func (r *Repository) ListReviews(ctx context.Context, doctorID string) ([]*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "doctor_id", "user_id", "author_name", "rating", "comment", "created_at").
		From(reviewsTable).
		Where(squirrel.Eq{"doctor_id": doctorID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListReviews - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListReviews - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(
			&review.ID,
			&review.DoctorID,
			&review.UserID,
			&review.AuthorName,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListReviews - scan row: %v", ErrScanRow, err)
		}
		reviews = append(reviews, &review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListReviews - rows error: %v", ErrScanRow, err)
	}

	return reviews, nil
}

// ToggleLike снимает лайк, если он был, иначе ставит.
// Вызывать внутри транзакции, чтобы удаление и вставка были атомарны.
func (r *Repository) ToggleLike(ctx context.Context, doctorID, userID string) (domain.LikeSummary, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(likesTable).
		Where(squirrel.Eq{"doctor_id": doctorID, "user_id": userID}).
		ToSql()
	if err != nil {
		return domain.LikeSummary{}, fmt.Errorf("%w: ToggleLike - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return domain.LikeSummary{}, fmt.Errorf("%w: ToggleLike - execute delete: %v", ErrExecQuery, err)
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return domain.LikeSummary{}, fmt.Errorf("%w: ToggleLike - get rows affected: %v", ErrExecQuery, err)
	}

	liked := removed == 0
	if liked {
		query, args, err = psqlbuilder.Insert(likesTable).
			Columns("doctor_id", "user_id").
			Values(doctorID, userID).
			Suffix("ON CONFLICT DO NOTHING").
			ToSql()
		if err != nil {
			return domain.LikeSummary{}, fmt.Errorf("%w: ToggleLike - build insert query: %v", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return domain.LikeSummary{}, fmt.Errorf("%w: ToggleLike - execute insert: %v", ErrExecQuery, err)
		}
	}

	count, err := r.countLikes(ctx, executor, doctorID)
	if err != nil {
		return domain.LikeSummary{}, err
	}

	return domain.LikeSummary{DoctorID: doctorID, Count: count, Liked: liked}, nil
}

// Likes возвращает количество лайков врача. Пустой userID означает анонимный запрос.
func (r *Repository) Likes(ctx context.Context, doctorID, userID string) (domain.LikeSummary, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	count, err := r.countLikes(ctx, executor, doctorID)
	if err != nil {
		return domain.LikeSummary{}, err
	}

	summary := domain.LikeSummary{DoctorID: doctorID, Count: count}
	if userID == "" {
		return summary, nil
	}

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(likesTable).
		Where(squirrel.Eq{"doctor_id": doctorID, "user_id": userID}).
		ToSql()
	if err != nil {
		return domain.LikeSummary{}, fmt.Errorf("%w: Likes - build select query: %v", ErrBuildQuery, err)
	}

	var mine int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&mine); err != nil {
		return domain.LikeSummary{}, fmt.Errorf("%w: Likes - scan own like: %v", ErrScanRow, err)
	}
	summary.Liked = mine > 0

	return summary, nil
}

func (r *Repository) countLikes(ctx context.Context, executor DBExecutor, doctorID string) (int, error) {
	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(likesTable).
		Where(squirrel.Eq{"doctor_id": doctorID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: countLikes - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: countLikes - scan count: %v", ErrScanRow, err)
	}
	return count, nil
}
