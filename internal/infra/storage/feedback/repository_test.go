package feedback

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docaid/DocAid-BookingService/internal/domain"
	"github.com/docaid/DocAid-BookingService/pkg/dbmetrics"
)

func TestMemoryRepository_ReviewsNewestFirst(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	for _, id := range []string{"r1", "r2", "r3"} {
		_, err := repo.AddReview(ctx, &domain.Review{ID: id, DoctorID: "dr-mehta", Rating: 5, Comment: "ok"})
		require.NoError(t, err)
	}
	_, err := repo.AddReview(ctx, &domain.Review{ID: "r4", DoctorID: "dr-patel", Rating: 4, Comment: "ok"})
	require.NoError(t, err)

	reviews, err := repo.ListReviews(ctx, "dr-mehta")
	require.NoError(t, err)
	require.Len(t, reviews, 3)
	assert.Equal(t, "r3", reviews[0].ID)
	assert.Equal(t, "r1", reviews[2].ID)

	_, err = repo.AddReview(ctx, &domain.Review{DoctorID: "dr-mehta"})
	assert.ErrorIs(t, err, ErrInvalidReview)
}

func TestMemoryRepository_ToggleLike(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	s, err := repo.ToggleLike(ctx, "dr-mehta", "u1")
	require.NoError(t, err)
	assert.True(t, s.Liked)
	assert.Equal(t, 1, s.Count)

	s, err = repo.ToggleLike(ctx, "dr-mehta", "u2")
	require.NoError(t, err)
	assert.Equal(t, 2, s.Count)

	s, err = repo.ToggleLike(ctx, "dr-mehta", "u1")
	require.NoError(t, err)
	assert.False(t, s.Liked)
	assert.Equal(t, 1, s.Count)

	s, err = repo.Likes(ctx, "dr-mehta", "u2")
	require.NoError(t, err)
	assert.True(t, s.Liked)
	assert.Equal(t, 1, s.Count)

	s, err = repo.Likes(ctx, "dr-mehta", "")
	require.NoError(t, err)
	assert.False(t, s.Liked)
}

func TestRepository_ListReviews(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	repo := NewRepository(dbmetrics.Wrap(sqlDB, nil))
	created := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM doctor_reviews WHERE doctor_id = \$1 ORDER BY created_at DESC, id DESC`).
		WithArgs("dr-mehta").
		WillReturnRows(sqlmock.NewRows([]string{"id", "doctor_id", "user_id", "author_name", "rating", "comment", "created_at"}).
			AddRow("r1", "dr-mehta", "u1", "Anonymous User", 5, "Great", created))

	reviews, err := repo.ListReviews(context.Background(), "dr-mehta")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, 5, reviews[0].Rating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ToggleLikeAddsWhenAbsent(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	repo := NewRepository(dbmetrics.Wrap(sqlDB, nil))

	mock.ExpectExec(`DELETE FROM doctor_likes WHERE doctor_id = \$1 AND user_id = \$2`).
		WithArgs("dr-mehta", "u1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO doctor_likes \(doctor_id,user_id\) VALUES \(\$1,\$2\) ON CONFLICT DO NOTHING`).
		WithArgs("dr-mehta", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM doctor_likes WHERE doctor_id = \$1`).
		WithArgs("dr-mehta").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	s, err := repo.ToggleLike(context.Background(), "dr-mehta", "u1")
	require.NoError(t, err)
	assert.True(t, s.Liked)
	assert.Equal(t, 3, s.Count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ToggleLikeRemovesWhenPresent(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	repo := NewRepository(dbmetrics.Wrap(sqlDB, nil))

	mock.ExpectExec(`DELETE FROM doctor_likes`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM doctor_likes`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	s, err := repo.ToggleLike(context.Background(), "dr-mehta", "u1")
	require.NoError(t, err)
	assert.False(t, s.Liked)
	assert.Equal(t, 0, s.Count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
