package booking

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docaid/DocAid-BookingService/internal/domain"
	"github.com/docaid/DocAid-BookingService/pkg/dbmetrics"
	"github.com/docaid/DocAid-BookingService/pkg/ptr"
	"github.com/docaid/DocAid-BookingService/pkg/txmanager"
	"github.com/docaid/DocAid-BookingService/pkg/types"
)

func newMockRepo(t *testing.T) (*Repository, *dbmetrics.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db := dbmetrics.Wrap(sqlDB, nil)
	return NewRepository(db, time.UTC), db, mock
}

func bookingRow(id int64, ref, user string, status domain.BookingStatus, cancelledAt interface{}) *sqlmock.Rows {
	created := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(bookingColumns).AddRow(
		id, ref, user, "dr-mehta", "Dr. Mehta", "Cardiology",
		testDay, "10:00", "Jane Doe", "jane@example.com", nil,
		string(status), false, created, created, cancelledAt,
	)
}

func TestRepository_Append(t *testing.T) {
	repo, _, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO bookings \(reference,user_id,doctor_id`).
		WithArgs("REF-1", "u1", "dr-mehta", "", "", "2030-06-10", "10:00", "Jane Doe", "jane@example.com",
			nil, "confirmed", false, sqlmock.AnyArg(), sqlmock.AnyArg(), nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	b := newTestBooking("REF-1", "u1")
	b.ID = 99
	stored, err := repo.Append(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, int64(7), stored.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_AppendUniqueViolation(t *testing.T) {
	repo, _, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO bookings`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "bookings_active_slot_idx"})
	_, err := repo.Append(context.Background(), newTestBooking("REF-1", "u1"))
	assert.ErrorIs(t, err, ErrDuplicateBooking)

	mock.ExpectQuery(`INSERT INTO bookings`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "bookings_reference_key"})
	_, err = repo.Append(context.Background(), newTestBooking("REF-1", "u1"))
	assert.ErrorIs(t, err, ErrDuplicateReference)

	mock.ExpectQuery(`INSERT INTO bookings`).WillReturnError(sql.ErrConnDone)
	_, err = repo.Append(context.Background(), newTestBooking("REF-1", "u1"))
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_FindAllWithFilter(t *testing.T) {
	repo, _, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE user_id = \$1 AND status = \$2 ORDER BY id DESC`).
		WithArgs("u1", "confirmed").
		WillReturnRows(bookingRow(1, "REF-1", "u1", domain.StatusConfirmed, nil))

	got, err := repo.FindAll(context.Background(), domain.BookingFilter{
		UserID:      ptr.Ptr("u1"),
		Status:      ptr.Ptr(domain.StatusConfirmed),
		NewestFirst: true,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "REF-1", got[0].Reference)
	assert.Equal(t, "10:00", got[0].TimeSlot.String())
	assert.Nil(t, got[0].Phone)
	assert.True(t, got[0].Date.Equal(testDay))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindAllLocksSlotInsideTransaction(t *testing.T) {
	repo, db, mock := newMockRepo(t)
	tx := txmanager.NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE (.+) FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(bookingColumns))
	mock.ExpectCommit()

	err := tx.DoSerializable(context.Background(), func(ctx context.Context) error {
		_, err := repo.FindAll(ctx, domain.BookingFilter{
			StartDate:  &testDay,
			EndDate:    &testDay,
			TimeSlot:   ptr.Ptr(types.TimeString("10:00")),
			ActiveOnly: true,
		})
		return err
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByIDNotFound(t *testing.T) {
	repo, _, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	_, err := repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_UpdateCancel(t *testing.T) {
	repo, _, mock := newMockRepo(t)
	cancelledAt := time.Date(2030, 6, 2, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`UPDATE bookings SET updated_at = \$1, status = \$2, cancelled_at = COALESCE\(cancelled_at, \$3\) WHERE id = \$4 RETURNING`).
		WithArgs(cancelledAt, "cancelled", cancelledAt, int64(1)).
		WillReturnRows(bookingRow(1, "REF-1", "u1", domain.StatusCancelled, cancelledAt))

	updated, err := repo.Update(context.Background(), 1, domain.BookingPatch{
		Status:      ptr.Ptr(domain.StatusCancelled),
		CancelledAt: &cancelledAt,
		UpdatedAt:   cancelledAt,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, updated.Status)
	require.NotNil(t, updated.CancelledAt)
	assert.True(t, updated.CancelledAt.Equal(cancelledAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateTerminalStatus(t *testing.T) {
	repo, _, mock := newMockRepo(t)
	now := time.Date(2030, 6, 2, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`UPDATE bookings (.+) AND status <> \$4`).
		WillReturnRows(sqlmock.NewRows(bookingColumns))
	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id = \$1`).
		WillReturnRows(bookingRow(1, "REF-1", "u1", domain.StatusCancelled, now))

	_, err := repo.Update(context.Background(), 1, domain.BookingPatch{
		Status:    ptr.Ptr(domain.StatusConfirmed),
		UpdatedAt: now,
	})
	assert.ErrorIs(t, err, ErrTerminalStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}
