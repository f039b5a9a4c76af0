package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/docaid/DocAid-BookingService/internal/domain"
	"github.com/docaid/DocAid-BookingService/pkg/dbmetrics"
	"github.com/docaid/DocAid-BookingService/pkg/psqlbuilder"
)

const (
	pqUniqueViolation       = "23505"
	referenceUniqueIndex    = "bookings_reference_key"
	bookingsTable           = "bookings"
	bookingsDefaultOrdering = "id ASC"
	bookingsNewestOrdering  = "id DESC"
)

var bookingColumns = []string{
	"id",
	"reference",
	"user_id",
	"doctor_id",
	"doctor_name",
	"doctor_specialty",
	"booking_date",
	"time_slot",
	"name",
	"email",
	"phone",
	"status",
	"is_demo",
	"created_at",
	"updated_at",
	"cancelled_at",
}

// Repository репозиторий бронирований в PostgreSQL
type Repository struct {
	db  DBExecutor
	loc *time.Location
}

// NewRepository создает новый экземпляр репозитория бронирований.
// Даты из колонки DATE приводятся к полуночи в зоне loc.
func NewRepository(db DBExecutor, loc *time.Location) *Repository {
	if loc == nil {
		loc = time.Local
	}
	return &Repository{db: db, loc: loc}
}

// Append сохраняет новое бронирование. Id выдаёт последовательность БД, booking.ID не используется.
// Если в контексте передана активная транзакция, использует её.
// Нарушение уникальных индексов возвращается как ErrDuplicateBooking / ErrDuplicateReference.
func (r *Repository) Append(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if booking == nil || booking.Reference == "" {
		return nil, fmt.Errorf("%w: reference is required", ErrInvalidBooking)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(bookingsTable).
		Columns(bookingColumns[1:]...).
		Values(
			booking.Reference,
			booking.UserID,
			booking.DoctorID,
			booking.DoctorName,
			booking.DoctorSpecialty,
			booking.Date.Format(domain.DateFormat),
			booking.TimeSlot,
			booking.Name,
			booking.Email,
			booking.Phone,
			booking.Status,
			booking.IsDemo,
			booking.CreatedAt,
			booking.UpdatedAt,
			booking.CancelledAt,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	var id int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	stored := booking.Clone()
	stored.ID = id
	return stored, nil
}

// FindAll получает бронирования с фильтрацией.
// Внутри транзакции выборка по конкретному слоту блокируется через FOR UPDATE.
func (r *Repository) FindAll(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).From(bookingsTable)

	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.DoctorID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"doctor_id": *filter.DoctorID})
	}
	if filter.Reference != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"reference": *filter.Reference})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.ActiveOnly {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.StatusCancelled})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": filter.StartDate.Format(domain.DateFormat)})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": filter.EndDate.Format(domain.DateFormat)})
	}
	if filter.TimeSlot != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"time_slot": *filter.TimeSlot})
	}

	if filter.NewestFirst {
		selectBuilder = selectBuilder.OrderBy(bookingsNewestOrdering)
	} else {
		selectBuilder = selectBuilder.OrderBy(bookingsDefaultOrdering)
	}

	// Проверка дубликата внутри транзакции: блокируем найденные строки
	if dbmetrics.IsInTransaction(ctx) && filter.TimeSlot != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: FindAll - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: FindAll - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// FindByID получает бронирование по id
func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.findOne(ctx, "FindByID", squirrel.Eq{"id": id})
}

// FindByReference получает бронирование по номеру
func (r *Repository) FindByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	return r.findOne(ctx, "FindByReference", squirrel.Eq{"reference": reference})
}

func (r *Repository) findOne(ctx context.Context, op string, where squirrel.Eq) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(bookingsTable).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	b, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
	}

	return b, nil
}

// Update изменяет бронирование на месте.
// Для отменённой записи разрешён только повтор статуса cancelled,
// cancelled_at не перезаписывается.
func (r *Repository) Update(ctx context.Context, id int64, patch domain.BookingPatch) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update(bookingsTable).
		Set("updated_at", patch.UpdatedAt).
		Where(squirrel.Eq{"id": id})

	if patch.Status != nil {
		if !patch.Status.IsValid() {
			return nil, fmt.Errorf("%w: status %q", ErrInvalidBooking, *patch.Status)
		}
		updateBuilder = updateBuilder.Set("status", *patch.Status)
		if *patch.Status != domain.StatusCancelled {
			updateBuilder = updateBuilder.Where(squirrel.NotEq{"status": domain.StatusCancelled})
		}
	}
	if patch.CancelledAt != nil {
		updateBuilder = updateBuilder.Set("cancelled_at", squirrel.Expr("COALESCE(cancelled_at, ?)", *patch.CancelledAt))
	}

	query, args, err := updateBuilder.
		Suffix("RETURNING " + strings.Join(bookingColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	updated, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		// Строки нет либо сработало условие на терминальный статус
		if _, findErr := r.FindByID(ctx, id); findErr != nil {
			return nil, findErr
		}
		return nil, fmt.Errorf("%w: booking %d", ErrTerminalStatus, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return updated, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b           domain.Booking
		bookingDate time.Time
		phone       sql.NullString
		status      string
		cancelledAt sql.NullTime
	)

	err := row.Scan(
		&b.ID,
		&b.Reference,
		&b.UserID,
		&b.DoctorID,
		&b.DoctorName,
		&b.DoctorSpecialty,
		&bookingDate,
		&b.TimeSlot,
		&b.Name,
		&b.Email,
		&phone,
		&status,
		&b.IsDemo,
		&b.CreatedAt,
		&b.UpdatedAt,
		&cancelledAt,
	)
	if err != nil {
		return nil, err
	}

	y, m, d := bookingDate.Date()
	b.Date = time.Date(y, m, d, 0, 0, 0, 0, r.loc)
	b.Status = domain.BookingStatus(status)
	if phone.Valid {
		p := phone.String
		b.Phone = &p
	}
	if cancelledAt.Valid {
		t := cancelledAt.Time
		b.CancelledAt = &t
	}

	return &b, nil
}

// mapUniqueViolation переводит ошибку уникального индекса в доменную ошибку репозитория
func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != pqUniqueViolation {
		return nil
	}
	if pqErr.Constraint == referenceUniqueIndex {
		return fmt.Errorf("%w: %s", ErrDuplicateReference, pqErr.Detail)
	}
	return fmt.Errorf("%w: %s", ErrDuplicateBooking, pqErr.Detail)
}
