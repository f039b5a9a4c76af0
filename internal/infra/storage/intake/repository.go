package intake

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/docaid/DocAid-BookingService/internal/domain"
	"github.com/docaid/DocAid-BookingService/pkg/dbmetrics"
	"github.com/docaid/DocAid-BookingService/pkg/psqlbuilder"
)

const intakesTable = "patient_intakes"

var intakeColumns = []string{
	"id", "kind", "user_id", "name", "age", "issue", "doctor", "address", "contact", "created_at",
}

// Repository заявки пациентов в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append сохраняет заявку
func (r *Repository) Append(ctx context.Context, intake *domain.PatientIntake) (*domain.PatientIntake, error) {
	if err := checkIntake(intake); err != nil {
		return nil, err
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(intakesTable).
		Columns(intakeColumns...).
		Values(
			intake.ID,
			string(intake.Kind),
			intake.UserID,
			intake.Name,
			intake.Age,
			intake.Issue,
			intake.Doctor,
			intake.Address,
			intake.Contact,
			intake.CreatedAt,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	stored := *intake
	return &stored, nil
}

// List возвращает заявки, сначала новые. Пустой kind означает все виды.
func (r *Repository) List(ctx context.Context, kind domain.IntakeKind) ([]*domain.PatientIntake, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(intakeColumns...).
		From(intakesTable).
		OrderBy("created_at DESC", "id DESC")
	if kind != "" {
		builder = builder.Where(squirrel.Eq{"kind": string(kind)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.PatientIntake, 0)
	for rows.Next() {
		var (
			intake  domain.PatientIntake
			rawKind string
		)
		if err := rows.Scan(
			&intake.ID,
			&rawKind,
			&intake.UserID,
			&intake.Name,
			&intake.Age,
			&intake.Issue,
			&intake.Doctor,
			&intake.Address,
			&intake.Contact,
			&intake.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		intake.Kind = domain.IntakeKind(rawKind)
		result = append(result, &intake)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
