package intake

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docaid/DocAid-BookingService/internal/domain"
	"github.com/docaid/DocAid-BookingService/pkg/dbmetrics"
)

var testCreated = time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestIntake(id string, kind domain.IntakeKind) *domain.PatientIntake {
	intake := &domain.PatientIntake{
		ID:        id,
		Kind:      kind,
		Name:      "Jane Doe",
		Age:       34,
		Issue:     "Chest pain",
		Doctor:    "Dr. Mehta",
		CreatedAt: testCreated,
	}
	if kind == domain.IntakeHomeVisit {
		intake.Address = "12 Park Lane"
		intake.Contact = "555-0100"
	}
	return intake
}

func TestMemoryRepository_ListNewestFirstByKind(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	for _, in := range []*domain.PatientIntake{
		newTestIntake("i1", domain.IntakeClinic),
		newTestIntake("i2", domain.IntakeHomeVisit),
		newTestIntake("i3", domain.IntakeClinic),
	} {
		_, err := repo.Append(ctx, in)
		require.NoError(t, err)
	}

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "i3", all[0].ID)

	home, err := repo.List(ctx, domain.IntakeHomeVisit)
	require.NoError(t, err)
	require.Len(t, home, 1)
	assert.Equal(t, "12 Park Lane", home[0].Address)

	_, err = repo.Append(ctx, &domain.PatientIntake{Kind: domain.IntakeClinic})
	assert.ErrorIs(t, err, ErrInvalidIntake)
}

func TestFileRepository_AppendsAndReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "admin", "intake.jsonl")
	ctx := context.Background()

	repo, err := NewFileRepository(path)
	require.NoError(t, err)

	_, err = repo.Append(ctx, newTestIntake("i1", domain.IntakeClinic))
	require.NoError(t, err)
	_, err = repo.Append(ctx, newTestIntake("i2", domain.IntakeHomeVisit))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "\n"))

	reopened, err := NewFileRepository(path)
	require.NoError(t, err)

	all, err := reopened.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "i2", all[0].ID)
	assert.Equal(t, domain.IntakeHomeVisit, all[0].Kind)
	assert.Equal(t, "555-0100", all[0].Contact)
	assert.True(t, all[1].CreatedAt.Equal(testCreated))
}

func TestFileRepository_CorruptLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intake.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("{not json\n"), 0o644))

	_, err := NewFileRepository(path)
	assert.ErrorIs(t, err, ErrPersist)
}

func TestRepository_Append(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	repo := NewRepository(dbmetrics.Wrap(sqlDB, nil))

	mock.ExpectExec(`INSERT INTO patient_intakes \(id,kind,user_id,name,age,issue,doctor,address,contact,created_at\)`).
		WithArgs("i1", "home", "", "Jane Doe", 34, "Chest pain", "Dr. Mehta", "12 Park Lane", "555-0100", testCreated).
		WillReturnResult(sqlmock.NewResult(0, 1))

	stored, err := repo.Append(context.Background(), newTestIntake("i1", domain.IntakeHomeVisit))
	require.NoError(t, err)
	assert.Equal(t, "i1", stored.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByKind(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	repo := NewRepository(dbmetrics.Wrap(sqlDB, nil))

	mock.ExpectQuery(`SELECT (.+) FROM patient_intakes WHERE kind = \$1 ORDER BY created_at DESC, id DESC`).
		WithArgs("clinic").
		WillReturnRows(sqlmock.NewRows(intakeColumns).
			AddRow("i1", "clinic", "u1", "Jane Doe", 34, "Chest pain", "Dr. Mehta", "", "", testCreated))

	list, err := repo.List(context.Background(), domain.IntakeClinic)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.IntakeClinic, list[0].Kind)
	assert.Equal(t, "u1", list[0].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
