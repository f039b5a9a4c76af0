package doctors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docaid/DocAid-BookingService/internal/domain"
	"github.com/docaid/DocAid-BookingService/internal/infra/catalog"
	"github.com/docaid/DocAid-BookingService/pkg/logger"
)

func newTestService(t *testing.T, doctors []domain.Doctor) *Service {
	t.Helper()
	repo, err := catalog.NewRepository(doctors)
	require.NoError(t, err)
	return NewService(repo, logger.Nop())
}

func rosterWithTwoCardiologists() []domain.Doctor {
	roster := catalog.DefaultRoster()
	return append(roster,
		domain.Doctor{ID: "dr-iyer", Name: "Dr. Meera Iyer", Specialty: "cardiology"},
		domain.Doctor{ID: "dr-bose", Name: "Dr. Arjun Bose", Specialty: "Cardiology"},
	)
}

func TestList_BySpecialty(t *testing.T) {
	svc := newTestService(t, catalog.DefaultRoster())

	all := svc.List("")
	assert.Len(t, all.Doctors, 9)
	assert.Equal(t, "dr-mehta", all.Doctors[0].ID)

	for _, query := range []string{"Eye Specialist", "eye specialist", "eye-specialist"} {
		got := svc.List(query)
		require.Len(t, got.Doctors, 1, query)
		assert.Equal(t, "dr-kapoor", got.Doctors[0].ID)
	}

	assert.Empty(t, svc.List("Astrology").Doctors)
}

func TestCategories_CountsInRosterOrder(t *testing.T) {
	svc := newTestService(t, rosterWithTwoCardiologists())

	categories := svc.Categories().Categories
	require.Len(t, categories, 9)
	assert.Equal(t, "Cardiology", categories[0].Name)
	assert.Equal(t, "cardiology", categories[0].Slug)
	assert.Equal(t, 3, categories[0].DoctorCount)
	assert.Equal(t, "eye-specialist", categories[8].Slug)
}

func TestGet_WithSuggested(t *testing.T) {
	svc := newTestService(t, rosterWithTwoCardiologists())

	details, err := svc.Get("dr-mehta", 0)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Aarav Mehta", details.Doctor.Name)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, details.Doctor.AvailableDays)
	assert.Equal(t, "Monday", details.Doctor.DayNames[0])

	require.Len(t, details.Suggested, 2)
	assert.Equal(t, "dr-iyer", details.Suggested[0].ID)

	limited, err := svc.Get("dr-mehta", 1)
	require.NoError(t, err)
	assert.Len(t, limited.Suggested, 1)

	solo, err := svc.Get("dr-kapoor", 3)
	require.NoError(t, err)
	assert.Empty(t, solo.Suggested)

	_, err = svc.Get("dr-nobody", 3)
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}
