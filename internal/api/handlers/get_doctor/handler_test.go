package get_doctor

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docaid/DocAid-BookingService/internal/domain"
	"github.com/docaid/DocAid-BookingService/internal/infra/catalog"
	"github.com/docaid/DocAid-BookingService/internal/service/doctors"
	"github.com/docaid/DocAid-BookingService/internal/service/doctors/models"
	"github.com/docaid/DocAid-BookingService/pkg/logger"
)

func newRouter(t *testing.T) *mux.Router {
	t.Helper()
	weekdays := []time.Weekday{time.Monday, time.Wednesday}
	repo, err := catalog.NewRepository([]domain.Doctor{
		{ID: "dr-a", Name: "Dr. A", Specialty: "Cardiology", AvailableDays: weekdays},
		{ID: "dr-b", Name: "Dr. B", Specialty: "Dermatology", AvailableDays: weekdays},
		{ID: "dr-c", Name: "Dr. C", Specialty: "cardiology", AvailableDays: weekdays},
		{ID: "dr-d", Name: "Dr. D", Specialty: "Cardiology", AvailableDays: weekdays},
	})
	require.NoError(t, err)

	r := mux.NewRouter()
	r.HandleFunc("/doctors/{doctorId}", NewHandler(doctors.NewService(repo, logger.Nop()), logger.Nop()).Handle).
		Methods(http.MethodGet)
	return r
}

func TestHandle_WithSuggested(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/doctors/dr-a?suggested=1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data models.DoctorDetailsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Dr. A", resp.Data.Doctor.Name)
	assert.Equal(t, []string{"Monday", "Wednesday"}, resp.Data.Doctor.DayNames)
	require.Len(t, resp.Data.Suggested, 1)
	assert.Equal(t, "dr-c", resp.Data.Suggested[0].ID)
}

func TestHandle_Errors(t *testing.T) {
	r := newRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/doctors/dr-x", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/doctors/dr-a?suggested=-1", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
