package submit_patient_intake

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docaid/DocAid-BookingService/internal/api/handlers"
	"github.com/docaid/DocAid-BookingService/internal/api/middleware"
	"github.com/docaid/DocAid-BookingService/internal/domain"
	intakeRepo "github.com/docaid/DocAid-BookingService/internal/infra/storage/intake"
	"github.com/docaid/DocAid-BookingService/internal/service/intake"
	"github.com/docaid/DocAid-BookingService/internal/service/intake/models"
	"github.com/docaid/DocAid-BookingService/pkg/logger"
)

func newRouter(repo *intakeRepo.MemoryRepository) *mux.Router {
	svc := intake.NewService(repo, logger.Nop())

	r := mux.NewRouter()
	r.HandleFunc("/patient-intake", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodPost)
	return r
}

func post(r *mux.Router, userID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/patient-intake", strings.NewReader(body))
	if userID != "" {
		req = req.WithContext(middleware.WithUser(req.Context(), userID, false))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_ClinicVisitAnonymous(t *testing.T) {
	repo := intakeRepo.NewMemoryRepository()
	rec := post(newRouter(repo), "", `{"name":"Jane Doe","age":"34","issue":"Chest pain","doctor":"Dr. Mehta"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Data models.IntakeResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "clinic", resp.Data.VisitType)
	assert.Equal(t, 34, resp.Data.Age)

	stored, err := repo.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Empty(t, stored[0].UserID)
}

func TestHandle_HomeVisitRecordsUser(t *testing.T) {
	repo := intakeRepo.NewMemoryRepository()
	body := `{"visitType":"home","name":"Jane Doe","age":"34","address":"12 Park Lane","issue":"Fever","contact":"555-0100","doctor":"Dr. Patel"}`

	rec := post(newRouter(repo), "u1", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	stored, err := repo.List(context.Background(), domain.IntakeHomeVisit)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "u1", stored[0].UserID)
	assert.Equal(t, "12 Park Lane", stored[0].Address)
}

func TestHandle_Validation(t *testing.T) {
	r := newRouter(intakeRepo.NewMemoryRepository())

	tests := []struct {
		name  string
		body  string
		code  string
		field string
	}{
		{"missing issue", `{"name":"Jane","age":"34","doctor":"Dr. Mehta"}`, "missing_field", "issue"},
		{"home without address", `{"visitType":"home","name":"Jane","age":"34","issue":"Fever","contact":"1","doctor":"Dr. Mehta"}`, "missing_field", "address"},
		{"bad age", `{"name":"Jane","age":"old","issue":"Fever","doctor":"Dr. Mehta"}`, "invalid_age", "age"},
		{"bad visit type", `{"visitType":"video","name":"Jane","age":"34","issue":"Fever","doctor":"Dr. Mehta"}`, "invalid_visit_type", "visitType"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(r, "", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.Error)
			assert.Equal(t, tt.field, resp.Field)
		})
	}

	assert.Equal(t, http.StatusBadRequest, post(r, "", `{"name":`).Code)
}
