package list_patient_intakes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docaid/DocAid-BookingService/internal/api/middleware"
	intakeRepo "github.com/docaid/DocAid-BookingService/internal/infra/storage/intake"
	"github.com/docaid/DocAid-BookingService/internal/service/intake"
	"github.com/docaid/DocAid-BookingService/internal/service/intake/models"
	"github.com/docaid/DocAid-BookingService/pkg/logger"
)

func newRouter(t *testing.T) *mux.Router {
	t.Helper()
	svc := intake.NewService(intakeRepo.NewMemoryRepository(), logger.Nop())

	for _, req := range []*models.SubmitIntakeRequest{
		{Name: "Jane Doe", Age: "34", Issue: "Chest pain", Doctor: "Dr. Mehta"},
		{VisitType: "home", Name: "John Roe", Age: "70", Issue: "Fever", Doctor: "Dr. Patel", Address: "12 Park Lane", Contact: "555-0100"},
	} {
		_, err := svc.Submit(context.Background(), req)
		require.NoError(t, err)
	}

	r := mux.NewRouter()
	r.HandleFunc("/patient-intake", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodGet)
	return r
}

func get(r *mux.Router, target, userID string, admin bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if userID != "" {
		req = req.WithContext(middleware.WithUser(req.Context(), userID, admin))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_AdminListsByVisitType(t *testing.T) {
	r := newRouter(t)

	rec := get(r, "/patient-intake", "staff", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data models.IntakeListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Data.Total)
	assert.Equal(t, "John Roe", resp.Data.Intakes[0].Name)

	rec = get(r, "/patient-intake?visitType=home", "staff", true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Data.Total)
	assert.Equal(t, "12 Park Lane", resp.Data.Intakes[0].Address)
}

func TestHandle_Errors(t *testing.T) {
	r := newRouter(t)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/patient-intake", "", false).Code)
	assert.Equal(t, http.StatusForbidden, get(r, "/patient-intake", "u1", false).Code)
	assert.Equal(t, http.StatusBadRequest, get(r, "/patient-intake?visitType=video", "staff", true).Code)
}
