package list_categories

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docaid/DocAid-BookingService/internal/infra/catalog"
	"github.com/docaid/DocAid-BookingService/internal/service/doctors"
	"github.com/docaid/DocAid-BookingService/internal/service/doctors/models"
	"github.com/docaid/DocAid-BookingService/pkg/logger"
)

func TestHandle(t *testing.T) {
	repo, err := catalog.NewRepository(catalog.DefaultRoster())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	NewHandler(doctors.NewService(repo, logger.Nop()), logger.Nop()).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/categories", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data models.CategoryListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Categories, 9)
	assert.Equal(t, models.CategoryResponse{Name: "Cardiology", Slug: "cardiology", DoctorCount: 1}, resp.Data.Categories[0])
	assert.Equal(t, "eye-specialist", resp.Data.Categories[8].Slug)
}
