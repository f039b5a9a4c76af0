package get_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docaid/DocAid-BookingService/internal/api/middleware"
	"github.com/docaid/DocAid-BookingService/internal/domain"
	"github.com/docaid/DocAid-BookingService/internal/infra/events"
	bookingRepo "github.com/docaid/DocAid-BookingService/internal/infra/storage/booking"
	"github.com/docaid/DocAid-BookingService/internal/service/bookings"
	"github.com/docaid/DocAid-BookingService/pkg/logger"
	"github.com/docaid/DocAid-BookingService/pkg/txmanager"
)

func newRouter(t *testing.T) *mux.Router {
	t.Helper()

	repo := bookingRepo.NewMemoryRepository()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	_, err := repo.Append(context.Background(), &domain.Booking{
		Reference: "REF-0A1B2C3D",
		UserID:    "u1",
		DoctorID:  "dr-mehta",
		Date:      time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		TimeSlot:  "14:30",
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Status:    domain.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)

	svc := bookings.NewService(repo, nil, events.NoopPublisher{}, nil, txmanager.NewLocalManager(),
		bookings.Settings{Location: time.UTC}, logger.Nop())

	r := mux.NewRouter()
	r.HandleFunc("/bookings/{bookingId}", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodGet)
	return r
}

func get(r *mux.Router, path, userID string, admin bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if userID != "" {
		req = req.WithContext(middleware.WithUser(req.Context(), userID, admin))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	r := newRouter(t)

	tests := []struct {
		name   string
		path   string
		userID string
		admin  bool
		status int
	}{
		{name: "owner by id", path: "/bookings/1", userID: "u1", status: http.StatusOK},
		{name: "owner by reference", path: "/bookings/ref-0a1b2c3d", userID: "u1", status: http.StatusOK},
		{name: "admin", path: "/bookings/1", userID: "root", admin: true, status: http.StatusOK},
		{name: "other user", path: "/bookings/1", userID: "u2", status: http.StatusForbidden},
		{name: "unknown", path: "/bookings/42", userID: "u1", status: http.StatusNotFound},
		{name: "anonymous", path: "/bookings/1", status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(r, tt.path, tt.userID, tt.admin)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandle_Body(t *testing.T) {
	rec := get(newRouter(t), "/bookings/1", "u1", false)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			ID        int64  `json:"id"`
			Reference string `json:"bookingReference"`
			Date      string `json:"date"`
			TimeSlot  string `json:"timeSlot"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Data.ID)
	assert.Equal(t, "REF-0A1B2C3D", resp.Data.Reference)
	assert.Equal(t, "2025-06-10", resp.Data.Date)
	assert.Equal(t, "2:30 PM", resp.Data.TimeSlot)
}
