package cancel_booking

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

type cancelResponse struct {
	Data struct {
		Status      string  `json:"status"`
		CancelledAt *string `json:"cancelledAt"`
	} `json:"data"`
}

func newRouter(t *testing.T) *mux.Router {
	t.Helper()

	repo := bookingRepo.NewMemoryRepository()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	_, err := repo.Append(context.Background(), &domain.Booking{
		Reference: "REF-0A1B2C3D",
		UserID:    "u1",
		DoctorID:  "dr-mehta",
		Date:      time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		TimeSlot:  "10:00",
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Status:    domain.StatusConfirmed,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)

	svc := bookings.NewService(repo, nil, events.NoopPublisher{}, nil, txmanager.NewLocalManager(),
		bookings.Settings{Location: time.UTC}, logger.Nop())

	r := mux.NewRouter()
	r.HandleFunc("/bookings/{bookingId}/cancel", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodPatch)
	return r
}

func cancel(r *mux.Router, bookingID, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/bookings/"+bookingID+"/cancel", nil)
	if userID != "" {
		req = req.WithContext(middleware.WithUser(req.Context(), userID, false))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_CancelTwice(t *testing.T) {
	r := newRouter(t)

	first := cancel(r, "1", "u1")
	require.Equal(t, http.StatusOK, first.Code)
	var firstResp cancelResponse
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &firstResp))
	assert.Equal(t, "cancelled", firstResp.Data.Status)
	require.NotNil(t, firstResp.Data.CancelledAt)

	second := cancel(r, "REF-0A1B2C3D", "u1")
	require.Equal(t, http.StatusOK, second.Code)
	var secondResp cancelResponse
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &secondResp))
	assert.Equal(t, "cancelled", secondResp.Data.Status)
	assert.Equal(t, *firstResp.Data.CancelledAt, *secondResp.Data.CancelledAt)
}

func TestHandle_Errors(t *testing.T) {
	r := newRouter(t)

	assert.Equal(t, http.StatusForbidden, cancel(r, "1", "u2").Code)
	assert.Equal(t, http.StatusNotFound, cancel(r, "7", "u1").Code)
	assert.Equal(t, http.StatusUnauthorized, cancel(r, "1", "").Code)
}
