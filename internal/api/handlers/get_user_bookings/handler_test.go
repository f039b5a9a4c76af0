package get_user_bookings

import (
	"context"
	"encoding/json"
	"fmt"
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
	"github.com/docaid/DocAid-BookingService/internal/service/bookings/models"
	"github.com/docaid/DocAid-BookingService/pkg/logger"
	"github.com/docaid/DocAid-BookingService/pkg/txmanager"
)

type listResponse struct {
	Data models.BookingListResponse `json:"data"`
}

type stubService struct {
	err error
}

func (s stubService) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	return nil, s.err
}

func newRouter(t *testing.T) *mux.Router {
	t.Helper()

	repo := bookingRepo.NewMemoryRepository()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	seed := []struct {
		user   string
		day    int
		status domain.BookingStatus
	}{
		{"u1", 10, domain.StatusPending},
		{"u2", 10, domain.StatusPending},
		{"u1", 12, domain.StatusConfirmed},
	}
	for i, s := range seed {
		_, err := repo.Append(context.Background(), &domain.Booking{
			Reference: fmt.Sprintf("REF-%08d", i),
			UserID:    s.user,
			DoctorID:  "dr-mehta",
			Date:      time.Date(2025, 6, s.day, 0, 0, 0, 0, time.UTC),
			TimeSlot:  "10:00",
			Name:      "Jane Doe",
			Email:     "jane@example.com",
			Status:    s.status,
			CreatedAt: now,
			UpdatedAt: now,
		})
		require.NoError(t, err)
	}

	svc := bookings.NewService(repo, nil, events.NoopPublisher{}, nil, txmanager.NewLocalManager(),
		bookings.Settings{Location: time.UTC}, logger.Nop())
	return routerFor(svc)
}

func routerFor(svc BookingService) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/bookings", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodGet)
	return r
}

func list(t *testing.T, r *mux.Router, query, userID string, admin bool) (*httptest.ResponseRecorder, listResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/bookings"+query, nil)
	if userID != "" {
		req = req.WithContext(middleware.WithUser(req.Context(), userID, admin))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var resp listResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestHandle_OwnBookings(t *testing.T) {
	r := newRouter(t)

	rec, resp := list(t, r, "", "u1", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, resp.Data.Bookings, 2)
	assert.False(t, resp.Data.FromCache)

	// userId чужого пользователя игнорируется без прав администратора
	_, resp = list(t, r, "?userId=u2", "u1", false)
	for _, b := range resp.Data.Bookings {
		assert.Equal(t, "u1", b.UserID)
	}
}

func TestHandle_Filters(t *testing.T) {
	r := newRouter(t)

	_, resp := list(t, r, "?status=confirmed", "u1", false)
	require.Len(t, resp.Data.Bookings, 1)
	assert.Equal(t, "2025-06-12", resp.Data.Bookings[0].Date)

	_, resp = list(t, r, "?from=2025-06-11&to=2025-06-30", "u1", false)
	assert.Len(t, resp.Data.Bookings, 1)

	_, resp = list(t, r, "?order=newest", "u1", false)
	require.Len(t, resp.Data.Bookings, 2)
	assert.Equal(t, "REF-00000002", resp.Data.Bookings[0].Reference)
}

func TestHandle_Admin(t *testing.T) {
	r := newRouter(t)

	_, resp := list(t, r, "", "root", true)
	assert.Len(t, resp.Data.Bookings, 3)

	_, resp = list(t, r, "?userId=u2", "root", true)
	require.Len(t, resp.Data.Bookings, 1)
	assert.Equal(t, "u2", resp.Data.Bookings[0].UserID)
}

func TestHandle_Errors(t *testing.T) {
	r := newRouter(t)

	rec, _ := list(t, r, "", "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	for _, query := range []string{"?status=done", "?from=10-06-2025", "?order=sideways"} {
		rec, _ = list(t, r, query, "u1", false)
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
	}

	rec, _ = list(t, routerFor(stubService{err: bookings.ErrUnavailable}), "", "u1", false)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
