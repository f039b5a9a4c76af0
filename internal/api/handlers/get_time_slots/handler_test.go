package get_time_slots

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docaid/DocAid-BookingService/internal/domain"
	"github.com/docaid/DocAid-BookingService/pkg/logger"
	"github.com/docaid/DocAid-BookingService/pkg/types"
)

func TestHandle(t *testing.T) {
	schedule, err := domain.NewSlotSchedule(types.TimeString("09:00"), types.TimeString("10:00"), 30)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	NewHandler(schedule, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/time-slots", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data TimeSlotsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []TimeSlot{
		{Value: "09:00", Label: "9:00 AM"},
		{Value: "09:30", Label: "9:30 AM"},
		{Value: "10:00", Label: "10:00 AM"},
	}, resp.Data.Slots)
}
