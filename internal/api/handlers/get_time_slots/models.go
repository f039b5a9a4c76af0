package get_time_slots

import "github.com/docaid/DocAid-BookingService/pkg/types"

// TimeSlot слот: значение для запроса и подпись для отображения
type TimeSlot struct {
	Value string `json:"value"` // "14:30"
	Label string `json:"label"` // "2:30 PM"
}

// TimeSlotsResponse HTTP response model
type TimeSlotsResponse struct {
	Slots []TimeSlot `json:"slots"`
}

// FromSlots конвертирует сетку слотов в HTTP response
func FromSlots(slots []types.TimeString) *TimeSlotsResponse {
	resp := &TimeSlotsResponse{Slots: make([]TimeSlot, 0, len(slots))}
	for _, slot := range slots {
		resp.Slots = append(resp.Slots, TimeSlot{Value: slot.String(), Label: slot.Label()})
	}
	return resp
}
