package get_time_slots

import "github.com/docaid/DocAid-BookingService/pkg/types"

type SlotProvider interface {
	Slots() []types.TimeString
}

type Logger interface {
	Info(format string, v ...interface{})
}
