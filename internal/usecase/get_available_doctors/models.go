package get_available_doctors

import (
	"time"

	"github.com/docaid/DocAid-BookingService/internal/domain"
	"github.com/docaid/DocAid-BookingService/pkg/types"
)

// Причины, по которым на дату нельзя записаться
const (
	ReasonPastDate    = "past_date"
	ReasonWeekendDate = "weekend_date"
)

// Request модель запроса доступных врачей
type Request struct {
	Date string // Дата в формате YYYY-MM-DD
}

// Response модель ответа
type Response struct {
	Date     time.Time          // Запрошенная дата (полночь в зоне сервиса)
	Weekday  time.Weekday       // День недели даты
	Bookable bool               // Можно ли записаться на эту дату
	Reason   string             // Причина, если записаться нельзя
	Doctors  []domain.Doctor    // Врачи, принимающие в этот день недели
	Slots    []types.TimeString // Сетка слотов дня
}
