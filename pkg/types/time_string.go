package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidTimeFormat возвращается, когда строку не удалось распознать как время суток
var ErrInvalidTimeFormat = errors.New("invalid time string format")

const (
	canonicalLayout = "15:04"
	labelLayout     = "3:04 PM"
	minutesPerDay   = 24 * 60
)

// Допустимые входные форматы: 24-часовой и 12-часовой с AM/PM
var inputLayouts = []string{
	"15:04",
	"3:04 PM",
	"3:04PM",
	"03:04 PM",
	"03:04PM",
}

// TimeString время суток с точностью до минуты.
// Хранится в каноническом виде "15:04", отображается как "3:04 PM".
type TimeString string

// NewTimeString берёт часы и минуты из time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(canonicalLayout))
}

// NewTimeStringFromMinutes строит время из количества минут от полуночи
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return "", fmt.Errorf("%w: minutes %d out of range", ErrInvalidTimeFormat, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// NewTimeStringFromString разбирает "15:04", "3:04 PM" и их варианты
func NewTimeStringFromString(s string) (TimeString, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return "", ErrInvalidTimeFormat
	}
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewTimeString(t), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что значение в каноническом формате
func (t TimeString) Validate() error {
	if _, err := time.Parse(canonicalLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return nil
}

// Minutes возвращает количество минут от полуночи, -1 для некорректного значения
func (t TimeString) Minutes() int {
	parsed, err := time.Parse(canonicalLayout, string(t))
	if err != nil {
		return -1
	}
	return parsed.Hour()*60 + parsed.Minute()
}

// AddMinutes сдвигает время; результат обязан остаться в пределах суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	current := t.Minutes()
	if current < 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return NewTimeStringFromMinutes(current + minutes)
}

func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// String возвращает каноническое представление "15:04"
func (t TimeString) String() string {
	return string(t)
}

// Label возвращает представление для пользователя, например "10:00 AM"
func (t TimeString) Label() string {
	parsed, err := time.Parse(canonicalLayout, string(t))
	if err != nil {
		return string(t)
	}
	return parsed.Format(labelLayout)
}

// MarshalText сериализует время как метку слота
func (t TimeString) MarshalText() ([]byte, error) {
	return []byte(t.Label()), nil
}

// UnmarshalText принимает любой из поддерживаемых форматов
func (t *TimeString) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*t = ""
		return nil
	}
	parsed, err := NewTimeStringFromString(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

// Scan реализует sql.Scanner
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		return t.UnmarshalText([]byte(v))
	case []byte:
		return t.UnmarshalText(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeFormat, src)
	}
}
