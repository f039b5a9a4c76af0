package catalog

import "errors"

var (
	// ErrDoctorNotFound возвращается, когда врача нет в справочнике
	ErrDoctorNotFound = errors.New("catalog: doctor not found")

	// ErrInvalidRoster возвращается для некорректного справочника врачей
	ErrInvalidRoster = errors.New("catalog: invalid roster")
)
