package catalog

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/docaid/DocAid-BookingService/internal/domain"
)

// Repository неизменяемый справочник врачей.
// Порядок врачей совпадает с порядком в исходном списке.
type Repository struct {
	doctors []domain.Doctor
	byID    map[string]int
}

// NewRepository проверяет список врачей и строит справочник
func NewRepository(doctors []domain.Doctor) (*Repository, error) {
	if len(doctors) == 0 {
		return nil, fmt.Errorf("%w: roster is empty", ErrInvalidRoster)
	}

	repo := &Repository{
		doctors: make([]domain.Doctor, 0, len(doctors)),
		byID:    make(map[string]int, len(doctors)),
	}

	for _, d := range doctors {
		if strings.TrimSpace(d.ID) == "" || strings.TrimSpace(d.Name) == "" || strings.TrimSpace(d.Specialty) == "" {
			return nil, fmt.Errorf("%w: doctor %q must have id, name and specialty", ErrInvalidRoster, d.ID)
		}
		if _, dup := repo.byID[d.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate doctor id %q", ErrInvalidRoster, d.ID)
		}
		for _, day := range d.AvailableDays {
			if day < time.Sunday || day > time.Saturday {
				return nil, fmt.Errorf("%w: doctor %q has invalid weekday %d", ErrInvalidRoster, d.ID, day)
			}
		}

		repo.byID[d.ID] = len(repo.doctors)
		repo.doctors = append(repo.doctors, cloneDoctor(d))
	}

	return repo, nil
}

// All возвращает всех врачей в порядке справочника
func (r *Repository) All() []domain.Doctor {
	out := make([]domain.Doctor, len(r.doctors))
	for i, d := range r.doctors {
		out[i] = cloneDoctor(d)
	}
	return out
}

// GetByID возвращает врача по идентификатору
func (r *Repository) GetByID(id string) (*domain.Doctor, error) {
	idx, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDoctorNotFound, id)
	}
	d := cloneDoctor(r.doctors[idx])
	return &d, nil
}

func cloneDoctor(d domain.Doctor) domain.Doctor {
	days := make([]time.Weekday, len(d.AvailableDays))
	copy(days, d.AvailableDays)
	d.AvailableDays = days
	return d
}

type rosterFile struct {
	Doctors []rosterDoctor `toml:"doctors"`
}

type rosterDoctor struct {
	ID            string `toml:"id"`
	Name          string `toml:"name"`
	Specialty     string `toml:"specialty"`
	AvailableDays []int  `toml:"available_days"`
	Experience    string `toml:"experience"`
	Education     string `toml:"education"`
	Image         string `toml:"image"`
}

// LoadFile читает справочник врачей из TOML-файла вида
//
//	[[doctors]]
//	id = "dr-mehta"
//	name = "Dr. Aarav Mehta"
//	specialty = "Cardiology"
//	available_days = [1, 2, 3, 4, 5]
func LoadFile(path string) ([]domain.Doctor, error) {
	var file rosterFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrInvalidRoster, path, err)
	}

	doctors := make([]domain.Doctor, 0, len(file.Doctors))
	for _, d := range file.Doctors {
		days := make([]time.Weekday, 0, len(d.AvailableDays))
		for _, day := range d.AvailableDays {
			days = append(days, time.Weekday(day))
		}
		doctors = append(doctors, domain.Doctor{
			ID:            d.ID,
			Name:          d.Name,
			Specialty:     d.Specialty,
			AvailableDays: days,
			Experience:    d.Experience,
			Education:     d.Education,
			ImageURL:      d.Image,
		})
	}

	return doctors, nil
}

// EncodeFile записывает справочник в формате LoadFile
func EncodeFile(w io.Writer, doctors []domain.Doctor) error {
	file := rosterFile{Doctors: make([]rosterDoctor, 0, len(doctors))}
	for _, d := range doctors {
		days := make([]int, 0, len(d.AvailableDays))
		for _, day := range d.AvailableDays {
			days = append(days, int(day))
		}
		file.Doctors = append(file.Doctors, rosterDoctor{
			ID:            d.ID,
			Name:          d.Name,
			Specialty:     d.Specialty,
			AvailableDays: days,
			Experience:    d.Experience,
			Education:     d.Education,
			Image:         d.ImageURL,
		})
	}
	return toml.NewEncoder(w).Encode(file)
}
