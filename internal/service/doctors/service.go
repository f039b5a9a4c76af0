package doctors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/docaid/DocAid-BookingService/internal/domain"
	"github.com/docaid/DocAid-BookingService/internal/infra/catalog"
	"github.com/docaid/DocAid-BookingService/internal/service/doctors/models"
)

// Service сервис каталога врачей
type Service struct {
	doctorRepo DoctorRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(doctorRepo DoctorRepository, logger Logger) *Service {
	return &Service{
		doctorRepo: doctorRepo,
		logger:     logger,
	}
}

// List возвращает врачей в порядке справочника.
// Специальность сравнивается без учёта регистра, принимается и slug ("eye-specialist").
func (s *Service) List(specialty string) *models.DoctorListResponse {
	doctors := s.doctorRepo.All()

	wanted := domain.Slugify(specialty)
	if wanted != "" {
		filtered := make([]domain.Doctor, 0, len(doctors))
		for _, d := range doctors {
			if d.SpecialtySlug() == wanted {
				filtered = append(filtered, d)
			}
		}
		doctors = filtered
	}

	s.logger.Info("List: %d doctors for specialty=%q", len(doctors), specialty)
	return &models.DoctorListResponse{Doctors: models.FromDomainDoctors(doctors)}
}

// Categories возвращает специальности с количеством врачей в порядке первого появления
func (s *Service) Categories() *models.CategoryListResponse {
	return models.FromDomainCategories(categoriesOf(s.doctorRepo.All()))
}

// Get возвращает врача и до limit похожих врачей той же специальности
func (s *Service) Get(id string, limit int) (*models.DoctorDetailsResponse, error) {
	doctor, err := s.doctorRepo.GetByID(strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, catalog.ErrDoctorNotFound) {
			s.logger.Warn("Get: doctor id=%s not found", id)
			return nil, ErrDoctorNotFound
		}
		s.logger.Error("Get: failed to get doctor id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Get - catalog error: %v", ErrInternal, err)
	}

	return &models.DoctorDetailsResponse{
		Doctor:    models.FromDomainDoctor(*doctor),
		Suggested: models.FromDomainDoctors(s.suggested(doctor, limit)),
	}, nil
}

// suggested другие врачи той же специальности
func (s *Service) suggested(doctor *domain.Doctor, limit int) []domain.Doctor {
	if limit <= 0 {
		limit = domain.DefaultSuggestedLimit
	}

	out := make([]domain.Doctor, 0, limit)
	for _, d := range s.doctorRepo.All() {
		if len(out) == limit {
			break
		}
		if d.ID != doctor.ID && d.SpecialtySlug() == doctor.SpecialtySlug() {
			out = append(out, d)
		}
	}
	return out
}

func categoriesOf(doctors []domain.Doctor) []domain.Category {
	index := make(map[string]int)
	categories := make([]domain.Category, 0)

	for _, d := range doctors {
		slug := d.SpecialtySlug()
		if i, ok := index[slug]; ok {
			categories[i].DoctorCount++
			continue
		}
		index[slug] = len(categories)
		categories = append(categories, domain.Category{Name: d.Specialty, Slug: slug, DoctorCount: 1})
	}
	return categories
}
