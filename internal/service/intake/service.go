package intake

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/docaid/DocAid-BookingService/internal/domain"
	"github.com/docaid/DocAid-BookingService/internal/service/intake/models"
)

// Service приём заявок пациентов на визит в клинику или на дом
type Service struct {
	intakeRepo   IntakeRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(intakeRepo IntakeRepository, logger Logger) *Service {
	return &Service{
		intakeRepo:   intakeRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

type intakeField struct {
	name  string
	value string
	max   int
}

// Submit проверяет и сохраняет заявку.
// Для визита на дом дополнительно обязательны адрес и контактный телефон.
func (s *Service) Submit(ctx context.Context, req *models.SubmitIntakeRequest) (*models.IntakeResponse, error) {
	kind, ok := domain.ParseIntakeKind(strings.TrimSpace(req.VisitType))
	if !ok {
		s.logger.Warn("SubmitIntake: invalid visit type=%q", req.VisitType)
		return nil, newFieldError(ErrInvalidKind, "visitType")
	}
	s.logger.Info("SubmitIntake: kind=%s, user=%s", kind, req.UserID)

	// 1. Обязательные поля в порядке формы
	fields := []intakeField{
		{"name", req.Name, domain.MaxNameLength},
		{"age", req.Age, 3},
	}
	if kind == domain.IntakeHomeVisit {
		fields = append(fields, intakeField{"address", req.Address, domain.MaxAddressLength})
	}
	fields = append(fields, intakeField{"issue", req.Issue, domain.MaxIssueLength})
	if kind == domain.IntakeHomeVisit {
		fields = append(fields, intakeField{"contact", req.Contact, domain.MaxPhoneLength})
	}
	fields = append(fields, intakeField{"doctor", req.Doctor, domain.MaxDoctorNameLength})

	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			s.logger.Warn("SubmitIntake: missing field=%s", f.name)
			return nil, newFieldError(ErrMissingField, f.name)
		}
	}

	// 2. Длина полей
	for _, f := range fields {
		if f.name == "age" {
			continue
		}
		if utf8.RuneCountInString(strings.TrimSpace(f.value)) > f.max {
			s.logger.Warn("SubmitIntake: field=%s is too long", f.name)
			return nil, newFieldError(ErrFieldTooLong, f.name)
		}
	}

	// 3. Возраст
	age, err := strconv.Atoi(strings.TrimSpace(req.Age))
	if err != nil || age < 0 || age > domain.MaxPatientAge {
		s.logger.Warn("SubmitIntake: invalid age=%q", req.Age)
		return nil, newFieldError(ErrInvalidAge, "age")
	}

	intake := &domain.PatientIntake{
		ID:        uuid.NewString(),
		Kind:      kind,
		UserID:    strings.TrimSpace(req.UserID),
		Name:      strings.TrimSpace(req.Name),
		Age:       age,
		Issue:     strings.TrimSpace(req.Issue),
		Doctor:    strings.TrimSpace(req.Doctor),
		CreatedAt: s.timeProvider.Now(),
	}
	if kind == domain.IntakeHomeVisit {
		intake.Address = strings.TrimSpace(req.Address)
		intake.Contact = strings.TrimSpace(req.Contact)
	}

	// 4. Сохраняем
	stored, err := s.intakeRepo.Append(ctx, intake)
	if err != nil {
		s.logger.Error("SubmitIntake: repository error: %v", err)
		return nil, fmt.Errorf("%w: Submit - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SubmitIntake: intake id=%s saved, kind=%s", stored.ID, stored.Kind)
	resp := models.FromDomainIntake(stored)
	return &resp, nil
}

// List возвращает заявки для персонала клиники, сначала новые. Доступно только администратору.
func (s *Service) List(ctx context.Context, req *models.ListIntakeRequest) (*models.IntakeListResponse, error) {
	if !req.Admin {
		s.logger.Warn("ListIntakes: access denied")
		return nil, ErrAccessDenied
	}

	var kind domain.IntakeKind
	if raw := strings.TrimSpace(req.VisitType); raw != "" {
		parsed, ok := domain.ParseIntakeKind(raw)
		if !ok {
			return nil, newFieldError(ErrInvalidKind, "visitType")
		}
		kind = parsed
	}

	intakes, err := s.intakeRepo.List(ctx, kind)
	if err != nil {
		s.logger.Error("ListIntakes: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListIntakes: kind=%q, count=%d", kind, len(intakes))
	return models.FromDomainIntakes(intakes), nil
}
