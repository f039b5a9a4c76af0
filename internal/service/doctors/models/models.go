package models

import (
	"time"

	"github.com/docaid/DocAid-BookingService/internal/domain"
)

// DoctorResponse данные врача
type DoctorResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Specialty     string   `json:"specialty"`
	SpecialtySlug string   `json:"specialtySlug"`
	AvailableDays []int    `json:"availableDays"` // 0=Sunday..6=Saturday
	DayNames      []string `json:"availableDayNames"`
	Experience    string   `json:"experience,omitempty"`
	Education     string   `json:"education,omitempty"`
	ImageURL      string   `json:"imageUrl,omitempty"`
}

// DoctorListResponse список врачей
type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
}

// DoctorDetailsResponse врач и похожие врачи той же специальности
type DoctorDetailsResponse struct {
	Doctor    DoctorResponse   `json:"doctor"`
	Suggested []DoctorResponse `json:"suggested"`
}

// CategoryResponse специальность с количеством врачей
type CategoryResponse struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	DoctorCount int    `json:"doctorCount"`
}

// CategoryListResponse список специальностей
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// FromDomainDoctor конвертирует domain модель в DTO
func FromDomainDoctor(d domain.Doctor) DoctorResponse {
	resp := DoctorResponse{
		ID:            d.ID,
		Name:          d.Name,
		Specialty:     d.Specialty,
		SpecialtySlug: d.SpecialtySlug(),
		AvailableDays: make([]int, len(d.AvailableDays)),
		DayNames:      make([]string, len(d.AvailableDays)),
		Experience:    d.Experience,
		Education:     d.Education,
		ImageURL:      d.ImageURL,
	}
	for i, day := range d.AvailableDays {
		resp.AvailableDays[i] = int(day)
		resp.DayNames[i] = time.Weekday(day).String()
	}
	return resp
}

// FromDomainDoctors конвертирует список врачей в DTO
func FromDomainDoctors(doctors []domain.Doctor) []DoctorResponse {
	out := make([]DoctorResponse, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, FromDomainDoctor(d))
	}
	return out
}

// FromDomainCategories конвертирует список специальностей в DTO
func FromDomainCategories(categories []domain.Category) *CategoryListResponse {
	resp := &CategoryListResponse{Categories: make([]CategoryResponse, 0, len(categories))}
	for _, c := range categories {
		resp.Categories = append(resp.Categories, CategoryResponse{
			Name:        c.Name,
			Slug:        c.Slug,
			DoctorCount: c.DoctorCount,
		})
	}
	return resp
}
