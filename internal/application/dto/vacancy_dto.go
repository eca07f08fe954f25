package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// VacancyQuery filtros del listado público (query string). Los salarios llegan como texto:
// un valor no numérico se ignora.
type VacancyQuery struct {
	Search          string `query:"search"`
	Location        string `query:"location"`
	EmploymentType  string `query:"employmentType"`
	ExperienceLevel string `query:"experienceLevel"`
	SalaryMin       string `query:"salaryMin"`
	SalaryMax       string `query:"salaryMax"`
	CompanyID       string `query:"company_id"`
	Status          string `query:"status"`
	Limit           int    `query:"limit"`
	Offset          int    `query:"offset"`
}

// CreateVacancyRequest entrada para publicar una vacante. company_id solo lo usa un admin.
type CreateVacancyRequest struct {
	CompanyID      string           `json:"company_id" validate:"omitempty,uuid"`
	Title          string           `json:"title" validate:"required,min=3,max=200"`
	Description    string           `json:"description" validate:"required,min=10,max=20000"`
	SalaryMin      *decimal.Decimal `json:"salary_min"`
	SalaryMax      *decimal.Decimal `json:"salary_max"`
	Currency       string           `json:"currency" validate:"omitempty,oneof=USD EUR RUB GBP JPY"`
	Location       string           `json:"location" validate:"omitempty,max=200"`
	EmploymentType string           `json:"employment_type" validate:"required,oneof=full_time part_time contract internship freelance"`
	Level          string           `json:"level" validate:"required,oneof=entry mid senior lead executive"`
	Skills         []string         `json:"skills" validate:"omitempty,max=50,dive,min=1,max=50"`
	Status         string           `json:"status" validate:"omitempty,oneof=active closed draft archived"`
	Deadline       *time.Time       `json:"deadline"`
}

// UpdateVacancyRequest entrada para actualizar una vacante (campos opcionales).
type UpdateVacancyRequest struct {
	Title          *string          `json:"title" validate:"omitempty,min=3,max=200"`
	Description    *string          `json:"description" validate:"omitempty,min=10,max=20000"`
	SalaryMin      *decimal.Decimal `json:"salary_min"`
	SalaryMax      *decimal.Decimal `json:"salary_max"`
	Currency       *string          `json:"currency" validate:"omitempty,oneof=USD EUR RUB GBP JPY"`
	Location       *string          `json:"location" validate:"omitempty,max=200"`
	EmploymentType *string          `json:"employment_type" validate:"omitempty,oneof=full_time part_time contract internship freelance"`
	Level          *string          `json:"level" validate:"omitempty,oneof=entry mid senior lead executive"`
	Skills         []string         `json:"skills" validate:"omitempty,max=50,dive,min=1,max=50"`
	Status         *string          `json:"status" validate:"omitempty,oneof=active closed draft archived"`
	Deadline       *time.Time       `json:"deadline"`
}

// VacancyResponse salida de una vacante con los datos de presentación de su empresa.
type VacancyResponse struct {
	ID                string           `json:"id"`
	CompanyID         string           `json:"company_id"`
	CompanyName       string           `json:"company_name,omitempty"`
	CompanyLogo       string           `json:"company_logo,omitempty"`
	Title             string           `json:"title"`
	Description       string           `json:"description"`
	SalaryMin         *decimal.Decimal `json:"salary_min,omitempty"`
	SalaryMax         *decimal.Decimal `json:"salary_max,omitempty"`
	Currency          string           `json:"currency,omitempty"`
	Location          string           `json:"location,omitempty"`
	EmploymentType    string           `json:"employment_type"`
	Level             string           `json:"level"`
	Skills            []string         `json:"skills"`
	Status            string           `json:"status"`
	ApplicationsCount int              `json:"applications_count"`
	ViewsCount        int              `json:"views_count"`
	Deadline          *time.Time       `json:"deadline,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
	Company           *CompanyResponse `json:"company,omitempty"`
}

// VacancyListResponse lista de vacantes.
type VacancyListResponse struct {
	Items []VacancyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
