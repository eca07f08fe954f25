package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=200"`
	Description   string `json:"description" validate:"omitempty,max=5000"`
	Logo          string `json:"logo" validate:"omitempty,url"`
	Website       string `json:"website" validate:"omitempty,url"`
	Location      string `json:"location" validate:"omitempty,max=200"`
	Industry      string `json:"industry" validate:"omitempty,max=100"`
	EmployeeCount string `json:"employee_count" validate:"omitempty,max=50"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (campos opcionales).
type UpdateCompanyRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description   *string `json:"description" validate:"omitempty,max=5000"`
	Logo          *string `json:"logo" validate:"omitempty,url"`
	Website       *string `json:"website" validate:"omitempty,url"`
	Location      *string `json:"location" validate:"omitempty,max=200"`
	Industry      *string `json:"industry" validate:"omitempty,max=100"`
	EmployeeCount *string `json:"employee_count" validate:"omitempty,max=50"`
}

// CompanyResponse salida de una empresa con el conteo de vacantes activas.
type CompanyResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Slug            string          `json:"slug"`
	Description     string          `json:"description"`
	Logo            string          `json:"logo,omitempty"`
	Website         string          `json:"website,omitempty"`
	Location        string          `json:"location,omitempty"`
	Industry        string          `json:"industry,omitempty"`
	EmployeeCount   string          `json:"employee_count,omitempty"`
	Rating          decimal.Decimal `json:"rating"`
	ActiveVacancies int             `json:"active_vacancies"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
