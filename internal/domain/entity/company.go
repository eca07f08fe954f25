package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Company perfil de empresa. Uno o más empleadores la administran y es dueña de sus vacantes.
type Company struct {
	ID            string
	Name          string
	Slug          string // único, derivado del nombre
	Description   string
	Logo          string
	Website       string
	Location      string
	Industry      string
	EmployeeCount string // rango libre, ej. "50-200"
	Rating        decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CompanyDetail Company con el conteo derivado de vacantes activas.
type CompanyDetail struct {
	Company
	ActiveVacancies int
}
