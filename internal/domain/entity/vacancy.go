package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una vacante.
const (
	VacancyStatusActive   = "active"
	VacancyStatusClosed   = "closed"
	VacancyStatusDraft    = "draft"
	VacancyStatusArchived = "archived"
)

// Tipos de empleo.
const (
	EmploymentFullTime   = "full_time"
	EmploymentPartTime   = "part_time"
	EmploymentContract   = "contract"
	EmploymentInternship = "internship"
	EmploymentFreelance  = "freelance"
)

// Niveles de experiencia.
const (
	LevelEntry     = "entry"
	LevelMid       = "mid"
	LevelSenior    = "senior"
	LevelLead      = "lead"
	LevelExecutive = "executive"
)

// Vacancy oferta de empleo publicada por una Company.
// Si SalaryMin y SalaryMax están presentes, SalaryMin <= SalaryMax.
type Vacancy struct {
	ID                string
	CompanyID         string
	Title             string
	Description       string
	SalaryMin         *decimal.Decimal
	SalaryMax         *decimal.Decimal
	Currency          string
	Location          string
	EmploymentType    string
	Level             string
	Skills            []string
	Status            string
	ApplicationsCount int
	ViewsCount        int
	Deadline          *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// VacancyListing vacante con los campos de presentación de su empresa.
type VacancyListing struct {
	Vacancy
	CompanyName string
	CompanyLogo string
}

// AcceptsApplications indica si la vacante está activa y su fecha límite no pasó.
func (v *Vacancy) AcceptsApplications(now time.Time) bool {
	if v.Status != VacancyStatusActive {
		return false
	}
	return v.Deadline == nil || !now.After(*v.Deadline)
}

// SalaryRangeValid verifica el invariante salary_min <= salary_max.
func (v *Vacancy) SalaryRangeValid() bool {
	if v.SalaryMin == nil || v.SalaryMax == nil {
		return true
	}
	return v.SalaryMin.LessThanOrEqual(*v.SalaryMax)
}

// ValidVacancyStatus indica si s es un estado de vacante conocido.
func ValidVacancyStatus(s string) bool {
	switch s {
	case VacancyStatusActive, VacancyStatusClosed, VacancyStatusDraft, VacancyStatusArchived:
		return true
	}
	return false
}
