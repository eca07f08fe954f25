package entity

import "time"

// Estados de una postulación.
const (
	ApplicationStatusPending   = "pending"
	ApplicationStatusReviewing = "reviewing"
	ApplicationStatusAccepted  = "accepted"
	ApplicationStatusRejected  = "rejected"
	ApplicationStatusWithdrawn = "withdrawn"
)

// Application postulación de un candidato a una vacante.
// Por par (UserID, VacancyID) existe a lo sumo una postulación no retirada.
type Application struct {
	ID          string
	UserID      string
	VacancyID   string
	ResumeID    string // vacío si no se adjuntó CV
	CoverLetter string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ApplicationListing postulación con datos de la vacante y del candidato para listados.
type ApplicationListing struct {
	Application
	VacancyTitle   string
	CompanyID      string
	CompanyName    string
	ApplicantName  string
	ApplicantEmail string
}

// ValidApplicationStatus indica si s es un estado de postulación conocido.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewing, ApplicationStatusAccepted,
		ApplicationStatusRejected, ApplicationStatusWithdrawn:
		return true
	}
	return false
}
