package dto

import "time"

// CreateApplicationRequest entrada para postular. Sin resume_id se adjunta el CV principal, si existe.
type CreateApplicationRequest struct {
	VacancyID   string `json:"vacancy_id" validate:"required,uuid"`
	ResumeID    string `json:"resume_id" validate:"omitempty,uuid"`
	CoverLetter string `json:"cover_letter" validate:"omitempty,max=10000"`
}

// UpdateApplicationStatusRequest cambio de estado de una postulación.
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ApplicationQuery filtros del listado de postulaciones.
type ApplicationQuery struct {
	JobSeekerID string `query:"job_seeker_id" validate:"omitempty,uuid"`
	VacancyID   string `query:"vacancy_id" validate:"omitempty,uuid"`
	Limit       int    `query:"limit"`
	Offset      int    `query:"offset"`
}

// ApplicationResponse salida de una postulación.
type ApplicationResponse struct {
	ID             string    `json:"id"`
	JobSeekerID    string    `json:"job_seeker_id"`
	VacancyID      string    `json:"vacancy_id"`
	ResumeID       string    `json:"resume_id,omitempty"`
	CoverLetter    string    `json:"cover_letter,omitempty"`
	Status         string    `json:"status"`
	VacancyTitle   string    `json:"vacancy_title,omitempty"`
	CompanyName    string    `json:"company_name,omitempty"`
	ApplicantName  string    `json:"applicant_name,omitempty"`
	ApplicantEmail string    `json:"applicant_email,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ApplicationListResponse lista de postulaciones.
type ApplicationListResponse struct {
	Items []ApplicationResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// SavedToggleResponse resultado del toggle de vacante guardada.
type SavedToggleResponse struct {
	Saved bool `json:"saved"`
}

// SavedVacancyResponse vacante guardada.
type SavedVacancyResponse struct {
	VacancyResponse
	SavedAt time.Time `json:"saved_at"`
}
