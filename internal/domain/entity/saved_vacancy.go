package entity

import "time"

// SavedVacancy marcador (UserID, VacancyID). Su existencia es el único estado.
type SavedVacancy struct {
	UserID    string
	VacancyID string
	CreatedAt time.Time
}

// SavedVacancyListing vacante guardada con su fecha de guardado.
type SavedVacancyListing struct {
	VacancyListing
	SavedAt time.Time
}
