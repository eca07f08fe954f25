package repository

import (
	"context"
	"time"

	"github.com/jhoicas/jobboard-api/internal/domain/entity"
)

// SavedVacancyRepository puerto del marcador (usuario, vacante).
type SavedVacancyRepository interface {
	// Toggle elimina el par si existe o lo inserta si no; devuelve si quedó guardado.
	// Debe ejecutarse dentro de una transacción: serializa las llamadas concurrentes sobre el mismo par.
	Toggle(ctx context.Context, userID, vacancyID string, at time.Time) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.SavedVacancyListing, error)
}
