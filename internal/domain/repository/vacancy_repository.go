package repository

import (
	"context"

	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/domain/search"
)

// VacancyRepository puerto de persistencia de vacantes.
type VacancyRepository interface {
	Create(ctx context.Context, v *entity.Vacancy) error
	// GetByID devuelve la vacante con los datos de su empresa, o (nil, nil).
	GetByID(ctx context.Context, id string) (*entity.VacancyListing, error)
	// GetForUpdate bloquea la fila hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.Vacancy, error)
	Update(ctx context.Context, v *entity.Vacancy) error
	// Search aplica el mismo predicado que search.Matches, ordenado de más reciente a más antigua.
	Search(ctx context.Context, c search.Criteria, limit, offset int) ([]*entity.VacancyListing, error)
	// Count número de vacantes que cumplen c, sin paginar.
	Count(ctx context.Context, c search.Criteria) (int, error)
	IncrementViews(ctx context.Context, id string) error
	IncrementApplications(ctx context.Context, id string) error
}
