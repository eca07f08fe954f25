package repository

import (
	"context"

	"github.com/jhoicas/jobboard-api/internal/domain/entity"
)

// ApplicationFilter filtros del listado de postulaciones. Campos vacíos no filtran.
type ApplicationFilter struct {
	UserID    string
	VacancyID string
	CompanyID string // empresa dueña de la vacante
	Limit     int
	Offset    int
}

// ApplicationRepository puerto de persistencia de postulaciones.
type ApplicationRepository interface {
	// Create devuelve domain.ErrAlreadyApplied si ya hay una postulación no retirada para el par.
	Create(ctx context.Context, a *entity.Application) error
	GetByID(ctx context.Context, id string) (*entity.Application, error)
	GetForUpdate(ctx context.Context, id string) (*entity.Application, error)
	HasActive(ctx context.Context, userID, vacancyID string) (bool, error)
	UpdateStatus(ctx context.Context, a *entity.Application) error
	List(ctx context.Context, f ApplicationFilter) ([]*entity.ApplicationListing, error)
	// Count ignora Limit y Offset.
	Count(ctx context.Context, f ApplicationFilter) (int, error)
}
