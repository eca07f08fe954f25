package repository

import (
	"context"

	"github.com/jhoicas/jobboard-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Company, error)
	// GetDetail incluye el conteo de vacantes activas.
	GetDetail(ctx context.Context, id string) (*entity.CompanyDetail, error)
	Update(ctx context.Context, company *entity.Company) error
	List(ctx context.Context, limit, offset int) ([]*entity.CompanyDetail, error)
	Count(ctx context.Context) (int, error)
}
