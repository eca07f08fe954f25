package usecase

import (
	"context"

	"github.com/jhoicas/jobboard-api/internal/domain/repository"
)

// TxRunner transacciones que usan los casos de uso de vacantes y CVs.
type TxRunner interface {
	// Run ata vacantes, postulaciones y guardados a una transacción (incremento de vistas).
	Run(ctx context.Context, fn func(
		vacancyRepo repository.VacancyRepository,
		applicationRepo repository.ApplicationRepository,
		savedRepo repository.SavedVacancyRepository,
	) error) error
	// RunProfile ata el repositorio de CVs a una transacción (cambio de CV principal).
	RunProfile(ctx context.Context, fn func(resumeRepo repository.ResumeRepository) error) error
}
