package recruitment

import (
	"context"

	"github.com/jhoicas/jobboard-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción, pasando repositorios atados a esa tx.
// Postulación + contador, cambio de estado y toggle de guardado se ejecutan completos o no se ejecutan.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		vacancyRepo repository.VacancyRepository,
		applicationRepo repository.ApplicationRepository,
		savedRepo repository.SavedVacancyRepository,
	) error) error
}
