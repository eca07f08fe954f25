package recruitment

import (
	"context"
	"time"

	"github.com/jhoicas/jobboard-api/internal/application/dto"
	"github.com/jhoicas/jobboard-api/internal/domain"
	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/domain/repository"
)

// SavedJobsUseCase marcadores de vacantes de un candidato.
type SavedJobsUseCase struct {
	txRunner  TxRunner
	savedRepo repository.SavedVacancyRepository
	now       func() time.Time
}

// NewSavedJobsUseCase construye el caso de uso.
func NewSavedJobsUseCase(txRunner TxRunner, savedRepo repository.SavedVacancyRepository) *SavedJobsUseCase {
	return &SavedJobsUseCase{txRunner: txRunner, savedRepo: savedRepo, now: time.Now}
}

// Toggle guarda la vacante si no estaba guardada o la quita si lo estaba, en una sola transacción.
func (uc *SavedJobsUseCase) Toggle(ctx context.Context, actor entity.Actor, userID, vacancyID string) (*dto.SavedToggleResponse, error) {
	if !actor.ActsFor(userID) {
		return nil, domain.ErrForbidden
	}
	var saved bool
	err := uc.txRunner.Run(ctx, func(
		vacancyRepo repository.VacancyRepository,
		_ repository.ApplicationRepository,
		savedRepo repository.SavedVacancyRepository,
	) error {
		vacancy, err := vacancyRepo.GetByID(ctx, vacancyID)
		if err != nil {
			return err
		}
		if vacancy == nil {
			return domain.ErrNotFound
		}
		saved, err = savedRepo.Toggle(ctx, userID, vacancyID, uc.now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return &dto.SavedToggleResponse{Saved: saved}, nil
}

// List devuelve las vacantes guardadas del usuario, la más reciente primero.
func (uc *SavedJobsUseCase) List(ctx context.Context, actor entity.Actor, userID string) ([]dto.SavedVacancyResponse, error) {
	if !actor.ActsFor(userID) {
		return nil, domain.ErrForbidden
	}
	list, err := uc.savedRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SavedVacancyResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.SavedVacancyResponse{
			VacancyResponse: dto.FromVacancyListing(&s.VacancyListing),
			SavedAt:         s.SavedAt,
		})
	}
	return out, nil
}
