package recruitment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/jobboard-api/internal/application/dto"
	"github.com/jhoicas/jobboard-api/internal/domain"
	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/domain/hiring"
	"github.com/jhoicas/jobboard-api/internal/domain/repository"
	"github.com/jhoicas/jobboard-api/pkg/sanitize"
)

// ApplicationUseCase flujo de postulaciones: crear, cambiar de estado y listar.
type ApplicationUseCase struct {
	txRunner        TxRunner
	applicationRepo repository.ApplicationRepository
	resumeRepo      repository.ResumeRepository
	now             func() time.Time
}

// NewApplicationUseCase construye el caso de uso.
func NewApplicationUseCase(
	txRunner TxRunner,
	applicationRepo repository.ApplicationRepository,
	resumeRepo repository.ResumeRepository,
) *ApplicationUseCase {
	return &ApplicationUseCase{
		txRunner:        txRunner,
		applicationRepo: applicationRepo,
		resumeRepo:      resumeRepo,
		now:             time.Now,
	}
}

// Apply crea una postulación del actor a la vacante y suma 1 a applications_count en la misma transacción.
// La fila de la vacante se bloquea (SELECT FOR UPDATE) mientras se verifican las precondiciones.
//
// Retorna:
//   - domain.ErrForbidden        si el actor no es candidato.
//   - domain.ErrNotFound         si la vacante no existe.
//   - domain.ErrVacancyNotActive si la vacante no está activa o venció su fecha límite.
//   - domain.ErrAlreadyApplied   si ya hay una postulación no retirada para el par.
func (uc *ApplicationUseCase) Apply(ctx context.Context, actor entity.Actor, in dto.CreateApplicationRequest) (*dto.ApplicationResponse, error) {
	if !actor.IsJobSeeker() {
		return nil, domain.ErrForbidden
	}
	resumeID, err := uc.resolveResume(ctx, actor.UserID, in.ResumeID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	app := &entity.Application{
		ID:          uuid.New().String(),
		UserID:      actor.UserID,
		VacancyID:   in.VacancyID,
		ResumeID:    resumeID,
		CoverLetter: sanitize.RichText(in.CoverLetter),
		Status:      entity.ApplicationStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = uc.txRunner.Run(ctx, func(
		vacancyRepo repository.VacancyRepository,
		applicationRepo repository.ApplicationRepository,
		_ repository.SavedVacancyRepository,
	) error {
		vacancy, err := vacancyRepo.GetForUpdate(ctx, in.VacancyID)
		if err != nil {
			return err
		}
		hasActive := false
		if vacancy != nil {
			if hasActive, err = applicationRepo.HasActive(ctx, actor.UserID, vacancy.ID); err != nil {
				return err
			}
		}
		if err := hiring.CheckApply(actor, vacancy, hasActive, now); err != nil {
			return err
		}
		if err := applicationRepo.Create(ctx, app); err != nil {
			return err
		}
		return vacancyRepo.IncrementApplications(ctx, vacancy.ID)
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromApplication(app)
	return &out, nil
}

// resolveResume valida el CV indicado o, si no se indicó, usa el principal del candidato.
func (uc *ApplicationUseCase) resolveResume(ctx context.Context, userID, resumeID string) (string, error) {
	if resumeID == "" {
		primary, err := uc.resumeRepo.GetPrimary(ctx, userID)
		if err != nil {
			return "", fmt.Errorf("postulación: obtener CV principal: %w", err)
		}
		if primary == nil {
			return "", nil
		}
		return primary.ID, nil
	}
	resume, err := uc.resumeRepo.GetByID(ctx, resumeID)
	if err != nil {
		return "", fmt.Errorf("postulación: obtener CV: %w", err)
	}
	if resume == nil || resume.UserID != userID {
		return "", domain.NewValidationError("resume_id", "el CV no existe o no pertenece al candidato")
	}
	return resume.ID, nil
}

// UpdateStatus aplica un cambio de estado validado contra la tabla de transiciones.
// Los contadores de la vacante no cambian.
func (uc *ApplicationUseCase) UpdateStatus(ctx context.Context, actor entity.Actor, id string, in dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error) {
	var app *entity.Application
	err := uc.txRunner.Run(ctx, func(
		vacancyRepo repository.VacancyRepository,
		applicationRepo repository.ApplicationRepository,
		_ repository.SavedVacancyRepository,
	) error {
		var err error
		app, err = applicationRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if app == nil {
			return domain.ErrNotFound
		}
		vacancy, err := vacancyRepo.GetByID(ctx, app.VacancyID)
		if err != nil {
			return err
		}
		companyID := ""
		if vacancy != nil {
			companyID = vacancy.CompanyID
		}
		if err := hiring.Transition(app, in.Status, actor, companyID, uc.now()); err != nil {
			return err
		}
		return applicationRepo.UpdateStatus(ctx, app)
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromApplication(app)
	return &out, nil
}

// List devuelve las postulaciones visibles para el actor: el candidato ve las suyas, el empleador las
// de las vacantes de su empresa y el admin todas.
func (uc *ApplicationUseCase) List(ctx context.Context, actor entity.Actor, q dto.ApplicationQuery) (*dto.ApplicationListResponse, error) {
	page := dto.PageRequest{Limit: q.Limit, Offset: q.Offset}
	page.DefaultPage()
	f := repository.ApplicationFilter{
		UserID:    q.JobSeekerID,
		VacancyID: q.VacancyID,
		Limit:     page.Limit,
		Offset:    page.Offset,
	}
	switch {
	case actor.IsAdmin():
	case actor.IsEmployer():
		if actor.CompanyID == "" {
			return nil, domain.ErrForbidden
		}
		f.CompanyID = actor.CompanyID
	case actor.IsJobSeeker():
		if q.JobSeekerID != "" && q.JobSeekerID != actor.UserID {
			return nil, domain.ErrForbidden
		}
		f.UserID = actor.UserID
	default:
		return nil, domain.ErrForbidden
	}

	list, err := uc.applicationRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := uc.applicationRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ApplicationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, dto.FromApplicationListing(l))
	}
	return &dto.ApplicationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}
