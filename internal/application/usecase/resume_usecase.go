package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/jobboard-api/internal/application/dto"
	"github.com/jhoicas/jobboard-api/internal/domain"
	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/domain/repository"
	"github.com/jhoicas/jobboard-api/pkg/sanitize"
)

// ResumeUseCase CVs del candidato. Cada usuario tiene a lo sumo un CV principal.
type ResumeUseCase struct {
	txRunner   TxRunner
	resumeRepo repository.ResumeRepository
	now        func() time.Time
}

// NewResumeUseCase construye el caso de uso.
func NewResumeUseCase(txRunner TxRunner, resumeRepo repository.ResumeRepository) *ResumeUseCase {
	return &ResumeUseCase{txRunner: txRunner, resumeRepo: resumeRepo, now: time.Now}
}

func toResumeResponses(list []*entity.Resume) []dto.ResumeResponse {
	out := make([]dto.ResumeResponse, 0, len(list))
	for _, r := range list {
		out = append(out, dto.FromResume(r))
	}
	return out
}

// List CVs del actor.
func (uc *ResumeUseCase) List(ctx context.Context, actor entity.Actor) ([]dto.ResumeResponse, error) {
	if !actor.IsJobSeeker() {
		return nil, domain.ErrForbidden
	}
	list, err := uc.resumeRepo.ListByUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return toResumeResponses(list), nil
}

// Create crea un CV. El primero del usuario queda como principal; si se pide is_primary, el anterior
// principal deja de serlo en la misma transacción.
func (uc *ResumeUseCase) Create(ctx context.Context, actor entity.Actor, in dto.CreateResumeRequest) (*dto.ResumeResponse, error) {
	if !actor.IsJobSeeker() {
		return nil, domain.ErrForbidden
	}
	now := uc.now()
	res := &entity.Resume{
		ID:        uuid.New().String(),
		UserID:    actor.UserID,
		Title:     sanitize.PlainText(in.Title),
		Content:   sanitize.RichText(in.Content),
		FileURL:   strings.TrimSpace(in.FileURL),
		IsPublic:  in.IsPublic,
		IsPrimary: in.IsPrimary,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if res.Title == "" {
		return nil, domain.NewValidationError("title", "obligatorio")
	}
	err := uc.txRunner.RunProfile(ctx, func(resumeRepo repository.ResumeRepository) error {
		current, err := resumeRepo.GetPrimary(ctx, actor.UserID)
		if err != nil {
			return err
		}
		if current == nil {
			res.IsPrimary = true
		}
		if res.IsPrimary && current != nil {
			if err := resumeRepo.ClearPrimary(ctx, actor.UserID); err != nil {
				return err
			}
		}
		return resumeRepo.Create(ctx, res)
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromResume(res)
	return &out, nil
}

func (uc *ResumeUseCase) owned(ctx context.Context, repo repository.ResumeRepository, actor entity.Actor, id string) (*entity.Resume, error) {
	if !actor.IsJobSeeker() {
		return nil, domain.ErrForbidden
	}
	res, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, domain.ErrNotFound
	}
	if res.UserID != actor.UserID {
		return nil, domain.ErrForbidden
	}
	return res, nil
}

// Update actualiza los campos indicados de un CV propio.
func (uc *ResumeUseCase) Update(ctx context.Context, actor entity.Actor, id string, in dto.UpdateResumeRequest) (*dto.ResumeResponse, error) {
	res, err := uc.owned(ctx, uc.resumeRepo, actor, id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		res.Title = sanitize.PlainText(*in.Title)
		if res.Title == "" {
			return nil, domain.NewValidationError("title", "obligatorio")
		}
	}
	if in.Content != nil {
		res.Content = sanitize.RichText(*in.Content)
	}
	if in.FileURL != nil {
		res.FileURL = strings.TrimSpace(*in.FileURL)
	}
	if in.IsPublic != nil {
		res.IsPublic = *in.IsPublic
	}
	res.UpdatedAt = uc.now()
	if err := uc.resumeRepo.Update(ctx, res); err != nil {
		return nil, err
	}
	out := dto.FromResume(res)
	return &out, nil
}

// Delete elimina un CV propio. Si era el principal, el más reciente de los restantes pasa a serlo.
func (uc *ResumeUseCase) Delete(ctx context.Context, actor entity.Actor, id string) error {
	return uc.txRunner.RunProfile(ctx, func(resumeRepo repository.ResumeRepository) error {
		res, err := uc.owned(ctx, resumeRepo, actor, id)
		if err != nil {
			return err
		}
		if err := resumeRepo.Delete(ctx, res.ID); err != nil {
			return err
		}
		if !res.IsPrimary {
			return nil
		}
		rest, err := resumeRepo.ListByUser(ctx, actor.UserID)
		if err != nil || len(rest) == 0 {
			return err
		}
		next := rest[0]
		next.IsPrimary = true
		next.UpdatedAt = uc.now()
		return resumeRepo.Update(ctx, next)
	})
}

// SetPrimary marca un CV propio como principal y desmarca el anterior en la misma transacción.
func (uc *ResumeUseCase) SetPrimary(ctx context.Context, actor entity.Actor, id string) (*dto.ResumeResponse, error) {
	var res *entity.Resume
	err := uc.txRunner.RunProfile(ctx, func(resumeRepo repository.ResumeRepository) error {
		var err error
		res, err = uc.owned(ctx, resumeRepo, actor, id)
		if err != nil {
			return err
		}
		if res.IsPrimary {
			return nil
		}
		if err := resumeRepo.ClearPrimary(ctx, actor.UserID); err != nil {
			return err
		}
		res.IsPrimary = true
		res.UpdatedAt = uc.now()
		return resumeRepo.Update(ctx, res)
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromResume(res)
	return &out, nil
}
