package repository

import (
	"context"

	"github.com/jhoicas/jobboard-api/internal/domain/entity"
)

// ResumeRepository puerto de persistencia de CVs.
type ResumeRepository interface {
	Create(ctx context.Context, r *entity.Resume) error
	GetByID(ctx context.Context, id string) (*entity.Resume, error)
	Update(ctx context.Context, r *entity.Resume) error
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]*entity.Resume, error)
	GetPrimary(ctx context.Context, userID string) (*entity.Resume, error)
	// ClearPrimary quita la marca de principal a todos los CVs del usuario.
	ClearPrimary(ctx context.Context, userID string) error
}
