package memory

import (
	"context"

	"github.com/jhoicas/jobboard-api/internal/domain"
	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/domain/repository"
)

var _ repository.ResumeRepository = (*ResumeRepo)(nil)

// ResumeRepo CVs en memoria. Reproduce el índice único parcial (user_id) WHERE is_primary.
type ResumeRepo struct {
	s    *Store
	inTx bool
}

// NewResumeRepository construye el adaptador de CVs.
func NewResumeRepository(s *Store) *ResumeRepo {
	return &ResumeRepo{s: s}
}

// primaryConflict requiere el mutex tomado.
func (s *Store) primaryConflict(r *entity.Resume) bool {
	if !r.IsPrimary {
		return false
	}
	for id, cur := range s.t.resumes {
		if id != r.ID && cur.UserID == r.UserID && cur.IsPrimary {
			return true
		}
	}
	return false
}

// Create persiste un CV.
func (r *ResumeRepo) Create(_ context.Context, res *entity.Resume) error {
	defer r.s.acquire(r.inTx)()
	if r.s.primaryConflict(res) {
		return domain.ErrConflict
	}
	r.s.t.resumes[res.ID] = *res
	r.s.t.resumeOrder = append(r.s.t.resumeOrder, res.ID)
	return nil
}

// GetByID obtiene un CV por ID.
func (r *ResumeRepo) GetByID(_ context.Context, id string) (*entity.Resume, error) {
	defer r.s.acquire(r.inTx)()
	res, ok := r.s.t.resumes[id]
	if !ok {
		return nil, nil
	}
	return &res, nil
}

// Update actualiza un CV.
func (r *ResumeRepo) Update(_ context.Context, res *entity.Resume) error {
	defer r.s.acquire(r.inTx)()
	if _, ok := r.s.t.resumes[res.ID]; !ok {
		return domain.ErrNotFound
	}
	if r.s.primaryConflict(res) {
		return domain.ErrConflict
	}
	r.s.t.resumes[res.ID] = *res
	return nil
}

// Delete elimina un CV.
func (r *ResumeRepo) Delete(_ context.Context, id string) error {
	defer r.s.acquire(r.inTx)()
	delete(r.s.t.resumes, id)
	order := make([]string, 0, len(r.s.t.resumeOrder))
	for _, rid := range r.s.t.resumeOrder {
		if rid != id {
			order = append(order, rid)
		}
	}
	r.s.t.resumeOrder = order
	return nil
}

// ListByUser CVs del usuario, el más reciente primero.
func (r *ResumeRepo) ListByUser(_ context.Context, userID string) ([]*entity.Resume, error) {
	defer r.s.acquire(r.inTx)()
	var out []*entity.Resume
	for i := len(r.s.t.resumeOrder) - 1; i >= 0; i-- {
		res := r.s.t.resumes[r.s.t.resumeOrder[i]]
		if res.UserID == userID {
			out = append(out, &res)
		}
	}
	return out, nil
}

// GetPrimary CV principal del usuario o (nil, nil).
func (r *ResumeRepo) GetPrimary(_ context.Context, userID string) (*entity.Resume, error) {
	defer r.s.acquire(r.inTx)()
	for _, res := range r.s.t.resumes {
		if res.UserID == userID && res.IsPrimary {
			res := res
			return &res, nil
		}
	}
	return nil, nil
}

// ClearPrimary quita la marca de principal a todos los CVs del usuario.
func (r *ResumeRepo) ClearPrimary(_ context.Context, userID string) error {
	defer r.s.acquire(r.inTx)()
	for id, res := range r.s.t.resumes {
		if res.UserID == userID && res.IsPrimary {
			res.IsPrimary = false
			r.s.t.resumes[id] = res
		}
	}
	return nil
}
