package memory

import (
	"context"

	"github.com/jhoicas/jobboard-api/internal/domain"
	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/domain/repository"
)

var _ repository.ApplicationRepository = (*ApplicationRepo)(nil)

// ApplicationRepo postulaciones en memoria. Reproduce el índice único parcial
// (user_id, vacancy_id) WHERE status <> 'withdrawn'.
type ApplicationRepo struct {
	s    *Store
	inTx bool
}

// NewApplicationRepository construye el adaptador de postulaciones.
func NewApplicationRepository(s *Store) *ApplicationRepo {
	return &ApplicationRepo{s: s}
}

// hasActive requiere el mutex tomado.
func (s *Store) hasActive(userID, vacancyID string) bool {
	for _, a := range s.t.applications {
		if a.UserID == userID && a.VacancyID == vacancyID && a.Status != entity.ApplicationStatusWithdrawn {
			return true
		}
	}
	return false
}

// Create persiste una postulación; ErrAlreadyApplied si el par ya tiene una no retirada.
func (r *ApplicationRepo) Create(_ context.Context, a *entity.Application) error {
	defer r.s.acquire(r.inTx)()
	if r.s.hasActive(a.UserID, a.VacancyID) {
		return domain.ErrAlreadyApplied
	}
	r.s.t.applications[a.ID] = *a
	r.s.t.applicationOrder = append(r.s.t.applicationOrder, a.ID)
	return nil
}

// GetByID obtiene una postulación por ID.
func (r *ApplicationRepo) GetByID(_ context.Context, id string) (*entity.Application, error) {
	defer r.s.acquire(r.inTx)()
	a, ok := r.s.t.applications[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

// GetForUpdate equivale a GetByID: el mutex de la transacción ya serializa.
func (r *ApplicationRepo) GetForUpdate(ctx context.Context, id string) (*entity.Application, error) {
	return r.GetByID(ctx, id)
}

// HasActive indica si existe una postulación no retirada para el par.
func (r *ApplicationRepo) HasActive(_ context.Context, userID, vacancyID string) (bool, error) {
	defer r.s.acquire(r.inTx)()
	return r.s.hasActive(userID, vacancyID), nil
}

// UpdateStatus persiste estado y updated_at.
func (r *ApplicationRepo) UpdateStatus(_ context.Context, a *entity.Application) error {
	defer r.s.acquire(r.inTx)()
	cur, ok := r.s.t.applications[a.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cur.Status = a.Status
	cur.UpdatedAt = a.UpdatedAt
	r.s.t.applications[a.ID] = cur
	return nil
}

// List filtra y ordena de la más reciente a la más antigua, con datos de vacante y candidato.
func (r *ApplicationRepo) List(_ context.Context, f repository.ApplicationFilter) ([]*entity.ApplicationListing, error) {
	defer r.s.acquire(r.inTx)()
	var matched []*entity.ApplicationListing
	for _, a := range r.s.matchApplications(f) {
		v := r.s.t.vacancies[a.VacancyID]
		l := &entity.ApplicationListing{
			Application:  a,
			VacancyTitle: v.Title,
			CompanyID:    v.CompanyID,
		}
		if c, ok := r.s.t.companies[v.CompanyID]; ok {
			l.CompanyName = c.Name
		}
		if u, ok := r.s.t.users[a.UserID]; ok {
			l.ApplicantName = u.FullName()
			l.ApplicantEmail = u.Email
		}
		matched = append(matched, l)
	}
	from, to := window(len(matched), f.Limit, f.Offset)
	return matched[from:to], nil
}

// Count número de postulaciones que cumplen el filtro.
func (r *ApplicationRepo) Count(_ context.Context, f repository.ApplicationFilter) (int, error) {
	defer r.s.acquire(r.inTx)()
	return len(r.s.matchApplications(f)), nil
}

// matchApplications requiere el mutex tomado. Devuelve de la más reciente a la más antigua.
func (s *Store) matchApplications(f repository.ApplicationFilter) []entity.Application {
	order := s.t.applicationOrder
	var out []entity.Application
	for i := len(order) - 1; i >= 0; i-- {
		a := s.t.applications[order[i]]
		if f.UserID != "" && a.UserID != f.UserID {
			continue
		}
		if f.VacancyID != "" && a.VacancyID != f.VacancyID {
			continue
		}
		if f.CompanyID != "" && s.t.vacancies[a.VacancyID].CompanyID != f.CompanyID {
			continue
		}
		out = append(out, a)
	}
	return out
}
