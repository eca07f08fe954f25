package memory

import (
	"context"

	"github.com/jhoicas/jobboard-api/internal/domain"
	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/domain/repository"
	"github.com/jhoicas/jobboard-api/internal/domain/search"
)

var _ repository.VacancyRepository = (*VacancyRepo)(nil)

// VacancyRepo vacantes en memoria. Search reutiliza search.Matches.
type VacancyRepo struct {
	s    *Store
	inTx bool
}

// NewVacancyRepository construye el adaptador de vacantes.
func NewVacancyRepository(s *Store) *VacancyRepo {
	return &VacancyRepo{s: s}
}

func cloneVacancy(v entity.Vacancy) *entity.Vacancy {
	if v.Skills != nil {
		v.Skills = append([]string(nil), v.Skills...)
	}
	return &v
}

// listing requiere el mutex tomado.
func (s *Store) listing(v entity.Vacancy) *entity.VacancyListing {
	l := &entity.VacancyListing{Vacancy: *cloneVacancy(v)}
	if c, ok := s.t.companies[v.CompanyID]; ok {
		l.CompanyName = c.Name
		l.CompanyLogo = c.Logo
	}
	return l
}

// Create persiste una vacante.
func (r *VacancyRepo) Create(_ context.Context, v *entity.Vacancy) error {
	defer r.s.acquire(r.inTx)()
	if _, ok := r.s.t.companies[v.CompanyID]; !ok {
		return domain.ErrNotFound
	}
	r.s.t.vacancies[v.ID] = *cloneVacancy(*v)
	r.s.t.vacancyOrder = append(r.s.t.vacancyOrder, v.ID)
	return nil
}

// GetByID obtiene la vacante con los datos de su empresa.
func (r *VacancyRepo) GetByID(_ context.Context, id string) (*entity.VacancyListing, error) {
	defer r.s.acquire(r.inTx)()
	v, ok := r.s.t.vacancies[id]
	if !ok {
		return nil, nil
	}
	return r.s.listing(v), nil
}

// GetForUpdate dentro de una transacción el mutex del almacén ya serializa el acceso.
func (r *VacancyRepo) GetForUpdate(_ context.Context, id string) (*entity.Vacancy, error) {
	defer r.s.acquire(r.inTx)()
	v, ok := r.s.t.vacancies[id]
	if !ok {
		return nil, nil
	}
	return cloneVacancy(v), nil
}

// Update reemplaza los campos editables; los contadores no se tocan.
func (r *VacancyRepo) Update(_ context.Context, v *entity.Vacancy) error {
	defer r.s.acquire(r.inTx)()
	cur, ok := r.s.t.vacancies[v.ID]
	if !ok {
		return domain.ErrNotFound
	}
	next := *cloneVacancy(*v)
	next.CompanyID = cur.CompanyID
	next.ApplicationsCount = cur.ApplicationsCount
	next.ViewsCount = cur.ViewsCount
	next.CreatedAt = cur.CreatedAt
	r.s.t.vacancies[v.ID] = next
	return nil
}

// Search recorre de la más reciente a la más antigua aplicando el predicado del filtro.
func (r *VacancyRepo) Search(_ context.Context, c search.Criteria, limit, offset int) ([]*entity.VacancyListing, error) {
	defer r.s.acquire(r.inTx)()
	matched := r.s.matchVacancies(c)
	from, to := window(len(matched), limit, offset)
	out := make([]*entity.VacancyListing, 0, to-from)
	for _, v := range matched[from:to] {
		out = append(out, r.s.listing(*v))
	}
	return out, nil
}

// Count número de vacantes que cumplen el filtro.
func (r *VacancyRepo) Count(_ context.Context, c search.Criteria) (int, error) {
	defer r.s.acquire(r.inTx)()
	return len(r.s.matchVacancies(c)), nil
}

// matchVacancies requiere el mutex tomado. Devuelve de la más reciente a la más antigua.
func (s *Store) matchVacancies(c search.Criteria) []*entity.Vacancy {
	order := s.t.vacancyOrder
	candidates := make([]*entity.Vacancy, 0, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		v := s.t.vacancies[order[i]]
		candidates = append(candidates, &v)
	}
	return search.Filter(candidates, c)
}

// IncrementViews suma 1 a views_count.
func (r *VacancyRepo) IncrementViews(_ context.Context, id string) error {
	defer r.s.acquire(r.inTx)()
	v, ok := r.s.t.vacancies[id]
	if !ok {
		return domain.ErrNotFound
	}
	v.ViewsCount++
	r.s.t.vacancies[v.ID] = v
	return nil
}

// IncrementApplications suma 1 a applications_count.
func (r *VacancyRepo) IncrementApplications(_ context.Context, id string) error {
	defer r.s.acquire(r.inTx)()
	v, ok := r.s.t.vacancies[id]
	if !ok {
		return domain.ErrNotFound
	}
	v.ApplicationsCount++
	r.s.t.vacancies[v.ID] = v
	return nil
}
