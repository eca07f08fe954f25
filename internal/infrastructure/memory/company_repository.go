package memory

import (
	"context"

	"github.com/jhoicas/jobboard-api/internal/domain"
	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo empresas en memoria. El slug es único.
type CompanyRepo struct {
	s    *Store
	inTx bool
}

// NewCompanyRepository construye el adaptador de empresas.
func NewCompanyRepository(s *Store) *CompanyRepo {
	return &CompanyRepo{s: s}
}

// Create persiste una empresa.
func (r *CompanyRepo) Create(_ context.Context, company *entity.Company) error {
	defer r.s.acquire(r.inTx)()
	for _, c := range r.s.t.companies {
		if c.Slug == company.Slug {
			return domain.ErrDuplicate
		}
	}
	r.s.t.companies[company.ID] = *company
	r.s.t.companyOrder = append(r.s.t.companyOrder, company.ID)
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	defer r.s.acquire(r.inTx)()
	c, ok := r.s.t.companies[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// GetBySlug obtiene una empresa por slug.
func (r *CompanyRepo) GetBySlug(_ context.Context, slug string) (*entity.Company, error) {
	defer r.s.acquire(r.inTx)()
	for _, c := range r.s.t.companies {
		if c.Slug == slug {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

// GetDetail obtiene la empresa con su número de vacantes activas.
func (r *CompanyRepo) GetDetail(_ context.Context, id string) (*entity.CompanyDetail, error) {
	defer r.s.acquire(r.inTx)()
	c, ok := r.s.t.companies[id]
	if !ok {
		return nil, nil
	}
	return &entity.CompanyDetail{Company: c, ActiveVacancies: r.s.activeVacancies(id)}, nil
}

// Update actualiza los datos descriptivos de la empresa.
func (r *CompanyRepo) Update(_ context.Context, company *entity.Company) error {
	defer r.s.acquire(r.inTx)()
	if _, ok := r.s.t.companies[company.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, c := range r.s.t.companies {
		if id != company.ID && c.Slug == company.Slug {
			return domain.ErrDuplicate
		}
	}
	r.s.t.companies[company.ID] = *company
	return nil
}

// List lista empresas de la más reciente a la más antigua.
func (r *CompanyRepo) List(_ context.Context, limit, offset int) ([]*entity.CompanyDetail, error) {
	defer r.s.acquire(r.inTx)()
	order := r.s.t.companyOrder
	from, to := window(len(order), limit, offset)
	out := make([]*entity.CompanyDetail, 0, to-from)
	for i := len(order) - 1 - from; i >= len(order)-to; i-- {
		c := r.s.t.companies[order[i]]
		out = append(out, &entity.CompanyDetail{Company: c, ActiveVacancies: r.s.activeVacancies(c.ID)})
	}
	return out, nil
}

// Count número de empresas registradas.
func (r *CompanyRepo) Count(_ context.Context) (int, error) {
	defer r.s.acquire(r.inTx)()
	return len(r.s.t.companies), nil
}

// activeVacancies requiere el mutex tomado.
func (s *Store) activeVacancies(companyID string) int {
	n := 0
	for _, v := range s.t.vacancies {
		if v.CompanyID == companyID && v.Status == entity.VacancyStatusActive {
			n++
		}
	}
	return n
}
