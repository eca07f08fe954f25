package memory

import (
	"context"

	"github.com/jhoicas/jobboard-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo agregados de solo lectura sobre el almacén en memoria.
type AnalyticsRepo struct {
	s *Store
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(s *Store) *AnalyticsRepo {
	return &AnalyticsRepo{s: s}
}

// VacanciesByStatus cuenta vacantes por estado.
func (r *AnalyticsRepo) VacanciesByStatus(_ context.Context, companyID string) (map[string]int, error) {
	defer r.s.acquire(false)()
	out := make(map[string]int)
	for _, v := range r.s.t.vacancies {
		if companyID == "" || v.CompanyID == companyID {
			out[v.Status]++
		}
	}
	return out, nil
}

// ApplicationsByStatus cuenta postulaciones por estado.
func (r *AnalyticsRepo) ApplicationsByStatus(_ context.Context, companyID string) (map[string]int, error) {
	defer r.s.acquire(false)()
	out := make(map[string]int)
	for _, a := range r.s.t.applications {
		if companyID != "" && r.s.t.vacancies[a.VacancyID].CompanyID != companyID {
			continue
		}
		out[a.Status]++
	}
	return out, nil
}

// VacancyTotals suma vistas y postulaciones acumuladas.
func (r *AnalyticsRepo) VacancyTotals(_ context.Context, companyID string) (views, applications int, err error) {
	defer r.s.acquire(false)()
	for _, v := range r.s.t.vacancies {
		if companyID == "" || v.CompanyID == companyID {
			views += v.ViewsCount
			applications += v.ApplicationsCount
		}
	}
	return views, applications, nil
}

// UsersByRole cuenta usuarios por rol.
func (r *AnalyticsRepo) UsersByRole(_ context.Context) (map[string]int, error) {
	defer r.s.acquire(false)()
	out := make(map[string]int)
	for _, u := range r.s.t.users {
		out[u.Role]++
	}
	return out, nil
}

// CountCompanies número de empresas registradas.
func (r *AnalyticsRepo) CountCompanies(_ context.Context) (int, error) {
	defer r.s.acquire(false)()
	return len(r.s.t.companies), nil
}
