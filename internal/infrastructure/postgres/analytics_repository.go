package postgres

import (
	"context"

	"github.com/jhoicas/jobboard-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas de solo lectura para los tableros.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// VacanciesByStatus cuenta vacantes por estado. companyID vacío = todas las empresas.
func (r *AnalyticsRepo) VacanciesByStatus(ctx context.Context, companyID string) (map[string]int, error) {
	const query = `
	SELECT status, COUNT(*)
	FROM vacancies
	WHERE ($1::text = '' OR company_id::text = $1)
	GROUP BY status`
	return r.countBy(ctx, "analytics.VacanciesByStatus", query, companyID)
}

// ApplicationsByStatus cuenta postulaciones por estado sobre las vacantes de la empresa.
func (r *AnalyticsRepo) ApplicationsByStatus(ctx context.Context, companyID string) (map[string]int, error) {
	const query = `
	SELECT a.status, COUNT(*)
	FROM applications a
	JOIN vacancies v ON v.id = a.vacancy_id
	WHERE ($1::text = '' OR v.company_id::text = $1)
	GROUP BY a.status`
	return r.countBy(ctx, "analytics.ApplicationsByStatus", query, companyID)
}

// VacancyTotals suma views_count y applications_count.
func (r *AnalyticsRepo) VacancyTotals(ctx context.Context, companyID string) (views, applications int, err error) {
	const query = `
	SELECT COALESCE(SUM(views_count), 0), COALESCE(SUM(applications_count), 0)
	FROM vacancies
	WHERE ($1::text = '' OR company_id::text = $1)`
	if err := r.q.QueryRow(ctx, query, companyID).Scan(&views, &applications); err != nil {
		return 0, 0, wrapErr("analytics.VacancyTotals", err)
	}
	return views, applications, nil
}

// UsersByRole cuenta usuarios por rol.
func (r *AnalyticsRepo) UsersByRole(ctx context.Context) (map[string]int, error) {
	const query = `SELECT role, COUNT(*) FROM users GROUP BY role`
	return r.countBy(ctx, "analytics.UsersByRole", query)
}

// CountCompanies total de empresas registradas.
func (r *AnalyticsRepo) CountCompanies(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM companies`).Scan(&n); err != nil {
		return 0, wrapErr("analytics.CountCompanies", err)
	}
	return n, nil
}

func (r *AnalyticsRepo) countBy(ctx context.Context, op, query string, args ...any) (map[string]int, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return nil, wrapErr(op, err)
		}
		out[key] = n
	}
	return out, rows.Err()
}
