package repository

import "context"

// AnalyticsRepository consultas de solo lectura para los tableros.
// companyID vacío significa todas las empresas.
type AnalyticsRepository interface {
	VacanciesByStatus(ctx context.Context, companyID string) (map[string]int, error)
	ApplicationsByStatus(ctx context.Context, companyID string) (map[string]int, error)
	// VacancyTotals suma views_count y applications_count de las vacantes.
	VacancyTotals(ctx context.Context, companyID string) (views, applications int, err error)
	UsersByRole(ctx context.Context) (map[string]int, error)
	CountCompanies(ctx context.Context) (int, error)
}
