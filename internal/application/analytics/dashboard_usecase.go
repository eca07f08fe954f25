// Package analytics contiene los tableros del empleador y del administrador.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/jobboard-api/internal/application/dto"
	"github.com/jhoicas/jobboard-api/internal/domain"
	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/domain/repository"
)

// DashboardUseCase arma los tableros a partir de consultas de solo lectura.
//
// Fuente de datos: AnalyticsRepository. Las consultas de cada tablero se lanzan en paralelo.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

type countsResult struct {
	counts map[string]int
	err    error
}

// Employer tablero de la empresa del empleador.
//
// Tres llamadas en paralelo:
//  1. VacanciesByStatus    -> vacantes por estado
//  2. ApplicationsByStatus -> postulaciones por estado
//  3. VacancyTotals        -> vistas y postulaciones acumuladas
func (uc *DashboardUseCase) Employer(ctx context.Context, actor entity.Actor) (*dto.EmployerDashboardDTO, error) {
	if !actor.IsEmployer() || actor.CompanyID == "" {
		return nil, domain.ErrForbidden
	}
	companyID := actor.CompanyID

	type totalsResult struct {
		views, applications int
		err                 error
	}
	vacCh := make(chan countsResult, 1)
	appCh := make(chan countsResult, 1)
	totCh := make(chan totalsResult, 1)

	go func() {
		c, err := uc.analyticsRepo.VacanciesByStatus(ctx, companyID)
		vacCh <- countsResult{c, err}
	}()
	go func() {
		c, err := uc.analyticsRepo.ApplicationsByStatus(ctx, companyID)
		appCh <- countsResult{c, err}
	}()
	go func() {
		v, a, err := uc.analyticsRepo.VacancyTotals(ctx, companyID)
		totCh <- totalsResult{v, a, err}
	}()

	vac := <-vacCh
	app := <-appCh
	tot := <-totCh

	if vac.err != nil {
		return nil, fmt.Errorf("dashboard: vacantes por estado: %w", vac.err)
	}
	if app.err != nil {
		return nil, fmt.Errorf("dashboard: postulaciones por estado: %w", app.err)
	}
	if tot.err != nil {
		return nil, fmt.Errorf("dashboard: totales: %w", tot.err)
	}

	return &dto.EmployerDashboardDTO{
		CompanyID:            companyID,
		VacanciesByStatus:    vac.counts,
		ActiveVacancies:      vac.counts[entity.VacancyStatusActive],
		TotalViews:           tot.views,
		TotalApplications:    tot.applications,
		ApplicationsByStatus: app.counts,
	}, nil
}

// Admin tablero global.
func (uc *DashboardUseCase) Admin(ctx context.Context, actor entity.Actor) (*dto.AdminDashboardDTO, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	type companiesResult struct {
		n   int
		err error
	}
	usersCh := make(chan countsResult, 1)
	vacCh := make(chan countsResult, 1)
	appCh := make(chan countsResult, 1)
	compCh := make(chan companiesResult, 1)

	go func() {
		c, err := uc.analyticsRepo.UsersByRole(ctx)
		usersCh <- countsResult{c, err}
	}()
	go func() {
		c, err := uc.analyticsRepo.VacanciesByStatus(ctx, "")
		vacCh <- countsResult{c, err}
	}()
	go func() {
		c, err := uc.analyticsRepo.ApplicationsByStatus(ctx, "")
		appCh <- countsResult{c, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountCompanies(ctx)
		compCh <- companiesResult{n, err}
	}()

	users, vac, app, comp := <-usersCh, <-vacCh, <-appCh, <-compCh
	for _, err := range []error{users.err, vac.err, app.err, comp.err} {
		if err != nil {
			return nil, fmt.Errorf("dashboard admin: %w", err)
		}
	}

	return &dto.AdminDashboardDTO{
		UsersByRole:          users.counts,
		Companies:            comp.n,
		VacanciesByStatus:    vac.counts,
		ApplicationsByStatus: app.counts,
	}, nil
}
