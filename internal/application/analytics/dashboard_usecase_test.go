package analytics_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/jobboard-api/internal/application/analytics"
	"github.com/jhoicas/jobboard-api/internal/domain"
	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/infrastructure/memory"
)

func TestDashboard_Empleador(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	require.NoError(t, memory.NewCompanyRepository(s).Create(ctx, &entity.Company{ID: "c1", Name: "Acme", Slug: "acme"}))
	require.NoError(t, memory.NewCompanyRepository(s).Create(ctx, &entity.Company{ID: "c2", Name: "Otra", Slug: "otra"}))
	vr := memory.NewVacancyRepository(s)
	require.NoError(t, vr.Create(ctx, &entity.Vacancy{ID: "v1", CompanyID: "c1", Status: entity.VacancyStatusActive}))
	require.NoError(t, vr.Create(ctx, &entity.Vacancy{ID: "v2", CompanyID: "c1", Status: entity.VacancyStatusClosed}))
	require.NoError(t, vr.Create(ctx, &entity.Vacancy{ID: "v3", CompanyID: "c2", Status: entity.VacancyStatusActive}))
	require.NoError(t, vr.IncrementViews(ctx, "v1"))
	require.NoError(t, vr.IncrementViews(ctx, "v3"))
	require.NoError(t, vr.IncrementApplications(ctx, "v1"))
	require.NoError(t, memory.NewApplicationRepository(s).Create(ctx, &entity.Application{ID: "a1", UserID: "u1", VacancyID: "v1", Status: entity.ApplicationStatusPending}))

	uc := analytics.NewDashboardUseCase(memory.NewAnalyticsRepository(s))
	out, err := uc.Employer(ctx, entity.Actor{UserID: "e1", Role: entity.RoleEmployer, CompanyID: "c1"})
	require.NoError(t, err)
	assert.Equal(t, 1, out.ActiveVacancies)
	assert.Equal(t, 1, out.VacanciesByStatus[entity.VacancyStatusClosed])
	assert.Equal(t, 1, out.TotalViews)
	assert.Equal(t, 1, out.TotalApplications)
	assert.Equal(t, 1, out.ApplicationsByStatus[entity.ApplicationStatusPending])

	_, err = uc.Employer(ctx, entity.Actor{UserID: "u1", Role: entity.RoleJobSeeker})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	admin, err := uc.Admin(ctx, entity.Actor{UserID: "a1", Role: entity.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, 2, admin.Companies)
	assert.Equal(t, 2, admin.VacanciesByStatus[entity.VacancyStatusActive])
}
