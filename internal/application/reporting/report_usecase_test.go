package reporting_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/jobboard-api/internal/application/dto"
	"github.com/jhoicas/jobboard-api/internal/application/reporting"
	"github.com/jhoicas/jobboard-api/internal/domain"
	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/infrastructure/memory"
)

type fakePDF struct {
	vacancy    *entity.VacancyListing
	applicants []*entity.ApplicationListing
}

func (f *fakePDF) GenerateApplicantsReport(v *entity.VacancyListing, a []*entity.ApplicationListing, _ time.Time) ([]byte, error) {
	f.vacancy, f.applicants = v, a
	return []byte("%PDF-fake"), nil
}

type fakeFeed struct{ vacancies []*entity.VacancyListing }

func (f *fakeFeed) BuildVacancyFeed(vs []*entity.VacancyListing, _ time.Time) ([]byte, error) {
	f.vacancies = vs
	return []byte("<source/>"), nil
}

func setup(t *testing.T) (*reporting.ReportUseCase, *fakePDF, *fakeFeed) {
	t.Helper()
	ctx := context.Background()
	s := memory.New()
	now := time.Now()
	require.NoError(t, memory.NewCompanyRepository(s).Create(ctx, &entity.Company{ID: "c1", Name: "Acme", Slug: "acme"}))
	require.NoError(t, memory.NewUserRepository(s).Create(ctx, &entity.User{ID: "u1", Email: "ana@example.com", FirstName: "Ana", Role: entity.RoleJobSeeker}))
	vacancies := memory.NewVacancyRepository(s)
	require.NoError(t, vacancies.Create(ctx, &entity.Vacancy{ID: "v1", CompanyID: "c1", Title: "Backend Engineer", Status: entity.VacancyStatusActive, CreatedAt: now}))
	require.NoError(t, vacancies.Create(ctx, &entity.Vacancy{ID: "v2", CompanyID: "c1", Title: "Draft", Status: entity.VacancyStatusDraft, CreatedAt: now}))
	applications := memory.NewApplicationRepository(s)
	require.NoError(t, applications.Create(ctx, &entity.Application{ID: "a1", UserID: "u1", VacancyID: "v1", Status: entity.ApplicationStatusPending, CreatedAt: now}))

	pdf, feed := &fakePDF{}, &fakeFeed{}
	return reporting.NewReportUseCase(vacancies, applications, pdf, feed), pdf, feed
}

func TestApplicantsPDF(t *testing.T) {
	uc, pdf, _ := setup(t)
	ctx := context.Background()
	owner := entity.Actor{UserID: "e1", Role: entity.RoleEmployer, CompanyID: "c1"}

	out, name, err := uc.ApplicantsPDF(ctx, owner, "v1")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), out)
	assert.Equal(t, "postulantes-backend-engineer.pdf", name)
	assert.Equal(t, "Acme", pdf.vacancy.CompanyName)
	require.Len(t, pdf.applicants, 1)
	assert.Equal(t, "ana@example.com", pdf.applicants[0].ApplicantEmail)

	_, _, err = uc.ApplicantsPDF(ctx, entity.Actor{UserID: "e2", Role: entity.RoleEmployer, CompanyID: "c2"}, "v1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, _, err = uc.ApplicantsPDF(ctx, entity.Actor{UserID: "u1", Role: entity.RoleJobSeeker}, "v1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, _, err = uc.ApplicantsPDF(ctx, entity.Actor{UserID: "adm", Role: entity.RoleAdmin}, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVacancyFeed_SoloActivas(t *testing.T) {
	uc, _, feed := setup(t)
	out, err := uc.VacancyFeed(context.Background(), dto.VacancyQuery{Status: entity.VacancyStatusDraft})
	require.NoError(t, err)
	assert.Equal(t, "<source/>", string(out))
	require.Len(t, feed.vacancies, 1)
	assert.Equal(t, "v1", feed.vacancies[0].ID)
}
