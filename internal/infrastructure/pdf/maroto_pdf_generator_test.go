package pdf_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/infrastructure/pdf"
)

func TestGenerateApplicantsReport(t *testing.T) {
	lo, hi := decimal.NewFromInt(70000), decimal.NewFromInt(120000)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	vacancy := &entity.VacancyListing{
		Vacancy: entity.Vacancy{
			ID: "v1", Title: "Backend Engineer", Status: entity.VacancyStatusActive,
			SalaryMin: &lo, SalaryMax: &hi, Currency: "USD", ApplicationsCount: 2, ViewsCount: 1534,
		},
		CompanyName: "Acme",
	}
	applicants := []*entity.ApplicationListing{
		{Application: entity.Application{ID: "a1", Status: entity.ApplicationStatusPending, CreatedAt: now}, ApplicantName: "Ana Pérez", ApplicantEmail: "ana@example.com"},
		{Application: entity.Application{ID: "a2", Status: entity.ApplicationStatusAccepted, CreatedAt: now}, ApplicantName: "Luis", ApplicantEmail: "luis@example.com"},
	}

	g := pdf.NewMarotoPDFGenerator()
	out, err := g.GenerateApplicantsReport(vacancy, applicants, now)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))

	empty, err := g.GenerateApplicantsReport(&entity.VacancyListing{Vacancy: entity.Vacancy{Title: "Sin postulantes"}}, nil, now)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(empty, []byte("%PDF")))
}
