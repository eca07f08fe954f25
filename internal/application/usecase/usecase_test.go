package usecase_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/jobboard-api/internal/application/dto"
	"github.com/jhoicas/jobboard-api/internal/application/usecase"
	"github.com/jhoicas/jobboard-api/internal/domain"
	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/infrastructure/memory"
)

var (
	admin    = entity.Actor{UserID: "a1", Role: entity.RoleAdmin}
	seeker   = entity.Actor{UserID: "u1", Role: entity.RoleJobSeeker}
	employer = entity.Actor{UserID: "e1", Role: entity.RoleEmployer}
)

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func setup(t *testing.T) (*memory.Store, *usecase.VacancyUseCase, *usecase.CompanyUseCase, entity.Actor) {
	t.Helper()
	s := memory.New()
	companies := usecase.NewCompanyUseCase(memory.NewCompanyRepository(s))
	c, err := companies.Create(context.Background(), admin, dto.CreateCompanyRequest{Name: "Acme Software"})
	require.NoError(t, err)
	assert.Equal(t, "acme-software", c.Slug)

	emp := employer
	emp.CompanyID = c.ID
	vacancies := usecase.NewVacancyUseCase(s, memory.NewVacancyRepository(s), memory.NewCompanyRepository(s), 2)
	return s, vacancies, companies, emp
}

func newVacancy(title string) dto.CreateVacancyRequest {
	return dto.CreateVacancyRequest{
		Title:          title,
		Description:    "<p>Descripción de la vacante</p>",
		EmploymentType: entity.EmploymentFullTime,
		Level:          entity.LevelSenior,
		Skills:         []string{"Go", "Go", " SQL "},
	}
}

func TestVacancyCreate_Permisos(t *testing.T) {
	_, vacancies, _, emp := setup(t)
	ctx := context.Background()

	out, err := vacancies.Create(ctx, emp, newVacancy("Backend <b>Engineer</b>"))
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", out.Title)
	assert.Equal(t, entity.VacancyStatusActive, out.Status)
	assert.Equal(t, []string{"Go", "SQL"}, out.Skills)
	assert.Equal(t, "Acme Software", out.CompanyName)

	_, err = vacancies.Create(ctx, seeker, newVacancy("x y z"))
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = vacancies.Create(ctx, admin, newVacancy("x y z"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVacancyCreate_BandaSalarialInvalida(t *testing.T) {
	_, vacancies, _, emp := setup(t)
	in := newVacancy("Backend Engineer")
	in.SalaryMin, in.SalaryMax = dec(90000), dec(50000)

	_, err := vacancies.Create(context.Background(), emp, in)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "salary_max")
}

func TestVacancyUpdate_InvarianteSobreResultado(t *testing.T) {
	_, vacancies, _, emp := setup(t)
	ctx := context.Background()
	in := newVacancy("Backend Engineer")
	in.SalaryMin, in.SalaryMax = dec(50000), dec(90000)
	created, err := vacancies.Create(ctx, emp, in)
	require.NoError(t, err)

	_, err = vacancies.Update(ctx, emp, created.ID, dto.UpdateVacancyRequest{SalaryMin: dec(100000)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	closed := entity.VacancyStatusClosed
	updated, err := vacancies.Update(ctx, emp, created.ID, dto.UpdateVacancyRequest{Status: &closed})
	require.NoError(t, err)
	assert.Equal(t, closed, updated.Status)

	otra := entity.Actor{UserID: "e2", Role: entity.RoleEmployer, CompanyID: "otra"}
	_, err = vacancies.Update(ctx, otra, created.ID, dto.UpdateVacancyRequest{Status: &closed})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = vacancies.Update(ctx, emp, "no-existe", dto.UpdateVacancyRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVacancyUpdate_ConcurrentesNoPierdenCambios(t *testing.T) {
	_, vacancies, _, emp := setup(t)
	ctx := context.Background()
	created, err := vacancies.Create(ctx, emp, newVacancy("Backend Engineer"))
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		title := fmt.Sprintf("Backend Engineer %d", i)
		location := fmt.Sprintf("Ciudad %d", i)
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := vacancies.Update(ctx, emp, created.ID, dto.UpdateVacancyRequest{Title: &title})
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := vacancies.Update(ctx, emp, created.ID, dto.UpdateVacancyRequest{Location: &location})
			assert.NoError(t, err)
		}()
		wg.Wait()

		got, err := vacancies.Get(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, title, got.Title)
		require.Equal(t, location, got.Location)
	}
}

func TestVacancyUpdate_RespondeConDatosDeEmpresa(t *testing.T) {
	_, vacancies, _, emp := setup(t)
	ctx := context.Background()
	created, err := vacancies.Create(ctx, emp, newVacancy("Backend Engineer"))
	require.NoError(t, err)

	title := "R&D <b>Engineer</b>"
	updated, err := vacancies.Update(ctx, emp, created.ID, dto.UpdateVacancyRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "R&D Engineer", updated.Title)
	assert.Equal(t, "Acme Software", updated.CompanyName)
}

func TestVacancyGet_IncrementaVistas(t *testing.T) {
	_, vacancies, _, emp := setup(t)
	ctx := context.Background()
	created, err := vacancies.Create(ctx, emp, newVacancy("Backend Engineer"))
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		got, err := vacancies.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, i, got.ViewsCount)
		require.NotNil(t, got.Company)
		assert.Equal(t, 1, got.Company.ActiveVacancies)
	}

	_, err = vacancies.Get(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVacancySearch_SoloActivasYTopeDePagina(t *testing.T) {
	s, vacancies, _, emp := setup(t)
	ctx := context.Background()
	for _, title := range []string{"Go Developer", "Go Lead", "Go Architect"} {
		_, err := vacancies.Create(ctx, emp, newVacancy(title))
		require.NoError(t, err)
	}
	draft := newVacancy("Go Intern")
	draft.Status = entity.VacancyStatusDraft
	_, err := vacancies.Create(ctx, emp, draft)
	require.NoError(t, err)

	list, err := vacancies.Search(ctx, dto.VacancyQuery{Search: "go", Limit: 50})
	require.NoError(t, err)
	assert.Len(t, list.Items, 2, "el tope de página es 2")
	assert.Equal(t, "Go Architect", list.Items[0].Title)
	assert.Equal(t, 3, list.Page.Total, "total cuenta todas las activas, no solo la página")

	last, err := vacancies.Search(ctx, dto.VacancyQuery{Search: "go", Offset: 2})
	require.NoError(t, err)
	require.Len(t, last.Items, 1)
	assert.Equal(t, "Go Developer", last.Items[0].Title)
	assert.Equal(t, 3, last.Page.Total)

	// El tope configurable puede superar dto.MaxPageSize.
	wide := usecase.NewVacancyUseCase(s, memory.NewVacancyRepository(s), memory.NewCompanyRepository(s), 150)
	big, err := wide.Search(ctx, dto.VacancyQuery{Limit: 120})
	require.NoError(t, err)
	assert.Equal(t, 120, big.Page.Limit)
	big, err = wide.Search(ctx, dto.VacancyQuery{Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, 150, big.Page.Limit)

	own, err := vacancies.ListByCompany(ctx, emp, dto.VacancyQuery{Status: entity.VacancyStatusDraft})
	require.NoError(t, err)
	require.Len(t, own.Items, 1)
	assert.Equal(t, "Go Intern", own.Items[0].Title)

	_, err = vacancies.ListByCompany(ctx, seeker, dto.VacancyQuery{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCompany_SlugDuplicadoYActualizacion(t *testing.T) {
	_, _, companies, emp := setup(t)
	ctx := context.Background()

	_, err := companies.Create(ctx, admin, dto.CreateCompanyRequest{Name: "ACME software"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = companies.Create(ctx, emp, dto.CreateCompanyRequest{Name: "Otra"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	name := "Acme Labs"
	out, err := companies.Update(ctx, emp, emp.CompanyID, dto.UpdateCompanyRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "acme-labs", out.Slug)

	_, err = companies.GetByID(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResume_PrincipalUnico(t *testing.T) {
	s := memory.New()
	resumes := usecase.NewResumeUseCase(s, memory.NewResumeRepository(s))
	ctx := context.Background()

	first, err := resumes.Create(ctx, seeker, dto.CreateResumeRequest{Title: "CV general"})
	require.NoError(t, err)
	assert.True(t, first.IsPrimary, "el primer CV es principal")

	second, err := resumes.Create(ctx, seeker, dto.CreateResumeRequest{Title: "CV backend"})
	require.NoError(t, err)
	assert.False(t, second.IsPrimary)

	_, err = resumes.SetPrimary(ctx, seeker, second.ID)
	require.NoError(t, err)

	list, err := resumes.List(ctx, seeker)
	require.NoError(t, err)
	primaries := 0
	for _, r := range list {
		if r.IsPrimary {
			primaries++
			assert.Equal(t, second.ID, r.ID)
		}
	}
	assert.Equal(t, 1, primaries)

	require.NoError(t, resumes.Delete(ctx, seeker, second.ID))
	list, err = resumes.List(ctx, seeker)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].IsPrimary, "al borrar el principal se promueve el siguiente")

	otro := entity.Actor{UserID: "u2", Role: entity.RoleJobSeeker}
	assert.ErrorIs(t, resumes.Delete(ctx, otro, first.ID), domain.ErrForbidden)
}
