package search_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/domain/search"
)

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func sampleVacancies() []*entity.Vacancy {
	return []*entity.Vacancy{
		{ID: "1", Title: "Senior Backend Engineer", Description: "Go y PostgreSQL", Location: "Bogotá",
			EmploymentType: entity.EmploymentFullTime, Level: entity.LevelSenior, Status: entity.VacancyStatusActive,
			SalaryMin: dec(50000), SalaryMax: dec(90000), CompanyID: "c1"},
		{ID: "2", Title: "Frontend Developer", Description: "React, TypeScript", Location: "Remote",
			EmploymentType: entity.EmploymentContract, Level: entity.LevelMid, Status: entity.VacancyStatusActive,
			CompanyID: "c2"},
		{ID: "3", Title: "Data Analyst", Description: "SQL, dashboards, backend reporting", Location: "Medellín",
			EmploymentType: entity.EmploymentPartTime, Level: entity.LevelEntry, Status: entity.VacancyStatusClosed,
			SalaryMin: dec(20000), CompanyID: "c1"},
		{ID: "4", Title: "Разработчик Go", Description: "Москва", Location: "Москва",
			EmploymentType: entity.EmploymentFullTime, Level: entity.LevelLead, Status: entity.VacancyStatusActive,
			SalaryMin: decimalZero(), SalaryMax: dec(300000), CompanyID: "c3"},
	}
}

func decimalZero() *decimal.Decimal {
	d := decimal.Zero
	return &d
}

func ids(vs []*entity.Vacancy) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.ID)
	}
	return out
}

func TestFilter_CriteriosVaciosDevuelvenTodoEnOrden(t *testing.T) {
	vs := sampleVacancies()
	got := search.Filter(vs, search.Parse(search.Params{}))
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(got))
	assert.True(t, search.Parse(search.Params{Search: "   "}).IsZero())
}

func TestFilter_ColeccionVacia(t *testing.T) {
	assert.Empty(t, search.Filter(nil, search.Criteria{Search: "go"}))
}

func TestFilter_BusquedaIgnoraMayusculas(t *testing.T) {
	vs := sampleVacancies()
	for _, q := range []string{"backend", "BACKEND", "BaCkEnD"} {
		got := search.Filter(vs, search.Parse(search.Params{Search: q}))
		assert.Equal(t, []string{"1", "3"}, ids(got), "q=%s", q)
	}
}

func TestFilter_BusquedaUnicode(t *testing.T) {
	got := search.Filter(sampleVacancies(), search.Parse(search.Params{Search: "РАЗРАБОТЧИК"}))
	assert.Equal(t, []string{"4"}, ids(got))

	got = search.Filter(sampleVacancies(), search.Parse(search.Params{Location: "москва"}))
	assert.Equal(t, []string{"4"}, ids(got))
}

func TestFilter_IgualdadExacta(t *testing.T) {
	vs := sampleVacancies()
	got := search.Filter(vs, search.Parse(search.Params{EmploymentType: entity.EmploymentFullTime}))
	assert.Equal(t, []string{"1", "4"}, ids(got))

	got = search.Filter(vs, search.Parse(search.Params{ExperienceLevel: entity.LevelMid}))
	assert.Equal(t, []string{"2"}, ids(got))

	got = search.Filter(vs, search.Parse(search.Params{Status: entity.VacancyStatusActive, CompanyID: "c1"}))
	assert.Equal(t, []string{"1"}, ids(got))
}

func TestMatches_BandaSalarial(t *testing.T) {
	v := &entity.Vacancy{Title: "x", SalaryMin: dec(50000), SalaryMax: dec(90000)}

	tests := []struct {
		name string
		p    search.Params
		want bool
	}{
		{"banda que contiene", search.Params{SalaryMin: "40000", SalaryMax: "100000"}, true},
		{"minimo mayor al de la vacante", search.Params{SalaryMin: "60000"}, false},
		{"maximo menor al de la vacante", search.Params{SalaryMax: "80000"}, false},
		{"cotas exactas", search.Params{SalaryMin: "50000", SalaryMax: "90000"}, true},
		{"no numerico se ignora", search.Params{SalaryMin: "abc", SalaryMax: "mucho"}, true},
		{"decimales", search.Params{SalaryMin: "49999.99"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, search.Matches(v, search.Parse(tt.p)))
		})
	}
}

func TestMatches_CotasAusentesSonComodin(t *testing.T) {
	sinSalario := &entity.Vacancy{Title: "x"}
	c := search.Parse(search.Params{SalaryMin: "1000000", SalaryMax: "1"})
	assert.True(t, search.Matches(sinSalario, c))

	soloMin := &entity.Vacancy{Title: "x", SalaryMin: dec(70000)}
	assert.True(t, search.Matches(soloMin, search.Parse(search.Params{SalaryMax: "10"})))
	assert.False(t, search.Matches(soloMin, search.Parse(search.Params{SalaryMin: "80000"})))
}

func TestMatches_CotaCeroNoRestringe(t *testing.T) {
	v := sampleVacancies()[3]
	assert.True(t, search.Matches(v, search.Parse(search.Params{SalaryMin: "100000"})))
	assert.False(t, search.Matches(v, search.Parse(search.Params{SalaryMax: "200000"})))
}

func TestFilter_NoModificaEntrada(t *testing.T) {
	vs := sampleVacancies()
	got := search.Filter(vs, search.Parse(search.Params{Search: "analyst"}))
	require.Len(t, got, 1)
	assert.Len(t, vs, 4)
	assert.Same(t, vs[2], got[0])
}

func TestMatches_Nil(t *testing.T) {
	assert.False(t, search.Matches(nil, search.Criteria{}))
}
