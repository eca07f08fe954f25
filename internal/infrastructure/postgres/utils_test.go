package postgres

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/jobboard-api/internal/domain"
	"github.com/jhoicas/jobboard-api/internal/domain/search"
)

func TestLikePattern(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"go", "%go%"},
		{"", "%%"},
		{"100%_remoto", `%100\%\_remoto%`},
		{`a\b`, `%a\\b%`},
		{"R&D", "%R&D%"},
		{"O'Reilly", "%O'Reilly%"},
		{"São Paulo", "%São Paulo%"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, likePattern(tc.in), tc.in)
	}
}

func TestSearchArgs_CoincidenConPlaceholders(t *testing.T) {
	highest := 0
	for _, m := range regexp.MustCompile(`\$(\d+)`).FindAllStringSubmatch(searchWhere, -1) {
		n, err := strconv.Atoi(m[1])
		require.NoError(t, err)
		if n > highest {
			highest = n
		}
	}
	assert.Equal(t, len(searchArgs(search.Criteria{})), highest)
	assert.Contains(t, searchQuery, "LIMIT NULLIF($11, 0) OFFSET $12")
	assert.NotContains(t, countQuery, "LIMIT")
}

func TestSearchArgs(t *testing.T) {
	empty := searchArgs(search.Criteria{})
	require.Len(t, empty, 10)
	assert.Equal(t, []any{"", "%%", "", "%%", "", ""}, empty[:6])
	assert.Nil(t, empty[6])
	assert.Nil(t, empty[7])
	assert.Equal(t, []any{"", ""}, empty[8:])

	lo, hi := decimal.NewFromInt(60000), decimal.NewFromInt(150000)
	args := searchArgs(search.Criteria{
		Search: "50%", Location: "madrid", EmploymentType: "full_time", ExperienceLevel: "senior",
		SalaryMin: &lo, SalaryMax: &hi, CompanyID: "c1", Status: "active",
	})
	assert.Equal(t, "50%", args[0])
	assert.Equal(t, `%50\%%`, args[1])
	assert.Equal(t, "%madrid%", args[3])
	assert.Equal(t, []any{"full_time", "senior"}, args[4:6])
	assert.Equal(t, &lo, args[6])
	assert.Equal(t, &hi, args[7])
	assert.Equal(t, []any{"c1", "active"}, args[8:])
}

func TestVacancyCheckError(t *testing.T) {
	tests := []struct {
		constraint, field string
	}{
		{"vacancies_salary_range", "salary_max"},
		{"vacancies_status_check", "status"},
		{"vacancies_level_check", "level"},
		{"otro", "vacancy"},
	}
	for _, tc := range tests {
		err := vacancyCheckError(&pgconn.PgError{Code: "23514", ConstraintName: tc.constraint})
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr, tc.constraint)
		assert.Contains(t, verr.Fields, tc.field, tc.constraint)
	}
	assert.True(t, isCheckViolation(fmt.Errorf("update: %w", &pgconn.PgError{Code: "23514"})))
}

func TestIDsMalFormados_NoConsultan(t *testing.T) {
	ctx := context.Background()
	// Querier nil: cualquier consulta haría panic.
	v, err := NewVacancyRepository(nil).GetByID(ctx, "abc")
	assert.NoError(t, err)
	assert.Nil(t, v)
	locked, err := NewVacancyRepository(nil).GetForUpdate(ctx, "abc")
	assert.NoError(t, err)
	assert.Nil(t, locked)
	assert.ErrorIs(t, NewVacancyRepository(nil).IncrementViews(ctx, "abc"), domain.ErrNotFound)

	a, err := NewApplicationRepository(nil).GetForUpdate(ctx, "abc")
	assert.NoError(t, err)
	assert.Nil(t, a)
	c, err := NewCompanyRepository(nil).GetDetail(ctx, "abc")
	assert.NoError(t, err)
	assert.Nil(t, c)
	res, err := NewResumeRepository(nil).GetByID(ctx, "abc")
	assert.NoError(t, err)
	assert.Nil(t, res)
	u, err := NewUserRepository(nil).GetByID(ctx, "abc")
	assert.NoError(t, err)
	assert.Nil(t, u)

	_, err = NewSavedVacancyRepository(nil).Toggle(ctx, uuid.NewString(), "abc", time.Now())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	invalid := wrapErr("get vacancy", &pgconn.PgError{Code: "22P02"})
	assert.ErrorIs(t, invalid, domain.ErrNotFound)
}

func TestErrorClassification(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "applications_active_uniq"}
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", unique)))
	assert.Equal(t, "applications_active_uniq", constraintName(unique))
	assert.True(t, isForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, isNoRows(fmt.Errorf("x: %w", pgx.ErrNoRows)))

	down := wrapErr("get vacancy", &pgconn.PgError{Code: "08006"})
	assert.ErrorIs(t, down, domain.ErrUpstreamUnavailable)

	other := wrapErr("get vacancy", errors.New("syntax error"))
	assert.NotErrorIs(t, other, domain.ErrUpstreamUnavailable)
	assert.EqualError(t, other, "get vacancy: syntax error")
}
