package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/jobboard-api/internal/domain"
	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/domain/repository"
	"github.com/jhoicas/jobboard-api/internal/domain/search"
	"github.com/jhoicas/jobboard-api/internal/infrastructure/memory"
)

func seed(t *testing.T, s *memory.Store) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, memory.NewCompanyRepository(s).Create(ctx, &entity.Company{ID: "c1", Name: "Acme", Slug: "acme"}))
	vr := memory.NewVacancyRepository(s)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, title := range []string{"Go Developer", "Java Developer", "Go Lead"} {
		require.NoError(t, vr.Create(ctx, &entity.Vacancy{
			ID: title, CompanyID: "c1", Title: title, Status: entity.VacancyStatusActive,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}
}

func TestRun_RollbackRestauraEstado(t *testing.T) {
	s := memory.New()
	seed(t, s)
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.Run(ctx, func(vr repository.VacancyRepository, ar repository.ApplicationRepository, sr repository.SavedVacancyRepository) error {
		require.NoError(t, vr.IncrementApplications(ctx, "Go Lead"))
		require.NoError(t, ar.Create(ctx, &entity.Application{ID: "a1", UserID: "u1", VacancyID: "Go Lead", Status: entity.ApplicationStatusPending}))
		_, err := sr.Toggle(ctx, "u1", "Go Lead", time.Now())
		require.NoError(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	v, err := memory.NewVacancyRepository(s).GetByID(ctx, "Go Lead")
	require.NoError(t, err)
	assert.Equal(t, 0, v.ApplicationsCount)
	a, err := memory.NewApplicationRepository(s).GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Nil(t, a)
	assert.Equal(t, 0, s.SavedCount("u1", "Go Lead"))
}

func TestSearch_MasRecientePrimeroYPaginado(t *testing.T) {
	s := memory.New()
	seed(t, s)
	vr := memory.NewVacancyRepository(s)

	list, err := vr.Search(context.Background(), search.Criteria{}, 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Go Lead", list[0].ID)
	assert.Equal(t, "Acme", list[0].CompanyName)

	list, err = vr.Search(context.Background(), search.Criteria{Search: "go"}, 1, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Go Developer", list[0].ID)
}

func TestApplicationCreate_IndiceParcial(t *testing.T) {
	s := memory.New()
	ar := memory.NewApplicationRepository(s)
	ctx := context.Background()

	require.NoError(t, ar.Create(ctx, &entity.Application{ID: "a1", UserID: "u1", VacancyID: "v1", Status: entity.ApplicationStatusPending}))
	assert.ErrorIs(t, ar.Create(ctx, &entity.Application{ID: "a2", UserID: "u1", VacancyID: "v1", Status: entity.ApplicationStatusPending}), domain.ErrAlreadyApplied)

	require.NoError(t, ar.UpdateStatus(ctx, &entity.Application{ID: "a1", Status: entity.ApplicationStatusWithdrawn}))
	assert.NoError(t, ar.Create(ctx, &entity.Application{ID: "a3", UserID: "u1", VacancyID: "v1", Status: entity.ApplicationStatusPending}))
}

func TestResume_UnicoPrincipal(t *testing.T) {
	s := memory.New()
	rr := memory.NewResumeRepository(s)
	ctx := context.Background()

	require.NoError(t, rr.Create(ctx, &entity.Resume{ID: "r1", UserID: "u1", IsPrimary: true}))
	assert.ErrorIs(t, rr.Create(ctx, &entity.Resume{ID: "r2", UserID: "u1", IsPrimary: true}), domain.ErrConflict)
	require.NoError(t, rr.ClearPrimary(ctx, "u1"))
	assert.NoError(t, rr.Create(ctx, &entity.Resume{ID: "r2", UserID: "u1", IsPrimary: true}))

	p, err := rr.GetPrimary(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "r2", p.ID)
}

func TestPing_Caido(t *testing.T) {
	s := memory.New()
	assert.NoError(t, s.Ping(context.Background()))
	s.SetAvailable(false)
	assert.ErrorIs(t, s.Ping(context.Background()), domain.ErrUpstreamUnavailable)
}

// idEnBuffer simula un id de ruta sin copiar que apunta al buffer de la petición.
func idEnBuffer(buf []byte) string {
	return unsafe.String(&buf[0], len(buf))
}

func TestEscrituras_NoRetienenBufferDelLlamador(t *testing.T) {
	s := memory.New()
	seed(t, s)
	ctx := context.Background()
	vr := memory.NewVacancyRepository(s)
	sr := memory.NewSavedVacancyRepository(s)

	buf := []byte("Go Lead")
	require.NoError(t, vr.IncrementViews(ctx, idEnBuffer(buf)))
	require.NoError(t, vr.IncrementApplications(ctx, idEnBuffer(buf)))
	saved, err := sr.Toggle(ctx, idEnBuffer([]byte("u1")), idEnBuffer(buf), time.Now())
	require.NoError(t, err)
	require.True(t, saved)

	copy(buf, "XXXXXXX")

	v, err := vr.GetByID(ctx, "Go Lead")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 1, v.ViewsCount)
	assert.Equal(t, 1, v.ApplicationsCount)

	list, err := sr.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Go Lead", list[0].ID)
	assert.Equal(t, 1, s.SavedCount("u1", "Go Lead"))
}
