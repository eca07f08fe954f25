package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/domain/repository"
)

var _ repository.SavedVacancyRepository = (*SavedVacancyRepo)(nil)

// SavedVacancyRepo marcadores en memoria.
type SavedVacancyRepo struct {
	s    *Store
	inTx bool
}

// NewSavedVacancyRepository construye el adaptador de vacantes guardadas.
func NewSavedVacancyRepository(s *Store) *SavedVacancyRepo {
	return &SavedVacancyRepo{s: s}
}

// Toggle elimina o inserta el par bajo el mutex del almacén. La clave guarda copias propias
// de los ids: los que llegan de la ruta pueden apuntar al buffer de la petición.
func (r *SavedVacancyRepo) Toggle(_ context.Context, userID, vacancyID string, at time.Time) (bool, error) {
	defer r.s.acquire(r.inTx)()
	k := savedKey{userID: userID, vacancyID: vacancyID}
	if _, ok := r.s.t.saved[k]; ok {
		delete(r.s.t.saved, k)
		return false, nil
	}
	k = savedKey{userID: strings.Clone(userID), vacancyID: strings.Clone(vacancyID)}
	r.s.t.saved[k] = at
	return true, nil
}

// ListByUser devuelve las vacantes guardadas por el usuario, la guardada más recientemente primero.
func (r *SavedVacancyRepo) ListByUser(_ context.Context, userID string) ([]*entity.SavedVacancyListing, error) {
	defer r.s.acquire(r.inTx)()
	var out []*entity.SavedVacancyListing
	for k, at := range r.s.t.saved {
		if k.userID != userID {
			continue
		}
		v, ok := r.s.t.vacancies[k.vacancyID]
		if !ok {
			continue
		}
		out = append(out, &entity.SavedVacancyListing{VacancyListing: *r.s.listing(v), SavedAt: at})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SavedAt.Equal(out[j].SavedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].SavedAt.After(out[j].SavedAt)
	})
	return out, nil
}

// SavedCount número de marcadores del par (0 o 1).
func (s *Store) SavedCount(userID, vacancyID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.t.saved[savedKey{userID: userID, vacancyID: vacancyID}]; ok {
		return 1
	}
	return 0
}
