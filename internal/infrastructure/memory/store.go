// Package memory implementa todos los puertos de repositorio sobre mapas en memoria.
// Se usa con STORE_DRIVER=memory y en las pruebas de casos de uso y HTTP.
package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jhoicas/jobboard-api/internal/domain"
	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/domain/repository"
)

type savedKey struct {
	userID    string
	vacancyID string
}

// tables estado completo del almacén. Las entidades se guardan por valor y cada slice *Order
// conserva el orden de inserción.
type tables struct {
	users        map[string]entity.User
	companies    map[string]entity.Company
	vacancies    map[string]entity.Vacancy
	applications map[string]entity.Application
	resumes      map[string]entity.Resume
	saved        map[savedKey]time.Time

	vacancyOrder     []string
	applicationOrder []string
	resumeOrder      []string
	companyOrder     []string
}

func newTables() tables {
	return tables{
		users:        make(map[string]entity.User),
		companies:    make(map[string]entity.Company),
		vacancies:    make(map[string]entity.Vacancy),
		applications: make(map[string]entity.Application),
		resumes:      make(map[string]entity.Resume),
		saved:        make(map[savedKey]time.Time),
	}
}

func (t tables) clone() tables {
	c := newTables()
	for k, v := range t.users {
		c.users[k] = v
	}
	for k, v := range t.companies {
		c.companies[k] = v
	}
	for k, v := range t.vacancies {
		c.vacancies[k] = v
	}
	for k, v := range t.applications {
		c.applications[k] = v
	}
	for k, v := range t.resumes {
		c.resumes[k] = v
	}
	for k, v := range t.saved {
		c.saved[k] = v
	}
	c.vacancyOrder = append([]string(nil), t.vacancyOrder...)
	c.applicationOrder = append([]string(nil), t.applicationOrder...)
	c.resumeOrder = append([]string(nil), t.resumeOrder...)
	c.companyOrder = append([]string(nil), t.companyOrder...)
	return c
}

// Store almacén en memoria con un único mutex. Las transacciones toman el mutex completo
// (aislamiento serializable) y restauran una copia del estado si fn falla.
type Store struct {
	mu   sync.Mutex
	t    tables
	down atomic.Bool
}

// New crea un almacén vacío.
func New() *Store {
	return &Store{t: newTables()}
}

// acquire toma el mutex salvo que el repositorio ya opere dentro de una transacción.
func (s *Store) acquire(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// SetAvailable simula la caída (false) o recuperación (true) del almacenamiento.
func (s *Store) SetAvailable(ok bool) {
	s.down.Store(!ok)
}

// Ping falla con domain.ErrUpstreamUnavailable si el almacén fue marcado como caído.
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.down.Load() {
		return domain.ErrUpstreamUnavailable
	}
	return nil
}

// Close no libera recursos; existe por simetría con el pool de Postgres.
func (s *Store) Close() {}

func (s *Store) transact(ctx context.Context, fn func() error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.down.Load() {
		return domain.ErrUpstreamUnavailable
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.t.clone()
	committed := false
	defer func() {
		if !committed {
			s.t = snapshot
		}
	}()
	if err := fn(); err != nil {
		return err
	}
	committed = true
	return nil
}

// Run ejecuta fn con repositorios de vacantes, postulaciones y guardados atados a la transacción.
func (s *Store) Run(ctx context.Context, fn func(
	vacancyRepo repository.VacancyRepository,
	applicationRepo repository.ApplicationRepository,
	savedRepo repository.SavedVacancyRepository,
) error) error {
	return s.transact(ctx, func() error {
		return fn(
			&VacancyRepo{s: s, inTx: true},
			&ApplicationRepo{s: s, inTx: true},
			&SavedVacancyRepo{s: s, inTx: true},
		)
	})
}

// RunProfile ejecuta fn con el repositorio de CVs atado a la transacción.
func (s *Store) RunProfile(ctx context.Context, fn func(resumeRepo repository.ResumeRepository) error) error {
	return s.transact(ctx, func() error {
		return fn(&ResumeRepo{s: s, inTx: true})
	})
}

// RunAccount ejecuta fn con los repositorios de usuarios y empresas atados a la transacción.
func (s *Store) RunAccount(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
) error) error {
	return s.transact(ctx, func() error {
		return fn(&UserRepo{s: s, inTx: true}, &CompanyRepo{s: s, inTx: true})
	})
}

// window aplica offset y limit (limit <= 0 = sin límite) sobre n elementos.
func window(n, limit, offset int) (from, to int) {
	if offset < 0 {
		offset = 0
	}
	if offset > n {
		offset = n
	}
	to = n
	if limit > 0 && offset+limit < n {
		to = offset + limit
	}
	return offset, to
}
