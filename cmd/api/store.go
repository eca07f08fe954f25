package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/jobboard-api/internal/application/auth"
	"github.com/jhoicas/jobboard-api/internal/application/usecase"
	"github.com/jhoicas/jobboard-api/internal/domain/repository"
	"github.com/jhoicas/jobboard-api/internal/infrastructure/memory"
	"github.com/jhoicas/jobboard-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/jobboard-api/internal/interfaces/http"
	"github.com/jhoicas/jobboard-api/pkg/config"
	"github.com/jhoicas/jobboard-api/pkg/logger"
)

// txRunner reúne los puertos transaccionales de todos los casos de uso.
type txRunner interface {
	usecase.TxRunner
	auth.AccountTxRunner
}

// storage adaptadores de persistencia elegidos por STORE_DRIVER.
type storage struct {
	tx           txRunner
	pinger       httpRouter.Pinger
	users        repository.UserRepository
	companies    repository.CompanyRepository
	vacancies    repository.VacancyRepository
	applications repository.ApplicationRepository
	saved        repository.SavedVacancyRepository
	resumes      repository.ResumeRepository
	analytics    repository.AnalyticsRepository
	close        func()
}

func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*storage, error) {
	switch cfg.App.StoreDriver {
	case config.StoreDriverMemory:
		s := memory.New()
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		return &storage{
			tx:           s,
			pinger:       s,
			users:        memory.NewUserRepository(s),
			companies:    memory.NewCompanyRepository(s),
			vacancies:    memory.NewVacancyRepository(s),
			applications: memory.NewApplicationRepository(s),
			saved:        memory.NewSavedVacancyRepository(s),
			resumes:      memory.NewResumeRepository(s),
			analytics:    memory.NewAnalyticsRepository(s),
			close:        s.Close,
		}, nil
	case config.StoreDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if cfg.DB.AutoMigrate {
			if err := postgres.Migrate(ctx, pool); err != nil {
				pool.Close()
				return nil, fmt.Errorf("migraciones: %w", err)
			}
			log.Info().Msg("migraciones aplicadas")
		}
		return &storage{
			tx:           postgres.NewTxRunner(pool),
			pinger:       pool,
			users:        postgres.NewUserRepository(pool),
			companies:    postgres.NewCompanyRepository(pool),
			vacancies:    postgres.NewVacancyRepository(pool),
			applications: postgres.NewApplicationRepository(pool),
			saved:        postgres.NewSavedVacancyRepository(pool),
			resumes:      postgres.NewResumeRepository(pool),
			analytics:    postgres.NewAnalyticsRepository(pool),
			close:        pool.Close,
		}, nil
	}
	return nil, fmt.Errorf("STORE_DRIVER desconocido: %q", cfg.App.StoreDriver)
}
