package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/jobboard-api/internal/application/auth"
	"github.com/jhoicas/jobboard-api/internal/application/recruitment"
	"github.com/jhoicas/jobboard-api/internal/application/usecase"
	"github.com/jhoicas/jobboard-api/internal/domain/repository"
)

var (
	_ recruitment.TxRunner  = (*TxRunner)(nil)
	_ usecase.TxRunner      = (*TxRunner)(nil)
	_ auth.AccountTxRunner = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// within abre la transacción, ejecuta fn y hace Commit; cualquier error deja la tx en Rollback.
func (r *TxRunner) within(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return wrapErr("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return wrapErr("commit transaction", err)
	}
	return nil
}

// Run inicia una transacción con repos de vacantes, postulaciones y guardados atados a la tx.
func (r *TxRunner) Run(ctx context.Context, fn func(
	vacancyRepo repository.VacancyRepository,
	applicationRepo repository.ApplicationRepository,
	savedRepo repository.SavedVacancyRepository,
) error) error {
	return r.within(ctx, func(tx pgx.Tx) error {
		return fn(NewVacancyRepository(tx), NewApplicationRepository(tx), NewSavedVacancyRepository(tx))
	})
}

// RunProfile transacción con el repositorio de CVs (cambio de CV principal).
func (r *TxRunner) RunProfile(ctx context.Context, fn func(resumeRepo repository.ResumeRepository) error) error {
	return r.within(ctx, func(tx pgx.Tx) error {
		return fn(NewResumeRepository(tx))
	})
}

// RunAccount transacción con usuarios y empresas (registro de empleador con empresa nueva).
func (r *TxRunner) RunAccount(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
) error) error {
	return r.within(ctx, func(tx pgx.Tx) error {
		if err := fn(NewUserRepository(tx), NewCompanyRepository(tx)); err != nil {
			return fmt.Errorf("registro: %w", err)
		}
		return nil
	})
}
