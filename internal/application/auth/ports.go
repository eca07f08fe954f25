package auth

import (
	"context"

	"github.com/jhoicas/jobboard-api/internal/domain/repository"
)

// AccountTxRunner registra usuario y empresa en una misma transacción.
type AccountTxRunner interface {
	RunAccount(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		companyRepo repository.CompanyRepository,
	) error) error
}
