package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/jobboard-api/internal/application/dto"
	"github.com/jhoicas/jobboard-api/internal/application/usecase"
	"github.com/jhoicas/jobboard-api/internal/domain"
	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/domain/repository"
	"github.com/jhoicas/jobboard-api/pkg/jwt"
	"github.com/jhoicas/jobboard-api/pkg/sanitize"
)

// TokenSigner emite el token de sesión del login. *jwt.Signer lo implementa.
type TokenSigner interface {
	Sign(id jwt.Identity) (string, error)
}

// AuthUseCase casos de uso de autenticación: registro, login y perfil.
type AuthUseCase struct {
	txRunner AccountTxRunner
	userRepo repository.UserRepository
	tokens   TokenSigner
	cost     int
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(txRunner AccountTxRunner, userRepo repository.UserRepository, tokens TokenSigner) *AuthUseCase {
	return &AuthUseCase{txRunner: txRunner, userRepo: userRepo, tokens: tokens, cost: bcrypt.DefaultCost}
}

// WithBcryptCost cambia el costo de bcrypt (las pruebas usan bcrypt.MinCost).
func (uc *AuthUseCase) WithBcryptCost(cost int) *AuthUseCase {
	uc.cost = cost
	return uc
}

// Register crea una cuenta de candidato o de empleador. El empleador crea su empresa (company_name)
// o se une a una existente (company_id). Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if in.Role == entity.RoleEmployer && in.CompanyName == "" && in.CompanyID == "" {
		return nil, domain.NewValidationError("company_name", "obligatorio para empleadores")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    sanitize.PlainText(in.FirstName),
		LastName:     sanitize.PlainText(in.LastName),
		Phone:        sanitize.PlainText(in.Phone),
		Role:         in.Role,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.txRunner.RunAccount(ctx, func(userRepo repository.UserRepository, companyRepo repository.CompanyRepository) error {
		existing, err := userRepo.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrEmailAlreadyExists
		}
		if in.Role == entity.RoleEmployer {
			companyID, err := uc.employerCompany(ctx, companyRepo, in, now)
			if err != nil {
				return err
			}
			user.CompanyID = companyID
		}
		return userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromUser(user)
	return &out, nil
}

func (uc *AuthUseCase) employerCompany(ctx context.Context, companyRepo repository.CompanyRepository, in dto.RegisterRequest, now time.Time) (string, error) {
	if in.CompanyID != "" {
		company, err := companyRepo.GetByID(ctx, in.CompanyID)
		if err != nil {
			return "", err
		}
		if company == nil {
			return "", domain.NewValidationError("company_id", "la empresa no existe")
		}
		return company.ID, nil
	}
	company := usecase.NewCompany(dto.CreateCompanyRequest{Name: in.CompanyName}, now)
	if company.Slug == "" {
		return "", domain.NewValidationError("company_name", "el nombre no genera un identificador válido")
	}
	if err := companyRepo.Create(ctx, company); err != nil {
		return "", err
	}
	return company.ID, nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Email desconocido y password incorrecto devuelven el mismo error.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if user.Status != entity.UserStatusActive {
		return nil, domain.ErrForbidden
	}
	token, err := uc.tokens.Sign(jwt.Identity{UserID: user.ID, Role: user.Role, CompanyID: user.CompanyID})
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  dto.FromUser(user),
	}, nil
}

// Me devuelve el usuario autenticado.
func (uc *AuthUseCase) Me(ctx context.Context, actor entity.Actor) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	out := dto.FromUser(user)
	return &out, nil
}
