package memory

import (
	"context"
	"strings"

	"github.com/jhoicas/jobboard-api/internal/domain"
	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios en memoria. El email es único sin distinguir mayúsculas.
type UserRepo struct {
	s    *Store
	inTx bool
}

// NewUserRepository construye el adaptador de usuarios.
func NewUserRepository(s *Store) *UserRepo {
	return &UserRepo{s: s}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	defer r.s.acquire(r.inTx)()
	for _, u := range r.s.t.users {
		if strings.EqualFold(u.Email, user.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.s.t.users[user.ID] = *user
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	defer r.s.acquire(r.inTx)()
	u, ok := r.s.t.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	defer r.s.acquire(r.inTx)()
	for _, u := range r.s.t.users {
		if strings.EqualFold(u.Email, email) {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

// Update actualiza datos de perfil y estado; el rol no cambia.
func (r *UserRepo) Update(_ context.Context, user *entity.User) error {
	defer r.s.acquire(r.inTx)()
	cur, ok := r.s.t.users[user.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cur.FirstName = user.FirstName
	cur.LastName = user.LastName
	cur.Phone = user.Phone
	cur.PasswordHash = user.PasswordHash
	cur.CompanyID = user.CompanyID
	cur.Status = user.Status
	cur.UpdatedAt = user.UpdatedAt
	r.s.t.users[user.ID] = cur
	return nil
}
