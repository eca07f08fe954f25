package entity

import "time"

// Roles válidos para User.
const (
	RoleJobSeeker = "job_seeker"
	RoleEmployer  = "employer"
	RoleAdmin     = "admin"
)

// Estados de cuenta.
const (
	UserStatusActive    = "active"
	UserStatusSuspended = "suspended"
)

// User representa una cuenta del portal. El rol no cambia después del registro.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName    string
	LastName     string
	Phone        string
	Role         string // job_seeker, employer, admin
	CompanyID    string // solo empleadores; vacío en otro caso
	Status       string // active, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName nombre para mostrar.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// ValidRole indica si role es uno de los roles del sistema.
func ValidRole(role string) bool {
	switch role {
	case RoleJobSeeker, RoleEmployer, RoleAdmin:
		return true
	}
	return false
}
