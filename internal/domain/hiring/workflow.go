// Package hiring contiene la máquina de estados de las postulaciones y las precondiciones para postular.
package hiring

import (
	"time"

	"github.com/jhoicas/jobboard-api/internal/domain"
	"github.com/jhoicas/jobboard-api/internal/domain/entity"
)

// side quién puede ejecutar una transición.
type side int

const (
	sideManager   side = iota + 1 // empleador dueño de la vacante o admin
	sideApplicant                 // el candidato que postuló
)

// transitions origen -> destino -> quién. Lo que no figura aquí no está permitido.
var transitions = map[string]map[string]side{
	entity.ApplicationStatusPending: {
		entity.ApplicationStatusReviewing: sideManager,
		entity.ApplicationStatusAccepted:  sideManager,
		entity.ApplicationStatusRejected:  sideManager,
		entity.ApplicationStatusWithdrawn: sideApplicant,
	},
	entity.ApplicationStatusReviewing: {
		entity.ApplicationStatusReviewing: sideManager,
		entity.ApplicationStatusAccepted:  sideManager,
		entity.ApplicationStatusRejected:  sideManager,
		entity.ApplicationStatusWithdrawn: sideApplicant,
	},
}

// IsTerminal indica si desde status no sale ninguna transición.
func IsTerminal(status string) bool {
	_, ok := transitions[status]
	return !ok
}

// CanTransition indica si el par (from, to) está en la tabla, sin considerar al actor.
func CanTransition(from, to string) bool {
	_, ok := transitions[from][to]
	return ok
}

// Transition valida y aplica el cambio de estado de app.
// vacancyCompanyID es la empresa dueña de la vacante de la postulación.
//
// Orden de validación: estado destino desconocido -> ValidationError; par fuera de la tabla ->
// TransitionError; actor sin permiso para ese par -> ErrForbidden.
func Transition(app *entity.Application, to string, actor entity.Actor, vacancyCompanyID string, now time.Time) error {
	if !entity.ValidApplicationStatus(to) {
		return domain.NewValidationError("status", "estado desconocido: "+to)
	}
	who, ok := transitions[app.Status][to]
	if !ok {
		return &domain.TransitionError{From: app.Status, To: to}
	}
	switch who {
	case sideManager:
		if !actor.ManagesCompany(vacancyCompanyID) {
			return domain.ErrForbidden
		}
	case sideApplicant:
		if actor.UserID == "" || actor.UserID != app.UserID {
			return domain.ErrForbidden
		}
	}
	app.Status = to
	app.UpdatedAt = now
	return nil
}

// CheckApply verifica las precondiciones para crear una postulación.
// hasActive indica si el candidato ya tiene una postulación no retirada para la vacante.
func CheckApply(actor entity.Actor, vacancy *entity.Vacancy, hasActive bool, now time.Time) error {
	if !actor.IsJobSeeker() {
		return domain.ErrForbidden
	}
	if vacancy == nil {
		return domain.ErrNotFound
	}
	if !vacancy.AcceptsApplications(now) {
		return domain.ErrVacancyNotActive
	}
	if hasActive {
		return domain.ErrAlreadyApplied
	}
	return nil
}
