package hiring_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/jobboard-api/internal/domain"
	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/domain/hiring"
)

var (
	now       = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	applicant = entity.Actor{UserID: "u1", Role: entity.RoleJobSeeker}
	owner     = entity.Actor{UserID: "e1", Role: entity.RoleEmployer, CompanyID: "c1"}
	stranger  = entity.Actor{UserID: "e2", Role: entity.RoleEmployer, CompanyID: "c2"}
	admin     = entity.Actor{UserID: "a1", Role: entity.RoleAdmin}
)

func app(status string) *entity.Application {
	return &entity.Application{ID: "app1", UserID: "u1", VacancyID: "v1", Status: status}
}

func TestTransition_Tabla(t *testing.T) {
	tests := []struct {
		from, to string
		actor    entity.Actor
		wantErr  error
	}{
		{entity.ApplicationStatusPending, entity.ApplicationStatusReviewing, owner, nil},
		{entity.ApplicationStatusPending, entity.ApplicationStatusAccepted, admin, nil},
		{entity.ApplicationStatusPending, entity.ApplicationStatusRejected, owner, nil},
		{entity.ApplicationStatusReviewing, entity.ApplicationStatusReviewing, owner, nil},
		{entity.ApplicationStatusReviewing, entity.ApplicationStatusAccepted, owner, nil},
		{entity.ApplicationStatusPending, entity.ApplicationStatusWithdrawn, applicant, nil},
		{entity.ApplicationStatusReviewing, entity.ApplicationStatusWithdrawn, applicant, nil},

		{entity.ApplicationStatusAccepted, entity.ApplicationStatusPending, owner, domain.ErrInvalidTransition},
		{entity.ApplicationStatusReviewing, entity.ApplicationStatusPending, owner, domain.ErrInvalidTransition},
		{entity.ApplicationStatusPending, entity.ApplicationStatusPending, owner, domain.ErrInvalidTransition},
		{entity.ApplicationStatusRejected, entity.ApplicationStatusWithdrawn, applicant, domain.ErrInvalidTransition},
		{entity.ApplicationStatusAccepted, entity.ApplicationStatusWithdrawn, applicant, domain.ErrInvalidTransition},

		{entity.ApplicationStatusPending, entity.ApplicationStatusReviewing, stranger, domain.ErrForbidden},
		{entity.ApplicationStatusPending, entity.ApplicationStatusAccepted, applicant, domain.ErrForbidden},
		{entity.ApplicationStatusPending, entity.ApplicationStatusWithdrawn, owner, domain.ErrForbidden},
		{entity.ApplicationStatusPending, entity.ApplicationStatusWithdrawn, admin, domain.ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to+"/"+tt.actor.Role, func(t *testing.T) {
			a := app(tt.from)
			err := hiring.Transition(a, tt.to, tt.actor, "c1", now)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.to, a.Status)
				assert.Equal(t, now, a.UpdatedAt)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.from, a.Status, "el estado no cambia si la transición falla")
		})
	}
}

func TestTransition_RetiradaEsTerminalAbsoluta(t *testing.T) {
	for _, to := range []string{
		entity.ApplicationStatusPending, entity.ApplicationStatusReviewing, entity.ApplicationStatusAccepted,
		entity.ApplicationStatusRejected, entity.ApplicationStatusWithdrawn,
	} {
		for _, actor := range []entity.Actor{applicant, owner, admin} {
			err := hiring.Transition(app(entity.ApplicationStatusWithdrawn), to, actor, "c1", now)
			assert.ErrorIs(t, err, domain.ErrInvalidTransition, "to=%s actor=%s", to, actor.Role)
		}
	}
	assert.True(t, hiring.IsTerminal(entity.ApplicationStatusWithdrawn))
	assert.True(t, hiring.IsTerminal(entity.ApplicationStatusAccepted))
	assert.False(t, hiring.IsTerminal(entity.ApplicationStatusReviewing))
}

func TestTransition_ErrorNombraEstados(t *testing.T) {
	err := hiring.Transition(app(entity.ApplicationStatusAccepted), entity.ApplicationStatusPending, owner, "c1", now)
	var te *domain.TransitionError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, entity.ApplicationStatusAccepted, te.From)
	assert.Equal(t, entity.ApplicationStatusPending, te.To)
	assert.Contains(t, err.Error(), "accepted")
	assert.Contains(t, err.Error(), "pending")
}

func TestTransition_EstadoDesconocido(t *testing.T) {
	err := hiring.Transition(app(entity.ApplicationStatusPending), "hired", owner, "c1", now)
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields, "status")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCheckApply(t *testing.T) {
	active := &entity.Vacancy{ID: "v1", Status: entity.VacancyStatusActive}
	closed := &entity.Vacancy{ID: "v1", Status: entity.VacancyStatusClosed}
	past := now.Add(-time.Hour)
	expired := &entity.Vacancy{ID: "v1", Status: entity.VacancyStatusActive, Deadline: &past}

	assert.NoError(t, hiring.CheckApply(applicant, active, false, now))
	assert.ErrorIs(t, hiring.CheckApply(owner, active, false, now), domain.ErrForbidden)
	assert.ErrorIs(t, hiring.CheckApply(applicant, nil, false, now), domain.ErrNotFound)
	assert.ErrorIs(t, hiring.CheckApply(applicant, closed, false, now), domain.ErrVacancyNotActive)
	assert.ErrorIs(t, hiring.CheckApply(applicant, expired, false, now), domain.ErrVacancyNotActive)
	assert.ErrorIs(t, hiring.CheckApply(applicant, active, true, now), domain.ErrAlreadyApplied)
}
