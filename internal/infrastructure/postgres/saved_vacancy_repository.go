package postgres

import (
	"context"
	"time"

	"github.com/jhoicas/jobboard-api/internal/domain"
	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/domain/repository"
)

var _ repository.SavedVacancyRepository = (*SavedVacancyRepo)(nil)

// SavedVacancyRepo implementación del puerto SavedVacancyRepository sobre PostgreSQL.
type SavedVacancyRepo struct {
	q Querier
}

// NewSavedVacancyRepository construye el adaptador de vacantes guardadas. Pasar pool o tx (Querier).
func NewSavedVacancyRepository(q Querier) *SavedVacancyRepo {
	return &SavedVacancyRepo{q: q}
}

// Toggle serializa el par con pg_advisory_xact_lock y luego borra si existe o inserta si no.
// Debe llamarse dentro de una transacción: el lock se libera en el commit o rollback.
func (r *SavedVacancyRepo) Toggle(ctx context.Context, userID, vacancyID string, at time.Time) (bool, error) {
	if !isUUID(userID) || !isUUID(vacancyID) {
		return false, domain.ErrNotFound
	}
	if _, err := r.q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1::text || ':' || $2::text))`, userID, vacancyID); err != nil {
		return false, wrapErr("lock saved vacancy", err)
	}

	tag, err := r.q.Exec(ctx, `DELETE FROM saved_vacancies WHERE user_id = $1 AND vacancy_id = $2`, userID, vacancyID)
	if err != nil {
		return false, wrapErr("delete saved vacancy", err)
	}
	if tag.RowsAffected() > 0 {
		return false, nil
	}

	_, err = r.q.Exec(ctx, `
		INSERT INTO saved_vacancies (user_id, vacancy_id, created_at) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, vacancy_id) DO NOTHING`, userID, vacancyID, at)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, domain.ErrNotFound
		}
		return false, wrapErr("insert saved vacancy", err)
	}
	return true, nil
}

// ListByUser vacantes guardadas con datos de su empresa, la guardada más recientemente primero.
func (r *SavedVacancyRepo) ListByUser(ctx context.Context, userID string) ([]*entity.SavedVacancyListing, error) {
	query := `SELECT ` + vacancyColumns + `, c.name, c.logo, s.created_at
		FROM saved_vacancies s
		JOIN vacancies v ON v.id = s.vacancy_id
		JOIN companies c ON c.id = v.company_id
		WHERE s.user_id = $1
		ORDER BY s.created_at DESC, v.id`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, wrapErr("list saved vacancies", err)
	}
	defer rows.Close()

	var list []*entity.SavedVacancyListing
	for rows.Next() {
		var l entity.SavedVacancyListing
		if err := scanVacancy(rows, &l.Vacancy, &l.CompanyName, &l.CompanyLogo, &l.SavedAt); err != nil {
			return nil, wrapErr("scan saved vacancy", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
