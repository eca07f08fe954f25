package postgres

import (
	"context"

	"github.com/jhoicas/jobboard-api/internal/domain"
	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/domain/repository"
)

var _ repository.ApplicationRepository = (*ApplicationRepo)(nil)

// ApplicationRepo implementación del puerto ApplicationRepository sobre PostgreSQL.
// La unicidad (user_id, vacancy_id) de las postulaciones no retiradas la garantiza el índice
// parcial applications_active_uniq.
type ApplicationRepo struct {
	q Querier
}

// NewApplicationRepository construye el adaptador de postulaciones. Pasar pool o tx (Querier).
func NewApplicationRepository(q Querier) *ApplicationRepo {
	return &ApplicationRepo{q: q}
}

const applicationColumns = `a.id, a.user_id, a.vacancy_id, COALESCE(a.resume_id::text, ''), a.cover_letter,
	a.status, a.created_at, a.updated_at`

// Create persiste una postulación. La violación del índice parcial devuelve domain.ErrAlreadyApplied.
func (r *ApplicationRepo) Create(ctx context.Context, a *entity.Application) error {
	query := `
		INSERT INTO applications (id, user_id, vacancy_id, resume_id, cover_letter, status, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, '')::uuid, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.UserID, a.VacancyID, a.ResumeID, a.CoverLetter, a.Status, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyApplied
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return wrapErr("insert application", err)
	}
	return nil
}

// GetByID obtiene una postulación por ID.
func (r *ApplicationRepo) GetByID(ctx context.Context, id string) (*entity.Application, error) {
	return r.findOne(ctx, "get application", `SELECT `+applicationColumns+` FROM applications a WHERE a.id = $1`, id)
}

// GetForUpdate bloquea la fila de la postulación hasta el fin de la tx.
func (r *ApplicationRepo) GetForUpdate(ctx context.Context, id string) (*entity.Application, error) {
	return r.findOne(ctx, "lock application", `SELECT `+applicationColumns+` FROM applications a WHERE a.id = $1 FOR UPDATE`, id)
}

func (r *ApplicationRepo) findOne(ctx context.Context, op, query, id string) (*entity.Application, error) {
	if !isUUID(id) {
		return nil, nil
	}
	var a entity.Application
	err := r.q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.UserID, &a.VacancyID, &a.ResumeID, &a.CoverLetter, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrapErr(op, err)
	}
	return &a, nil
}

// HasActive indica si el par tiene una postulación no retirada.
func (r *ApplicationRepo) HasActive(ctx context.Context, userID, vacancyID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM applications
			WHERE user_id = $1 AND vacancy_id = $2 AND status <> 'withdrawn'
		)`, userID, vacancyID).Scan(&exists)
	if err != nil {
		return false, wrapErr("check active application", err)
	}
	return exists, nil
}

// UpdateStatus persiste estado y updated_at.
func (r *ApplicationRepo) UpdateStatus(ctx context.Context, a *entity.Application) error {
	tag, err := r.q.Exec(ctx, `UPDATE applications SET status = $2, updated_at = $3 WHERE id = $1`,
		a.ID, a.Status, a.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyApplied
		}
		return wrapErr("update application status", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

const applicationWhere = `
		WHERE ($1::text = '' OR a.user_id::text = $1)
		  AND ($2::text = '' OR a.vacancy_id::text = $2)
		  AND ($3::text = '' OR v.company_id::text = $3)`

// List postulaciones con datos de vacante, empresa y candidato; la más reciente primero.
func (r *ApplicationRepo) List(ctx context.Context, f repository.ApplicationFilter) ([]*entity.ApplicationListing, error) {
	query := `
		SELECT ` + applicationColumns + `, v.title, v.company_id, c.name,
			trim(u.first_name || ' ' || u.last_name), u.email
		FROM applications a
		JOIN vacancies v ON v.id = a.vacancy_id
		JOIN companies c ON c.id = v.company_id
		JOIN users u ON u.id = a.user_id` + applicationWhere + `
		ORDER BY a.created_at DESC, a.id
		LIMIT NULLIF($4, 0) OFFSET $5`
	rows, err := r.q.Query(ctx, query, f.UserID, f.VacancyID, f.CompanyID, f.Limit, f.Offset)
	if err != nil {
		return nil, wrapErr("list applications", err)
	}
	defer rows.Close()

	var list []*entity.ApplicationListing
	for rows.Next() {
		var l entity.ApplicationListing
		if err := rows.Scan(
			&l.ID, &l.UserID, &l.VacancyID, &l.ResumeID, &l.CoverLetter, &l.Status, &l.CreatedAt, &l.UpdatedAt,
			&l.VacancyTitle, &l.CompanyID, &l.CompanyName, &l.ApplicantName, &l.ApplicantEmail,
		); err != nil {
			return nil, wrapErr("scan application", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Count número de postulaciones que cumplen el filtro; ignora Limit y Offset.
func (r *ApplicationRepo) Count(ctx context.Context, f repository.ApplicationFilter) (int, error) {
	query := `SELECT count(*) FROM applications a JOIN vacancies v ON v.id = a.vacancy_id` + applicationWhere
	var n int
	if err := r.q.QueryRow(ctx, query, f.UserID, f.VacancyID, f.CompanyID).Scan(&n); err != nil {
		return 0, wrapErr("count applications", err)
	}
	return n, nil
}
