package postgres

import (
	"context"

	"github.com/jhoicas/jobboard-api/internal/domain"
	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/domain/repository"
)

var _ repository.ResumeRepository = (*ResumeRepo)(nil)

// ResumeRepo implementación del puerto ResumeRepository sobre PostgreSQL.
// El índice parcial resumes_primary_uniq admite un solo CV principal por usuario.
type ResumeRepo struct {
	q Querier
}

// NewResumeRepository construye el adaptador de CVs. Pasar pool o tx (Querier).
func NewResumeRepository(q Querier) *ResumeRepo {
	return &ResumeRepo{q: q}
}

const resumeColumns = `id, user_id, title, content, file_url, is_public, is_primary, created_at, updated_at`

// Create persiste un CV. Un segundo principal devuelve domain.ErrConflict.
func (r *ResumeRepo) Create(ctx context.Context, res *entity.Resume) error {
	query := `INSERT INTO resumes (` + resumeColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		res.ID, res.UserID, res.Title, res.Content, res.FileURL, res.IsPublic, res.IsPrimary,
		res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return wrapErr("insert resume", err)
	}
	return nil
}

// GetByID obtiene un CV por ID.
func (r *ResumeRepo) GetByID(ctx context.Context, id string) (*entity.Resume, error) {
	if !isUUID(id) {
		return nil, nil
	}
	return r.findOne(ctx, "get resume", `SELECT `+resumeColumns+` FROM resumes WHERE id = $1`, id)
}

// GetPrimary CV principal del usuario o (nil, nil).
func (r *ResumeRepo) GetPrimary(ctx context.Context, userID string) (*entity.Resume, error) {
	return r.findOne(ctx, "get primary resume", `SELECT `+resumeColumns+` FROM resumes WHERE user_id = $1 AND is_primary`, userID)
}

func (r *ResumeRepo) findOne(ctx context.Context, op, query, arg string) (*entity.Resume, error) {
	var res entity.Resume
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&res.ID, &res.UserID, &res.Title, &res.Content, &res.FileURL, &res.IsPublic, &res.IsPrimary,
		&res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrapErr(op, err)
	}
	return &res, nil
}

// Update actualiza un CV.
func (r *ResumeRepo) Update(ctx context.Context, res *entity.Resume) error {
	query := `
		UPDATE resumes SET title = $2, content = $3, file_url = $4, is_public = $5, is_primary = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		res.ID, res.Title, res.Content, res.FileURL, res.IsPublic, res.IsPrimary, res.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return wrapErr("update resume", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un CV. Las postulaciones que lo referencian quedan sin CV (ON DELETE SET NULL).
func (r *ResumeRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id); err != nil {
		return wrapErr("delete resume", err)
	}
	return nil
}

// ListByUser CVs del usuario, el más reciente primero.
func (r *ResumeRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Resume, error) {
	rows, err := r.q.Query(ctx, `SELECT `+resumeColumns+` FROM resumes WHERE user_id = $1 ORDER BY created_at DESC, id`, userID)
	if err != nil {
		return nil, wrapErr("list resumes", err)
	}
	defer rows.Close()

	var list []*entity.Resume
	for rows.Next() {
		var res entity.Resume
		if err := rows.Scan(
			&res.ID, &res.UserID, &res.Title, &res.Content, &res.FileURL, &res.IsPublic, &res.IsPrimary,
			&res.CreatedAt, &res.UpdatedAt,
		); err != nil {
			return nil, wrapErr("scan resume", err)
		}
		list = append(list, &res)
	}
	return list, rows.Err()
}

// ClearPrimary quita la marca de principal a todos los CVs del usuario.
func (r *ResumeRepo) ClearPrimary(ctx context.Context, userID string) error {
	if _, err := r.q.Exec(ctx, `UPDATE resumes SET is_primary = false WHERE user_id = $1 AND is_primary`, userID); err != nil {
		return wrapErr("clear primary resume", err)
	}
	return nil
}
