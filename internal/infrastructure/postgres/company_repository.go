package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/jobboard-api/internal/domain"
	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `c.id, c.name, c.slug, c.description, c.logo, c.website, c.location, c.industry,
	c.employee_count, c.rating, c.created_at, c.updated_at`

// activeVacanciesExpr conteo derivado; nunca se almacena.
const activeVacanciesExpr = `(SELECT COUNT(*) FROM vacancies v WHERE v.company_id = c.id AND v.status = 'active')`

// Create persiste una nueva empresa. Un slug repetido devuelve domain.ErrDuplicate.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, slug, description, logo, website, location, industry, employee_count, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Slug, c.Description, c.Logo, c.Website, c.Location, c.Industry,
		c.EmployeeCount, c.Rating, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return wrapErr("insert company", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	if !isUUID(id) {
		return nil, nil
	}
	d, err := r.findDetail(ctx, "get company by id", `c.id = $1`, id)
	if d == nil || err != nil {
		return nil, err
	}
	return &d.Company, nil
}

// GetBySlug obtiene una empresa por slug.
func (r *CompanyRepo) GetBySlug(ctx context.Context, slug string) (*entity.Company, error) {
	d, err := r.findDetail(ctx, "get company by slug", `c.slug = $1`, slug)
	if d == nil || err != nil {
		return nil, err
	}
	return &d.Company, nil
}

// GetDetail empresa con su conteo de vacantes activas.
func (r *CompanyRepo) GetDetail(ctx context.Context, id string) (*entity.CompanyDetail, error) {
	if !isUUID(id) {
		return nil, nil
	}
	return r.findDetail(ctx, "get company detail", `c.id = $1`, id)
}

func (r *CompanyRepo) findDetail(ctx context.Context, op, where, arg string) (*entity.CompanyDetail, error) {
	query := `SELECT ` + companyColumns + `, ` + activeVacanciesExpr + ` FROM companies c WHERE ` + where
	d, err := scanCompanyDetail(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrapErr(op, err)
	}
	return d, nil
}

// Update actualiza el perfil. El slug se recalcula en el caso de uso.
func (r *CompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, slug = $3, description = $4, logo = $5, website = $6,
			location = $7, industry = $8, employee_count = $9, rating = $10, updated_at = $11
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Slug, c.Description, c.Logo, c.Website, c.Location, c.Industry,
		c.EmployeeCount, c.Rating, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return wrapErr("update company", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List empresas, la más reciente primero. limit 0 = sin límite.
func (r *CompanyRepo) List(ctx context.Context, limit, offset int) ([]*entity.CompanyDetail, error) {
	query := `SELECT ` + companyColumns + `, ` + activeVacanciesExpr + `
		FROM companies c ORDER BY c.created_at DESC LIMIT NULLIF($1, 0) OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, wrapErr("list companies", err)
	}
	defer rows.Close()

	var list []*entity.CompanyDetail
	for rows.Next() {
		d, err := scanCompanyDetail(rows)
		if err != nil {
			return nil, wrapErr("scan company", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Count número de empresas registradas.
func (r *CompanyRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM companies`).Scan(&n); err != nil {
		return 0, wrapErr("count companies", err)
	}
	return n, nil
}

func scanCompanyDetail(row pgx.Row) (*entity.CompanyDetail, error) {
	var d entity.CompanyDetail
	err := row.Scan(
		&d.ID, &d.Name, &d.Slug, &d.Description, &d.Logo, &d.Website, &d.Location, &d.Industry,
		&d.EmployeeCount, &d.Rating, &d.CreatedAt, &d.UpdatedAt, &d.ActiveVacancies,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
