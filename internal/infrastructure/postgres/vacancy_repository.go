package postgres

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/jobboard-api/internal/domain"
	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/domain/repository"
	"github.com/jhoicas/jobboard-api/internal/domain/search"
)

var _ repository.VacancyRepository = (*VacancyRepo)(nil)

// VacancyRepo implementación del puerto VacancyRepository sobre PostgreSQL.
type VacancyRepo struct {
	q Querier
}

// NewVacancyRepository construye el adaptador de vacantes. Pasar pool o tx (Querier).
func NewVacancyRepository(q Querier) *VacancyRepo {
	return &VacancyRepo{q: q}
}

const vacancyColumns = `v.id, v.company_id, v.title, v.description, v.salary_min, v.salary_max, v.currency,
	v.location, v.employment_type, v.level, v.skills, v.status, v.applications_count, v.views_count,
	v.deadline, v.created_at, v.updated_at`

const vacancyListingFrom = `SELECT ` + vacancyColumns + `, c.name, c.logo
	FROM vacancies v JOIN companies c ON c.id = v.company_id`

// Create persiste una vacante. Si la empresa no existe devuelve domain.ErrNotFound.
func (r *VacancyRepo) Create(ctx context.Context, v *entity.Vacancy) error {
	query := `
		INSERT INTO vacancies (id, company_id, title, description, salary_min, salary_max, currency, location,
			employment_type, level, skills, status, applications_count, views_count, deadline, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 0, 0, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		v.ID, v.CompanyID, v.Title, v.Description, v.SalaryMin, v.SalaryMax, v.Currency, v.Location,
		v.EmploymentType, v.Level, skillsOrEmpty(v.Skills), v.Status, v.Deadline, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		if isCheckViolation(err) {
			return vacancyCheckError(err)
		}
		return wrapErr("insert vacancy", err)
	}
	return nil
}

// GetByID obtiene la vacante con nombre y logo de su empresa.
func (r *VacancyRepo) GetByID(ctx context.Context, id string) (*entity.VacancyListing, error) {
	if !isUUID(id) {
		return nil, nil
	}
	l, err := scanVacancyListing(r.q.QueryRow(ctx, vacancyListingFrom+` WHERE v.id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrapErr("get vacancy", err)
	}
	return l, nil
}

// GetForUpdate lee la vacante con SELECT ... FOR UPDATE; solo tiene efecto dentro de una tx.
func (r *VacancyRepo) GetForUpdate(ctx context.Context, id string) (*entity.Vacancy, error) {
	if !isUUID(id) {
		return nil, nil
	}
	var v entity.Vacancy
	err := scanVacancy(r.q.QueryRow(ctx, `SELECT `+vacancyColumns+` FROM vacancies v WHERE v.id = $1 FOR UPDATE`, id), &v)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrapErr("lock vacancy", err)
	}
	return &v, nil
}

// Update reemplaza los campos editables. company_id y los contadores no se tocan.
func (r *VacancyRepo) Update(ctx context.Context, v *entity.Vacancy) error {
	query := `
		UPDATE vacancies SET title = $2, description = $3, salary_min = $4, salary_max = $5, currency = $6,
			location = $7, employment_type = $8, level = $9, skills = $10, status = $11, deadline = $12,
			updated_at = $13
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		v.ID, v.Title, v.Description, v.SalaryMin, v.SalaryMax, v.Currency, v.Location,
		v.EmploymentType, v.Level, skillsOrEmpty(v.Skills), v.Status, v.Deadline, v.UpdatedAt,
	)
	if err != nil {
		if isCheckViolation(err) {
			return vacancyCheckError(err)
		}
		return wrapErr("update vacancy", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// vacancyCheckError traduce un CHECK de vacancies al campo que lo incumple.
func vacancyCheckError(err error) error {
	name := constraintName(err)
	if name == "vacancies_salary_range" {
		return domain.NewValidationError("salary_max", "debe ser mayor o igual que salary_min")
	}
	field := strings.TrimSuffix(strings.TrimPrefix(name, "vacancies_"), "_check")
	if field == "" || field == name {
		field = "vacancy"
	}
	return domain.NewValidationError(field, "valor no permitido")
}

// searchWhere traduce search.Matches a SQL. Un parámetro vacío o NULL es comodín; una cota de
// salario de la vacante en NULL o 0 no restringe (NULLIF + COALESCE). ILIKE con el patrón de
// likePattern equivale a la subcadena sin distinguir mayúsculas de search.Matches.
const searchWhere = `
	WHERE ($1::text = '' OR v.title ILIKE $2 OR v.description ILIKE $2)
	  AND ($3::text = '' OR v.location ILIKE $4)
	  AND ($5::text = '' OR v.employment_type = $5)
	  AND ($6::text = '' OR v.level = $6)
	  AND ($7::numeric IS NULL OR COALESCE(NULLIF(v.salary_min, 0), $7) >= $7)
	  AND ($8::numeric IS NULL OR COALESCE(NULLIF(v.salary_max, 0), $8) <= $8)
	  AND ($9::text = '' OR v.company_id::text = $9)
	  AND ($10::text = '' OR v.status = $10)`

const searchQuery = vacancyListingFrom + searchWhere + `
	ORDER BY v.created_at DESC, v.id
	LIMIT NULLIF($11, 0) OFFSET $12`

const countQuery = `SELECT count(*) FROM vacancies v` + searchWhere

// searchArgs parámetros $1..$10 de searchWhere, en orden.
func searchArgs(c search.Criteria) []any {
	return []any{
		c.Search, likePattern(c.Search),
		c.Location, likePattern(c.Location),
		c.EmploymentType, c.ExperienceLevel,
		c.SalaryMin, c.SalaryMax,
		c.CompanyID, c.Status,
	}
}

// Search aplica el filtro en la base de datos, de la más reciente a la más antigua.
func (r *VacancyRepo) Search(ctx context.Context, c search.Criteria, limit, offset int) ([]*entity.VacancyListing, error) {
	rows, err := r.q.Query(ctx, searchQuery, append(searchArgs(c), limit, offset)...)
	if err != nil {
		return nil, wrapErr("search vacancies", err)
	}
	defer rows.Close()

	var list []*entity.VacancyListing
	for rows.Next() {
		l, err := scanVacancyListing(rows)
		if err != nil {
			return nil, wrapErr("scan vacancy", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// Count número de vacantes que cumplen c.
func (r *VacancyRepo) Count(ctx context.Context, c search.Criteria) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, countQuery, searchArgs(c)...).Scan(&n); err != nil {
		return 0, wrapErr("count vacancies", err)
	}
	return n, nil
}

// IncrementViews suma 1 a views_count con un UPDATE atómico.
func (r *VacancyRepo) IncrementViews(ctx context.Context, id string) error {
	return r.increment(ctx, "increment views", `UPDATE vacancies SET views_count = views_count + 1 WHERE id = $1`, id)
}

// IncrementApplications suma 1 a applications_count con un UPDATE atómico.
func (r *VacancyRepo) IncrementApplications(ctx context.Context, id string) error {
	return r.increment(ctx, "increment applications", `UPDATE vacancies SET applications_count = applications_count + 1 WHERE id = $1`, id)
}

func (r *VacancyRepo) increment(ctx context.Context, op, query, id string) error {
	if !isUUID(id) {
		return domain.ErrNotFound
	}
	tag, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return wrapErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanVacancy(row pgx.Row, v *entity.Vacancy, extra ...any) error {
	dest := []any{
		&v.ID, &v.CompanyID, &v.Title, &v.Description, &v.SalaryMin, &v.SalaryMax, &v.Currency,
		&v.Location, &v.EmploymentType, &v.Level, &v.Skills, &v.Status, &v.ApplicationsCount, &v.ViewsCount,
		&v.Deadline, &v.CreatedAt, &v.UpdatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}

func scanVacancyListing(row pgx.Row) (*entity.VacancyListing, error) {
	var l entity.VacancyListing
	if err := scanVacancy(row, &l.Vacancy, &l.CompanyName, &l.CompanyLogo); err != nil {
		return nil, err
	}
	return &l, nil
}

// skillsOrEmpty evita insertar NULL en la columna text[] NOT NULL.
func skillsOrEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
