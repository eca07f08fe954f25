package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/jobboard-api/internal/application/dto"
	"github.com/jhoicas/jobboard-api/internal/domain"
	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/domain/repository"
	"github.com/jhoicas/jobboard-api/internal/domain/search"
	"github.com/jhoicas/jobboard-api/pkg/sanitize"
)

// VacancyUseCase listado, detalle, publicación y edición de vacantes.
type VacancyUseCase struct {
	txRunner    TxRunner
	vacancyRepo repository.VacancyRepository
	companyRepo repository.CompanyRepository
	pageSize    int
	now         func() time.Time
}

// NewVacancyUseCase construye el caso de uso. pageSize es el tope fijo de resultados por listado.
func NewVacancyUseCase(
	txRunner TxRunner,
	vacancyRepo repository.VacancyRepository,
	companyRepo repository.CompanyRepository,
	pageSize int,
) *VacancyUseCase {
	if pageSize <= 0 {
		pageSize = 100
	}
	return &VacancyUseCase{
		txRunner:    txRunner,
		vacancyRepo: vacancyRepo,
		companyRepo: companyRepo,
		pageSize:    pageSize,
		now:         time.Now,
	}
}

// Criteria traduce la query del listado a criterios del filtro.
func Criteria(q dto.VacancyQuery) search.Criteria {
	return search.Parse(search.Params{
		Search:          q.Search,
		Location:        q.Location,
		EmploymentType:  q.EmploymentType,
		ExperienceLevel: q.ExperienceLevel,
		SalaryMin:       q.SalaryMin,
		SalaryMax:       q.SalaryMax,
		CompanyID:       q.CompanyID,
		Status:          q.Status,
	})
}

func (uc *VacancyUseCase) page(q dto.VacancyQuery) (limit, offset int) {
	limit = q.Limit
	if limit <= 0 || limit > uc.pageSize {
		limit = uc.pageSize
	}
	offset = q.Offset
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// Search listado público: solo vacantes activas, de la más reciente a la más antigua.
func (uc *VacancyUseCase) Search(ctx context.Context, q dto.VacancyQuery) (*dto.VacancyListResponse, error) {
	c := Criteria(q)
	c.Status = entity.VacancyStatusActive
	return uc.search(ctx, c, q)
}

// ListByCompany vacantes de la empresa del empleador en cualquier estado (o el filtrado en q.Status).
func (uc *VacancyUseCase) ListByCompany(ctx context.Context, actor entity.Actor, q dto.VacancyQuery) (*dto.VacancyListResponse, error) {
	c := Criteria(q)
	switch {
	case actor.IsEmployer() && actor.CompanyID != "":
		c.CompanyID = actor.CompanyID
	case actor.IsAdmin():
	default:
		return nil, domain.ErrForbidden
	}
	return uc.search(ctx, c, q)
}

func (uc *VacancyUseCase) search(ctx context.Context, c search.Criteria, q dto.VacancyQuery) (*dto.VacancyListResponse, error) {
	limit, offset := uc.page(q)
	list, err := uc.vacancyRepo.Search(ctx, c, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.vacancyRepo.Count(ctx, c)
	if err != nil {
		return nil, err
	}
	return &dto.VacancyListResponse{
		Items: dto.FromVacancyListings(list),
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// Get devuelve la vacante con los datos de su empresa y suma 1 a views_count en la misma transacción.
func (uc *VacancyUseCase) Get(ctx context.Context, id string) (*dto.VacancyResponse, error) {
	var listing *entity.VacancyListing
	err := uc.txRunner.Run(ctx, func(
		vacancyRepo repository.VacancyRepository,
		_ repository.ApplicationRepository,
		_ repository.SavedVacancyRepository,
	) error {
		var err error
		listing, err = vacancyRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if listing == nil {
			return domain.ErrNotFound
		}
		if err := vacancyRepo.IncrementViews(ctx, id); err != nil {
			return err
		}
		listing.ViewsCount++
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromVacancyListing(listing)
	detail, err := uc.companyRepo.GetDetail(ctx, listing.CompanyID)
	if err != nil {
		return nil, err
	}
	if detail != nil {
		company := dto.FromCompany(&detail.Company, detail.ActiveVacancies)
		out.Company = &company
	}
	return &out, nil
}

// Create publica una vacante. El empleador publica en su empresa; el admin indica company_id.
// El estado inicial es active salvo que se indique otro.
func (uc *VacancyUseCase) Create(ctx context.Context, actor entity.Actor, in dto.CreateVacancyRequest) (*dto.VacancyResponse, error) {
	var companyID string
	switch {
	case actor.IsEmployer():
		if actor.CompanyID == "" {
			return nil, domain.ErrForbidden
		}
		companyID = actor.CompanyID
	case actor.IsAdmin():
		if in.CompanyID == "" {
			return nil, domain.NewValidationError("company_id", "obligatorio para administradores")
		}
		companyID = in.CompanyID
	default:
		return nil, domain.ErrForbidden
	}
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	status := in.Status
	if status == "" {
		status = entity.VacancyStatusActive
	}
	now := uc.now()
	v := &entity.Vacancy{
		ID:             uuid.New().String(),
		CompanyID:      company.ID,
		Title:          sanitize.PlainText(in.Title),
		Description:    sanitize.RichText(in.Description),
		SalaryMin:      in.SalaryMin,
		SalaryMax:      in.SalaryMax,
		Currency:       in.Currency,
		Location:       sanitize.PlainText(in.Location),
		EmploymentType: in.EmploymentType,
		Level:          in.Level,
		Skills:         cleanSkills(in.Skills),
		Status:         status,
		Deadline:       in.Deadline,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := validateVacancy(v); err != nil {
		return nil, err
	}
	if err := uc.vacancyRepo.Create(ctx, v); err != nil {
		return nil, err
	}
	out := dto.FromVacancy(v)
	out.CompanyName = company.Name
	out.CompanyLogo = company.Logo
	return &out, nil
}

// Update actualiza los campos indicados. Solo el empleador dueño o un admin.
// Lectura, mezcla y escritura ocurren en una transacción con la fila bloqueada: dos PUT
// concurrentes se aplican uno detrás del otro. El invariante salary_min <= salary_max se
// verifica sobre la vacante resultante.
func (uc *VacancyUseCase) Update(ctx context.Context, actor entity.Actor, id string, in dto.UpdateVacancyRequest) (*dto.VacancyResponse, error) {
	var listing *entity.VacancyListing
	err := uc.txRunner.Run(ctx, func(
		vacancyRepo repository.VacancyRepository,
		_ repository.ApplicationRepository,
		_ repository.SavedVacancyRepository,
	) error {
		v, err := vacancyRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if v == nil {
			return domain.ErrNotFound
		}
		if !actor.ManagesCompany(v.CompanyID) {
			return domain.ErrForbidden
		}
		applyVacancyChanges(v, in)
		v.UpdatedAt = uc.now()
		if err := validateVacancy(v); err != nil {
			return err
		}
		if err := vacancyRepo.Update(ctx, v); err != nil {
			return err
		}
		listing, err = vacancyRepo.GetByID(ctx, v.ID)
		if err != nil {
			return err
		}
		if listing == nil {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromVacancyListing(listing)
	return &out, nil
}

func applyVacancyChanges(v *entity.Vacancy, in dto.UpdateVacancyRequest) {
	if in.Title != nil {
		v.Title = sanitize.PlainText(*in.Title)
	}
	if in.Description != nil {
		v.Description = sanitize.RichText(*in.Description)
	}
	if in.SalaryMin != nil {
		v.SalaryMin = in.SalaryMin
	}
	if in.SalaryMax != nil {
		v.SalaryMax = in.SalaryMax
	}
	if in.Currency != nil {
		v.Currency = *in.Currency
	}
	if in.Location != nil {
		v.Location = sanitize.PlainText(*in.Location)
	}
	if in.EmploymentType != nil {
		v.EmploymentType = *in.EmploymentType
	}
	if in.Level != nil {
		v.Level = *in.Level
	}
	if in.Skills != nil {
		v.Skills = cleanSkills(in.Skills)
	}
	if in.Status != nil {
		v.Status = *in.Status
	}
	if in.Deadline != nil {
		v.Deadline = in.Deadline
	}
}

// validateVacancy reglas que no expresan los tags del DTO.
func validateVacancy(v *entity.Vacancy) error {
	verr := &domain.ValidationError{}
	if v.Title == "" {
		verr.Add("title", "obligatorio")
	}
	if v.SalaryMin != nil && v.SalaryMin.LessThan(decimal.Zero) {
		verr.Add("salary_min", "no puede ser negativo")
	}
	if v.SalaryMax != nil && v.SalaryMax.LessThan(decimal.Zero) {
		verr.Add("salary_max", "no puede ser negativo")
	}
	if !v.SalaryRangeValid() {
		verr.Add("salary_max", "debe ser mayor o igual que salary_min")
	}
	if !entity.ValidVacancyStatus(v.Status) {
		verr.Add("status", "estado desconocido")
	}
	if verr.Empty() {
		return nil
	}
	return verr
}

func cleanSkills(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		s = sanitize.PlainText(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
