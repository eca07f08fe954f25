package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/jobboard-api/internal/application/dto"
	"github.com/jhoicas/jobboard-api/internal/domain"
	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/domain/repository"
	"github.com/jhoicas/jobboard-api/pkg/sanitize"
)

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// NewCompany construye una empresa nueva con slug derivado del nombre.
// También la usa el registro de empleadores.
func NewCompany(in dto.CreateCompanyRequest, now time.Time) *entity.Company {
	name := sanitize.PlainText(in.Name)
	return &entity.Company{
		ID:            uuid.New().String(),
		Name:          name,
		Slug:          slug.Make(name),
		Description:   sanitize.RichText(in.Description),
		Logo:          strings.TrimSpace(in.Logo),
		Website:       strings.TrimSpace(in.Website),
		Location:      sanitize.PlainText(in.Location),
		Industry:      sanitize.PlainText(in.Industry),
		EmployeeCount: sanitize.PlainText(in.EmployeeCount),
		Rating:        decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Create crea una nueva empresa (solo admin). Devuelve domain.ErrDuplicate si el slug ya existe.
func (uc *CompanyUseCase) Create(ctx context.Context, actor entity.Actor, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	company := NewCompany(in, time.Now())
	if company.Slug == "" {
		return nil, domain.NewValidationError("name", "el nombre no genera un identificador válido")
	}
	existing, _ := uc.repo.GetBySlug(ctx, company.Slug)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	out := dto.FromCompany(company, 0)
	return &out, nil
}

// Exists indica si la empresa sigue registrada.
func (uc *CompanyUseCase) Exists(ctx context.Context, id string) (bool, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return c != nil, nil
}

// GetByID obtiene una empresa con su conteo de vacantes activas.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	detail, err := uc.repo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.FromCompany(&detail.Company, detail.ActiveVacancies)
	return &out, nil
}

// List lista empresas con paginación.
func (uc *CompanyUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.CompanyListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, d := range list {
		items = append(items, dto.FromCompany(&d.Company, d.ActiveVacancies))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Update actualiza una empresa. Solo su empleador o un admin.
func (uc *CompanyUseCase) Update(ctx context.Context, actor entity.Actor, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.ManagesCompany(company.ID) {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		company.Name = sanitize.PlainText(*in.Name)
		company.Slug = slug.Make(company.Name)
		if company.Slug == "" {
			return nil, domain.NewValidationError("name", "el nombre no genera un identificador válido")
		}
		existing, _ := uc.repo.GetBySlug(ctx, company.Slug)
		if existing != nil && existing.ID != company.ID {
			return nil, domain.ErrDuplicate
		}
	}
	if in.Description != nil {
		company.Description = sanitize.RichText(*in.Description)
	}
	if in.Logo != nil {
		company.Logo = strings.TrimSpace(*in.Logo)
	}
	if in.Website != nil {
		company.Website = strings.TrimSpace(*in.Website)
	}
	if in.Location != nil {
		company.Location = sanitize.PlainText(*in.Location)
	}
	if in.Industry != nil {
		company.Industry = sanitize.PlainText(*in.Industry)
	}
	if in.EmployeeCount != nil {
		company.EmployeeCount = sanitize.PlainText(*in.EmployeeCount)
	}
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, company.ID)
}
