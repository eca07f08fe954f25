// Package reporting genera documentos derivados de las vacantes: el PDF de postulantes y el feed XML.
package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/gosimple/slug"

	"github.com/jhoicas/jobboard-api/internal/application/dto"
	"github.com/jhoicas/jobboard-api/internal/application/usecase"
	"github.com/jhoicas/jobboard-api/internal/domain"
	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/domain/repository"
)

const (
	maxReportApplicants = 1000 // filas máximas en el PDF
	maxFeedVacancies    = 500
)

// ReportUseCase PDF de postulantes y feed de vacantes activas.
type ReportUseCase struct {
	vacancyRepo     repository.VacancyRepository
	applicationRepo repository.ApplicationRepository
	pdf             ApplicantsReportGenerator
	feed            VacancyFeedBuilder
	now             func() time.Time
}

// NewReportUseCase construye el caso de uso inyectando los generadores.
func NewReportUseCase(
	vacancyRepo repository.VacancyRepository,
	applicationRepo repository.ApplicationRepository,
	pdf ApplicantsReportGenerator,
	feed VacancyFeedBuilder,
) *ReportUseCase {
	return &ReportUseCase{
		vacancyRepo:     vacancyRepo,
		applicationRepo: applicationRepo,
		pdf:             pdf,
		feed:            feed,
		now:             time.Now,
	}
}

// ApplicantsPDF genera el PDF de postulantes de la vacante.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si la vacante no existe.
//   - domain.ErrForbidden       si el actor no administra la empresa de la vacante.
func (uc *ReportUseCase) ApplicantsPDF(ctx context.Context, actor entity.Actor, vacancyID string) (pdfBytes []byte, filename string, err error) {
	vacancy, err := uc.vacancyRepo.GetByID(ctx, vacancyID)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: obtener vacante: %w", err)
	}
	if vacancy == nil {
		return nil, "", domain.ErrNotFound
	}
	if !actor.ManagesCompany(vacancy.CompanyID) {
		return nil, "", domain.ErrForbidden
	}
	applicants, err := uc.applicationRepo.List(ctx, repository.ApplicationFilter{
		VacancyID: vacancy.ID,
		Limit:     maxReportApplicants,
	})
	if err != nil {
		return nil, "", fmt.Errorf("reporte: listar postulaciones: %w", err)
	}
	pdfBytes, err = uc.pdf.GenerateApplicantsReport(vacancy, applicants, uc.now())
	if err != nil {
		return nil, "", err
	}
	name := slug.Make(vacancy.Title)
	if name == "" {
		name = vacancy.ID
	}
	return pdfBytes, "postulantes-" + name + ".pdf", nil
}

// VacancyFeed feed XML de vacantes activas con los mismos filtros del listado público.
func (uc *ReportUseCase) VacancyFeed(ctx context.Context, q dto.VacancyQuery) ([]byte, error) {
	c := usecase.Criteria(q)
	c.Status = entity.VacancyStatusActive
	list, err := uc.vacancyRepo.Search(ctx, c, maxFeedVacancies, 0)
	if err != nil {
		return nil, err
	}
	return uc.feed.BuildVacancyFeed(list, uc.now())
}
