package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/jobboard-api/internal/application/dto"
	"github.com/jhoicas/jobboard-api/internal/application/reporting"
)

// ReportHandler PDF de postulantes y feed XML de vacantes.
type ReportHandler struct {
	uc *reporting.ReportUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *reporting.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// ApplicantsPDF godoc
// @Summary      Reporte PDF de postulantes
// @Tags         vacancies
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la vacante"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vacancies/{id}/applications/report [get]
func (h *ReportHandler) ApplicantsPDF(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	pdf, filename, err := h.uc.ApplicantsPDF(c.UserContext(), Actor(c), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdf)
}

// VacancyFeed godoc
// @Summary      Feed XML de vacantes activas
// @Description  Formato <source><job>…</job></source> para agregadores de empleo. Acepta los filtros del listado.
// @Tags         feed
// @Produce      xml
// @Success      200  {string}  string
// @Router       /api/feed/vacancies.xml [get]
func (h *ReportHandler) VacancyFeed(c *fiber.Ctx) error {
	var q dto.VacancyQuery
	if err := bindQuery(c, &q); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.VacancyFeed(c.UserContext(), q)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	return c.Send(out)
}
