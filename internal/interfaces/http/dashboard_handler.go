package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/jobboard-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints de tableros.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Employer devuelve el tablero de la empresa del empleador.
// GET /api/dashboard/employer
//
// Respuesta: EmployerDashboardDTO (vacantes por estado, visitas, postulaciones recibidas
// y postulaciones por estado).
// @Summary   Tablero del empleador
// @Tags      dashboard
// @Produce   json
// @Security  BearerAuth
// @Success   200  {object}  dto.EmployerDashboardDTO
// @Failure   403  {object}  dto.ErrorResponse
// @Router    /api/dashboard/employer [get]
func (h *DashboardHandler) Employer(c *fiber.Ctx) error {
	out, err := h.uc.Employer(c.UserContext(), Actor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Admin devuelve el tablero global.
// GET /api/dashboard/admin
// @Summary   Tablero del administrador
// @Tags      dashboard
// @Produce   json
// @Security  BearerAuth
// @Success   200  {object}  dto.AdminDashboardDTO
// @Failure   403  {object}  dto.ErrorResponse
// @Router    /api/dashboard/admin [get]
func (h *DashboardHandler) Admin(c *fiber.Ctx) error {
	out, err := h.uc.Admin(c.UserContext(), Actor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
