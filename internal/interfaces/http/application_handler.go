package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/jobboard-api/internal/application/dto"
	"github.com/jhoicas/jobboard-api/internal/application/recruitment"
)

// ApplicationHandler postulaciones: crear, cambiar estado y listar.
type ApplicationHandler struct {
	uc *recruitment.ApplicationUseCase
}

// NewApplicationHandler construye el handler de postulaciones.
func NewApplicationHandler(uc *recruitment.ApplicationUseCase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

// List godoc
// @Summary      Listar postulaciones
// @Description  Candidatos ven las propias; empleadores las de su empresa; admin todas.
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        job_seeker_id  query  string  false  "candidato"
// @Param        vacancy_id     query  string  false  "vacante"
// @Success      200  {object}  dto.ApplicationListResponse
// @Router       /api/applications [get]
func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	var q dto.ApplicationQuery
	if err := bindQuery(c, &q); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), Actor(c), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Postular a una vacante
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateApplicationRequest  true  "vacante, CV y carta"
// @Success      201   {object}  dto.ApplicationResponse
// @Failure      400   {object}  dto.ErrorResponse  "VALIDATION | ALREADY_APPLIED"
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "VACANCY_NOT_ACTIVE"
// @Router       /api/applications [post]
func (h *ApplicationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateApplicationRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Apply(c.UserContext(), Actor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de una postulación
// @Description  Empleador o admin: reviewing, accepted, rejected. Candidato: withdrawn.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                              true  "ID de la postulación"
// @Param        body  body  dto.UpdateApplicationStatusRequest  true  "nuevo estado"
// @Success      200   {object}  dto.ApplicationResponse
// @Failure      400   {object}  dto.ErrorResponse  "VALIDATION | INVALID_TRANSITION"
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/applications/{id} [put]
func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateApplicationStatusRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), Actor(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
