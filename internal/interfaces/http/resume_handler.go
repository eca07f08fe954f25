package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/jobboard-api/internal/application/dto"
	"github.com/jhoicas/jobboard-api/internal/application/usecase"
)

// ResumeHandler CRUD de CVs del candidato autenticado.
type ResumeHandler struct {
	uc *usecase.ResumeUseCase
}

// NewResumeHandler construye el handler de CVs.
func NewResumeHandler(uc *usecase.ResumeUseCase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

// List godoc
// @Summary      Mis CVs
// @Tags         resumes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.ResumeResponse
// @Router       /api/resumes [get]
func (h *ResumeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), Actor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear CV
// @Description  El primer CV queda como principal.
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateResumeRequest  true  "CV"
// @Success      201   {object}  dto.ResumeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/resumes [post]
func (h *ResumeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateResumeRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), Actor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar CV
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                   true  "ID del CV"
// @Param        body  body  dto.UpdateResumeRequest  true  "campos a modificar"
// @Success      200   {object}  dto.ResumeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/resumes/{id} [put]
func (h *ResumeHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateResumeRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), Actor(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar CV
// @Tags         resumes
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del CV"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/resumes/{id} [delete]
func (h *ResumeHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), Actor(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetPrimary godoc
// @Summary      Marcar CV como principal
// @Tags         resumes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del CV"
// @Success      200  {object}  dto.ResumeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/resumes/{id}/primary [post]
func (h *ResumeHandler) SetPrimary(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.SetPrimary(c.UserContext(), Actor(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
