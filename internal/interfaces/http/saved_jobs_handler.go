package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/jobboard-api/internal/application/recruitment"
)

// SavedJobsHandler vacantes guardadas por un candidato.
type SavedJobsHandler struct {
	uc *recruitment.SavedJobsUseCase
}

// NewSavedJobsHandler construye el handler de vacantes guardadas.
func NewSavedJobsHandler(uc *recruitment.SavedJobsUseCase) *SavedJobsHandler {
	return &SavedJobsHandler{uc: uc}
}

// List godoc
// @Summary      Vacantes guardadas
// @Tags         saved-jobs
// @Produce      json
// @Security     BearerAuth
// @Param        job_seeker_id  path  string  true  "candidato"
// @Success      200  {array}   dto.SavedVacancyResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/saved-jobs/{job_seeker_id} [get]
func (h *SavedJobsHandler) List(c *fiber.Ctx) error {
	jobSeekerID, err := pathID(c, "job_seeker_id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), Actor(c), jobSeekerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Toggle godoc
// @Summary      Guardar o quitar una vacante
// @Description  Alterna el marcador; la respuesta indica si quedó guardada.
// @Tags         saved-jobs
// @Produce      json
// @Security     BearerAuth
// @Param        job_seeker_id  path  string  true  "candidato"
// @Param        vacancy_id     path  string  true  "vacante"
// @Success      200  {object}  dto.SavedToggleResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/saved-jobs/{job_seeker_id}/{vacancy_id} [post]
func (h *SavedJobsHandler) Toggle(c *fiber.Ctx) error {
	jobSeekerID, err := pathID(c, "job_seeker_id")
	if err != nil {
		return respondError(c, err)
	}
	vacancyID, err := pathID(c, "vacancy_id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Toggle(c.UserContext(), Actor(c), jobSeekerID, vacancyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
