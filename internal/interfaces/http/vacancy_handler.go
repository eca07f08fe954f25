package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/jobboard-api/internal/application/dto"
	"github.com/jhoicas/jobboard-api/internal/application/usecase"
)

// VacancyHandler listado público, detalle y gestión de vacantes.
type VacancyHandler struct {
	uc *usecase.VacancyUseCase
}

// NewVacancyHandler construye el handler de vacantes.
func NewVacancyHandler(uc *usecase.VacancyUseCase) *VacancyHandler {
	return &VacancyHandler{uc: uc}
}

// List godoc
// @Summary      Buscar vacantes activas
// @Description  Todos los filtros son opcionales. Un salario no numérico se ignora.
// @Tags         vacancies
// @Produce      json
// @Param        search           query  string  false  "texto en título o descripción"
// @Param        location         query  string  false  "ubicación (subcadena)"
// @Param        employmentType   query  string  false  "full_time | part_time | contract | internship | freelance"
// @Param        experienceLevel  query  string  false  "entry | mid | senior | lead | executive"
// @Param        salaryMin        query  string  false  "cota inferior"
// @Param        salaryMax        query  string  false  "cota superior"
// @Param        company_id       query  string  false  "empresa"
// @Param        limit            query  int     false  "máximo de resultados"
// @Param        offset           query  int     false  "desplazamiento"
// @Success      200  {object}  dto.VacancyListResponse
// @Router       /api/vacancies [get]
func (h *VacancyHandler) List(c *fiber.Ctx) error {
	var q dto.VacancyQuery
	if err := bindQuery(c, &q); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Search(c.UserContext(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListEmployer godoc
// @Summary      Vacantes de la empresa del empleador (todos los estados)
// @Tags         vacancies
// @Produce      json
// @Security     BearerAuth
// @Param        status  query  string  false  "active | closed | draft | archived"
// @Success      200  {object}  dto.VacancyListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/employer/vacancies [get]
func (h *VacancyHandler) ListEmployer(c *fiber.Ctx) error {
	var q dto.VacancyQuery
	if err := bindQuery(c, &q); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListByCompany(c.UserContext(), Actor(c), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Detalle de vacante
// @Description  Incrementa el contador de visitas.
// @Tags         vacancies
// @Produce      json
// @Param        id   path  string  true  "ID de la vacante"
// @Success      200  {object}  dto.VacancyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vacancies/{id} [get]
func (h *VacancyHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Publicar vacante
// @Tags         vacancies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateVacancyRequest  true  "vacante"
// @Success      201   {object}  dto.VacancyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/vacancies [post]
func (h *VacancyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVacancyRequest
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
// @Summary      Actualizar vacante
// @Tags         vacancies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                    true  "ID de la vacante"
// @Param        body  body  dto.UpdateVacancyRequest  true  "campos a modificar"
// @Success      200   {object}  dto.VacancyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/vacancies/{id} [put]
func (h *VacancyHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateVacancyRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), Actor(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
