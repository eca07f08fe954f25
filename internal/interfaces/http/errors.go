package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/jobboard-api/internal/application/dto"
	"github.com/jhoicas/jobboard-api/internal/domain"
)

// errorMapping traduce un error de dominio a status HTTP y código estable.
type errorMapping struct {
	target  error
	status  int
	code    string
	message string // vacío = usar err.Error()
}

// El orden importa: los errores más específicos primero.
var errorMappings = []errorMapping{
	{domain.ErrAlreadyApplied, fiber.StatusBadRequest, "ALREADY_APPLIED", ""},
	{domain.ErrInvalidTransition, fiber.StatusBadRequest, "INVALID_TRANSITION", ""},
	{domain.ErrVacancyNotActive, fiber.StatusConflict, "VACANCY_NOT_ACTIVE", ""},
	{domain.ErrEmailAlreadyExists, fiber.StatusConflict, "EMAIL_EXISTS", ""},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE", ""},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT", ""},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND", ""},
	{domain.ErrUserNotFound, fiber.StatusNotFound, "NOT_FOUND", ""},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED", "credenciales inválidas"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN", ""},
	{domain.ErrUpstreamUnavailable, fiber.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", "servicio de almacenamiento no disponible"},
}

// respondError escribe la respuesta de error correspondiente a err.
// Los errores no clasificados responden 500 INTERNAL y se registran con su detalle.
func respondError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "datos de entrada inválidos", Fields: verr.Fields,
		})
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			msg := m.message
			if msg == "" {
				msg = err.Error()
			}
			if m.status >= fiber.StatusInternalServerError {
				logServerError(c, m.status, err)
			}
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: msg})
		}
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	logServerError(c, fiber.StatusInternalServerError, err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

func logServerError(c *fiber.Ctx, status int, err error) {
	log.Error().Err(err).
		Int("status", status).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("request_id", requestID(c)).
		Msg("error atendiendo petición")
}

// ErrorHandler manejador de errores de Fiber: rutas inexistentes, cuerpos inválidos y errores
// devueltos por handlers que no pasaron por respondError.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := "HTTP_ERROR"
		switch fe.Code {
		case fiber.StatusNotFound:
			code = "NOT_FOUND"
		case fiber.StatusMethodNotAllowed:
			code = "METHOD_NOT_ALLOWED"
		case fiber.StatusRequestEntityTooLarge:
			code = "BODY_TOO_LARGE"
		case fiber.StatusBadRequest:
			code = "VALIDATION"
		}
		if fe.Code >= fiber.StatusInternalServerError {
			logServerError(c, fe.Code, err)
		}
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
	}
	return respondError(c, err)
}
