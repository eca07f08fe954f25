package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/jobboard-api/pkg/logger"
)

// requestIDLocal clave en Locals que usa el middleware requestid de Fiber por defecto.
const requestIDLocal = "requestid"

func requestID(c *fiber.Ctx) string {
	return localString(c, requestIDLocal)
}

// RequestLogger registra una línea por petición: método, ruta, status, latencia, request id y,
// si hubo autenticación, el usuario.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()

		var ev *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error()
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		default:
			ev = log.Info()
		}
		ev = ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", requestID(c))
		if uid := Actor(c).UserID; uid != "" {
			ev = ev.Str("user_id", uid)
		}
		ev.Msg("http")
		return nil
	}
}
