package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/jobboard-api/internal/application/dto"
)

// Pinger comprueba la disponibilidad del almacenamiento (pgxpool.Pool o memory.Store).
type Pinger interface {
	Ping(ctx context.Context) error
}

const healthTimeout = 2 * time.Second

// HealthHandler estado del servicio.
type HealthHandler struct {
	store Pinger
}

// NewHealthHandler construye el handler de salud.
func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

// Check godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
	defer cancel()
	if err := h.store.Ping(ctx); err != nil {
		logServerError(c, fiber.StatusServiceUnavailable, err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code: "UPSTREAM_UNAVAILABLE", Message: "servicio de almacenamiento no disponible",
		})
	}
	return c.JSON(dto.HealthResponse{Status: "ok", Database: "up"})
}
