package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/jobboard-api/internal/application/dto"
)

// companyChecker es el contrato mínimo que necesita el middleware para verificar la empresa.
// Lo implementa *usecase.CompanyUseCase.
type companyChecker interface {
	Exists(ctx context.Context, companyID string) (bool, error)
}

// RequireCompany verifica que el empleador del token pertenezca a una empresa registrada.
// Debe usarse DESPUÉS de AuthMiddleware. Los administradores pasan sin verificación.
//
// Comportamiento:
//   - 403 NO_COMPANY        → empleador sin company_id en el token o empresa eliminada.
//   - 503 COMPANY_CHECK_FAILED → fallo de infraestructura al consultar la empresa.
func RequireCompany(checker companyChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := Actor(c)
		if actor.IsAdmin() {
			return c.Next()
		}
		companyID := actor.CompanyID
		if companyID == "" {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "NO_COMPANY",
				Message: "el usuario no pertenece a ninguna empresa",
			})
		}

		ok, err := checker.Exists(c.UserContext(), companyID)
		if err != nil {
			logServerError(c, fiber.StatusServiceUnavailable, err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "COMPANY_CHECK_FAILED",
				Message: "no se pudo verificar la empresa, intente más tarde",
			})
		}
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "NO_COMPANY",
				Message: "la empresa del token ya no existe",
			})
		}
		return c.Next()
	}
}
