package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/jobboard-api/internal/application/dto"
	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/pkg/jwt"
)

// localIdentity clave de c.Locals con la jwt.Identity verificada.
const localIdentity = "identity"

// TokenVerifier valida un token de sesión. *jwt.Signer lo implementa.
type TokenVerifier interface {
	Verify(token string) (jwt.Identity, error)
}

func unauthorized(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

// bearerToken extrae el token de "Authorization: Bearer <token>". Si no puede, code es el
// código de error a responder.
func bearerToken(header string) (token, code string) {
	if header == "" {
		return "", "MISSING_TOKEN"
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", "INVALID_TOKEN"
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", "MISSING_TOKEN"
	}
	return token, ""
}

// AuthMiddleware exige un Bearer token válido y deja la identidad en el contexto de la petición.
//   - 401 MISSING_TOKEN sin header o con token vacío.
//   - 401 INVALID_TOKEN con otro esquema, firma, emisor o vigencia no válidos.
func AuthMiddleware(tokens TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, code := bearerToken(c.Get(fiber.HeaderAuthorization))
		switch code {
		case "MISSING_TOKEN":
			return unauthorized(c, code, "Authorization: Bearer <token> requerido")
		case "INVALID_TOKEN":
			return unauthorized(c, code, "formato: Bearer <token>")
		}
		id, err := tokens.Verify(token)
		if err != nil {
			return unauthorized(c, "INVALID_TOKEN", "token inválido o expirado")
		}
		c.Locals(localIdentity, id)
		return c.Next()
	}
}

// RequireRole autoriza solo a los roles indicados. Va después de AuthMiddleware.
//   - 401 MISSING_ROLE si el token no trae rol.
//   - 403 FORBIDDEN si el rol no está permitido.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *fiber.Ctx) error {
		role := Actor(c).Role
		if role == "" {
			return unauthorized(c, "MISSING_ROLE", "el token no incluye rol")
		}
		if !allowed[role] {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para este recurso"})
		}
		return c.Next()
	}
}

// Actor identidad verificada de la petición, que se pasa explícitamente a los casos de uso.
// Sin AuthMiddleware devuelve un actor anónimo (todos los campos vacíos).
func Actor(c *fiber.Ctx) entity.Actor {
	id, _ := c.Locals(localIdentity).(jwt.Identity)
	return entity.Actor{UserID: id.UserID, Role: id.Role, CompanyID: id.CompanyID}
}

// localString valor string guardado en c.Locals bajo key; "" si no existe o no es string.
func localString(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}
