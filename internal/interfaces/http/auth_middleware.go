package http

import (
	"encoding/base64"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/performance-hub/internal/application/auth"
	"github.com/tu-usuario/performance-hub/internal/application/dto"
	"github.com/tu-usuario/performance-hub/internal/domain/entity"
)

// LocalPrincipal key del principal autenticado en Fiber locals.
const LocalPrincipal = "principal"

// Authenticator verifica credenciales y devuelve el principal. Lo implementa
// auth.AuthUseCase; la interfaz permite fakes en tests.
type Authenticator interface {
	Authenticate(username, password string) (*auth.Principal, error)
}

// BasicAuthMiddleware valida el header Basic Auth en cada petición (no hay
// sesiones ni tokens) y deja el principal en c.Locals.
func BasicAuthMiddleware(authenticator Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username, password, ok := parseBasicAuth(c.Get(fiber.HeaderAuthorization))
		if !ok {
			c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="performance-hub"`)
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_CREDENTIALS", Message: "header Basic Auth requerido"})
		}
		principal, err := authenticator.Authenticate(username, password)
		if err != nil {
			// Usuario inexistente y contraseña incorrecta responden igual.
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
		}
		c.Locals(LocalPrincipal, principal)
		return c.Next()
	}
}

// RequireAdmin autoriza solo a principals con rol admin. Igualdad de atributo,
// sin jerarquía de roles.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		if p == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "se requiere autenticación"})
		}
		if !p.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "se requiere rol admin"})
		}
		return c.Next()
	}
}

// GetPrincipal devuelve el principal del contexto (después del middleware de auth).
func GetPrincipal(c *fiber.Ctx) *auth.Principal {
	v := c.Locals(LocalPrincipal)
	if v == nil {
		return nil
	}
	p, _ := v.(*auth.Principal)
	return p
}

// GetRole devuelve el rol del principal, o vacío si no hay principal.
func GetRole(c *fiber.Ctx) entity.Role {
	p := GetPrincipal(c)
	if p == nil {
		return ""
	}
	return p.Role
}

// parseBasicAuth decodifica "Basic base64(user:pass)".
func parseBasicAuth(header string) (username, password string, ok bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Basic") {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(parts[1]))
	if err != nil {
		return "", "", false
	}
	username, password, ok = strings.Cut(string(decoded), ":")
	return username, password, ok
}
