package http_test

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/performance-hub/internal/application/auth"
	apphttp "github.com/tu-usuario/performance-hub/internal/interfaces/http"

	"github.com/tu-usuario/performance-hub/internal/domain"
	"github.com/tu-usuario/performance-hub/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeAuthenticator acepta un único par de credenciales y devuelve un
// principal con el rol configurado.
type fakeAuthenticator struct {
	username string
	password string
	role     entity.Role
}

func (f *fakeAuthenticator) Authenticate(username, password string) (*auth.Principal, error) {
	if username != f.username || password != f.password {
		return nil, domain.ErrUnauthorized
	}
	return &auth.Principal{ID: "u1", Username: username, Role: f.role}, nil
}

// buildTestApp construye una app Fiber mínima con una ruta protegida por
// Basic Auth y, opcionalmente, RequireAdmin.
func buildTestApp(authenticator apphttp.Authenticator, adminOnly bool) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{apphttp.BasicAuthMiddleware(authenticator)}
	if adminOnly {
		handlers = append(handlers, apphttp.RequireAdmin())
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		p := apphttp.GetPrincipal(c)
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"ok":       true,
			"username": p.Username,
			"role":     string(apphttp.GetRole(c)),
		})
	})
	app.Get("/protected", handlers...)
	return app
}

func basicHeader(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests BasicAuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestBasicAuth_CredencialesValidas(t *testing.T) {
	app := buildTestApp(&fakeAuthenticator{username: "ana", password: "clave", role: entity.RoleManager}, false)
	resp := doRequest(t, app, basicHeader("ana", "clave"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ana", body["username"])
	assert.Equal(t, "manager", body["role"])
}

func TestBasicAuth_SinHeader_Retorna401(t *testing.T) {
	app := buildTestApp(&fakeAuthenticator{username: "ana", password: "clave"}, false)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("WWW-Authenticate"), "Basic",
		"debe anunciar el esquema Basic")
}

func TestBasicAuth_PasswordIncorrecta_Retorna401(t *testing.T) {
	app := buildTestApp(&fakeAuthenticator{username: "ana", password: "clave"}, false)
	resp := doRequest(t, app, basicHeader("ana", "otra"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestBasicAuth_UsuarioInexistente_Retorna401(t *testing.T) {
	app := buildTestApp(&fakeAuthenticator{username: "ana", password: "clave"}, false)
	resp := doRequest(t, app, basicHeader("nadie", "clave"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"usuario inexistente responde igual que password incorrecta")
}

func TestBasicAuth_HeaderMalformado_Retorna401(t *testing.T) {
	app := buildTestApp(&fakeAuthenticator{username: "ana", password: "clave"}, false)

	for _, header := range []string{
		"Bearer un-token",
		"Basic esto-no-es-base64!!!",
		"Basic " + base64.StdEncoding.EncodeToString([]byte("sin-dos-puntos")),
	} {
		resp := doRequest(t, app, header)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q", header)
		resp.Body.Close()
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireAdmin
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireAdmin_AdminAccede(t *testing.T) {
	app := buildTestApp(&fakeAuthenticator{username: "root", password: "clave", role: entity.RoleAdmin}, true)
	resp := doRequest(t, app, basicHeader("root", "clave"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe poder acceder a ruta restringida a admin")
}

func TestRequireAdmin_ManagerBloqueado_Retorna403(t *testing.T) {
	app := buildTestApp(&fakeAuthenticator{username: "ana", password: "clave", role: entity.RoleManager}, true)
	resp := doRequest(t, app, basicHeader("ana", "clave"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"manager no debe poder acceder a ruta restringida a admin")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}
