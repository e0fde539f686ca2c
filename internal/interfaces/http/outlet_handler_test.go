package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/performance-hub/internal/application/usecase"
	apphttp "github.com/tu-usuario/performance-hub/internal/interfaces/http"
)

func TestOutletCreate_SinPrincipal_Retorna401(t *testing.T) {
	// Handler montado sin el middleware de auth: no debe hacer panic por
	// principal ausente, debe responder 401.
	handler := apphttp.NewOutletHandler(usecase.NewOutletUseCase(&fakeOutletRepo{}))
	app := fiber.New()
	app.Post("/outlets", handler.Create)

	req := httptest.NewRequest(http.MethodPost, "/outlets", strings.NewReader(`{"name":"Centro"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
