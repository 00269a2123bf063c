package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/informetec/visitas-web/internal/interfaces/http"
	"github.com/informetec/visitas-web/pkg/token"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "visitas-web-test"
	testExpMin = 60
)

// buildTestApp monta una ruta protegida que expone los claims extraídos.
func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/protegida",
		apphttp.SesionMiddleware(testSecret),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"nombre":     apphttp.GetNombre(c),
				"rol":        apphttp.GetRol(c),
				"credencial": string(apphttp.GetSesion(c)),
			})
		},
	)
	return app
}

// cookieFirmada genera la cookie de sesión con los claims indicados.
func cookieFirmada(t *testing.T, nombre, rol, credencial string) *http.Cookie {
	t.Helper()
	firmado, err := token.Generate(testSecret, nombre, rol, credencial, testIssuer, testExpMin)
	require.NoError(t, err)
	return &http.Cookie{Name: apphttp.CookieSesion, Value: firmado}
}

func doRequest(t *testing.T, app *fiber.App, cookie *http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests SesionMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestSesionMiddleware_CookieValidaExtraeClaims(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, cookieFirmada(t, "Carlos", "supervisor", "session=abc123"))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Carlos", body["nombre"])
	assert.Equal(t, "supervisor", body["rol"])
	assert.Equal(t, "session=abc123", body["credencial"],
		"la credencial del backend viaja dentro de la cookie firmada")
}

func TestSesionMiddleware_SinCookieRetorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSesionMiddleware_CookieAdulteradaRetorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, &http.Cookie{Name: apphttp.CookieSesion, Value: "token.invalido.aqui"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSesionMiddleware_CookieExpiradaRetorna401(t *testing.T) {
	firmado, err := token.Generate(testSecret, "Carlos", "supervisor", "s", testIssuer, -1)
	require.NoError(t, err)

	app := buildTestApp()
	resp := doRequest(t, app, &http.Cookie{Name: apphttp.CookieSesion, Value: firmado})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSesionMiddleware_SecretDistintoInvalida(t *testing.T) {
	firmado, err := token.Generate("otro-secret-completamente-distinto", "Carlos", "supervisor", "s", testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildTestApp()
	resp := doRequest(t, app, &http.Cookie{Name: apphttp.CookieSesion, Value: firmado})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests token pkg — integridad del generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestToken_GenerateAndParse(t *testing.T) {
	firmado, err := token.Generate(testSecret, "Carlos", "tecnico", "session=xyz", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, firmado)

	nombre, rol, credencial, err := token.Parse(testSecret, firmado)
	require.NoError(t, err)

	assert.Equal(t, "Carlos", nombre)
	assert.Equal(t, "tecnico", rol)
	assert.Equal(t, "session=xyz", credencial)
}

func TestToken_SecretVacioRetornaError(t *testing.T) {
	_, err := token.Generate("", "Carlos", "supervisor", "s", testIssuer, testExpMin)
	assert.Error(t, err)

	_, _, _, err = token.Parse("", "cualquier-token")
	assert.Error(t, err)
}
