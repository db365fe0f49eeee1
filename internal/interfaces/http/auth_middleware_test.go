package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-pyme/internal/application/dto"
	"github.com/jhoicas/gestion-pyme/internal/application/usecase"
	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
	"github.com/jhoicas/gestion-pyme/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/gestion-pyme/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/gestion-pyme/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "gestion-pyme-test"
	testExpMin    = 60
)

// seedUser crea un usuario real y devuelve su id (los permisos efectivos se
// resuelven contra el repositorio, no contra el token).
func seedUser(t *testing.T, userUC *usecase.UserUseCase, role string, perms entity.Permissions) string {
	t.Helper()
	created, err := userUC.Create(dto.CreateUserRequest{
		Username:    "user-" + role + "-" + t.Name(),
		Password:    "x",
		Role:        role,
		Permissions: perms,
	})
	require.NoError(t, err)
	return created.ID
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequirePermission contra un UserUseCase real en memoria
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(userUC *usecase.UserUseCase, selector func(entity.Permissions) bool) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequirePermission(userUC, selector),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenFor genera un JWT para el usuario y rol indicados.
func tokenFor(t *testing.T, userID, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
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
// Tests RequirePermission
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El usuario tiene la bandera requerida → debe pasar (HTTP 200).
func TestRequirePermission_BanderaActivaAccede(t *testing.T) {
	userUC := usecase.NewUserUseCase(memory.NewStore().Users())
	id := seedUser(t, userUC, entity.RoleUser, entity.Permissions{Sales: true})
	app := buildTestApp(userUC, func(p entity.Permissions) bool { return p.Sales })

	resp := doRequest(t, app, tokenFor(t, id, entity.RoleUser))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"usuario con la bandera Sales debe acceder a la ruta de ventas")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "la respuesta debe incluir ok:true")
}

// Caso 2: El usuario no tiene la bandera → HTTP 403 Forbidden.
func TestRequirePermission_BanderaApagadaBloqueado(t *testing.T) {
	userUC := usecase.NewUserUseCase(memory.NewStore().Users())
	id := seedUser(t, userUC, entity.RoleUser, entity.Permissions{Sales: true})
	app := buildTestApp(userUC, func(p entity.Permissions) bool { return p.Financial })

	resp := doRequest(t, app, tokenFor(t, id, entity.RoleUser))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"usuario sin la bandera Financial no debe acceder a tesorería")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

// Caso 3: ADMIN pasa cualquier bandera aunque no la tenga almacenada.
func TestRequirePermission_AdminPasaTodo(t *testing.T) {
	userUC := usecase.NewUserUseCase(memory.NewStore().Users())
	id := seedUser(t, userUC, entity.RoleAdmin, entity.Permissions{}) // sin banderas
	app := buildTestApp(userUC, func(p entity.Permissions) bool { return p.CanDeleteLedgers })

	resp := doRequest(t, app, tokenFor(t, id, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"ADMIN implica todas las banderas sin importar lo almacenado")
}

// Caso 4: Token de un usuario que ya no existe → HTTP 404 por el checker.
func TestRequirePermission_UsuarioBorrado(t *testing.T) {
	userUC := usecase.NewUserUseCase(memory.NewStore().Users())
	app := buildTestApp(userUC, func(p entity.Permissions) bool { return p.Sales })

	resp := doRequest(t, app, tokenFor(t, "usuario-inexistente", entity.RoleUser))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode,
		"un token válido de usuario borrado no debe autorizar")
}

// Caso 5: Sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	userUC := usecase.NewUserUseCase(memory.NewStore().Users())
	app := buildTestApp(userUC, func(p entity.Permissions) bool { return p.Sales })

	resp := doRequest(t, app, "") // sin header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Caso 6: Token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	userUC := usecase.NewUserUseCase(memory.NewStore().Users())
	app := buildTestApp(userUC, func(p entity.Permissions) bool { return p.Sales })

	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireAdmin
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireAdmin_PorRolDelToken(t *testing.T) {
	app := fiber.New()
	app.Get("/admin",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireAdmin(),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", tokenFor(t, "u1", entity.RoleAdmin))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", tokenFor(t, "u1", entity.RoleUser))
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"USER no debe acceder a administración de usuarios")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtractaClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenFor(t, "user-42", entity.RoleUser))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "user-42", body["user_id"])
	assert.Equal(t, entity.RoleUser, body["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, "user-42", entity.RoleAdmin, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, "user-42", userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, "user-42", entity.RoleUser, testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, "user-42", entity.RoleUser, testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
