package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/subscription"
	apphttp "github.com/coffeevibes888/rentflowhq-sub006/internal/interfaces/http"
	pkgjwt "github.com/coffeevibes888/rentflowhq-sub006/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "rentflow-test"
	testExpMin    = 60
)

// buildTestApp wires a minimal Fiber app with AuthMiddleware, RequireRole
// and a dummy handler that returns 200 once both middlewares pass.
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

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

func TestRequireRole_MatchingRolePasses(t *testing.T) {
	app := buildTestApp(entity.RoleLandlord)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleLandlord))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, entity.RoleLandlord, body["role"])
}

func TestRequireRole_AnyOfMultipleRolesPasses(t *testing.T) {
	app := buildTestApp(entity.RoleLandlord, entity.RoleContractor)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleContractor))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_WrongRoleForbidden(t *testing.T) {
	app := buildTestApp(entity.RoleLandlord)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleTenant))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestAuthMiddleware_MissingHeaderUnauthorized(t *testing.T) {
	app := buildTestApp(entity.RoleLandlord)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_MalformedHeaderUnauthorized(t *testing.T) {
	app := buildTestApp(entity.RoleLandlord)
	resp := doRequest(t, app, "Token abc.def.ghi")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_WrongSecretUnauthorized(t *testing.T) {
	app := buildTestApp(entity.RoleLandlord)
	tok, err := pkgjwt.Generate("another-secret", testUserID, entity.RoleLandlord, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ExpiredTokenUnauthorized(t *testing.T) {
	app := buildTestApp(entity.RoleLandlord)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, entity.RoleLandlord, testIssuer, -5)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// fakeTierChecker answers the subscription gate with canned values.
type fakeTierChecker struct {
	ok  bool
	err error
}

func (f fakeTierChecker) HasTier(_ context.Context, _, _ string) (bool, error) {
	return f.ok, f.err
}

func buildTierApp(checker fakeTierChecker) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireTier(subscription.TierPro, checker),
		func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		},
	)
	return app
}

func TestRequireTier_SufficientTierPasses(t *testing.T) {
	app := buildTierApp(fakeTierChecker{ok: true})
	resp := doRequest(t, app, tokenForRole(t, entity.RoleContractor))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireTier_InsufficientTierPaymentRequired(t *testing.T) {
	app := buildTierApp(fakeTierChecker{ok: false})
	resp := doRequest(t, app, tokenForRole(t, entity.RoleContractor))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusPaymentRequired, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "TIER_REQUIRED")
}

func TestRequireTier_CheckerFailureServiceUnavailable(t *testing.T) {
	app := buildTierApp(fakeTierChecker{err: errors.New("db down")})
	resp := doRequest(t, app, tokenForRole(t, entity.RoleContractor))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
