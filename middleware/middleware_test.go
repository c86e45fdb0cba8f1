package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biznova/config"
	"biznova/models"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, userID, role string, expiresIn time.Duration) string {
	t.Helper()
	claims := models.JwtClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func testApp() *fiber.App {
	app := fiber.New()
	app.Get("/merchant", Authenticate, MerchantRequired, func(c *fiber.Ctx) error {
		claims, err := ExtractClaims(c)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false})
		}
		return c.JSON(fiber.Map{"success": true, "userID": claims.UserID})
	})
	app.Get("/customer", Authenticate, CustomerRequired, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})
	return app
}

func TestAuthenticate(t *testing.T) {
	config.AppConfig.JWTSecret = testSecret
	app := testApp()

	t.Run("valid merchant token passes both gates", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/merchant", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, "u1", "merchant", time.Hour))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/merchant", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("malformed header without bearer prefix", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/merchant", nil)
		req.Header.Set("Authorization", signedToken(t, "u1", "merchant", time.Hour))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("expired token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/merchant", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, "u1", "merchant", -time.Hour))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		claims := models.JwtClaims{UserID: "u1", Role: "merchant"}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/merchant", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestRoleGates(t *testing.T) {
	config.AppConfig.JWTSecret = testSecret
	app := testApp()

	t.Run("customer rejected from merchant route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/merchant", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, "u2", "customer", time.Hour))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("merchant rejected from customer route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/customer", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, "u1", "merchant", time.Hour))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("customer allowed on customer route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/customer", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, "u2", "customer", time.Hour))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
