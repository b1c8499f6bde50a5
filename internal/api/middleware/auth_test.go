package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordimint/mint-engine/internal/api/middleware"
	"github.com/ordimint/mint-engine/internal/logger"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	gin.SetMode(gin.TestMode)

	code := m.Run()
	os.Exit(code)
}

const testJWTSecret = "test-jwt-secret"

func testConfig() middleware.AuthConfig {
	return middleware.AuthConfig{
		AdminKeys: []string{"valid-key-1", "valid-key-2"},
		JWTSecret: testJWTSecret,
	}
}

// signToken creates an HS256 token with the given claims
func signToken(t *testing.T, secret string, claims jwt.RegisteredClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuthenticate_ValidAPIKey(t *testing.T) {
	result := middleware.Authenticate("ApiKey valid-key-2", testConfig())

	assert.True(t, result.Success)
	assert.Equal(t, "apikey", result.AuthType)
	assert.Equal(t, "apikey", result.Actor)
}

func TestAuthenticate_InvalidAPIKey(t *testing.T) {
	result := middleware.Authenticate("ApiKey wrong-key", testConfig())

	assert.False(t, result.Success)
	assert.Error(t, result.Error)
}

func TestAuthenticate_NoKeysConfigured(t *testing.T) {
	cfg := middleware.AuthConfig{JWTSecret: testJWTSecret}

	result := middleware.Authenticate("ApiKey anything", cfg)
	assert.False(t, result.Success)
}

func TestAuthenticate_ValidJWT(t *testing.T) {
	token := signToken(t, testJWTSecret, jwt.RegisteredClaims{
		Subject:   "ops@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	result := middleware.Authenticate("Bearer "+token, testConfig())

	assert.True(t, result.Success)
	assert.Equal(t, "jwt", result.AuthType)
	assert.Equal(t, "ops@example.com", result.Actor)
}

func TestAuthenticate_JWTWithoutSubject(t *testing.T) {
	token := signToken(t, testJWTSecret, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	result := middleware.Authenticate("Bearer "+token, testConfig())

	assert.True(t, result.Success)
	assert.Equal(t, "admin", result.Actor)
}

func TestAuthenticate_ExpiredJWT(t *testing.T) {
	token := signToken(t, testJWTSecret, jwt.RegisteredClaims{
		Subject:   "ops@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})

	result := middleware.Authenticate("Bearer "+token, testConfig())
	assert.False(t, result.Success)
}

func TestAuthenticate_JWTWrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", jwt.RegisteredClaims{
		Subject:   "ops@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	result := middleware.Authenticate("Bearer "+token, testConfig())
	assert.False(t, result.Success)
}

func TestAuthenticate_MalformedHeaders(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "empty header", header: ""},
		{name: "missing credentials", header: "Bearer"},
		{name: "unsupported scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "garbage token", header: "Bearer not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := middleware.Authenticate(tt.header, testConfig())
			assert.False(t, result.Success)
			assert.Error(t, result.Error)
		})
	}
}

func TestAdminAuth_AllowsAndStoresActor(t *testing.T) {
	router := gin.New()
	router.GET("/admin/ping", middleware.AdminAuth(testConfig()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"actor": middleware.Actor(c)})
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "ApiKey valid-key-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"actor":"apikey"`)
}

func TestAdminAuth_RejectsWithoutCredentials(t *testing.T) {
	router := gin.New()
	router.GET("/admin/ping", middleware.AdminAuth(testConfig()), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestActor_UnknownWithoutAuth(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, "unknown", middleware.Actor(c))
}
