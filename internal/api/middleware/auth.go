package middleware

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/ordimint/mint-engine/internal/api/apierrors"
	"github.com/ordimint/mint-engine/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	AUTH_TYPE_KEY  contextKey = "auth_type"
	AUTH_ACTOR_KEY contextKey = "auth_actor"
)

// AuthConfig holds administrative authentication configuration
type AuthConfig struct {
	// AdminKeys are shared-secret credentials compared by exact match
	AdminKeys []string
	// JWTSecret signs short-lived admin session tokens (HS256)
	JWTSecret string
}

// AuthResult holds the result of authentication
type AuthResult struct {
	Success  bool
	AuthType string // "jwt" or "apikey"
	Actor    string
	Error    error
}

// Authenticate validates the Authorization header and returns the
// authentication result
func Authenticate(authHeader string, cfg AuthConfig) AuthResult {
	result := AuthResult{Success: false}

	if authHeader == "" {
		result.Error = errors.New("missing Authorization header")
		return result
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		result.Error = errors.New("invalid Authorization header format")
		return result
	}

	authType := strings.ToLower(parts[0])
	credentials := parts[1]

	switch authType {
	case "bearer":
		subject, err := validateJWT(credentials, cfg.JWTSecret)
		if err != nil {
			result.Error = err
			return result
		}
		result.Success = true
		result.AuthType = "jwt"
		result.Actor = subject

	case "apikey":
		if err := validateAdminKey(credentials, cfg.AdminKeys); err != nil {
			result.Error = err
			return result
		}
		result.Success = true
		result.AuthType = "apikey"
		result.Actor = "apikey"

	default:
		result.Error = fmt.Errorf("unsupported authorization type: %s", authType)
	}

	return result
}

// AdminAuth returns a gin middleware guarding administrative routes.
// It accepts a shared-secret API key or an HS256-signed session token.
func AdminAuth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		result := Authenticate(authHeader, cfg)

		if !result.Success {
			logger.Warn("Authentication failed",
				zap.Error(result.Error),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			apiErr := apierrors.NewUnauthorizedError("Authentication failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiErr)
			return
		}

		c.Set(string(AUTH_TYPE_KEY), result.AuthType)
		c.Set(string(AUTH_ACTOR_KEY), result.Actor)

		c.Next()
	}
}

// Actor returns the authenticated actor name stored by AdminAuth
func Actor(c *gin.Context) string {
	if actor, ok := c.Get(string(AUTH_ACTOR_KEY)); ok {
		if s, ok := actor.(string); ok {
			return s
		}
	}
	return "unknown"
}

// validateJWT validates an HS256 session token and returns its subject
func validateJWT(tokenString string, secret string) (string, error) {
	if secret == "" {
		return "", errors.New("JWT secret not configured")
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return "", errors.New("invalid token")
	}

	now := time.Now()
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(now) {
		return "", errors.New("token has expired")
	}
	if claims.NotBefore != nil && claims.NotBefore.After(now) {
		return "", errors.New("token not yet valid")
	}

	if claims.Subject == "" {
		return "admin", nil
	}
	return claims.Subject, nil
}

// validateAdminKey compares the presented key against the configured shared
// secrets in constant time
func validateAdminKey(key string, validKeys []string) error {
	if len(validKeys) == 0 {
		return errors.New("no admin keys configured")
	}

	for _, valid := range validKeys {
		if valid == "" {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(key), []byte(valid)) == 1 {
			return nil
		}
	}

	return errors.New("invalid admin key")
}
