package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"wayfarer-backend/internal/authz"
)

// Auth parses the bearer token (or the legacy "token" cookie) and places the
// resolved authz.Actor in the request context. Token issuance itself lives
// with the identity provider; this only verifies and decodes.
func Auth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := tokenFrom(c)
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, map[string]any{
					"status": "fail",
					"error":  map[string]string{"message": "Access denied, token required"},
				})
			}
			token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, map[string]any{
					"status": "fail",
					"error":  map[string]string{"message": "Access denied, invalid or expired token"},
				})
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]any{
					"status": "fail",
					"error":  map[string]string{"message": "Access denied, invalid token claims"},
				})
			}
			id, _ := claims["id"].(float64)
			role, _ := claims["role"].(string)
			email, _ := claims["email"].(string)
			c.Set("actor", authz.Actor{ID: uint(id), Role: role, Email: email})
			return next(c)
		}
	}
}

func tokenFrom(c echo.Context) string {
	if h := c.Request().Header.Get(echo.HeaderAuthorization); h != "" {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if cookie, err := c.Cookie("token"); err == nil {
		return cookie.Value
	}
	return ""
}

// RequireAdmin gates manager/admin-only routes on the configured role set.
func RequireAdmin(policy *authz.Policy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := c.Get("actor").(authz.Actor)
			if !ok || !policy.IsAdmin(actor.Role) {
				return c.JSON(http.StatusForbidden, map[string]any{
					"status": "fail",
					"error":  map[string]string{"message": "Access denied, you are not allowed to perform this action"},
				})
			}
			return next(c)
		}
	}
}

// SignToken issues an HMAC token carrying the actor's identity claims. Used
// by the seeder and tests; production issuance is external.
func SignToken(secret string, actor authz.Actor, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"id":    float64(actor.ID),
		"role":  actor.Role,
		"email": actor.Email,
		"exp":   time.Now().Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
