package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Auth validates the JWT and injects the subject claims into context as
// "user_id" (string) and "is_admin" (bool).
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := bearerClaims(c, jwtSecret)
			if err != nil {
				return err
			}

			setIdentity(c, claims)
			return next(c)
		}
	}
}

// OptionalAuth injects claims when a bearer token is present but lets
// anonymous requests through untouched. A token that is present but invalid
// is still rejected. Used on POST /users, where anonymous registration is
// allowed but authenticated non-admins are not.
func OptionalAuth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get("Authorization") == "" {
				return next(c)
			}

			claims, err := bearerClaims(c, jwtSecret)
			if err != nil {
				return err
			}

			setIdentity(c, claims)
			return next(c)
		}
	}
}

func bearerClaims(c echo.Context, jwtSecret string) (jwt.MapClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	return claims, nil
}

func setIdentity(c echo.Context, claims jwt.MapClaims) {
	c.Set("user_id", claims["sub"])
	isAdmin, _ := claims["is_admin"].(bool)
	c.Set("is_admin", isAdmin)
}
