package auth

import (
	"context"
	"errors"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "bistro/internal/errors"
)

// ContextKey is where the verified *Claims live in the echo context.
const ContextKey = "claims"

// AdminChecker reports whether the user behind an email holds the admin role.
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// Middleware verifies the bearer token on every request it guards.
// A missing or malformed Authorization header is a 401, a token that fails verification a 403.
func Middleware(jwtService *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  ContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(_ echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
		ErrorHandler: func(_ echo.Context, err error) error {
			if errors.Is(err, ErrInvalidToken) {
				return forbidden()
			}
			return unauthorized()
		},
	})
}

// ClaimsFrom returns the claims stored by Middleware.
func ClaimsFrom(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get(ContextKey).(*Claims)
	return claims, ok && claims != nil
}

// RequireAdmin must run after Middleware. It looks the caller up on every request.
func RequireAdmin(checker AdminChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return unauthorized()
			}
			isAdmin, err := checker.IsAdmin(c.Request().Context(), claims.Email)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
					Error: "failed to verify admin role",
					Code:  "INTERNAL_ERROR",
				})
			}
			if !isAdmin {
				return forbidden()
			}
			return next(c)
		}
	}
}

func unauthorized() error {
	return echo.NewHTTPError(http.StatusUnauthorized, apperrors.MapErrorToHTTP(apperrors.ErrUnauthorized).ToErrorResponse())
}

func forbidden() error {
	return echo.NewHTTPError(http.StatusForbidden, apperrors.MapErrorToHTTP(apperrors.ErrForbidden).ToErrorResponse())
}
