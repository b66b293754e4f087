package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bistro/internal/auth"
	"bistro/internal/errors"
)

// fail converts a domain error into the standard error body.
func fail(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func invalidBody() error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: "invalid request body",
		Code:  "INVALID_REQUEST",
	})
}

func invalidFields(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: err.Error(),
		Code:  "VALIDATION_ERROR",
	})
}

// bindAndValidate binds the JSON body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(req); err != nil {
		return invalidFields(err)
	}
	return nil
}

// requireSelf rejects callers asking about an email other than the one in their token.
func requireSelf(c echo.Context, email string) error {
	claims, ok := auth.ClaimsFrom(c)
	if !ok {
		return fail(errors.ErrUnauthorized)
	}
	if claims.Email != email {
		return fail(errors.ErrForbidden)
	}
	return nil
}
