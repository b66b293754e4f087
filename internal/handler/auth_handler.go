package handler

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"bistro/internal/auth"
	"bistro/internal/errors"
	"bistro/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// TokenRequest is the identity to sign. Only email is required; every other field is copied into the token.
type TokenRequest struct {
	Email string `json:"email" example:"guest@bistro.test"`
	Name  string `json:"name,omitempty"`
}

// TokenResponse carries a signed bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// IssueToken godoc
// @Summary Issue a bearer token
// @Description Signs the posted identity into a token valid for one hour.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Identity"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /jwt [post]
func (h *AuthHandler) IssueToken(c echo.Context) error {
	identity := map[string]interface{}{}
	if err := c.Bind(&identity); err != nil {
		return invalidBody()
	}

	token, err := h.authService.IssueToken(c.Request().Context(), identity)
	if err != nil {
		if stderrors.Is(err, auth.ErrMissingEmail) {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "VALIDATION_ERROR",
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to sign token",
			Code:  "TOKEN_FAILED",
		})
	}

	return c.JSON(http.StatusOK, TokenResponse{Token: token})
}
