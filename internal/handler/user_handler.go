package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bistro/internal/model"
	"bistro/internal/service"
)

// UserHandler bundles HTTP handlers.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// RegisterUserRequest is the profile stored on first sign-in.
type RegisterUserRequest struct {
	Email string `json:"email" validate:"required"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

// AdminStatusResponse tells a user whether they hold the admin role.
type AdminStatusResponse struct {
	Admin bool `json:"admin"`
}

// CreateUser godoc
// @Summary Register user
// @Description Inserts the user unless the email is already known, in which case nothing is written.
// @Tags users
// @Accept json
// @Produce json
// @Param user body RegisterUserRequest true "User payload"
// @Success 200 {object} model.InsertResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req RegisterUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	res, err := h.svc.Register(c.Request().Context(), &model.User{
		Email: req.Email,
		Name:  req.Name,
		Photo: req.Photo,
	})
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, res)
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, users)
}

// CheckAdmin godoc
// @Summary Check own admin role
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email path string true "Email of the caller"
// @Success 200 {object} AdminStatusResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users/admin/{email} [get]
func (h *UserHandler) CheckAdmin(c echo.Context) error {
	email := c.Param("email")
	if err := requireSelf(c, email); err != nil {
		return err
	}
	isAdmin, err := h.svc.IsAdmin(c.Request().Context(), email)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, AdminStatusResponse{Admin: isAdmin})
}

// PromoteUser godoc
// @Summary Grant admin role
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} model.UpdateResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users/admin/{id} [patch]
func (h *UserHandler) PromoteUser(c echo.Context) error {
	res, err := h.svc.Promote(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, res)
}

// DeleteUser godoc
// @Summary Delete user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} model.DeleteResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	res, err := h.svc.DeleteUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, res)
}
