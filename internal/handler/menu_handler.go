package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bistro/internal/model"
	"bistro/internal/service"
)

// MenuHandler serves the menu.
type MenuHandler struct {
	svc service.MenuService
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(svc service.MenuService) *MenuHandler {
	return &MenuHandler{svc: svc}
}

// CreateMenuItemRequest is a new dish.
type CreateMenuItemRequest struct {
	Name     string   `json:"name" validate:"required"`
	Recipe   string   `json:"recipe"`
	Image    string   `json:"image"`
	Category string   `json:"category" validate:"required"`
	Price    *float64 `json:"price" validate:"required"`
}

// ListMenu godoc
// @Summary List menu
// @Tags menu
// @Produce json
// @Success 200 {array} model.MenuItem
// @Failure 500 {object} errors.ErrorResponse
// @Router /menu [get]
func (h *MenuHandler) ListMenu(c echo.Context) error {
	items, err := h.svc.ListMenu(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, items)
}

// GetMenuItem godoc
// @Summary Get menu item
// @Tags menu
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} model.MenuItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /menu/{id} [get]
func (h *MenuHandler) GetMenuItem(c echo.Context) error {
	item, err := h.svc.GetMenuItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, item)
}

// CreateMenuItem godoc
// @Summary Add menu item
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body CreateMenuItemRequest true "Menu item"
// @Success 200 {object} model.InsertResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /menu [post]
func (h *MenuHandler) CreateMenuItem(c echo.Context) error {
	var req CreateMenuItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	res, err := h.svc.CreateMenuItem(c.Request().Context(), &model.MenuItem{
		Name:     req.Name,
		Recipe:   req.Recipe,
		Image:    req.Image,
		Category: req.Category,
		Price:    *req.Price,
	})
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, res)
}
