package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bistro/internal/model"
	"bistro/internal/service"
)

// CartHandler serves shopping carts.
type CartHandler struct {
	svc service.CartService
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(svc service.CartService) *CartHandler {
	return &CartHandler{svc: svc}
}

// AddToCartRequest puts one menu item into a user's cart.
type AddToCartRequest struct {
	MenuID string   `json:"menuId" validate:"required"`
	Email  string   `json:"email" validate:"required"`
	Name   string   `json:"name"`
	Image  string   `json:"image"`
	Price  *float64 `json:"price" validate:"required"`
}

// AddToCart godoc
// @Summary Add to cart
// @Tags carts
// @Accept json
// @Produce json
// @Param entry body AddToCartRequest true "Cart entry"
// @Success 200 {object} model.InsertResult
// @Failure 400 {object} errors.ErrorResponse
// @Router /carts [post]
func (h *CartHandler) AddToCart(c echo.Context) error {
	var req AddToCartRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	res, err := h.svc.AddToCart(c.Request().Context(), &model.CartEntry{
		MenuID: req.MenuID,
		Email:  req.Email,
		Name:   req.Name,
		Image:  req.Image,
		Price:  *req.Price,
	})
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, res)
}

// ListCart godoc
// @Summary List cart
// @Tags carts
// @Produce json
// @Param email query string true "Owner email"
// @Success 200 {array} model.CartEntry
// @Failure 400 {object} errors.ErrorResponse
// @Router /carts [get]
func (h *CartHandler) ListCart(c echo.Context) error {
	entries, err := h.svc.ListCart(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, entries)
}

// RemoveFromCart godoc
// @Summary Remove cart entry
// @Tags carts
// @Produce json
// @Param id path string true "Cart entry ID"
// @Success 200 {object} model.DeleteResult
// @Failure 400 {object} errors.ErrorResponse
// @Router /carts/{id} [delete]
func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	res, err := h.svc.RemoveFromCart(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, res)
}
