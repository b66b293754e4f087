package handler

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"bistro/internal/errors"
	"bistro/internal/service"
)

// PaymentHandler handles payment endpoints.
type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// PaymentIntentRequest is the order total in major currency units.
type PaymentIntentRequest struct {
	Price *float64 `json:"price" example:"24.5"`
}

// PaymentIntentResponse carries the secret the client confirms the card payment with.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// RecordPaymentRequest is a completed checkout. cartId is accepted as an older spelling of cartIds.
type RecordPaymentRequest struct {
	Email         string     `json:"email" validate:"required"`
	Price         *float64   `json:"price" validate:"required"`
	TransactionID string     `json:"transactionId"`
	Date          *time.Time `json:"date"`
	CartIDs       []string   `json:"cartIds"`
	LegacyCartIDs []string   `json:"cartId" swaggerignore:"true"`
	MenuItemIDs   []string   `json:"menuItemIds"`
	Status        string     `json:"status"`
}

// CreatePaymentIntent godoc
// @Summary Create payment intent
// @Description Amounts below one cent are rejected with an empty 400 before the processor is called.
// @Tags payments
// @Accept json
// @Produce json
// @Param request body PaymentIntentRequest true "Order total"
// @Success 200 {object} PaymentIntentResponse
// @Failure 400
// @Failure 502 {object} errors.ErrorResponse
// @Router /create-payment-intent [post]
func (h *PaymentHandler) CreatePaymentIntent(c echo.Context) error {
	var req PaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}

	intent, err := h.paymentService.CreateIntent(c.Request().Context(), req.Price)
	if err != nil {
		if stderrors.Is(err, errors.ErrInvalidAmount) {
			return c.NoContent(http.StatusBadRequest)
		}
		return fail(err)
	}
	return c.JSON(http.StatusOK, PaymentIntentResponse{ClientSecret: intent.ClientSecret})
}

// RecordPayment godoc
// @Summary Record payment
// @Description Stores the payment then deletes exactly the listed cart entries.
// @Tags payments
// @Accept json
// @Produce json
// @Param request body RecordPaymentRequest true "Payment"
// @Success 200 {object} service.PaymentRecordResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /payments [post]
func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	var req RecordPaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.paymentService.RecordPayment(c.Request().Context(), service.RecordPaymentInput{
		Email:         req.Email,
		Price:         *req.Price,
		TransactionID: req.TransactionID,
		Date:          req.Date,
		Status:        req.Status,
		CartIDs:       append(req.CartIDs, req.LegacyCartIDs...),
		MenuItemIDs:   req.MenuItemIDs,
	})
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, res)
}

// ListPayments godoc
// @Summary Payment history
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param email path string true "Email of the caller"
// @Success 200 {array} model.Payment
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /payments/{email} [get]
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	email := c.Param("email")
	if err := requireSelf(c, email); err != nil {
		return err
	}
	payments, err := h.paymentService.ListPayments(c.Request().Context(), email)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, payments)
}
