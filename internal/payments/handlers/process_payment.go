package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"checkout-relay/internal/payments"
	"checkout-relay/internal/payments/entities"

	"github.com/labstack/echo/v4"
)

type ProcessPaymentHandler struct {
	paymentService *payments.Service
}

func NewProcessPaymentHandler(s *payments.Service) *ProcessPaymentHandler {
	return &ProcessPaymentHandler{paymentService: s}
}

func (h *ProcessPaymentHandler) Handle(c echo.Context) error {
	var req entities.PaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, entities.PaymentOutcome{
			Success: false,
			Error:   "Invalid request body",
		})
	}

	outcome, err := h.paymentService.ProcessPayment(c.Request().Context(), req)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, outcome)
	case errors.Is(err, payments.ErrMissingSession),
		errors.Is(err, payments.ErrInvalidAmount),
		errors.Is(err, payments.ErrPaymentDeclined):
		return c.JSON(http.StatusBadRequest, outcome)
	case errors.Is(err, payments.ErrGatewayUnreachable):
		return c.JSON(http.StatusInternalServerError, outcome)
	default:
		slog.Error("payment processing error", "error", err)
		return c.JSON(http.StatusInternalServerError, entities.PaymentOutcome{
			Success: false,
			Error:   "An error occurred while processing the payment",
		})
	}
}
