package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"checkout-relay/internal/payments"
	"checkout-relay/internal/payments/entities"

	"github.com/labstack/echo/v4"
)

type QueryPaymentsHandler struct {
	paymentService *payments.Service
}

func NewQueryPaymentsHandler(s *payments.Service) *QueryPaymentsHandler {
	return &QueryPaymentsHandler{paymentService: s}
}

func (h *QueryPaymentsHandler) Handle(c echo.Context) error {
	filter := entities.QueryFilter{
		StartDate:        c.QueryParam("startDate"),
		EndDate:          c.QueryParam("endDate"),
		PageSize:         c.QueryParam("pageSize"),
		Currency:         c.QueryParam("currency"),
		MinAmount:        c.QueryParam("minAmount"),
		MaxAmount:        c.QueryParam("maxAmount"),
		Last4Digits:      c.QueryParam("last4Digits"),
		EntityReferences: c.QueryParam("entityReferences"),
		ReceivedEvents:   c.QueryParam("receivedEvents"),
	}

	result, err := h.paymentService.QueryPayments(c.Request().Context(), filter)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, result)
	case errors.Is(err, payments.ErrMissingDateRange),
		errors.Is(err, payments.ErrQueryRejected):
		return c.JSON(http.StatusBadRequest, result)
	case errors.Is(err, payments.ErrGatewayUnreachable):
		return c.JSON(http.StatusInternalServerError, result)
	default:
		slog.Error("payment query error", "error", err)
		return c.JSON(http.StatusInternalServerError, entities.QueryResult{
			Success: false,
			Error:   "An error occurred while querying payments",
		})
	}
}
