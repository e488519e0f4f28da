package handlers

import (
	"net/http"

	"checkout-relay/internal/config"

	"github.com/labstack/echo/v4"
)

// ClientConfigHandler exposes the settings the demo page needs to bootstrap
// the hosted checkout widget. Credentials are never included.
type ClientConfigHandler struct {
	checkoutID     string
	gatewayBaseURL string
}

func NewClientConfigHandler(cfg config.Config) *ClientConfigHandler {
	return &ClientConfigHandler{
		checkoutID:     cfg.CheckoutID,
		gatewayBaseURL: cfg.GatewayBaseURL,
	}
}

func (h *ClientConfigHandler) Handle(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"checkoutId":     h.checkoutID,
		"gatewayBaseUrl": h.gatewayBaseURL,
	})
}
