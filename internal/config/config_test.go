package config_test

import (
	"testing"

	"checkout-relay/internal/config"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "GATEWAY_URL", "WORLDPAY_USERNAME", "WORLDPAY_PASSWORD", "WORLDPAY_CHECKOUT_ID"} {
		t.Setenv(key, "")
	}

	cfg := config.Load()

	require.Equal(t, "4000", cfg.Port)
	require.Equal(t, "https://try.access.worldpay.com", cfg.GatewayBaseURL)
	require.Empty(t, cfg.GatewayUsername)
	require.Empty(t, cfg.GatewayPassword)
	require.Empty(t, cfg.CheckoutID)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("GATEWAY_URL", "https://gateway.example")
	t.Setenv("WORLDPAY_USERNAME", "merchant")
	t.Setenv("WORLDPAY_PASSWORD", "hunter2")
	t.Setenv("WORLDPAY_CHECKOUT_ID", "checkout-1")

	cfg := config.Load()

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "https://gateway.example", cfg.GatewayBaseURL)
	require.Equal(t, "merchant", cfg.GatewayUsername)
	require.Equal(t, "hunter2", cfg.GatewayPassword)
	require.Equal(t, "checkout-1", cfg.CheckoutID)
}
