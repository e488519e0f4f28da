package config

import "os"

// Config is process-wide configuration, loaded once at startup and passed
// explicitly into the components that need it.
type Config struct {
	Port            string
	GatewayBaseURL  string
	GatewayUsername string
	GatewayPassword string
	CheckoutID      string
}

// Load reads configuration from the environment. Absent credentials default to
// empty strings, which results in a gateway authentication failure rather than
// a local error.
func Load() Config {
	return Config{
		Port:            getenv("SERVER_PORT", "4000"),
		GatewayBaseURL:  getenv("GATEWAY_URL", "https://try.access.worldpay.com"),
		GatewayUsername: os.Getenv("WORLDPAY_USERNAME"),
		GatewayPassword: os.Getenv("WORLDPAY_PASSWORD"),
		CheckoutID:      os.Getenv("WORLDPAY_CHECKOUT_ID"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
