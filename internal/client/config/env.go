package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variables understood by the client.
const (
	EnvAPIBaseURL  = "CERTPREP_API_URL"
	EnvTokenFile   = "CERTPREP_TOKEN_FILE"
	EnvCheckoutURL = "CERTPREP_CHECKOUT_URL"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first, if present; already-set variables
// are not overridden by it.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(EnvTokenFile); v != "" {
		cfg.TokenFile = v
	}
	if v := os.Getenv(EnvCheckoutURL); v != "" {
		cfg.CheckoutURL = v
	}
}
