package config

import (
	"fmt"
	"log"
)

// devFallbackSecret is only ever used outside production, and loudly.
const devFallbackSecret = "devhive-dev-secret"

// Validate checks that the configuration is usable for the current
// environment. The token secret is the one value that must never be
// defaulted in production.
func Validate(cfg *Config) error {
	if cfg.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT must not be empty")
	}
	if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBName == "" {
		return fmt.Errorf("database host, port and name are required")
	}

	if cfg.JWTSecret == "" {
		if IsProduction() {
			return fmt.Errorf("ACCESS_SECRET is required in production")
		}
		log.Printf("warning: ACCESS_SECRET not set, using development fallback secret")
		cfg.JWTSecret = devFallbackSecret
	}

	return nil
}
