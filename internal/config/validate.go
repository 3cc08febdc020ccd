package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validDrivers = map[string]bool{
	"sqlite": true, "postgres": true,
}

// minSecretLen is the shortest jwt_secret accepted for HS256 signing.
const minSecretLen = 16

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}
	if c.Server.RequestTimeout.Duration < 0 {
		errs = append(errs, "server.request_timeout: must not be negative")
	}
	if c.Server.ShutdownTimeout.Duration < 0 {
		errs = append(errs, "server.shutdown_timeout: must not be negative")
	}

	if !validDrivers[c.Database.Driver] {
		errs = append(errs, fmt.Sprintf("database.driver: must be one of sqlite, postgres; got %q", c.Database.Driver))
	}
	if c.Database.Driver == "postgres" && c.Database.URL == "" {
		errs = append(errs, "database.url: required when driver is postgres")
	}
	if c.Database.Driver == "sqlite" && c.Database.Path == "" {
		errs = append(errs, "database.path: required when driver is sqlite")
	}
	if c.Database.MaxOpenConns < 0 || c.Database.MaxIdleConns < 0 {
		errs = append(errs, "database: pool sizes must not be negative")
	}
	if c.Database.ConnectRetries < 0 {
		errs = append(errs, "database.connect_retries: must not be negative")
	}

	if c.Auth.JWTSecret == "" {
		errs = append(errs, "auth.jwt_secret: required")
	} else if len(c.Auth.JWTSecret) < minSecretLen {
		errs = append(errs, fmt.Sprintf("auth.jwt_secret: must be at least %d characters", minSecretLen))
	}
	if c.Auth.TokenTTL.Duration < 0 {
		errs = append(errs, "auth.token_ttl: must not be negative")
	}
	if c.Auth.BcryptCost != 0 && (c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost) {
		errs = append(errs, fmt.Sprintf("auth.bcrypt_cost: must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost))
	}

	return errs
}
