// Package config
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Address      string        `validate:"required,hostname_port"`
	LogLevel     string        `validate:"oneof=debug info warn error"`
	LogFormat    string        `validate:"oneof=text json"`
	ProbeTimeout time.Duration `validate:"min=1ms"`
	TemplateDir  string
}

const (
	DefaultAddress      = "127.0.0.1:5000"
	DefaultProbeTimeout = 300 * time.Millisecond
)

var validate = validator.New()

func Load() *Config {
	godotenv.Load()

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = DefaultAddress
	}

	timeout := DefaultProbeTimeout
	if raw := os.Getenv("PROBE_TIMEOUT"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			timeout = parsed
		}
	}

	logLevel := strings.ToLower(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "info"
	}

	logFormat := strings.ToLower(os.Getenv("LOG_FORMAT"))
	if logFormat == "" {
		logFormat = "text"
	}

	return &Config{
		Address:      addr,
		LogLevel:     logLevel,
		LogFormat:    logFormat,
		ProbeTimeout: timeout,
		TemplateDir:  os.Getenv("TEMPLATE_DIR"),
	}
}

// Validate reports every invalid field, sorted by field name.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("invalid config: %w", err)
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		msgs = append(msgs, messageFor(e))
	}
	sort.Strings(msgs)

	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func messageFor(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "hostname_port":
		return fmt.Sprintf("%s must be a host:port pair", e.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", e.Field(), e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
	}

	return fmt.Sprintf("%s is invalid", e.Field())
}
