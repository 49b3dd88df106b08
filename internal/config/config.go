package config

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Provider exposes the configuration values the rest of the application is
// allowed to read. Handlers and middleware depend on this interface rather
// than the concrete struct so tests can substitute fixed values.
type Provider interface {
	GetAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string
	GetProviderURL() string
	GetProviderAnonKey() string
}

// Config holds all configuration for the application, loaded from the
// environment at startup.
type Config struct {
	Addr            string `validate:"required"`
	AppBaseURL      string `validate:"required,url"`
	SessionSecret   string `validate:"required,min=32"`
	ProviderURL     string `validate:"required,url"`
	ProviderAnonKey string `validate:"required"`
}

// New loads configuration from environment variables and validates it.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		Addr:            envOr("APP_ADDR", ":8080"),
		AppBaseURL:      envOr("APP_BASE_URL", "http://localhost:8080"),
		SessionSecret:   os.Getenv("SESSION_SECRET"),
		ProviderURL:     os.Getenv("PROVIDER_URL"),
		ProviderAnonKey: os.Getenv("PROVIDER_ANON_KEY"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) GetAddr() string            { return c.Addr }
func (c *Config) GetAppBaseURL() string      { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string   { return c.SessionSecret }
func (c *Config) GetProviderURL() string     { return c.ProviderURL }
func (c *Config) GetProviderAnonKey() string { return c.ProviderAnonKey }
