package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `validate:"required"`
	Port        string `validate:"required,numeric"`
	LogLevel    string `validate:"oneof=trace debug info warn warning error fatal panic"`
	LogFormat   string `validate:"oneof=text json"`
	MercadoPago MercadoPagoConfig
	Server      ServerConfig
}

// MercadoPagoConfig holds the payment provider settings shared by both
// checkout handlers. AccessToken is checked per invocation, not at load time.
type MercadoPagoConfig struct {
	AccessToken        string
	BaseURL            string        `validate:"required,url"`
	PaymentDescription string        `validate:"required"`
	Timeout            time.Duration `validate:"gt=0"`
}

// HasCredentials reports whether an access token is configured.
func (c MercadoPagoConfig) HasCredentials() bool {
	return c.AccessToken != ""
}

// ServerConfig holds settings for the local development server
type ServerConfig struct {
	RateLimitRPS   float64 `validate:"gt=0"`
	RateLimitBurst int     `validate:"gt=0"`
	MaxBodyBytes   int64   `validate:"gt=0"`
}

var validate = validator.New()

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8081")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("MP_BASE_URL", "https://api.mercadopago.com")
	viper.SetDefault("MP_PAYMENT_DESCRIPTION", "Venda Lojas Omena")
	viper.SetDefault("MP_HTTP_TIMEOUT", "30s")
	viper.SetDefault("RATE_LIMIT_RPS", 10)
	viper.SetDefault("RATE_LIMIT_BURST", 20)
	viper.SetDefault("MAX_BODY_BYTES", 64*1024)

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		LogLevel:    viper.GetString("LOG_LEVEL"),
		LogFormat:   viper.GetString("LOG_FORMAT"),
		MercadoPago: MercadoPagoConfig{
			AccessToken:        viper.GetString("MP_ACCESS_TOKEN"),
			BaseURL:            viper.GetString("MP_BASE_URL"),
			PaymentDescription: viper.GetString("MP_PAYMENT_DESCRIPTION"),
			Timeout:            viper.GetDuration("MP_HTTP_TIMEOUT"),
		},
		Server: ServerConfig{
			RateLimitRPS:   viper.GetFloat64("RATE_LIMIT_RPS"),
			RateLimitBurst: viper.GetInt("RATE_LIMIT_BURST"),
			MaxBodyBytes:   viper.GetInt64("MAX_BODY_BYTES"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsInt gets an environment variable as integer with a fallback value
func GetEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
