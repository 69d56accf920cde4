package config

import (
	"os"
	"strconv"

	"github.com/mstgnz/netopia/netopia"
)

// AppConfig represents the application configuration
type AppConfig struct {
	Port        string
	Environment string

	NetopiaAPIKey      string
	NetopiaNotifyURL   string
	NetopiaRedirectURL string

	OpenSearchURL    string
	OpenSearchUser   string
	OpenSearchPass   string
	EnableLogging    bool
	LoggingLevel     string
	LogRetentionDays int
}

var appConfigInstance *AppConfig

// GetAppConfig returns the application configuration, read from the
// environment on first use.
func GetAppConfig() *AppConfig {
	if appConfigInstance == nil {
		appConfigInstance = &AppConfig{
			Port:               GetEnv("APP_PORT", "9999"),
			Environment:        GetEnv("APP_ENV", "development"),
			NetopiaAPIKey:      GetEnv("NETOPIA_API_KEY", ""),
			NetopiaNotifyURL:   GetEnv("NETOPIA_CONFIRM_URL", ""),
			NetopiaRedirectURL: GetEnv("NETOPIA_RETURN_URL", ""),
			OpenSearchURL:      GetEnv("OPENSEARCH_URL", "http://localhost:9200"),
			OpenSearchUser:     GetEnv("OPENSEARCH_USER", ""),
			OpenSearchPass:     GetEnv("OPENSEARCH_PASSWORD", ""),
			EnableLogging:      GetBoolEnv("ENABLE_OPENSEARCH_LOGGING", false),
			LoggingLevel:       GetEnv("LOGGING_LEVEL", "info"),
			LogRetentionDays:   GetIntEnv("LOG_RETENTION_DAYS", 30),
		}
	}
	return appConfigInstance
}

// Netopia resolves the gateway client configuration from the ambient
// environment. This is the only place the sandbox flag is derived: anything
// but a production deployment talks to the sandbox endpoint.
func (c *AppConfig) Netopia() netopia.Config {
	return netopia.Config{
		APIKey:      c.NetopiaAPIKey,
		NotifyURL:   c.NetopiaNotifyURL,
		RedirectURL: c.NetopiaRedirectURL,
		Sandbox:     c.Environment != "production",
	}
}

// GetEnv returns the value of an environment variable or a default value
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetBoolEnv returns the boolean value of an environment variable or a default value
func GetBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// GetIntEnv returns the integer value of an environment variable or a default value
func GetIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
