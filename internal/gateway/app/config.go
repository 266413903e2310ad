package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type Config struct {
	OptScaleAPIURL string        // Required: base URL of the OptScale API
	AdminToken     string        // Required: cluster secret sent to OptScale in the Secret header
	RequestTimeout time.Duration // Optional: timeout of every OptScale call (default: 10s)

	JWTSecret    string        // Required: shared secret for inbound tokens
	JWTAlgorithm string        // Optional: HS256, HS384 or HS512 (default: HS256)
	JWTIssuer    string        // Required: expected "iss"
	JWTAudience  string        // Required: expected "aud"
	JWTLeeway    time.Duration // Optional: clock skew allowed on exp/nbf (default: 0s)

	APIPrefix           string        // Path prefix of the versioned routes (default: /v1)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		OptScaleAPIURL: strings.TrimRight(os.Getenv("OPTSCALE_API_URL"), "/"),
		AdminToken:     os.Getenv("ADMIN_TOKEN"),
		RequestTimeout: getEnvDurationOrDefault("DEFAULT_REQUEST_TIMEOUT", 10*time.Second),

		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTAlgorithm: getEnvOrDefault("JWT_ALGORITHM", "HS256"),
		JWTIssuer:    os.Getenv("JWT_ISSUER"),
		JWTAudience:  os.Getenv("JWT_AUDIENCE"),
		JWTLeeway:    getEnvDurationOrDefault("JWT_LEEWAY", 0),

		APIPrefix:           getEnvOrDefault("API_PREFIX", "/v1"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// Validate reports every missing or malformed setting at once.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.OptScaleAPIURL, validation.Required, is.RequestURL),
		validation.Field(&c.AdminToken, validation.Required),
		validation.Field(&c.JWTSecret, validation.Required),
		validation.Field(&c.JWTAlgorithm, validation.Required, validation.In("HS256", "HS384", "HS512")),
		validation.Field(&c.JWTIssuer, validation.Required),
		validation.Field(&c.JWTAudience, validation.Required),
		validation.Field(&c.JWTLeeway, validation.Min(time.Duration(0))),
		validation.Field(&c.RequestTimeout, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// "10s", "1m30s"
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
