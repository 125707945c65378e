package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/faceit-go/internal/platform/logging"
)

// Config stores runtime configuration for the faceit command.
type Config struct {
	AppEnv                      string
	ServiceName                 string
	ServiceVersion              string
	LogLevel                    logging.Level
	FaceitAPIKey                string
	FaceitBaseURL               string
	FaceitUserAgent             string
	FaceitTimeout               time.Duration
	FaceitCircuitEnabled        bool
	FaceitCircuitFailureCount   int
	FaceitCircuitOpenTimeout    time.Duration
	FaceitCircuitHalfOpenMaxReq int
	UptraceEnabled              bool
	UptraceDSN                  string
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	faceitTimeout, err := time.ParseDuration(getEnv("FACEIT_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FACEIT_TIMEOUT: %w", err)
	}
	if faceitTimeout <= 0 {
		return Config{}, fmt.Errorf("FACEIT_TIMEOUT must be > 0")
	}

	faceitCircuitEnabled, err := strconv.ParseBool(getEnv("FACEIT_CIRCUIT_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FACEIT_CIRCUIT_ENABLED: %w", err)
	}
	faceitCircuitFailureCount, err := getEnvAsInt("FACEIT_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse FACEIT_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if faceitCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("FACEIT_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	faceitCircuitOpenTimeout, err := time.ParseDuration(getEnv("FACEIT_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FACEIT_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if faceitCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("FACEIT_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	faceitCircuitHalfOpenMaxReq, err := getEnvAsInt("FACEIT_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse FACEIT_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if faceitCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("FACEIT_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	return Config{
		AppEnv:                      appEnv,
		ServiceName:                 getEnv("SERVICE_NAME", "faceit-cli"),
		ServiceVersion:              getEnv("SERVICE_VERSION", "dev"),
		LogLevel:                    logging.ParseLevel(getEnv("LOG_LEVEL", "warn")),
		FaceitAPIKey:                strings.TrimSpace(getEnv("FACEIT_API_KEY", "")),
		FaceitBaseURL:               strings.TrimSpace(getEnv("FACEIT_BASE_URL", "")),
		FaceitUserAgent:             strings.TrimSpace(getEnv("FACEIT_USER_AGENT", "")),
		FaceitTimeout:               faceitTimeout,
		FaceitCircuitEnabled:        faceitCircuitEnabled,
		FaceitCircuitFailureCount:   faceitCircuitFailureCount,
		FaceitCircuitOpenTimeout:    faceitCircuitOpenTimeout,
		FaceitCircuitHalfOpenMaxReq: faceitCircuitHalfOpenMaxReq,
		UptraceEnabled:              uptraceEnabled,
		UptraceDSN:                  uptraceDSN,
	}, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
