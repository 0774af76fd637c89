package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/zerobid-console/internal/platform/logging"
)

// Config stores runtime configuration for the console.
type Config struct {
	AppEnv                       string
	ServiceName                  string
	ServiceVersion               string
	HTTPAddr                     string
	CORSAllowedOrigins           []string
	ReadTimeout                  time.Duration
	WriteTimeout                 time.Duration
	PprofEnabled                 bool
	PprofAddr                    string
	SwaggerEnabled               bool
	ZeroBidBaseURL               string
	ZeroBidTimeout               time.Duration
	ZeroBidMaxRetries            int
	ZeroBidJWTSecret             string
	ZeroBidCircuitEnabled        bool
	ZeroBidCircuitFailureCount   int
	ZeroBidCircuitOpenTimeout    time.Duration
	ZeroBidCircuitHalfOpenMaxReq int
	AuctionPollInterval          time.Duration
	AuctionNextPlayerDelay       time.Duration
	AuctionPollWorkers           int
	TeamCacheTTL                 time.Duration
	WSPingInterval               time.Duration
	UptraceEnabled               bool
	UptraceDSN                   string
	PyroscopeEnabled             bool
	PyroscopeServerAddress       string
	PyroscopeAppName             string
	PyroscopeAuthToken           string
	PyroscopeBasicAuthUser       string
	PyroscopeBasicAuthPassword   string
	PyroscopeUploadRate          time.Duration
	LogLevel                     logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}

	swaggerEnabled, err := strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
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

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := parsePositiveDuration("PYROSCOPE_UPLOAD_RATE", "15s")
	if err != nil {
		return Config{}, err
	}

	zeroBidBaseURL := strings.TrimSpace(getEnv("ZEROBID_API_BASE_URL", "http://localhost:5000/api"))
	if zeroBidBaseURL == "" {
		return Config{}, fmt.Errorf("ZEROBID_API_BASE_URL cannot be empty")
	}
	zeroBidJWTSecret := strings.TrimSpace(getEnv("ZEROBID_JWT_SECRET", ""))
	if zeroBidJWTSecret == "" {
		return Config{}, fmt.Errorf("ZEROBID_JWT_SECRET is required to verify access tokens")
	}
	zeroBidTimeout, err := parsePositiveDuration("ZEROBID_API_TIMEOUT", "15s")
	if err != nil {
		return Config{}, err
	}
	zeroBidMaxRetries, err := getEnvAsInt("ZEROBID_API_MAX_RETRIES", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse ZEROBID_API_MAX_RETRIES: %w", err)
	}
	if zeroBidMaxRetries < 0 {
		return Config{}, fmt.Errorf("ZEROBID_API_MAX_RETRIES must be >= 0")
	}
	zeroBidCircuitEnabled, err := strconv.ParseBool(getEnv("ZEROBID_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ZEROBID_CIRCUIT_ENABLED: %w", err)
	}
	zeroBidCircuitFailureCount, err := getEnvAsInt("ZEROBID_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse ZEROBID_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if zeroBidCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("ZEROBID_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	zeroBidCircuitOpenTimeout, err := parsePositiveDuration("ZEROBID_CIRCUIT_OPEN_TIMEOUT", "15s")
	if err != nil {
		return Config{}, err
	}
	zeroBidCircuitHalfOpenMaxReq, err := getEnvAsInt("ZEROBID_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse ZEROBID_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if zeroBidCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("ZEROBID_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	pollInterval, err := parsePositiveDuration("AUCTION_POLL_INTERVAL", "5s")
	if err != nil {
		return Config{}, err
	}
	nextPlayerDelay, err := parsePositiveDuration("AUCTION_NEXT_PLAYER_DELAY", "1500ms")
	if err != nil {
		return Config{}, err
	}
	pollWorkers, err := getEnvAsInt("AUCTION_POLL_WORKERS", 8)
	if err != nil {
		return Config{}, fmt.Errorf("parse AUCTION_POLL_WORKERS: %w", err)
	}
	if pollWorkers < 1 {
		return Config{}, fmt.Errorf("AUCTION_POLL_WORKERS must be >= 1")
	}
	teamCacheTTL, err := parsePositiveDuration("TEAM_CACHE_TTL", "5m")
	if err != nil {
		return Config{}, err
	}
	wsPingInterval, err := parsePositiveDuration("WS_PING_INTERVAL", "30s")
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cfg := Config{
		AppEnv:                       appEnv,
		ServiceName:                  getEnv("APP_SERVICE_NAME", "zerobid-console"),
		ServiceVersion:               getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                     getEnv("APP_HTTP_ADDR", ":8080"),
		CORSAllowedOrigins:           splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:                  readTimeout,
		WriteTimeout:                 writeTimeout,
		PprofEnabled:                 pprofEnabled,
		PprofAddr:                    pprofAddr,
		SwaggerEnabled:               swaggerEnabled,
		ZeroBidBaseURL:               zeroBidBaseURL,
		ZeroBidTimeout:               zeroBidTimeout,
		ZeroBidMaxRetries:            zeroBidMaxRetries,
		ZeroBidJWTSecret:             zeroBidJWTSecret,
		ZeroBidCircuitEnabled:        zeroBidCircuitEnabled,
		ZeroBidCircuitFailureCount:   zeroBidCircuitFailureCount,
		ZeroBidCircuitOpenTimeout:    zeroBidCircuitOpenTimeout,
		ZeroBidCircuitHalfOpenMaxReq: zeroBidCircuitHalfOpenMaxReq,
		AuctionPollInterval:          pollInterval,
		AuctionNextPlayerDelay:       nextPlayerDelay,
		AuctionPollWorkers:           pollWorkers,
		TeamCacheTTL:                 teamCacheTTL,
		WSPingInterval:               wsPingInterval,
		UptraceEnabled:               uptraceEnabled,
		UptraceDSN:                   uptraceDSN,
		PyroscopeEnabled:             pyroscopeEnabled,
		PyroscopeServerAddress:       pyroscopeServerAddress,
		PyroscopeAuthToken:           strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:       strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:   strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:          pyroscopeUploadRate,
		LogLevel:                     logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func parsePositiveDuration(key, fallback string) (time.Duration, error) {
	value, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return value, nil
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

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	for _, item := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(parts[1]), "\"'")
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
