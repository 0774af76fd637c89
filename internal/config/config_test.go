package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	t.Setenv("ZEROBID_JWT_SECRET", "config-test")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("ZEROBID_JWT_SECRET", "config-test")
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("ZEROBID_JWT_SECRET", "config-test")
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "x-other=1, uptrace-dsn='https://token@api.uptrace.dev?grpc=4317'")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_AuctionDefaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("ZEROBID_JWT_SECRET", "config-test")
	t.Setenv("UPTRACE_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AuctionPollInterval != 5*time.Second {
		t.Fatalf("expected 5s poll interval, got %s", cfg.AuctionPollInterval)
	}
	if cfg.AuctionNextPlayerDelay != 1500*time.Millisecond {
		t.Fatalf("expected 1.5s next player delay, got %s", cfg.AuctionNextPlayerDelay)
	}
	if cfg.ZeroBidMaxRetries != 0 {
		t.Fatalf("expected no automatic retries by default, got %d", cfg.ZeroBidMaxRetries)
	}
	if cfg.ZeroBidBaseURL != "http://localhost:5000/api" {
		t.Fatalf("unexpected ZeroBidBaseURL: %q", cfg.ZeroBidBaseURL)
	}
	if !cfg.ZeroBidCircuitEnabled || cfg.ZeroBidCircuitFailureCount != 5 {
		t.Fatalf("unexpected circuit defaults: enabled=%v failures=%d", cfg.ZeroBidCircuitEnabled, cfg.ZeroBidCircuitFailureCount)
	}
	if cfg.PyroscopeAppName != cfg.ServiceName {
		t.Fatalf("expected pyroscope app name to default to service name, got %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_ZeroBidOverrides(t *testing.T) {
	t.Setenv("APP_ENV", EnvStage)
	t.Setenv("ZEROBID_JWT_SECRET", "config-test")
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("ZEROBID_API_BASE_URL", "https://zerobid.example.com/api")
	t.Setenv("ZEROBID_API_TIMEOUT", "4s")
	t.Setenv("ZEROBID_API_MAX_RETRIES", "2")
	t.Setenv("AUCTION_POLL_WORKERS", "3")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ZeroBidBaseURL != "https://zerobid.example.com/api" || cfg.ZeroBidTimeout != 4*time.Second {
		t.Fatalf("unexpected backend config: %q %s", cfg.ZeroBidBaseURL, cfg.ZeroBidTimeout)
	}
	if cfg.ZeroBidMaxRetries != 2 || cfg.AuctionPollWorkers != 3 {
		t.Fatalf("unexpected retries=%d workers=%d", cfg.ZeroBidMaxRetries, cfg.AuctionPollWorkers)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example.com" {
		t.Fatalf("unexpected CORS origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_RejectsInvalidAuctionTimings(t *testing.T) {
	cases := map[string]string{
		"AUCTION_POLL_INTERVAL":         "0s",
		"AUCTION_NEXT_PLAYER_DELAY":     "soon",
		"AUCTION_POLL_WORKERS":          "0",
		"ZEROBID_API_MAX_RETRIES":       "-1",
		"ZEROBID_CIRCUIT_FAILURE_COUNT": "0",
		"WS_PING_INTERVAL":              "-5s",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv("ZEROBID_JWT_SECRET", "config-test")
			t.Setenv("UPTRACE_ENABLED", "false")
			t.Setenv(key, value)

			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", key, value)
			}
		})
	}
}

func TestLoad_DefaultsByEnv(t *testing.T) {
	t.Run("prod disables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("ZEROBID_JWT_SECRET", "config-test")
		t.Setenv("UPTRACE_ENABLED", "false")
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=false in prod by default")
		}
	})

	t.Run("dev enables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("ZEROBID_JWT_SECRET", "config-test")
		t.Setenv("UPTRACE_ENABLED", "false")
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=true in dev by default")
		}
	})
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("ZEROBID_JWT_SECRET", "config-test")
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("ZEROBID_JWT_SECRET", "config-test")
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("ZEROBID_JWT_SECRET", "  ")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when ZEROBID_JWT_SECRET is blank")
	}
}
