package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/depth-chart/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "foo=bar, uptrace-dsn='https://token@api.uptrace.dev?grpc=4317'")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_DepthChartSeedConfig(t *testing.T) {
	t.Run("seed file disables demo roster", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("DEPTH_CHART_SEED_FILE", "testdata/roster.json")
		t.Setenv("DEPTH_CHART_SEED_DEMO", "true")
		t.Setenv("DEPTH_CHART_SEED_WORKERS", "3")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.DepthChartSeedDemo {
			t.Fatalf("expected demo seed disabled when a seed file is set")
		}
		if cfg.DepthChartSeedFile != "testdata/roster.json" {
			t.Fatalf("unexpected DepthChartSeedFile: %q", cfg.DepthChartSeedFile)
		}
		if cfg.DepthChartSeedWorkers != 3 {
			t.Fatalf("unexpected DepthChartSeedWorkers: %d", cfg.DepthChartSeedWorkers)
		}
	})

	t.Run("workers must be positive", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("DEPTH_CHART_SEED_WORKERS", "0")

		if _, err := Load(); err == nil {
			t.Fatalf("expected error for DEPTH_CHART_SEED_WORKERS=0")
		}
	})
}

func TestLoad_DefaultsByEnv(t *testing.T) {
	t.Run("prod disables swagger and demo roster by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("SWAGGER_ENABLED", "")
		t.Setenv("DEPTH_CHART_SEED_DEMO", "")
		t.Setenv("DEPTH_CHART_SEED_FILE", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=false in prod by default")
		}
		if cfg.DepthChartSeedDemo {
			t.Fatalf("expected DepthChartSeedDemo=false in prod by default")
		}
	})

	t.Run("dev enables swagger and demo roster by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("SWAGGER_ENABLED", "")
		t.Setenv("DEPTH_CHART_SEED_DEMO", "")
		t.Setenv("DEPTH_CHART_SEED_FILE", "")
		t.Setenv("APP_LOG_LEVEL", "debug")
		t.Setenv("APP_READ_TIMEOUT", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.SwaggerEnabled || !cfg.DepthChartSeedDemo {
			t.Fatalf("expected swagger and demo seed enabled in dev, got %+v", cfg)
		}
		if cfg.LogLevel != logging.LevelDebug {
			t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel)
		}
		if cfg.ReadTimeout != 10*time.Second {
			t.Fatalf("unexpected ReadTimeout: %s", cfg.ReadTimeout)
		}
	})
}

func TestLoad_CORSCannotBeEmpty(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CORS_ALLOWED_ORIGINS", " , ")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for empty CORS_ALLOWED_ORIGINS")
	}
}
