// AngelaMos | 2026
// config.go

package config

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	App     AppConfig     `koanf:"app"`
	Log     LogConfig     `koanf:"log"`
	Latency LatencyConfig `koanf:"latency"`
	Seed    SeedConfig    `koanf:"seed"`
	Otel    OtelConfig    `koanf:"otel"`
}

type AppConfig struct {
	Name        string `koanf:"name"`
	Version     string `koanf:"version"`
	Environment string `koanf:"environment"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// LatencyConfig controls the simulated remote-API boundary.
type LatencyConfig struct {
	Enabled           bool    `koanf:"enabled"`
	Scale             float64 `koanf:"scale"`
	Jitter            float64 `koanf:"jitter"`
	FaultRate         float64 `koanf:"fault_rate"`
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`
}

type SeedConfig struct {
	Enabled bool `koanf:"enabled"`
}

type OtelConfig struct {
	Endpoint    string  `koanf:"endpoint"`
	ServiceName string  `koanf:"service_name"`
	Enabled     bool    `koanf:"enabled"`
	Insecure    bool    `koanf:"insecure"`
	SampleRate  float64 `koanf:"sample_rate"`
}

func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := loadDefaults(k); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider("", ".", envKeyReplacer), nil); err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func loadDefaults(k *koanf.Koanf) error {
	defaults := map[string]any{
		"app.name":        "Loyalty Data Service",
		"app.version":     "1.0.0",
		"app.environment": "development",

		"log.level":  "info",
		"log.format": "text",

		"latency.enabled":             false,
		"latency.scale":               1.0,
		"latency.jitter":              0.2,
		"latency.fault_rate":          0.0,
		"latency.requests_per_second": 0.0,
		"latency.burst":               5,

		"seed.enabled": true,

		"otel.enabled":      false,
		"otel.insecure":     true,
		"otel.sample_rate":  0.1,
		"otel.service_name": "loyalty",
	}

	for key, value := range defaults {
		if err := k.Set(key, value); err != nil {
			return fmt.Errorf("set default %s: %w", key, err)
		}
	}

	return nil
}

var envKeyMap = map[string]string{
	"ENVIRONMENT":                 "app.environment",
	"LOG_LEVEL":                   "log.level",
	"LOG_FORMAT":                  "log.format",
	"LATENCY_ENABLED":             "latency.enabled",
	"LATENCY_SCALE":               "latency.scale",
	"LATENCY_JITTER":              "latency.jitter",
	"LATENCY_RPS":                 "latency.requests_per_second",
	"LATENCY_BURST":               "latency.burst",
	"FAULT_RATE":                  "latency.fault_rate",
	"SEED_ENABLED":                "seed.enabled",
	"OTEL_ENDPOINT":               "otel.endpoint",
	"OTEL_EXPORTER_OTLP_ENDPOINT": "otel.endpoint",
	"OTEL_SERVICE_NAME":           "otel.service_name",
	"OTEL_ENABLED":                "otel.enabled",
	"OTEL_INSECURE":               "otel.insecure",
	"OTEL_SAMPLE_RATE":            "otel.sample_rate",
}

func envKeyReplacer(s string) string {
	if mapped, ok := envKeyMap[s]; ok {
		return mapped
	}
	return ""
}

func validate(c *Config) error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("log.format must be json or text")
	}

	if c.Latency.Scale < 0 {
		return fmt.Errorf("latency.scale must not be negative")
	}

	if c.Latency.Jitter < 0 || c.Latency.Jitter > 1 {
		return fmt.Errorf("latency.jitter must be between 0 and 1")
	}

	if c.Latency.FaultRate < 0 || c.Latency.FaultRate > 1 {
		return fmt.Errorf("latency.fault_rate must be between 0 and 1")
	}

	if c.Latency.RequestsPerSecond < 0 {
		return fmt.Errorf("latency.requests_per_second must not be negative")
	}

	if c.App.Environment == "production" {
		if c.Otel.Enabled && c.Otel.Insecure {
			return fmt.Errorf("OTEL_INSECURE must be false in production")
		}
		if c.Latency.FaultRate > 0 {
			return fmt.Errorf("FAULT_RATE must be 0 in production")
		}
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}
