package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fhsmendes/weather-lookup/utils"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Port         string
	GeocodingURL string
	ForecastURL  string
	OTELEndpoint string
	ServiceName  string
	SessionTTL   time.Duration
	LogLevel     zapcore.Level
	Development  bool
}

// Load lê o .env (se existir) e depois as variáveis de ambiente.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Println("No .env file found")
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		GeocodingURL: getEnv("GEOCODING_API_URL", utils.DefaultGeocodingBaseURL),
		ForecastURL:  getEnv("FORECAST_API_URL", utils.DefaultForecastBaseURL),
		OTELEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		ServiceName:  getEnv("OTEL_SERVICE_NAME", "weather-lookup"),
		Development:  os.Getenv("APP_ENV") == "development",
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("invalid SESSION_TTL: must be positive, got %s", ttl)
	}
	cfg.SessionTTL = ttl

	level, err := zapcore.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	return cfg, nil
}

// NewLogger monta o logger zap conforme APP_ENV e LOG_LEVEL.
func (c *Config) NewLogger() (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if c.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(c.LogLevel)
	return zcfg.Build()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
