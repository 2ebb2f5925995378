package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fhsmendes/weather-lookup/config"
	"github.com/fhsmendes/weather-lookup/handler"
	"github.com/fhsmendes/weather-lookup/lookup"
	"github.com/fhsmendes/weather-lookup/telemetry"
	"github.com/fhsmendes/weather-lookup/utils"
	"go.uber.org/zap"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func main() {
	// Carrega variáveis de ambiente
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	shutdown, err := telemetry.InitProvider(ctx, cfg.ServiceName, cfg.OTELEndpoint)
	if err != nil {
		logger.Fatal("failed to initialize tracing provider", zap.Error(err))
	}
	defer func() {
		sctx, scancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer scancel()
		if err := shutdown(sctx); err != nil {
			logger.Error("failed to shutdown tracing provider", zap.Error(err))
		}
	}()

	sequencer := lookup.NewSequencer(
		utils.NewOpenMeteoGeocoding(utils.WithBaseURL(cfg.GeocodingURL)),
		utils.NewOpenMeteoForecast(utils.WithBaseURL(cfg.ForecastURL)),
		logger,
	)
	sessions := handler.NewSessionStore(sequencer)
	weatherHandler := handler.NewWeatherHandler(sessions, logger)

	// Sessões ociosas são descartadas periodicamente.
	go func() {
		ticker := time.NewTicker(cfg.SessionTTL / 2)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if n := sessions.Sweep(now.Add(-cfg.SessionTTL)); n > 0 {
					logger.Debug("idle sessions removed", zap.Int("count", n), zap.Int("remaining", sessions.Len()))
				}
			}
		}
	}()

	server := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           weatherHandler.Router(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		logger.Info("weather lookup running", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", zap.Error(err))
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down gracefully...")

	sctx, scancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer scancel()
	if err := server.Shutdown(sctx); err != nil {
		logger.Error("failed to shutdown server", zap.Error(err))
	}
}
