package main

import (
	"context"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fhsmendes/weather-lookup/config"
	"github.com/fhsmendes/weather-lookup/lookup"
	"github.com/fhsmendes/weather-lookup/telemetry"
	"github.com/fhsmendes/weather-lookup/tui"
	"github.com/fhsmendes/weather-lookup/utils"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// A tela pertence à interface: logs só a partir de warn, no stderr.
	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	logger = logger.WithOptions(zap.IncreaseLevel(zap.WarnLevel))
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdown, err := telemetry.InitProvider(ctx, cfg.ServiceName+"-tui", cfg.OTELEndpoint)
	if err != nil {
		logger.Fatal("failed to initialize tracing provider", zap.Error(err))
	}
	defer shutdown(context.Background())

	sequencer := lookup.NewSequencer(
		utils.NewOpenMeteoGeocoding(utils.WithBaseURL(cfg.GeocodingURL)),
		utils.NewOpenMeteoForecast(utils.WithBaseURL(cfg.ForecastURL)),
		logger,
	)

	if _, err := tea.NewProgram(tui.NewApp(ctx, sequencer)).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
