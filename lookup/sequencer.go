// Package lookup encadeia o geocoding e a previsão do tempo e mantém o estado
// local de cada interface que dispara consultas.
package lookup

import (
	"context"
	"errors"

	"github.com/fhsmendes/weather-lookup/models"
	"github.com/fhsmendes/weather-lookup/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// ErrorKind classifica as falhas apenas para logs e spans; o usuário vê só a mensagem.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindNotFound
	KindDataUnavailable
	KindTransportOrParse
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNotFound:
		return "not_found"
	case KindDataUnavailable:
		return "data_unavailable"
	default:
		return "transport_or_parse"
	}
}

func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, utils.ErrCityNotFound):
		return KindNotFound
	case errors.Is(err, utils.ErrWeatherUnavailable):
		return KindDataUnavailable
	default:
		return KindTransportOrParse
	}
}

type Sequencer struct {
	geocoding utils.GeocodingClient
	forecast  utils.ForecastClient
	logger    *zap.Logger
	tracer    trace.Tracer
}

func NewSequencer(geocoding utils.GeocodingClient, forecast utils.ForecastClient, logger *zap.Logger) *Sequencer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sequencer{
		geocoding: geocoding,
		forecast:  forecast,
		logger:    logger,
		tracer:    otel.Tracer("weather-lookup/lookup"),
	}
}

// Lookup resolve a cidade e, somente se houver correspondência, busca o tempo atual
// nas coordenadas encontradas.
func (s *Sequencer) Lookup(ctx context.Context, city string) (models.WeatherResult, error) {
	ctx, span := s.tracer.Start(ctx, "lookup")
	defer span.End()
	span.SetAttributes(attribute.String("city", city))

	log := s.logger.With(zap.String("city", city))

	loc, err := s.geocoding.GetLocation(ctx, city)
	if err != nil {
		s.fail(span, log, "geocoding", err)
		return models.WeatherResult{}, err
	}
	log.Debug("city resolved",
		zap.String("name", loc.Name),
		zap.String("country", loc.Country),
		zap.Float64("latitude", loc.Latitude),
		zap.Float64("longitude", loc.Longitude),
	)

	current, err := s.forecast.GetCurrentWeather(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		s.fail(span, log, "forecast", err)
		return models.WeatherResult{}, err
	}

	result := models.WeatherResult{
		CityName:           loc.Name,
		CountryName:        loc.Country,
		TemperatureCelsius: current.Temperature,
		WindSpeedKph:       current.WindSpeed,
	}
	log.Info("weather found",
		zap.String("name", result.CityName),
		zap.Float64("temperature_c", result.TemperatureCelsius),
		zap.Float64("windspeed_kmh", result.WindSpeedKph),
	)
	return result, nil
}

// Resolve executa Lookup e converte qualquer desfecho em um estado terminal.
func (s *Sequencer) Resolve(ctx context.Context, city string) models.Outcome {
	result, err := s.Lookup(ctx, city)
	if err != nil {
		return models.Failed(err.Error())
	}
	return models.Succeeded(result)
}

func (s *Sequencer) fail(span trace.Span, log *zap.Logger, stage string, err error) {
	kind := Classify(err)
	span.SetAttributes(
		attribute.String("lookup.stage", stage),
		attribute.String("lookup.error_kind", kind.String()),
	)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	if kind == KindTransportOrParse {
		log.Warn("lookup failed", zap.String("stage", stage), zap.Error(err))
		return
	}
	log.Info("lookup finished without result", zap.String("stage", stage), zap.Stringer("kind", kind), zap.Error(err))
}
