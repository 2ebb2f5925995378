package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/fhsmendes/weather-lookup/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const UrlForecastAPI = "%s/v1/forecast?latitude=%s&longitude=%s&current_weather=true"

type ForecastClient interface {
	GetCurrentWeather(ctx context.Context, latitude, longitude float64) (models.CurrentWeather, error)
}

// OpenMeteoForecast busca as condições atuais para um par de coordenadas.
type OpenMeteoForecast struct {
	baseURL    string
	httpClient *http.Client
}

var _ ForecastClient = (*OpenMeteoForecast)(nil)

func NewOpenMeteoForecast(opts ...Option) *OpenMeteoForecast {
	cfg := newClientConfig(DefaultForecastBaseURL, opts)
	return &OpenMeteoForecast{
		baseURL:    strings.TrimRight(cfg.baseURL, "/"),
		httpClient: cfg.httpClient,
	}
}

func (c *OpenMeteoForecast) GetCurrentWeather(ctx context.Context, latitude, longitude float64) (models.CurrentWeather, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "forecast-request")
	defer span.End()

	apiUrl := fmt.Sprintf(UrlForecastAPI, c.baseURL, formatNumber(latitude), formatNumber(longitude))
	span.SetAttributes(
		attribute.Float64("forecast.latitude", latitude),
		attribute.Float64("forecast.longitude", longitude),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiUrl, nil)
	if err != nil {
		span.RecordError(fmt.Errorf("failed to create request: %w", err))
		span.SetStatus(codes.Error, "failed to create request")
		return models.CurrentWeather{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(fmt.Errorf("failed to get weather: %w", err))
		span.SetStatus(codes.Error, "failed to get weather")
		return models.CurrentWeather{}, unwrapTransportError(err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	var forecast models.ForecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&forecast); err != nil {
		span.RecordError(fmt.Errorf("failed to decode response: %w", err))
		span.SetStatus(codes.Error, "failed to decode response")
		return models.CurrentWeather{}, err
	}

	if forecast.CurrentWeather == nil {
		span.SetStatus(codes.Error, "current weather missing")
		return models.CurrentWeather{}, ErrWeatherUnavailable
	}

	return *forecast.CurrentWeather, nil
}
