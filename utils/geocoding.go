package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/fhsmendes/weather-lookup/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const UrlGeocodingAPI = "%s/v1/search?name=%s&count=1"

type GeocodingClient interface {
	GetLocation(ctx context.Context, city string) (models.Location, error)
}

// OpenMeteoGeocoding resolve nomes de cidade em coordenadas.
type OpenMeteoGeocoding struct {
	baseURL    string
	httpClient *http.Client
}

var _ GeocodingClient = (*OpenMeteoGeocoding)(nil)

func NewOpenMeteoGeocoding(opts ...Option) *OpenMeteoGeocoding {
	cfg := newClientConfig(DefaultGeocodingBaseURL, opts)
	return &OpenMeteoGeocoding{
		baseURL:    strings.TrimRight(cfg.baseURL, "/"),
		httpClient: cfg.httpClient,
	}
}

func (c *OpenMeteoGeocoding) GetLocation(ctx context.Context, city string) (models.Location, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "geocoding-request")
	defer span.End()

	apiUrl := fmt.Sprintf(UrlGeocodingAPI, c.baseURL, url.QueryEscape(city))
	span.SetAttributes(attribute.String("geocoding.url", apiUrl))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiUrl, nil)
	if err != nil {
		span.RecordError(fmt.Errorf("failed to create request: %w", err))
		span.SetStatus(codes.Error, "failed to create request")
		return models.Location{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(fmt.Errorf("failed to get location: %w", err))
		span.SetStatus(codes.Error, "failed to get location")
		return models.Location{}, unwrapTransportError(err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	// O status não é checado: a Open-Meteo responde JSON também nos erros.
	var geo models.GeocodingResponse
	if err := json.NewDecoder(resp.Body).Decode(&geo); err != nil {
		span.RecordError(fmt.Errorf("failed to decode response: %w", err))
		span.SetStatus(codes.Error, "failed to decode response")
		return models.Location{}, err
	}

	if len(geo.Results) == 0 {
		span.SetStatus(codes.Error, "city not found")
		return models.Location{}, ErrCityNotFound
	}

	first := geo.Results[0]
	span.SetAttributes(
		attribute.String("geocoding.name", first.Name),
		attribute.String("geocoding.country", first.Country),
	)

	return models.Location{
		Latitude:  first.Latitude,
		Longitude: first.Longitude,
		Name:      first.Name,
		Country:   first.Country,
	}, nil
}
