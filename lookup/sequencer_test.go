package lookup

import (
	"context"
	"errors"
	"testing"

	"github.com/fhsmendes/weather-lookup/models"
	"github.com/fhsmendes/weather-lookup/utils"
	"github.com/fhsmendes/weather-lookup/utils/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap/zaptest"
)

var london = models.Location{Latitude: 51.5, Longitude: -0.13, Name: "London", Country: "United Kingdom"}

func newTestSequencer(t *testing.T) (*Sequencer, *mocks.GeocodingClient, *mocks.ForecastClient, *tracetest.SpanRecorder) {
	t.Helper()
	geo := mocks.NewGeocodingClient(t)
	fc := mocks.NewForecastClient(t)

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	seq := NewSequencer(geo, fc, zaptest.NewLogger(t))
	seq.tracer = tp.Tracer("test")
	return seq, geo, fc, sr
}

func TestSequencer_ScenarioA_Success(t *testing.T) {
	seq, geo, fc, sr := newTestSequencer(t)

	geo.On("GetLocation", mock.Anything, "London").Return(london, nil).Once()
	fc.On("GetCurrentWeather", mock.Anything, 51.5, -0.13).Return(models.CurrentWeather{Temperature: 15.2, WindSpeed: 10.5}, nil).Once()

	result, err := seq.Lookup(context.Background(), "London")

	require.NoError(t, err)
	assert.Equal(t, models.WeatherResult{
		CityName:           "London",
		CountryName:        "United Kingdom",
		TemperatureCelsius: 15.2,
		WindSpeedKph:       10.5,
	}, result)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "lookup", spans[0].Name())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Contains(t, spans[0].Attributes(), attribute.String("city", "London"))
}

func TestSequencer_ScenarioB_CityNotFound(t *testing.T) {
	seq, geo, fc, sr := newTestSequencer(t)

	geo.On("GetLocation", mock.Anything, "Zzzznotacity").Return(models.Location{}, utils.ErrCityNotFound).Once()

	outcome := seq.Resolve(context.Background(), "Zzzznotacity")

	s := models.QueryState{Outcome: outcome}
	msg, ok := s.ErrorMessage()
	require.True(t, ok)
	assert.Equal(t, "City not found.", msg)
	_, hasWeather := s.Weather()
	assert.False(t, hasWeather)

	// A segunda etapa nunca é chamada.
	fc.AssertNotCalled(t, "GetCurrentWeather", mock.Anything, mock.Anything, mock.Anything)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Contains(t, spans[0].Attributes(), attribute.String("lookup.error_kind", "not_found"))
	assert.Contains(t, spans[0].Attributes(), attribute.String("lookup.stage", "geocoding"))
}

func TestSequencer_ScenarioC_WeatherUnavailable(t *testing.T) {
	seq, geo, fc, sr := newTestSequencer(t)

	geo.On("GetLocation", mock.Anything, "London").Return(london, nil).Once()
	fc.On("GetCurrentWeather", mock.Anything, 51.5, -0.13).Return(models.CurrentWeather{}, utils.ErrWeatherUnavailable).Once()

	outcome := seq.Resolve(context.Background(), "London")

	msg, ok := models.QueryState{Outcome: outcome}.ErrorMessage()
	require.True(t, ok)
	assert.Equal(t, "Weather data not available.", msg)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Contains(t, spans[0].Attributes(), attribute.String("lookup.stage", "forecast"))
	assert.Contains(t, spans[0].Attributes(), attribute.String("lookup.error_kind", "data_unavailable"))
}

func TestSequencer_ScenarioD_NetworkError(t *testing.T) {
	seq, geo, _, _ := newTestSequencer(t)

	geo.On("GetLocation", mock.Anything, "London").Return(models.Location{}, errors.New("Network error")).Once()

	outcome := seq.Resolve(context.Background(), "London")

	msg, ok := models.QueryState{Outcome: outcome}.ErrorMessage()
	require.True(t, ok)
	assert.Equal(t, "Network error", msg)
}

func TestSequencer_ForecastTransportError(t *testing.T) {
	seq, geo, fc, _ := newTestSequencer(t)

	geo.On("GetLocation", mock.Anything, "London").Return(london, nil).Once()
	fc.On("GetCurrentWeather", mock.Anything, 51.5, -0.13).Return(models.CurrentWeather{}, errors.New("unexpected EOF")).Once()

	_, err := seq.Lookup(context.Background(), "London")

	require.Error(t, err)
	assert.Equal(t, "unexpected EOF", err.Error())
	assert.Equal(t, KindTransportOrParse, Classify(err))
}

func TestSequencer_PassesUntrimmedCity(t *testing.T) {
	seq, geo, fc, _ := newTestSequencer(t)

	geo.On("GetLocation", mock.Anything, "  London ").Return(london, nil).Once()
	fc.On("GetCurrentWeather", mock.Anything, 51.5, -0.13).Return(models.CurrentWeather{Temperature: 1, WindSpeed: 2}, nil).Once()

	_, err := seq.Lookup(context.Background(), "  London ")
	require.NoError(t, err)
}

func TestSequencer_Idempotent(t *testing.T) {
	seq, geo, fc, _ := newTestSequencer(t)

	geo.On("GetLocation", mock.Anything, "London").Return(london, nil).Twice()
	fc.On("GetCurrentWeather", mock.Anything, 51.5, -0.13).Return(models.CurrentWeather{Temperature: 15.2, WindSpeed: 10.5}, nil).Twice()

	first := seq.Resolve(context.Background(), "London")
	second := seq.Resolve(context.Background(), "London")

	assert.Equal(t, first, second)
	w, ok := models.QueryState{Outcome: second}.Weather()
	require.True(t, ok)
	assert.Equal(t, "London", w.CityName)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind ErrorKind
	}{
		{"nil", nil, KindNone},
		{"not found", utils.ErrCityNotFound, KindNotFound},
		{"unavailable", utils.ErrWeatherUnavailable, KindDataUnavailable},
		{"network", errors.New("Network error"), KindTransportOrParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, Classify(tt.err))
		})
	}
}
