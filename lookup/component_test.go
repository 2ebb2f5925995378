package lookup

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fhsmendes/weather-lookup/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedResolver bloqueia cada consulta até o teste liberar a resposta da cidade.
type scriptedResolver struct {
	mu      sync.Mutex
	replies map[string]chan models.Outcome
	calls   []string
}

func newScriptedResolver() *scriptedResolver {
	return &scriptedResolver{replies: make(map[string]chan models.Outcome)}
}

func (r *scriptedResolver) channel(city string) chan models.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	ch, ok := r.replies[city]
	if !ok {
		ch = make(chan models.Outcome, 1)
		r.replies[city] = ch
	}
	return ch
}

func (r *scriptedResolver) Resolve(_ context.Context, city string) models.Outcome {
	r.mu.Lock()
	r.calls = append(r.calls, city)
	r.mu.Unlock()
	return <-r.channel(city)
}

func (r *scriptedResolver) reply(city string, outcome models.Outcome) {
	r.channel(city) <- outcome
}

func (r *scriptedResolver) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// staticResolver responde sempre o mesmo desfecho.
type staticResolver struct{ outcome models.Outcome }

func (s staticResolver) Resolve(context.Context, string) models.Outcome { return s.outcome }

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("lookup did not settle")
	}
}

func TestComponent_InitialState(t *testing.T) {
	c := NewComponent(staticResolver{})

	s := c.Snapshot()
	assert.Equal(t, "", s.CityInput)
	assert.False(t, s.IsLoading())
	assert.Equal(t, models.ViewPrompt, s.View())
}

func TestComponent_SetInputIsVerbatim(t *testing.T) {
	c := NewComponent(staticResolver{})

	c.SetInput("  São Paulo ")
	assert.Equal(t, "  São Paulo ", c.Snapshot().CityInput)
}

func TestComponent_BlankSubmitIsNoOp(t *testing.T) {
	resolver := newScriptedResolver()
	c := NewComponent(resolver)

	for _, input := range []string{"", " ", "\t\n", gofakeit.RandomString([]string{"   ", "\t", " \n "})} {
		c.SetInput(input)
		before := c.Snapshot()

		done, started := c.Submit(context.Background())

		assert.False(t, started)
		assert.Nil(t, done)
		assert.Equal(t, before, c.Snapshot())
	}
	assert.Equal(t, 0, resolver.callCount())

	// Um erro anterior também permanece intacto.
	failed := NewComponent(staticResolver{outcome: models.Failed("City not found.")})
	failed.SetInput("Nowhere")
	done, ok := failed.Submit(context.Background())
	require.True(t, ok)
	waitDone(t, done)

	failed.SetInput("   ")
	_, ok = failed.Submit(context.Background())
	assert.False(t, ok)
	msg, hasErr := failed.Snapshot().ErrorMessage()
	assert.True(t, hasErr)
	assert.Equal(t, "City not found.", msg)
}

func TestComponent_LoadingThenSuccess(t *testing.T) {
	resolver := newScriptedResolver()
	c := NewComponent(resolver)

	c.SetInput("London")
	done, ok := c.Submit(context.Background())
	require.True(t, ok)

	s := c.Snapshot()
	assert.True(t, s.IsLoading())
	assert.Equal(t, models.ViewLoading, s.View())

	london := models.WeatherResult{CityName: "London", CountryName: "United Kingdom", TemperatureCelsius: 15.2, WindSpeedKph: 10.5}
	resolver.reply("London", models.Succeeded(london))
	waitDone(t, done)

	s = c.Snapshot()
	assert.False(t, s.IsLoading())
	w, ok := s.Weather()
	require.True(t, ok)
	assert.Equal(t, london, w)
	_, hasErr := s.ErrorMessage()
	assert.False(t, hasErr)
}

func TestComponent_NewSubmitClearsPreviousResult(t *testing.T) {
	resolver := newScriptedResolver()
	c := NewComponent(resolver)

	c.SetInput("Paris")
	done, _ := c.Submit(context.Background())
	resolver.reply("Paris", models.Failed("City not found."))
	waitDone(t, done)
	require.Equal(t, models.ViewError, c.Snapshot().View())

	c.SetInput("Rome")
	done, _ = c.Submit(context.Background())
	s := c.Snapshot()
	_, hasErr := s.ErrorMessage()
	_, hasWeather := s.Weather()
	assert.True(t, s.IsLoading())
	assert.False(t, hasErr)
	assert.False(t, hasWeather)

	resolver.reply("Rome", models.Succeeded(models.WeatherResult{CityName: "Rome"}))
	waitDone(t, done)
}

func TestComponent_StaleResponseIsDropped(t *testing.T) {
	resolver := newScriptedResolver()
	c := NewComponent(resolver)

	c.SetInput("Paris")
	first, _ := c.Submit(context.Background())
	c.SetInput("Rome")
	second, _ := c.Submit(context.Background())

	resolver.reply("Rome", models.Succeeded(models.WeatherResult{CityName: "Rome", CountryName: "Italy"}))
	waitDone(t, second)

	resolver.reply("Paris", models.Succeeded(models.WeatherResult{CityName: "Paris", CountryName: "France"}))
	waitDone(t, first)

	w, ok := c.Snapshot().Weather()
	require.True(t, ok)
	assert.Equal(t, "Rome", w.CityName)
}

func TestComponent_StaleResponseDoesNotEndLoading(t *testing.T) {
	resolver := newScriptedResolver()
	c := NewComponent(resolver)

	c.SetInput("Paris")
	first, _ := c.Submit(context.Background())
	c.SetInput("Rome")
	second, _ := c.Submit(context.Background())

	resolver.reply("Paris", models.Failed("Network error"))
	waitDone(t, first)
	assert.True(t, c.Snapshot().IsLoading())

	resolver.reply("Rome", models.Failed("City not found."))
	waitDone(t, second)
	msg, _ := c.Snapshot().ErrorMessage()
	assert.Equal(t, "City not found.", msg)
}

func TestComponent_RepeatedLookupIsIdempotent(t *testing.T) {
	city := gofakeit.City()
	result := models.WeatherResult{
		CityName:           city,
		CountryName:        gofakeit.Country(),
		TemperatureCelsius: gofakeit.Float64Range(-30, 45),
		WindSpeedKph:       gofakeit.Float64Range(0, 120),
	}
	c := NewComponent(staticResolver{outcome: models.Succeeded(result)})

	c.SetInput(city)
	done, _ := c.Submit(context.Background())
	waitDone(t, done)
	first, _ := c.Snapshot().Weather()

	done, _ = c.Submit(context.Background())
	waitDone(t, done)
	second, _ := c.Snapshot().Weather()

	assert.Equal(t, result, first)
	assert.Equal(t, first, second)
}

func TestComponent_TouchUpdatesLastSeen(t *testing.T) {
	c := NewComponent(staticResolver{})
	before := c.LastSeen()

	time.Sleep(time.Millisecond)
	c.Touch()

	assert.True(t, c.LastSeen().After(before))
}
