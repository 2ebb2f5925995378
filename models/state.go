package models

import "encoding/json"

// Phase identifica em que ponto da consulta a interface está.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseError
	PhaseSuccess
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	case PhaseSuccess:
		return "success"
	default:
		return "idle"
	}
}

// Outcome guarda o resultado de uma consulta. Mensagem de erro e resultado
// nunca coexistem: só os construtores abaixo criam valores válidos.
type Outcome struct {
	phase   Phase
	message string
	weather WeatherResult
}

func Idle() Outcome { return Outcome{phase: PhaseIdle} }

func Loading() Outcome { return Outcome{phase: PhaseLoading} }

func Failed(message string) Outcome {
	return Outcome{phase: PhaseError, message: message}
}

func Succeeded(result WeatherResult) Outcome {
	return Outcome{phase: PhaseSuccess, weather: result}
}

func (o Outcome) Phase() Phase { return o.phase }

// QueryState é o estado local de uma interface montada. O valor zero
// corresponde ao estado inicial: campo vazio, sem consulta.
type QueryState struct {
	CityInput string
	Outcome   Outcome
}

func (s QueryState) IsLoading() bool { return s.Outcome.phase == PhaseLoading }

func (s QueryState) ErrorMessage() (string, bool) {
	if s.Outcome.phase != PhaseError {
		return "", false
	}
	return s.Outcome.message, true
}

func (s QueryState) Weather() (WeatherResult, bool) {
	if s.Outcome.phase != PhaseSuccess {
		return WeatherResult{}, false
	}
	return s.Outcome.weather, true
}

// View é o ramo que o renderizador deve exibir.
type View int

const (
	ViewPrompt View = iota
	ViewLoading
	ViewError
	ViewResult
)

// View aplica a precedência carregando > erro > resultado > instrução.
func (s QueryState) View() View {
	if s.IsLoading() {
		return ViewLoading
	}
	if _, ok := s.ErrorMessage(); ok {
		return ViewError
	}
	if _, ok := s.Weather(); ok {
		return ViewResult
	}
	return ViewPrompt
}

type queryStateJSON struct {
	CityInput    string         `json:"city_input"`
	IsLoading    bool           `json:"is_loading"`
	ErrorMessage *string        `json:"error_message"`
	Weather      *WeatherResult `json:"weather"`
}

func (s QueryState) MarshalJSON() ([]byte, error) {
	out := queryStateJSON{CityInput: s.CityInput, IsLoading: s.IsLoading()}
	if msg, ok := s.ErrorMessage(); ok {
		out.ErrorMessage = &msg
	}
	if w, ok := s.Weather(); ok {
		out.Weather = &w
	}
	return json.Marshal(out)
}
