package handler

import (
	"embed"
	"html/template"
	"io"

	"github.com/fhsmendes/weather-lookup/models"
	"github.com/fhsmendes/weather-lookup/utils"
)

//go:embed templates/index.html
var templatesFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

// pageData é o QueryState já achatado para o template: apenas um dos ramos fica ativo.
type pageData struct {
	CityInput    string
	Loading      bool
	HasError     bool
	ErrorMessage string
	HasWeather   bool
	Weather      models.WeatherResult
	Temperature  string
	WindSpeed    string
}

func newPageData(s models.QueryState) pageData {
	data := pageData{CityInput: s.CityInput}

	switch s.View() {
	case models.ViewLoading:
		data.Loading = true
	case models.ViewError:
		data.HasError = true
		data.ErrorMessage, _ = s.ErrorMessage()
	case models.ViewResult:
		w, _ := s.Weather()
		data.HasWeather = true
		data.Weather = w
		data.Temperature = utils.FormatTemperature(w.TemperatureCelsius)
		data.WindSpeed = utils.FormatWindSpeed(w.WindSpeedKph)
	}
	return data
}

// RenderPage escreve a página completa para o estado informado.
func RenderPage(w io.Writer, s models.QueryState) error {
	return indexTemplate.Execute(w, newPageData(s))
}
