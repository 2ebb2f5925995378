package models

// GeocodingResponse é o corpo retornado por /v1/search da Open-Meteo.
// Results fica nil quando a API não encontra nenhuma cidade.
type GeocodingResponse struct {
	Results []GeocodingResult `json:"results"`
}

type GeocodingResult struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name"`
	Country   string  `json:"country"`
}

// ForecastResponse é o corpo retornado por /v1/forecast com current_weather=true.
type ForecastResponse struct {
	CurrentWeather *CurrentWeather `json:"current_weather"`
}

type CurrentWeather struct {
	Temperature float64 `json:"temperature"`
	WindSpeed   float64 `json:"windspeed"`
}

// Location é a primeira correspondência do geocoding, já resolvida.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name"`
	Country   string  `json:"country"`
}

// WeatherResult é o que a interface exibe após uma consulta bem-sucedida.
type WeatherResult struct {
	CityName           string  `json:"city"`
	CountryName        string  `json:"country"`
	TemperatureCelsius float64 `json:"temperature_C"`
	WindSpeedKph       float64 `json:"windspeed_kmh"`
}
