package utils

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
)

// Mensagens exibidas literalmente ao usuário.
var (
	ErrCityNotFound       = errors.New("City not found.")
	ErrWeatherUnavailable = errors.New("Weather data not available.")
)

const tracerName = "weather-lookup/utils"

func IsBlankCity(city string) bool {
	return strings.TrimSpace(city) == ""
}

// FormatTemperature imprime o número na forma mais curta: 15.2 -> "15.2°C", 15 -> "15°C".
func FormatTemperature(celsius float64) string {
	return formatNumber(celsius) + "°C"
}

func FormatWindSpeed(kph float64) string {
	return formatNumber(kph) + " km/h"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// unwrapTransportError remove o prefixo "Get <url>:" adicionado pelo net/http,
// deixando apenas a mensagem da falha original.
func unwrapTransportError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err
	}
	return err
}
