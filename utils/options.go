package utils

import "net/http"

const (
	DefaultGeocodingBaseURL = "https://geocoding-api.open-meteo.com"
	DefaultForecastBaseURL  = "https://api.open-meteo.com"
)

// Option configura os clientes da Open-Meteo.
type Option func(*clientConfig)

type clientConfig struct {
	baseURL    string
	httpClient *http.Client
}

// WithBaseURL troca o host da API (usado em testes e ambientes espelhados).
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// WithHTTPClient define o cliente HTTP usado nas requisições.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		if client != nil {
			c.httpClient = client
		}
	}
}

func newClientConfig(defaultBaseURL string, opts []Option) *clientConfig {
	cfg := &clientConfig{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
