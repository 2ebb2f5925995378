package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type WeatherHandler struct {
	sessions *SessionStore
	logger   *zap.Logger
}

func NewWeatherHandler(sessions *SessionStore, logger *zap.Logger) *WeatherHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WeatherHandler{sessions: sessions, logger: logger}
}

// Router monta as rotas da interface web com os middlewares padrão.
func (h *WeatherHandler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(h.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/", h.Index)
	r.Post("/lookup", h.Submit)
	r.Get("/api/state", h.State)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}

// Index renderiza o estado atual da sessão.
func (h *WeatherHandler) Index(w http.ResponseWriter, r *http.Request) {
	c := h.sessions.component(w, r)

	var buf bytes.Buffer
	if err := RenderPage(&buf, c.Snapshot()); err != nil {
		h.logger.Error("failed to render page", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// Submit recebe o formulário, atualiza o texto e dispara a consulta. A resposta
// é sempre um redirect para "/", que mostra o estado resultante.
func (h *WeatherHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("weather-lookup/handler").Start(r.Context(), "submit-city")
	defer span.End()

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	c := h.sessions.component(w, r)
	city := r.PostForm.Get("city")
	span.SetAttributes(attribute.String("city", city))

	c.SetInput(city)
	// A consulta continua depois que esta requisição termina.
	if _, started := c.Submit(context.WithoutCancel(ctx)); !started {
		h.logger.Debug("blank city ignored", zap.String("request_id", middleware.GetReqID(ctx)))
		span.SetAttributes(attribute.Bool("lookup.started", false))
	} else {
		span.SetAttributes(attribute.Bool("lookup.started", true))
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// State devolve o QueryState da sessão em JSON.
func (h *WeatherHandler) State(w http.ResponseWriter, r *http.Request) {
	c := h.sessions.component(w, r)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(c.Snapshot()); err != nil {
		h.logger.Warn("failed to encode state", zap.Error(err))
	}
}
