package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/hinglish-techbot-go/internal/config"
	"github.com/hinglish-techbot-go/internal/i18n"
	"github.com/hinglish-techbot-go/internal/middleware"
	"github.com/hinglish-techbot-go/internal/models"
	"github.com/hinglish-techbot-go/pkg/markdown"
	"github.com/sirupsen/logrus"
)

const maxBodyBytes = 1 << 20

// Resolver turns a chat message into a reply. *responder.Responder
// implements it.
type Resolver interface {
	Resolve(ctx context.Context, message string, p models.Personality) models.Reply
}

// API serves the browser chat endpoints
type API struct {
	config    *config.Config
	responder Resolver
	localizer *i18n.Localizer
	metrics   *middleware.Metrics
	logger    *logrus.Logger
}

// NewAPI creates the HTTP API
func NewAPI(cfg *config.Config, responder Resolver, localizer *i18n.Localizer, metrics *middleware.Metrics, logger *logrus.Logger) *API {
	return &API{
		config:    cfg,
		responder: responder,
		localizer: localizer,
		metrics:   metrics,
		logger:    logger,
	}
}

// Router builds the mux router with every route and middleware attached.
func (a *API) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.Recoverer(a.logger))
	router.Use(middleware.RequestLogger(a.logger, a.metrics))
	router.Use(middleware.CORS)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/chat", a.handleChat).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/health", a.handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/suggestions", a.handleSuggestions).Methods(http.MethodGet)

	if a.config.Monitoring.Metrics.Enabled {
		router.Handle(a.config.Monitoring.Metrics.Path, a.metrics.Handler()).Methods(http.MethodGet)
	}

	router.PathPrefix("/").Handler(http.FileServer(http.Dir(a.config.Server.StaticDir))).Methods(http.MethodGet, http.MethodHead)

	return router
}

func (a *API) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	var req models.ChatRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		a.metrics.RecordChatRequest("api", "error")
		a.logger.WithError(err).WithField("request_id", middleware.RequestID(r.Context())).Warn("Invalid chat request body")
		writeFailure(w, http.StatusInternalServerError, fmt.Errorf("invalid request body: %w", err))
		return
	}

	message := strings.TrimSpace(req.Message)
	if err := ValidateMessage(message, a.config.Server.MaxMessageLength); err != nil {
		a.metrics.RecordChatRequest("api", "rejected")
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	var p models.Personality
	if req.Personality != "" {
		p = models.ParsePersonality(req.Personality)
	}

	reply := a.responder.Resolve(r.Context(), message, p)
	a.metrics.RecordChatRequest("api", "ok")

	resp := models.ChatResponse{
		Success:   true,
		Response:  reply.Text,
		Timestamp: timestamp(reply.GeneratedAt),
	}
	if strings.EqualFold(req.Format, "html") {
		resp.ResponseHTML = markdown.ToHTML(reply.Text)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:    "online",
		Version:   a.config.Server.Version,
		Timestamp: timestamp(time.Now()),
	})
}

func (a *API) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = r.Header.Get("Accept-Language")
	}

	writeJSON(w, http.StatusOK, models.SuggestionsResponse{
		Suggestions: a.localizer.Suggestions(a.localizer.Match(lang)),
	})
}

func timestamp(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.Format(time.RFC3339)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeFailure(w http.ResponseWriter, status int, err error) {
	success := false
	writeJSON(w, status, models.ErrorResponse{Success: &success, Error: err.Error()})
}
