package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hinglish-techbot-go/internal/config"
	"github.com/hinglish-techbot-go/internal/i18n"
	"github.com/hinglish-techbot-go/internal/middleware"
	"github.com/hinglish-techbot-go/internal/models"
	"github.com/hinglish-techbot-go/internal/services/ai"
	"github.com/hinglish-techbot-go/internal/services/responder"
)

type fakeResolver struct {
	mu          sync.Mutex
	reply       models.Reply
	panics      bool
	calls       int
	message     string
	personality models.Personality
}

func (f *fakeResolver) Resolve(_ context.Context, message string, p models.Personality) models.Reply {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.panics {
		panic("resolver exploded")
	}
	f.calls++
	f.message = message
	f.personality = p
	return f.reply
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Version = "2.0"
	cfg.Server.MaxMessageLength = 50
	cfg.Server.StaticDir = "."
	cfg.Responder.Closing = config.ClosingAcknowledge
	cfg.Responder.DefaultPersonality = "friendly"
	cfg.Monitoring.Metrics.Enabled = true
	cfg.Monitoring.Metrics.Path = "/metrics"
	cfg.I18n.DefaultLanguage = "hi"
	cfg.I18n.Languages = []string{"hi", "en"}
	return cfg
}

func newTestLocalizer(t *testing.T) *i18n.Localizer {
	t.Helper()
	l, err := i18n.NewLocalizer(&config.I18nConfig{DefaultLanguage: "hi", Languages: []string{"hi", "en"}})
	require.NoError(t, err)
	return l
}

func newTestServer(t *testing.T, cfg *config.Config, resolver Resolver) *httptest.Server {
	t.Helper()
	api := NewAPI(cfg, resolver, newTestLocalizer(t), middleware.NewMetrics(), newTestLogger())
	srv := httptest.NewServer(api.Router())
	t.Cleanup(srv.Close)
	return srv
}

func postChat(t *testing.T, srv *httptest.Server, body string) (*http.Response, map[string]interface{}) {
	t.Helper()
	resp, err := http.Post(srv.URL+"/api/chat", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func TestChat_Success(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	resolver := &fakeResolver{reply: models.Reply{Text: "Namaste!", Source: models.SourceHeuristic, GeneratedAt: at}}
	srv := newTestServer(t, testConfig(), resolver)

	resp, body := postChat(t, srv, `{"message":"  Namaste!  ","personality":"creative"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Namaste!", body["response"])
	assert.Equal(t, "2024-05-01T10:30:00Z", body["timestamp"])
	assert.NotContains(t, body, "response_html")

	assert.Equal(t, "Namaste!", resolver.message)
	assert.Equal(t, models.PersonalityCreative, resolver.personality)
}

func TestChat_PersonalityDefaults(t *testing.T) {
	resolver := &fakeResolver{reply: models.Reply{Text: "ok"}}
	srv := newTestServer(t, testConfig(), resolver)

	postChat(t, srv, `{"message":"hello"}`)
	assert.Equal(t, models.Personality(""), resolver.personality)

	postChat(t, srv, `{"message":"hello","personality":"pirate"}`)
	assert.Equal(t, models.PersonalityFriendly, resolver.personality)
}

func TestChat_HTMLFormat(t *testing.T) {
	resolver := &fakeResolver{reply: models.Reply{Text: "Types:\n\n- REST\n- GraphQL"}}
	srv := newTestServer(t, testConfig(), resolver)

	_, body := postChat(t, srv, `{"message":"api kya hai","format":"html"}`)
	assert.Contains(t, body["response_html"], "<li>REST</li>")
	assert.Equal(t, "Types:\n\n- REST\n- GraphQL", body["response"])
}

func TestChat_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		status  int
		error   string
		success interface{}
	}{
		{"empty", `{"message":""}`, http.StatusBadRequest, "Empty message", nil},
		{"whitespace", `{"message":"   \n\t"}`, http.StatusBadRequest, "Empty message", nil},
		{"missing", `{}`, http.StatusBadRequest, "Empty message", nil},
		{"too long", `{"message":"` + strings.Repeat("a", 51) + `"}`, http.StatusBadRequest, "message too long: 51 characters, limit is 50", nil},
		{"malformed", `{"message":`, http.StatusInternalServerError, "invalid request body", false},
		{"wrong type", `{"message":42}`, http.StatusInternalServerError, "invalid request body", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resolver := &fakeResolver{}
			srv := newTestServer(t, testConfig(), resolver)

			resp, body := postChat(t, srv, tc.body)
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Contains(t, body["error"], tc.error)
			assert.Equal(t, tc.success, body["success"])
			assert.Zero(t, resolver.calls)
		})
	}
}

func TestChat_LengthCountsCharacters(t *testing.T) {
	resolver := &fakeResolver{reply: models.Reply{Text: "ok"}}
	srv := newTestServer(t, testConfig(), resolver)

	resp, _ := postChat(t, srv, `{"message":"`+strings.Repeat("न", 50)+`"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestChat_PanicBecomes500(t *testing.T) {
	srv := newTestServer(t, testConfig(), &fakeResolver{panics: true})

	resp, body := postChat(t, srv, `{"message":"hello"}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "resolver exploded", body["error"])
}

type brokenGenerator struct{}

func (brokenGenerator) Name() string { return "broken" }

func (brokenGenerator) Generate(context.Context, string, ai.GenerationOptions) (string, error) {
	return "", errors.New("connection reset by peer")
}

func TestChat_FailingModelStillAnswers(t *testing.T) {
	cfg := testConfig()
	cfg.Model.Timeout = time.Second
	logger := newTestLogger()

	adapter := ai.NewAdapter(brokenGenerator{}, &cfg.Model, logger)
	resp := responder.NewResponder(cfg, adapter, nil, nil, middleware.NewMetrics(), logger)
	srv := newTestServer(t, cfg, resp)

	for _, msg := range []string{"Namaste!", "Machine Learning kya hai?", "Tell me about react.", "mausam kal kesa rahega"} {
		httpResp, body := postChat(t, srv, `{"message":"`+msg+`","personality":"formal"}`)
		assert.Equal(t, http.StatusOK, httpResp.StatusCode, msg)
		assert.Equal(t, true, body["success"])
		assert.NotEmpty(t, body["response"])
		assert.NotContains(t, body["response"], "Acha,")
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, testConfig(), &fakeResolver{})

	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body models.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "online", body.Status)
	assert.Equal(t, "2.0", body.Version)
	_, err = time.Parse(time.RFC3339, body.Timestamp)
	assert.NoError(t, err)
}

func TestSuggestions(t *testing.T) {
	srv := newTestServer(t, testConfig(), &fakeResolver{})

	get := func(lang, query string) []string {
		req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/suggestions"+query, nil)
		if lang != "" {
			req.Header.Set("Accept-Language", lang)
		}
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		var body models.SuggestionsResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		return body.Suggestions
	}

	hi := get("", "")
	require.Len(t, hi, 6)
	assert.Equal(t, "Namaste! Mujhe Python ke baare mein batao", hi[0])
	assert.Equal(t, "API kya hota hai explain karo", hi[5])

	en := get("en-US,en;q=0.9", "")
	require.Len(t, en, 6)
	assert.Equal(t, "Hello! Tell me about Python", en[0])

	assert.Equal(t, hi, get("en-US", "?lang=hi"))
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, testConfig(), &fakeResolver{reply: models.Reply{Text: "ok"}})
	postChat(t, srv, `{"message":"hello"}`)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `chatbot_chat_requests_total{channel="api",status="ok"}`)
}

func TestMetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Monitoring.Metrics.Enabled = false
	cfg.Server.StaticDir = t.TempDir()
	srv := newTestServer(t, cfg, &fakeResolver{})

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestIndexPage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>Hinglish Tech Bot</h1>"), 0o644))
	cfg := testConfig()
	cfg.Server.StaticDir = dir
	srv := newTestServer(t, cfg, &fakeResolver{})

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Hinglish Tech Bot")
}

func TestValidateMessage(t *testing.T) {
	assert.ErrorIs(t, ValidateMessage("", 10), ErrEmptyInput)
	assert.ErrorIs(t, ValidateMessage("abcdefghijk", 10), ErrMessageTooLong)
	assert.NoError(t, ValidateMessage("abcdefghijk", 0))
	assert.NoError(t, ValidateMessage("namaste", 10))
}
