package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zhouzirui/interview-coach/backend/internal/metrics"
	"github.com/zhouzirui/interview-coach/backend/internal/service/ai"
	coachService "github.com/zhouzirui/interview-coach/backend/internal/service/coach"
	reportService "github.com/zhouzirui/interview-coach/backend/internal/service/report"
	"github.com/zhouzirui/interview-coach/backend/internal/service/session"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	store := session.NewMemoryStore()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg, store.Count)
	gen := ai.GeneratorFunc(func(_ context.Context, prompt string) (string, error) {
		if strings.Contains(prompt, "Conversation Log:") {
			return "## Evaluation\nClear and relevant questions.", nil
		}
		return "Good structural question.", nil
	})

	return NewRouter(Deps{
		Store:    store,
		Coach:    coachService.NewService(store, gen, m, zap.NewNop()),
		Reports:  reportService.NewService(store, gen, reportService.NewPDFRenderer(reportService.DefaultLayout), m, zap.NewNop()),
		Gatherer: reg,
		Logger:   zap.NewNop(),
	})
}

func TestRouterQuestionThenReport(t *testing.T) {
	r := newTestRouter(t)

	form := url.Values{
		"session_id":        {"abc"},
		"coach_personality": {"friendly"},
		"level":             {"entry"},
		"focus_area":        {"general"},
		"scenario_type":     {"screening"},
		"query":             {"What is your greatest weakness?"},
	}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"response":"Good structural question.","history":["Q: What is your greatest weakness?\nA: Good structural question."]}`, resp.Body.String())

	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/report?session_id=abc", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "application/pdf", resp.Header().Get("Content-Type"))
	assert.NotEmpty(t, resp.Body.Bytes())

	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `interview_coach_requests_total{operation="question",outcome="ok"} 1`)
	assert.Contains(t, resp.Body.String(), `interview_coach_requests_total{operation="report",outcome="ok"} 1`)
	assert.Contains(t, resp.Body.String(), "interview_coach_sessions 1")
}

func TestRouterHealth(t *testing.T) {
	r := newTestRouter(t)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"ok","ai":true,"sessions":0}`, resp.Body.String())
}

func TestRouterWithoutAI(t *testing.T) {
	r := NewRouter(Deps{Store: session.NewMemoryStore(), Logger: zap.NewNop()})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/report?session_id=abc", nil))
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)

	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestRouterOptionsAvailableWithoutAI(t *testing.T) {
	r := NewRouter(Deps{Store: session.NewMemoryStore(), Logger: zap.NewNop()})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/options?kind=scenario_type", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"id":"technical-deep-dive"`)
}
