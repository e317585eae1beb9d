package report

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zhouzirui/interview-coach/backend/internal/service/ai"
	reportService "github.com/zhouzirui/interview-coach/backend/internal/service/report"
	"github.com/zhouzirui/interview-coach/backend/internal/service/session"
)

func setupRouter(gen ai.GeneratorFunc) (*chi.Mux, *session.MemoryStore) {
	store := session.NewMemoryStore()
	svc := reportService.NewService(store, gen, reportService.NewPDFRenderer(reportService.DefaultLayout), nil, zap.NewNop())

	r := chi.NewRouter()
	New(svc).RegisterRoutes(r)
	return r, store
}

func getReport(r http.Handler, sessionID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/report?session_id="+sessionID, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestReportUnknownSession(t *testing.T) {
	called := false
	r, _ := setupRouter(func(context.Context, string) (string, error) {
		called = true
		return "", nil
	})

	resp := getReport(r, "nobody")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"error":"No session found with that ID."}`, resp.Body.String())
	assert.False(t, called)
}

func TestReportReturnsPDF(t *testing.T) {
	r, store := setupRouter(func(context.Context, string) (string, error) {
		return "**Summary**\nThe interviewer asked focused questions.", nil
	})
	store.Append(context.Background(), "abc", "Q: Why us?\nA: Good question.")

	resp := getReport(r, "abc")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "application/pdf", resp.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=Interview_Report_abc.pdf", resp.Header().Get("Content-Disposition"))
	assert.NotEmpty(t, resp.Header().Get("X-Report-ID"))
	assert.True(t, bytes.HasPrefix(resp.Body.Bytes(), []byte("%PDF-")))
}

func TestReportGenerationFailure(t *testing.T) {
	r, store := setupRouter(func(context.Context, string) (string, error) {
		return "", errors.Join(ai.ErrGeneration, errors.New("quota"))
	})
	store.Append(context.Background(), "abc", "Q: a\nA: b")

	resp := getReport(r, "abc")
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, resp.Body.String())
}

func TestReportWithoutGenerator(t *testing.T) {
	r := chi.NewRouter()
	New(nil).RegisterRoutes(r)

	resp := getReport(r, "abc")
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}

func TestReportMissingSessionParameter(t *testing.T) {
	called := false
	r, _ := setupRouter(func(context.Context, string) (string, error) {
		called = true
		return "ok", nil
	})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/report", nil))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.JSONEq(t, `{"error":"missing query parameter: session_id"}`, resp.Body.String())
	assert.False(t, called)
}

func TestReportEmptySessionIDIsASession(t *testing.T) {
	r, store := setupRouter(func(context.Context, string) (string, error) {
		return "Fine.", nil
	})

	resp := getReport(r, "")
	assert.JSONEq(t, `{"error":"No session found with that ID."}`, resp.Body.String())

	store.Append(context.Background(), "", "Q: a\nA: b")
	resp = getReport(r, "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "application/pdf", resp.Header().Get("Content-Type"))
}
