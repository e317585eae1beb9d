package option

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/interview-coach/backend/internal/model/option"
)

func setupRouter() *chi.Mux {
	r := chi.NewRouter()
	New(option.NewMemoryStore(option.Seed())).RegisterRoutes(r)
	return r
}

func TestListOptions(t *testing.T) {
	resp := httptest.NewRecorder()
	setupRouter().ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/options", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var got []option.Option
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if len(got) != len(option.Seed()) {
		t.Fatalf("expected %d options, got %d", len(option.Seed()), len(got))
	}
}

func TestListOptionsByKind(t *testing.T) {
	resp := httptest.NewRecorder()
	setupRouter().ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/options?kind=level", nil))

	var got []option.Option
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 levels, got %d", len(got))
	}
	if got[0].ID != "beginner" {
		t.Fatalf("unexpected first level: %s", got[0].ID)
	}
}
