package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/zhouzirui/interview-coach/backend/internal/handler/interview"
	optionHandler "github.com/zhouzirui/interview-coach/backend/internal/handler/option"
	"github.com/zhouzirui/interview-coach/backend/internal/handler/report"
	middlewarePkg "github.com/zhouzirui/interview-coach/backend/internal/middleware"
	"github.com/zhouzirui/interview-coach/backend/internal/model/option"
	coachService "github.com/zhouzirui/interview-coach/backend/internal/service/coach"
	reportService "github.com/zhouzirui/interview-coach/backend/internal/service/report"
	"github.com/zhouzirui/interview-coach/backend/internal/service/session"
	"github.com/zhouzirui/interview-coach/backend/pkg/utils"
)

// Deps collects what the router needs. Coach and Reports are nil when no
// model provider is configured.
type Deps struct {
	Store          session.Store
	Options        option.Store
	Coach          *coachService.Service
	Reports        *reportService.Service
	Gatherer       prometheus.Gatherer
	AllowedOrigins []string
	Logger         *zap.Logger
}

// NewRouter wires HTTP routes to core services.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewarePkg.RequestLogger(deps.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS(deps.AllowedOrigins))

	var asker interview.Asker
	if deps.Coach != nil {
		asker = deps.Coach
	}
	var reports report.Generator
	if deps.Reports != nil {
		reports = deps.Reports
	}

	interview.New(asker, deps.Store).RegisterRoutes(r)
	report.New(reports).RegisterRoutes(r)

	options := deps.Options
	if options == nil {
		options = option.NewMemoryStore(option.Seed())
	}
	optionHandler.New(options).RegisterRoutes(r)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]any{
			"status":   "ok",
			"ai":       deps.Coach != nil,
			"sessions": deps.Store.Count(),
		})
	})

	if deps.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	return r
}
