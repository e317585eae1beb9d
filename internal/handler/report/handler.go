package report

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	model "github.com/zhouzirui/interview-coach/backend/internal/model/interview"
	reportService "github.com/zhouzirui/interview-coach/backend/internal/service/report"
	"github.com/zhouzirui/interview-coach/backend/pkg/utils"
)

// NotFoundMessage is returned in the JSON body when a session has no turns.
const NotFoundMessage = "No session found with that ID."

// Generator 生成会话报告
type Generator interface {
	Generate(ctx context.Context, sessionID string) (model.Document, error)
}

// Handler 报告下载的HTTP处理器
type Handler struct {
	reports Generator
}

// New 创建报告处理器。reports 为 nil 时返回 503。
func New(reports Generator) *Handler {
	return &Handler{reports: reports}
}

// RegisterRoutes 注册报告相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/report", h.handleReport)
}

// handleReport 生成并下载 PDF 报告
func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	if h.reports == nil {
		utils.RespondError(w, http.StatusServiceUnavailable, "ai service unavailable")
		return
	}

	query := r.URL.Query()
	if !query.Has("session_id") {
		utils.RespondError(w, http.StatusUnprocessableEntity, "missing query parameter: session_id")
		return
	}
	sessionID := query.Get("session_id")

	doc, err := h.reports.Generate(r.Context(), sessionID)
	if errors.Is(err, reportService.ErrSessionNotFound) {
		// 未知会话不是失败，按原样返回结构化提示。
		utils.RespondJSON(w, http.StatusOK, map[string]string{"error": NotFoundMessage})
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	w.Header().Set("X-Report-ID", doc.ID)
	utils.RespondFile(w, doc.ContentType, doc.Filename, doc.Data)
}
