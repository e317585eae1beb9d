package option

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/interview-coach/backend/internal/model/option"
	"github.com/zhouzirui/interview-coach/backend/pkg/utils"
)

// Handler 训练选项的HTTP处理器
type Handler struct {
	options option.Store
}

// New 创建选项处理器
func New(options option.Store) *Handler {
	return &Handler{
		options: options,
	}
}

// RegisterRoutes 注册选项相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/options", h.handleListOptions)
}

// handleListOptions 列出建议选项，可用 ?kind= 过滤。提问接口并不限制取值。
func (h *Handler) handleListOptions(w http.ResponseWriter, r *http.Request) {
	if kind := r.URL.Query().Get("kind"); kind != "" {
		utils.RespondJSON(w, http.StatusOK, h.options.ListKind(option.Kind(kind)))
		return
	}
	utils.RespondJSON(w, http.StatusOK, h.options.List())
}
