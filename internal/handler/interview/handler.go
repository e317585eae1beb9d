// Package interview 提供提问与会话查看的HTTP接口。
package interview

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	model "github.com/zhouzirui/interview-coach/backend/internal/model/interview"
	"github.com/zhouzirui/interview-coach/backend/internal/service/session"
	"github.com/zhouzirui/interview-coach/backend/pkg/utils"
)

const maxFormMemory = 1 << 20

// 表单中必须出现的字段，值可以为空。
var formFields = []string{"session_id", "coach_personality", "level", "focus_area", "scenario_type", "query"}

// Asker 回答面试官提出的问题
type Asker interface {
	Ask(ctx context.Context, q model.Question) (model.Answer, error)
}

// Handler 面试训练的HTTP处理器
type Handler struct {
	asker Asker
	store session.Store
}

// New 创建面试训练处理器。asker 为 nil 时提问接口返回 503。
func New(asker Asker, store session.Store) *Handler {
	return &Handler{
		asker: asker,
		store: store,
	}
}

// RegisterRoutes 注册面试训练相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.handleAsk)
	r.Get("/session/{sessionID}", h.handleGetSession)
}

// handleAsk 提交一个问题并返回模型回答与完整历史
func (h *Handler) handleAsk(w http.ResponseWriter, r *http.Request) {
	if h.asker == nil {
		utils.RespondError(w, http.StatusServiceUnavailable, "ai service unavailable")
		return
	}

	values, err := parseForm(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid form body")
		return
	}

	for _, field := range formFields {
		if _, ok := values[field]; !ok {
			utils.RespondError(w, http.StatusUnprocessableEntity, "missing form field: "+field)
			return
		}
	}

	question := model.Question{
		SessionID:        values.Get("session_id"),
		CoachPersonality: values.Get("coach_personality"),
		Level:            values.Get("level"),
		FocusArea:        values.Get("focus_area"),
		ScenarioType:     values.Get("scenario_type"),
		Query:            values.Get("query"),
	}

	answer, err := h.asker.Ask(r.Context(), question)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	utils.RespondJSON(w, http.StatusOK, answer)
}

// handleGetSession 查看会话历史
func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	history := h.store.History(r.Context(), sessionID)
	if len(history) == 0 {
		utils.RespondError(w, http.StatusNotFound, "Session not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"session_id":    sessionID,
		"history":       history,
		"message_count": len(history),
	})
}

func parseForm(r *http.Request) (url.Values, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return nil, err
		}
	} else if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return r.PostForm, nil
}
