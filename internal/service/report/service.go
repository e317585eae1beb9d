// Package report turns a session transcript into a downloadable evaluation.
package report

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zhouzirui/interview-coach/backend/internal/analysis/sanitize"
	"github.com/zhouzirui/interview-coach/backend/internal/metrics"
	"github.com/zhouzirui/interview-coach/backend/internal/model/interview"
	"github.com/zhouzirui/interview-coach/backend/internal/service/ai"
	"github.com/zhouzirui/interview-coach/backend/internal/service/session"
)

// ErrSessionNotFound is returned when the session has no recorded turns.
var ErrSessionNotFound = errors.New("session not found")

// Service runs the report pipeline.
type Service struct {
	store     session.Store
	generator ai.Generator
	renderer  Renderer
	template  *ai.Template
	metrics   *metrics.Metrics
	log       *zap.Logger
}

// NewService wires the pipeline. m may be nil.
func NewService(store session.Store, generator ai.Generator, renderer Renderer, m *metrics.Metrics, log *zap.Logger) *Service {
	return &Service{
		store:     store,
		generator: generator,
		renderer:  renderer,
		template:  ai.NewTemplate(ai.ReportPrompt),
		metrics:   m,
		log:       log.Named("report"),
	}
}

// Generate asks the model to evaluate the whole session, strips markup from
// the answer and renders it as a PDF. Nothing is cached; every call hits the model.
func (s *Service) Generate(ctx context.Context, sessionID string) (interview.Document, error) {
	history := s.store.History(ctx, sessionID)
	if len(history) == 0 {
		s.metrics.Observe(metrics.OpReport, metrics.OutcomeNotFound)
		return interview.Document{}, ErrSessionNotFound
	}

	prompt, err := s.template.Render(ctx, map[string]any{
		ai.SlotLog: strings.Join(history, "\n"),
	})
	if err != nil {
		s.metrics.Observe(metrics.OpReport, metrics.OutcomeError)
		return interview.Document{}, fmt.Errorf("build report prompt: %w", err)
	}

	started := time.Now()
	text, err := s.generator.Generate(ctx, prompt)
	s.metrics.ObserveGeneration(metrics.OpReport, started)
	if err != nil {
		s.metrics.Observe(metrics.OpReport, metrics.OutcomeError)
		s.log.Error("generation failed", zap.String("session_id", sessionID), zap.Error(err))
		return interview.Document{}, err
	}

	data, err := s.renderer.Render(sanitize.Text(text))
	if err != nil {
		s.metrics.Observe(metrics.OpReport, metrics.OutcomeError)
		s.log.Error("rendering failed", zap.String("session_id", sessionID), zap.Error(err))
		return interview.Document{}, err
	}

	doc := interview.Document{
		ID:          uuid.NewString(),
		Filename:    interview.ReportFilename(sessionID),
		ContentType: interview.ContentTypePDF,
		Data:        data,
	}

	s.metrics.Observe(metrics.OpReport, metrics.OutcomeOK)
	s.metrics.ObserveReportSize(len(data))
	s.log.Info("report generated",
		zap.String("session_id", sessionID),
		zap.String("report_id", doc.ID),
		zap.Int("turns", len(history)),
		zap.Int("bytes", len(data)),
	)
	return doc, nil
}
