// Package coach answers interviewer questions in the context of their session.
package coach

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/zhouzirui/interview-coach/backend/internal/metrics"
	"github.com/zhouzirui/interview-coach/backend/internal/model/interview"
	"github.com/zhouzirui/interview-coach/backend/internal/service/ai"
	"github.com/zhouzirui/interview-coach/backend/internal/service/session"
)

// Service runs the question-answering pipeline.
type Service struct {
	store     session.Store
	generator ai.Generator
	template  *ai.Template
	locks     *keyedMutex
	metrics   *metrics.Metrics
	log       *zap.Logger
}

// NewService wires the pipeline. m may be nil.
func NewService(store session.Store, generator ai.Generator, m *metrics.Metrics, log *zap.Logger) *Service {
	return &Service{
		store:     store,
		generator: generator,
		template:  ai.NewTemplate(ai.CoachingPrompt),
		locks:     newKeyedMutex(),
		metrics:   m,
		log:       log.Named("coach"),
	}
}

// Ask sends q to the model with the session's previous turns as context and
// records the new turn. Questions for the same session are handled one at a
// time so each sees the answer to the one before it. On failure nothing is
// recorded.
func (s *Service) Ask(ctx context.Context, q interview.Question) (interview.Answer, error) {
	unlock := s.locks.Lock(q.SessionID)
	defer unlock()

	history := s.store.History(ctx, q.SessionID)

	prompt, err := s.template.Render(ctx, map[string]any{
		ai.SlotCoachPersonality: q.CoachPersonality,
		ai.SlotLevel:            q.Level,
		ai.SlotFocusArea:        q.FocusArea,
		ai.SlotScenarioType:     q.ScenarioType,
		ai.SlotPreviousResponse: strings.Join(history, "\n"),
		ai.SlotQuery:            q.Query,
	})
	if err != nil {
		s.metrics.Observe(metrics.OpQuestion, metrics.OutcomeError)
		return interview.Answer{}, fmt.Errorf("build coaching prompt: %w", err)
	}

	started := time.Now()
	response, err := s.generator.Generate(ctx, prompt)
	s.metrics.ObserveGeneration(metrics.OpQuestion, started)
	if err != nil {
		s.metrics.Observe(metrics.OpQuestion, metrics.OutcomeError)
		s.log.Error("generation failed", zap.String("session_id", q.SessionID), zap.Error(err))
		return interview.Answer{}, err
	}

	entry := interview.FormatEntry(q.Query, response)
	s.store.Append(ctx, q.SessionID, entry)
	history = append(history, entry)

	s.metrics.Observe(metrics.OpQuestion, metrics.OutcomeOK)
	s.log.Info("question answered",
		zap.String("session_id", q.SessionID),
		zap.Int("turns", len(history)),
		zap.Duration("took", time.Since(started)),
	)

	return interview.Answer{Response: response, History: history}, nil
}

// History returns the recorded turns of a session.
func (s *Service) History(ctx context.Context, sessionID string) []string {
	return s.store.History(ctx, sessionID)
}
