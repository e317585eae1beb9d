package ai

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/zhouzirui/interview-coach/backend/internal/config"
)

// GeminiGenerator calls the Gemini API with one user turn per prompt.
type GeminiGenerator struct {
	client *genai.Client
	model  string
	config *genai.GenerateContentConfig
	log    *zap.Logger
}

var _ Generator = (*GeminiGenerator)(nil)

// GeminiOption configures a GeminiGenerator.
type GeminiOption func(*geminiSettings)

type geminiSettings struct {
	baseURL string
	config  *genai.GenerateContentConfig
}

// WithBaseURL points the client at a different API endpoint.
func WithBaseURL(url string) GeminiOption {
	return func(s *geminiSettings) { s.baseURL = url }
}

// WithGenerateConfig sets sampling parameters sent with every request.
func WithGenerateConfig(cfg *genai.GenerateContentConfig) GeminiOption {
	return func(s *geminiSettings) { s.config = cfg }
}

// NewGeminiGenerator creates a Gemini client for model.
func NewGeminiGenerator(ctx context.Context, apiKey, model string, log *zap.Logger, opts ...GeminiOption) (*GeminiGenerator, error) {
	settings := &geminiSettings{}
	for _, o := range opts {
		o(settings)
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if settings.baseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: settings.baseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}

	return &GeminiGenerator{
		client: client,
		model:  model,
		config: settings.config,
		log:    log,
	}, nil
}

// Generate sends prompt and returns the concatenated text parts of the first candidate.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), g.config)
	if err != nil {
		return "", fmt.Errorf("%w: gemini: %w", ErrGeneration, err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: gemini returned no candidates", ErrGeneration)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: gemini returned no text (finish reason %q)", ErrGeneration, resp.Candidates[0].FinishReason)
	}
	g.log.Debug("generated response", zap.String("model", g.model), zap.Int("length", len(text)))
	return text, nil
}

func geminiOptionsFromConfig(cfg config.AIConfig) []GeminiOption {
	if cfg.Temperature == nil && cfg.TopP == nil && cfg.MaxTokens == nil {
		return nil
	}

	gc := &genai.GenerateContentConfig{}
	if cfg.Temperature != nil {
		temp := float32(*cfg.Temperature)
		gc.Temperature = &temp
	}
	if cfg.TopP != nil {
		topP := float32(*cfg.TopP)
		gc.TopP = &topP
	}
	if cfg.MaxTokens != nil {
		gc.MaxOutputTokens = int32(*cfg.MaxTokens)
	}
	return []GeminiOption{WithGenerateConfig(gc)}
}
