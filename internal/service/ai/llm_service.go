package ai

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"go.uber.org/zap"

	"github.com/zhouzirui/interview-coach/backend/internal/config"
)

// ChainGenerator runs prompts through an eino chain ending in a chat model.
type ChainGenerator struct {
	chain compose.Runnable[string, *schema.Message]
	log   *zap.Logger
}

var _ Generator = (*ChainGenerator)(nil)

// NewChainGenerator compiles a prompt -> user message -> chat model chain.
func NewChainGenerator(ctx context.Context, chatModel model.BaseChatModel, log *zap.Logger) (*ChainGenerator, error) {
	chain := compose.NewChain[string, *schema.Message]()
	chain.AppendLambda(compose.InvokableLambda(func(_ context.Context, prompt string) ([]*schema.Message, error) {
		return []*schema.Message{schema.UserMessage(prompt)}, nil
	}))
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &ChainGenerator{chain: runnable, log: log}, nil
}

// Generate invokes the chain once and returns the model's text.
func (g *ChainGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	response, err := g.chain.Invoke(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGeneration, err)
	}
	if response == nil || response.Content == "" {
		return "", fmt.Errorf("%w: empty model message", ErrGeneration)
	}

	g.log.Debug("generated response", zap.Int("prompt_len", len(prompt)), zap.Int("length", len(response.Content)))
	return response.Content, nil
}

// NewGenerator builds the Generator for the configured provider.
func NewGenerator(ctx context.Context, cfg config.AIConfig, log *zap.Logger) (Generator, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, log, geminiOptionsFromConfig(cfg)...)
	case config.ProviderArk:
		chatModel, err := cfg.NewChatModel(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create chat model: %w", err)
		}
		return NewChainGenerator(ctx, chatModel, log)
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
}
