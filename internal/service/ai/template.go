package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
)

// Template is a single-message f-string prompt ({slot} placeholders).
type Template struct {
	tpl prompt.ChatTemplate
}

// NewTemplate wraps text as a user-message template.
func NewTemplate(text string) *Template {
	return &Template{
		tpl: prompt.FromMessages(schema.FString, schema.UserMessage(text)),
	}
}

// Render substitutes vars into the template. Every slot must be present in vars.
func (t *Template) Render(ctx context.Context, vars map[string]any) (string, error) {
	messages, err := t.tpl.Format(ctx, vars)
	if err != nil {
		return "", fmt.Errorf("failed to format prompt: %w", err)
	}

	parts := make([]string, 0, len(messages))
	for _, msg := range messages {
		parts = append(parts, msg.Content)
	}
	return strings.Join(parts, "\n"), nil
}
