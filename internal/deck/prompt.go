package deck

import (
	"context"
	"errors"
)

// ErrCategoryNotFound is returned when a category has no prompts or cannot be resolved.
var ErrCategoryNotFound = errors.New("category not found")

// Prompt is one question card. ID is stable across shuffles; Text never changes.
type Prompt struct {
	ID   int
	Text string
}

// Source supplies the prompt list for a category. Implementations return
// ErrCategoryNotFound (or an empty list) for unknown categories.
type Source interface {
	Prompts(ctx context.Context, categoryID string) ([]Prompt, error)
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(ctx context.Context, categoryID string) ([]Prompt, error)

func (f SourceFunc) Prompts(ctx context.Context, categoryID string) ([]Prompt, error) {
	return f(ctx, categoryID)
}

// PromptsFromTexts numbers texts by their position in the source list.
func PromptsFromTexts(texts []string) []Prompt {
	prompts := make([]Prompt, len(texts))
	for i, t := range texts {
		prompts[i] = Prompt{ID: i, Text: t}
	}
	return prompts
}
