package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bondify-be/internal/deck"
)

// Lister is implemented by sources that can enumerate categories.
type Lister interface {
	Categories(ctx context.Context) ([]Category, error)
}

// APISource reads categories and questions from the Bondify backend. Prompt
// IDs are the backend's question IDs.
type APISource struct {
	baseURL string
	client  *http.Client
}

func NewAPISource(baseURL string) *APISource {
	return &APISource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type apiQuestion struct {
	ID         int     `json:"id"`
	CategoryID *string `json:"categoryId"`
	Text       string  `json:"text"`
	IsPremium  bool    `json:"isPremium"`
}

func (s *APISource) Prompts(ctx context.Context, categoryID string) ([]deck.Prompt, error) {
	var questions []apiQuestion
	status, err := s.get(ctx, "/api/questions/"+url.PathEscape(categoryID), &questions)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound || len(questions) == 0 {
		return nil, fmt.Errorf("%w: %s", deck.ErrCategoryNotFound, categoryID)
	}

	prompts := make([]deck.Prompt, len(questions))
	for i, q := range questions {
		prompts[i] = deck.Prompt{ID: q.ID, Text: q.Text}
	}
	return prompts, nil
}

func (s *APISource) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if _, err := s.get(ctx, "/api/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// get decodes a 2xx body into out and returns 404 without error.
func (s *APISource) get(ctx context.Context, path string, out interface{}) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return resp.StatusCode, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, fmt.Errorf("request %s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("decode %s: %w", path, err)
	}
	return resp.StatusCode, nil
}
