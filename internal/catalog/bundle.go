// Package catalog provides the question decks a deck session plays: the
// embedded bundle that ships with the binary and an HTTP client for the
// backend API.
package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"sync"
	"time"

	"bondify-be/internal/deck"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var bundleYAML []byte

type Category struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Subtitle    string   `yaml:"subtitle" json:"subtitle"`
	Description string   `yaml:"description" json:"description"`
	Quote       string   `yaml:"quote" json:"quote"`
	ImageURL    string   `yaml:"imageUrl" json:"imageUrl"`
	IsPremium   bool     `yaml:"isPremium" json:"isPremium"`
	Questions   []string `yaml:"questions" json:"-"`
}

type Pack struct {
	Title        string `yaml:"title"`
	Description  string `yaml:"description"`
	ExpertName   string `yaml:"expertName"`
	ExpertTitle  string `yaml:"expertTitle"`
	ExpertAvatar string `yaml:"expertAvatar"`
	// Days relative to the seeding date; 0 releases today.
	ReleaseOffsetDays int      `yaml:"releaseOffsetDays"`
	Theme             string   `yaml:"theme"`
	IsPremium         bool     `yaml:"isPremium"`
	IsActive          bool     `yaml:"isActive"`
	IsFeatured        bool     `yaml:"isFeatured"`
	Questions         []string `yaml:"questions"`
}

// ReleaseDate resolves the pack's release day against today's UTC date.
func (p Pack) ReleaseDate(today time.Time) time.Time {
	y, m, d := today.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, p.ReleaseOffsetDays)
}

type Bundle struct {
	Categories []Category `yaml:"categories"`
	Packs      []Pack     `yaml:"packs"`
}

func (b *Bundle) Category(id string) (*Category, bool) {
	for i := range b.Categories {
		if b.Categories[i].ID == id {
			return &b.Categories[i], true
		}
	}
	return nil, false
}

// ParseBundle decodes a catalog document.
func ParseBundle(data []byte) (*Bundle, error) {
	var b Bundle
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	seen := make(map[string]bool, len(b.Categories))
	for _, c := range b.Categories {
		if c.ID == "" {
			return nil, fmt.Errorf("parse catalog: category without id")
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("parse catalog: duplicate category %q", c.ID)
		}
		seen[c.ID] = true
	}
	return &b, nil
}

var loadBundle = sync.OnceValues(func() (*Bundle, error) {
	return ParseBundle(bundleYAML)
})

// Default returns the embedded catalog. Callers must not modify it.
func Default() (*Bundle, error) {
	return loadBundle()
}

// BundleSource serves prompts from a Bundle. Prompt IDs are positions in
// the bundled deck.
type BundleSource struct {
	bundle *Bundle
}

func NewBundleSource(b *Bundle) *BundleSource {
	return &BundleSource{bundle: b}
}

func (s *BundleSource) Prompts(_ context.Context, categoryID string) ([]deck.Prompt, error) {
	c, ok := s.bundle.Category(categoryID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", deck.ErrCategoryNotFound, categoryID)
	}
	return deck.PromptsFromTexts(c.Questions), nil
}

func (s *BundleSource) Categories(context.Context) ([]Category, error) {
	return s.bundle.Categories, nil
}
