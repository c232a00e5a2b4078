// Package progress persists deck sessions through a key-value repository
// using the client storage layout: favorites-<category>, answered-<category>
// and xp-<category>.
package progress

import (
	"context"
	"encoding/json"
	"strconv"

	"bondify-be/internal/deck"
	"bondify-be/internal/repository/contract"

	"github.com/pkg/errors"
)

func FavoritesKey(category string) string { return "favorites-" + category }
func AnsweredKey(category string) string  { return "answered-" + category }
func ScoreKey(category string) string     { return "xp-" + category }

// Store implements deck.ProgressStore over a contract.ProgressRepository.
type Store struct {
	repo contract.ProgressRepository
}

var _ deck.ProgressStore = (*Store)(nil)

func NewStore(repo contract.ProgressRepository) *Store {
	return &Store{repo: repo}
}

// Load returns nil when none of the three entries exist.
func (s *Store) Load(ctx context.Context, category string) (*deck.Progress, error) {
	var (
		p     deck.Progress
		found bool
	)

	if raw, ok, err := s.repo.Get(ctx, FavoritesKey(category)); err != nil {
		return nil, err
	} else if ok {
		found = true
		if err := json.Unmarshal([]byte(raw), &p.Favorites); err != nil {
			return nil, errors.Wrapf(err, "decode %s", FavoritesKey(category))
		}
	}

	if raw, ok, err := s.repo.Get(ctx, AnsweredKey(category)); err != nil {
		return nil, err
	} else if ok {
		found = true
		if err := json.Unmarshal([]byte(raw), &p.Answered); err != nil {
			return nil, errors.Wrapf(err, "decode %s", AnsweredKey(category))
		}
	}

	if raw, ok, err := s.repo.Get(ctx, ScoreKey(category)); err != nil {
		return nil, err
	} else if ok {
		found = true
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "decode %s", ScoreKey(category))
		}
		p.Score = n
	}

	if !found {
		return nil, nil
	}
	return &p, nil
}

// Save writes all three entries, empty collections included.
func (s *Store) Save(ctx context.Context, category string, p deck.Progress) error {
	favorites, err := encodeIDs(p.Favorites)
	if err != nil {
		return err
	}
	answered, err := encodeIDs(p.Answered)
	if err != nil {
		return err
	}

	if err := s.repo.Set(ctx, FavoritesKey(category), favorites); err != nil {
		return err
	}
	if err := s.repo.Set(ctx, AnsweredKey(category), answered); err != nil {
		return err
	}
	return s.repo.Set(ctx, ScoreKey(category), strconv.Itoa(p.Score))
}

func (s *Store) Clear(ctx context.Context, category string) error {
	return s.repo.Delete(ctx, FavoritesKey(category), AnsweredKey(category), ScoreKey(category))
}

func encodeIDs(ids []int) (string, error) {
	if ids == nil {
		ids = []int{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return "", errors.Wrap(err, "encode ids")
	}
	return string(b), nil
}
