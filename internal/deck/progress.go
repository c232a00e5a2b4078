package deck

import "context"

// Progress is the persisted part of a session. Favorites and Answered hold
// prompt IDs, not positions.
type Progress struct {
	Favorites []int `json:"favorites"`
	Answered  []int `json:"answered"`
	Score     int   `json:"score"`
}

// ProgressStore persists progress per category key.
//
// Load returns nil, nil when nothing is stored. Save is best-effort: the
// controller logs a failed write and carries on with the in-memory session.
type ProgressStore interface {
	Load(ctx context.Context, category string) (*Progress, error)
	Save(ctx context.Context, category string, p Progress) error
	Clear(ctx context.Context, category string) error
}

type nopStore struct{}

func (nopStore) Load(context.Context, string) (*Progress, error) { return nil, nil }
func (nopStore) Save(context.Context, string, Progress) error    { return nil }
func (nopStore) Clear(context.Context, string) error             { return nil }
