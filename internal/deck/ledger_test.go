package deck

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLedger_Apply(t *testing.T) {
	tests := []struct {
		name        string
		start       int
		delta       int
		wantScore   int
		wantClamped bool
	}{
		{name: "earn", start: 0, delta: 5, wantScore: 5},
		{name: "claw back", start: 10, delta: -5, wantScore: 5},
		{name: "floor at zero", start: 3, delta: -5, wantScore: 0, wantClamped: true},
		{name: "already zero", start: 0, delta: -5, wantScore: 0, wantClamped: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLedger(5, "answering question", time.Second)
			l.Restore(tt.start)

			score, clamped := l.Apply(tt.delta)
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantClamped, clamped)
		})
	}
}

func TestLedger_RewardNotifications(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	l := NewLedger(5, "reflecting on question", 2*time.Second)
	l.now = func() time.Time { return now }

	n, ok := l.Reward(ActionAnswer)
	assert.True(t, ok)
	assert.Equal(t, Notification{
		Kind:      NotificationEarned,
		Delta:     5,
		Label:     "reflecting on question",
		ExpiresAt: now.Add(2 * time.Second),
	}, n)

	_, ok = l.Reward(ActionUnfavorite)
	assert.False(t, ok)
	assert.Equal(t, 0, l.Score())

	n = l.Reset()
	assert.Equal(t, NotificationReset, n.Kind)
	assert.Equal(t, "resetting data", n.Label)
}

func TestLedger_RestoreFloorsNegative(t *testing.T) {
	l := NewLedger(5, "", time.Second)
	l.Restore(-20)
	assert.Equal(t, 0, l.Score())
}
