package deck

import "time"

// NotificationKind distinguishes the two transient messages a deck can surface.
type NotificationKind string

const (
	NotificationEarned NotificationKind = "earned-points"
	NotificationReset  NotificationKind = "reset"
)

// Notification is a short-lived message for the display layer. A newer
// notification replaces the visible one; the ledger does not queue them.
type Notification struct {
	Kind      NotificationKind
	Delta     int
	Label     string
	ExpiresAt time.Time
}

// Action is a user action the ledger knows how to score.
type Action int

const (
	ActionFavorite Action = iota
	ActionUnfavorite
	ActionAnswer
)

// Ledger holds the XP balance for one deck session. Not safe for concurrent
// use on its own; the Controller serializes access.
type Ledger struct {
	score       int
	delta       int
	answerLabel string
	ttl         time.Duration
	now         func() time.Time
}

func NewLedger(delta int, answerLabel string, ttl time.Duration) *Ledger {
	return &Ledger{
		delta:       delta,
		answerLabel: answerLabel,
		ttl:         ttl,
		now:         time.Now,
	}
}

func (l *Ledger) Score() int { return l.score }

// Restore sets the balance from persisted progress, floored at zero.
func (l *Ledger) Restore(score int) {
	if score < 0 {
		score = 0
	}
	l.score = score
}

// Apply adds delta to the balance. The result never drops below zero;
// clamped reports whether the floor was hit.
func (l *Ledger) Apply(delta int) (score int, clamped bool) {
	next := l.score + delta
	if next < 0 {
		next = 0
		clamped = true
	}
	l.score = next
	return l.score, clamped
}

// Reward scores an action and returns the notification to surface, if any.
// Removing a favorite claws the points back silently.
func (l *Ledger) Reward(action Action) (Notification, bool) {
	switch action {
	case ActionFavorite:
		l.Apply(l.delta)
		return l.notify(NotificationEarned, l.delta, favoriteAction), true
	case ActionUnfavorite:
		l.Apply(-l.delta)
		return Notification{}, false
	case ActionAnswer:
		l.Apply(l.delta)
		return l.notify(NotificationEarned, l.delta, l.answerLabel), true
	}
	return Notification{}, false
}

// Reset zeroes the balance.
func (l *Ledger) Reset() Notification {
	l.score = 0
	return l.notify(NotificationReset, 0, "resetting data")
}

func (l *Ledger) notify(kind NotificationKind, delta int, label string) Notification {
	return Notification{
		Kind:      kind,
		Delta:     delta,
		Label:     label,
		ExpiresAt: l.now().Add(l.ttl),
	}
}
