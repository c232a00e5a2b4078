package deck

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"sync"
	"time"
)

const (
	DefaultRewardDelta     = 5
	DefaultFlipDelay       = 300 * time.Millisecond
	DefaultShuffleDuration = 800 * time.Millisecond
	DefaultNotificationTTL = 2 * time.Second

	storeTimeout = 2 * time.Second
	logModule    = "Deck"
)

// RestorePolicy decides what happens to stored progress when a deck opens.
type RestorePolicy int

const (
	// RestoreProgress loads favorites, answered and score from the store.
	RestoreProgress RestorePolicy = iota
	// ResetOnOpen clears the store and starts every visit from zero.
	ResetOnOpen
)

// Logger is the subset of the application logger the controller needs.
type Logger interface {
	Warn(module, message string, details map[string]interface{})
}

type nopLogger struct{}

func (nopLogger) Warn(string, string, map[string]interface{}) {}

// Config parameterizes one category deck.
type Config struct {
	Category    string
	RewardDelta int
	// Theme defaults to ThemeFor(Category) when left at ThemeDefault.
	Theme           Theme
	FlipDelay       time.Duration
	ShuffleDuration time.Duration
	NotificationTTL time.Duration
	Restore         RestorePolicy
}

func (c Config) withDefaults() Config {
	if c.RewardDelta <= 0 {
		c.RewardDelta = DefaultRewardDelta
	}
	if c.Theme == ThemeDefault {
		c.Theme = ThemeFor(c.Category)
	}
	if c.FlipDelay <= 0 {
		c.FlipDelay = DefaultFlipDelay
	}
	if c.ShuffleDuration <= 0 {
		c.ShuffleDuration = DefaultShuffleDuration
	}
	if c.NotificationTTL <= 0 {
		c.NotificationTTL = DefaultNotificationTTL
	}
	return c
}

// Option configures a Controller.
type Option func(*Controller)

func WithStore(s ProgressStore) Option {
	return func(c *Controller) {
		if s != nil {
			c.store = s
		}
	}
}

func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		if s != nil {
			c.scheduler = s
		}
	}
}

// WithRand makes shuffles reproducible.
func WithRand(r *rand.Rand) Option {
	return func(c *Controller) {
		if r != nil {
			c.intn = r.IntN
		}
	}
}

func WithLogger(l Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// OnChange registers a listener for every state transition, including the
// ones fired by timers. Listeners run outside the controller lock.
func OnChange(f func(Snapshot)) Option {
	return func(c *Controller) { c.onChange = f }
}

// OnNotify registers a listener for ledger notifications.
func OnNotify(f func(Notification)) Option {
	return func(c *Controller) { c.onNotify = f }
}

// Snapshot is a read-only view of a session at one instant.
type Snapshot struct {
	Category string
	Theme    Theme
	Total    int
	Index    int
	Current  Prompt

	Revealed  bool
	Started   bool
	Shuffling bool

	IsFavorite bool
	IsAnswered bool

	// Positions in the current ordering, ascending.
	FavoriteIndices []int
	AnsweredIndices []int

	Score           int
	ProgressPercent int
}

// Controller drives one category's card session: ordering, navigation and
// per-card flags. It is safe for concurrent use.
type Controller struct {
	mu sync.Mutex

	cfg   Config
	style Style

	cards     []Prompt
	positions map[int]int
	index     int
	revealed  bool
	started   bool
	shuffling bool

	// Prompt IDs in the order they were marked.
	favorites []int
	answered  []int

	ledger *Ledger

	advanceGen   uint64
	advanceTimer Timer
	shuffleGen   uint64
	shuffleTimer Timer
	closed       bool

	version uint64

	persistMu sync.Mutex
	persisted uint64

	store     ProgressStore
	scheduler Scheduler
	intn      func(int) int
	logger    Logger
	onChange  func(Snapshot)
	onNotify  func(Notification)
}

// New loads the category's prompts from src and opens a session. An empty or
// unresolvable source yields ErrCategoryNotFound and no deck.
func New(ctx context.Context, src Source, cfg Config, opts ...Option) (*Controller, error) {
	cfg = cfg.withDefaults()

	prompts, err := src.Prompts(ctx, cfg.Category)
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrCategoryNotFound, cfg.Category, err)
	}
	if len(prompts) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, cfg.Category)
	}

	c := &Controller{
		cfg:       cfg,
		style:     cfg.Theme.Style(),
		cards:     normalize(prompts),
		store:     nopStore{},
		scheduler: WallClock(),
		intn:      rand.IntN,
		logger:    nopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.ledger = NewLedger(cfg.RewardDelta, c.style.AnswerAction, cfg.NotificationTTL)
	c.reindex()

	storeCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	switch cfg.Restore {
	case ResetOnOpen:
		if err := c.store.Clear(storeCtx, cfg.Category); err != nil {
			c.logger.Warn(logModule, "Failed to clear progress on open", map[string]interface{}{
				"category": cfg.Category, "error": err.Error(),
			})
		}
	default:
		p, err := c.store.Load(storeCtx, cfg.Category)
		if err != nil {
			c.logger.Warn(logModule, "Failed to load progress", map[string]interface{}{
				"category": cfg.Category, "error": err.Error(),
			})
		} else if p != nil {
			c.restore(*p)
		}
	}

	return c, nil
}

// normalize copies the prompt list; IDs fall back to positions when the
// source does not provide unique ones.
func normalize(prompts []Prompt) []Prompt {
	out := make([]Prompt, len(prompts))
	copy(out, prompts)

	seen := make(map[int]struct{}, len(out))
	for _, p := range out {
		if _, dup := seen[p.ID]; dup {
			for i := range out {
				out[i].ID = i
			}
			return out
		}
		seen[p.ID] = struct{}{}
	}
	return out
}

func (c *Controller) reindex() {
	c.positions = make(map[int]int, len(c.cards))
	for i, p := range c.cards {
		c.positions[p.ID] = i
	}
}

func (c *Controller) restore(p Progress) {
	c.favorites = c.knownIDs(p.Favorites)
	c.answered = c.knownIDs(p.Answered)
	c.ledger.Restore(p.Score)
}

// knownIDs drops IDs that are not in the deck and duplicates.
func (c *Controller) knownIDs(ids []int) []int {
	var out []int
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := c.positions[id]; !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Reveal shows the active card's back face. The first reveal starts the
// session, after which Advance auto-reveals.
func (c *Controller) Reveal() {
	c.mu.Lock()
	if c.revealed {
		c.mu.Unlock()
		return
	}
	c.revealed = true
	c.started = true
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.emit(snap, nil)
}

// Advance flips the card back now and moves to the next card after the flip
// delay. A second Advance inside the window replaces the pending one.
func (c *Controller) Advance() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.revealed = false
	c.cancelAdvanceLocked()
	gen := c.advanceGen
	c.advanceTimer = c.scheduler.AfterFunc(c.cfg.FlipDelay, func() { c.finishAdvance(gen) })
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.emit(snap, nil)
}

func (c *Controller) finishAdvance(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.advanceGen {
		c.mu.Unlock()
		return
	}
	c.advanceTimer = nil
	c.index = (c.index + 1) % len(c.cards)
	if c.started {
		c.revealed = true
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.emit(snap, nil)
}

// cancelAdvanceLocked stops the pending advance and invalidates a callback
// that may already be running.
func (c *Controller) cancelAdvanceLocked() {
	if c.advanceTimer != nil {
		c.advanceTimer.Stop()
		c.advanceTimer = nil
	}
	c.advanceGen++
}

// ToggleFavorite marks or unmarks the active card. Unmarking takes the
// reward back, floored at zero.
func (c *Controller) ToggleFavorite() {
	c.mu.Lock()
	id := c.cards[c.index].ID

	var (
		note Notification
		ok   bool
	)
	if i := indexOf(c.favorites, id); i >= 0 {
		c.favorites = append(c.favorites[:i:i], c.favorites[i+1:]...)
		note, ok = c.ledger.Reward(ActionUnfavorite)
	} else {
		c.favorites = append(c.favorites, id)
		note, ok = c.ledger.Reward(ActionFavorite)
	}

	version, progress := c.bumpLocked()
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.persist(version, &progress)
	if ok {
		c.emit(snap, &note)
	} else {
		c.emit(snap, nil)
	}
}

// MarkAnswered rewards the active card once. Repeats are no-ops.
func (c *Controller) MarkAnswered() {
	c.mu.Lock()
	id := c.cards[c.index].ID
	if indexOf(c.answered, id) >= 0 {
		c.mu.Unlock()
		return
	}
	c.answered = append(c.answered, id)
	note, _ := c.ledger.Reward(ActionAnswer)

	version, progress := c.bumpLocked()
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.persist(version, &progress)
	c.emit(snap, &note)
}

// Shuffle reorders the deck with a uniform Fisher-Yates pass and restarts the
// session at the first card. Favorites and answered follow their prompts.
func (c *Controller) Shuffle() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	for i := len(c.cards) - 1; i > 0; i-- {
		j := c.intn(i + 1)
		c.cards[i], c.cards[j] = c.cards[j], c.cards[i]
	}
	c.reindex()
	c.index = 0
	c.revealed = false
	c.started = false
	c.cancelAdvanceLocked()

	c.shuffling = true
	if c.shuffleTimer != nil {
		c.shuffleTimer.Stop()
	}
	c.shuffleGen++
	gen := c.shuffleGen
	c.shuffleTimer = c.scheduler.AfterFunc(c.cfg.ShuffleDuration, func() { c.finishShuffle(gen) })

	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.emit(snap, nil)
}

func (c *Controller) finishShuffle(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.shuffleGen {
		c.mu.Unlock()
		return
	}
	c.shuffleTimer = nil
	c.shuffling = false
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.emit(snap, nil)
}

// Reset wipes favorites, answered and score, returns to the first card and
// clears the stored progress for this category.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.favorites = nil
	c.answered = nil
	note := c.ledger.Reset()
	c.index = 0
	c.revealed = false
	c.started = false
	c.cancelAdvanceLocked()

	version, _ := c.bumpLocked()
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.persist(version, nil)
	c.emit(snap, &note)
}

// Close stops pending timers. Later timer callbacks are ignored.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.advanceTimer != nil {
		c.advanceTimer.Stop()
		c.advanceTimer = nil
	}
	if c.shuffleTimer != nil {
		c.shuffleTimer.Stop()
		c.shuffleTimer = nil
	}
}

func (c *Controller) bumpLocked() (uint64, Progress) {
	c.version++
	return c.version, c.progressLocked()
}

// persist writes p, or clears the store when p is nil. Writes are applied in
// version order; a write older than the last one applied is dropped.
func (c *Controller) persist(version uint64, p *Progress) {
	c.persistMu.Lock()
	defer c.persistMu.Unlock()

	if version <= c.persisted {
		return
	}
	c.persisted = version

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	var err error
	if p == nil {
		err = c.store.Clear(ctx, c.cfg.Category)
	} else {
		err = c.store.Save(ctx, c.cfg.Category, *p)
	}
	if err != nil {
		c.logger.Warn(logModule, "Progress write failed, continuing in memory", map[string]interface{}{
			"category": c.cfg.Category, "error": err.Error(),
		})
	}
}

func (c *Controller) emit(snap Snapshot, note *Notification) {
	if note != nil && c.onNotify != nil {
		c.onNotify(*note)
	}
	if c.onChange != nil {
		c.onChange(snap)
	}
}

// Snapshot returns the current session view.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	current := c.cards[c.index]
	snap := Snapshot{
		Category:        c.cfg.Category,
		Theme:           c.cfg.Theme,
		Total:           len(c.cards),
		Index:           c.index,
		Current:         current,
		Revealed:        c.revealed,
		Started:         c.started,
		Shuffling:       c.shuffling,
		IsFavorite:      indexOf(c.favorites, current.ID) >= 0,
		IsAnswered:      indexOf(c.answered, current.ID) >= 0,
		FavoriteIndices: c.positionsOf(c.favorites),
		AnsweredIndices: c.positionsOf(c.answered),
		Score:           c.ledger.Score(),
	}
	if len(c.answered) > 0 {
		snap.ProgressPercent = int(math.Round(float64(len(c.answered)) / float64(len(c.cards)) * 100))
	}
	return snap
}

func (c *Controller) positionsOf(ids []int) []int {
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.positions[id])
	}
	sort.Ints(out)
	return out
}

// Favorites returns the favorite prompts in the order they were marked.
func (c *Controller) Favorites() []Prompt {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Prompt, 0, len(c.favorites))
	for _, id := range c.favorites {
		out = append(out, c.cards[c.positions[id]])
	}
	return out
}

// Cards returns the deck in its current order.
func (c *Controller) Cards() []Prompt {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Prompt, len(c.cards))
	copy(out, c.cards)
	return out
}

// Progress returns the persisted part of the session.
func (c *Controller) Progress() Progress {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.progressLocked()
}

func (c *Controller) progressLocked() Progress {
	return Progress{
		Favorites: append([]int{}, c.favorites...),
		Answered:  append([]int{}, c.answered...),
		Score:     c.ledger.Score(),
	}
}

func (c *Controller) Category() string { return c.cfg.Category }

func (c *Controller) Style() Style { return c.style }

func indexOf(ids []int, id int) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
