package deck

import (
	"context"
	"errors"
	"math/rand/v2"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T, src Source, cfg Config, opts ...Option) (*Controller, *manualScheduler) {
	t.Helper()
	sched := &manualScheduler{}
	opts = append([]Option{WithScheduler(sched), WithRand(rand.New(rand.NewPCG(1, 2)))}, opts...)
	c, err := New(context.Background(), src, cfg, opts...)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c, sched
}

func TestNew_UnknownCategory(t *testing.T) {
	empty := SourceFunc(func(context.Context, string) ([]Prompt, error) { return nil, nil })
	c, err := New(context.Background(), empty, Config{Category: "nope"})
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	failing := SourceFunc(func(context.Context, string) ([]Prompt, error) {
		return nil, errors.New("connection refused")
	})
	c, err = New(context.Background(), failing, Config{Category: "twilight"})
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestNew_InitialState(t *testing.T) {
	c, _ := newTestController(t, staticSource("Q1", "Q2", "Q3"), Config{Category: "mirror"})

	snap := c.Snapshot()
	assert.Equal(t, 0, snap.Index)
	assert.Equal(t, 3, snap.Total)
	assert.False(t, snap.Revealed)
	assert.False(t, snap.Started)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, ThemeMirror, snap.Theme)
	assert.Equal(t, "reflecting on question", c.Style().AnswerAction)
}

func TestNew_RepairsDuplicateIDs(t *testing.T) {
	src := SourceFunc(func(context.Context, string) ([]Prompt, error) {
		return []Prompt{{ID: 7, Text: "a"}, {ID: 7, Text: "b"}}, nil
	})
	c, _ := newTestController(t, src, Config{Category: "x"})

	cards := c.Cards()
	assert.Equal(t, 0, cards[0].ID)
	assert.Equal(t, 1, cards[1].ID)
}

func TestAdvance_RevealsAfterFlipDelay(t *testing.T) {
	c, sched := newTestController(t, staticSource("Q1", "Q2", "Q3"), Config{Category: "twilight"})

	c.Reveal()
	assert.True(t, c.Snapshot().Revealed)

	c.Advance()
	snap := c.Snapshot()
	assert.False(t, snap.Revealed, "card flips back immediately")
	assert.Equal(t, 0, snap.Index, "index moves only after the delay")

	sched.Tick(DefaultFlipDelay)
	snap = c.Snapshot()
	assert.Equal(t, 1, snap.Index)
	assert.True(t, snap.Revealed)

	c.MarkAnswered()
	snap = c.Snapshot()
	assert.Equal(t, []int{1}, snap.AnsweredIndices)
	assert.Equal(t, DefaultRewardDelta, snap.Score)

	c.Advance()
	sched.Tick(DefaultFlipDelay)
	c.Advance()
	sched.Tick(DefaultFlipDelay)
	assert.Equal(t, 0, c.Snapshot().Index, "wraps past the last card")

	c.Advance()
	sched.Tick(DefaultFlipDelay)
	assert.Equal(t, 1, c.Snapshot().Index)
}

func TestAdvance_BeforeStartStaysHidden(t *testing.T) {
	c, sched := newTestController(t, staticSource("Q1", "Q2"), Config{Category: "sunlit"})

	c.Advance()
	sched.Tick(DefaultFlipDelay)

	snap := c.Snapshot()
	assert.Equal(t, 1, snap.Index)
	assert.False(t, snap.Revealed)
}

func TestAdvance_IsCyclic(t *testing.T) {
	for n := 1; n <= 7; n++ {
		texts := make([]string, n)
		for i := range texts {
			texts[i] = "q"
		}
		c, sched := newTestController(t, staticSource(texts...), Config{Category: "woodland"})

		for i := 0; i < n; i++ {
			c.Advance()
			sched.Tick(DefaultFlipDelay)
		}
		assert.Equal(t, 0, c.Snapshot().Index, "deck of %d", n)
	}
}

func TestAdvance_RapidCallsCancelAndReplace(t *testing.T) {
	c, sched := newTestController(t, staticSource("Q1", "Q2", "Q3"), Config{Category: "twilight"})

	c.Advance()
	sched.Tick(DefaultFlipDelay / 2)
	c.Advance()
	assert.Equal(t, 1, sched.Pending())

	sched.Tick(DefaultFlipDelay / 2)
	assert.Equal(t, 0, c.Snapshot().Index, "first advance was replaced")

	sched.Tick(DefaultFlipDelay / 2)
	assert.Equal(t, 1, c.Snapshot().Index)
}

func TestToggleFavorite_DoubleToggleRestores(t *testing.T) {
	store := newMemStore()
	c, _ := newTestController(t, staticSource("Q1", "Q2"), Config{Category: "twilight"}, WithStore(store))

	c.ToggleFavorite()
	snap := c.Snapshot()
	assert.Equal(t, 5, snap.Score)
	assert.Equal(t, []int{0}, snap.FavoriteIndices)
	assert.True(t, snap.IsFavorite)

	c.ToggleFavorite()
	snap = c.Snapshot()
	assert.Equal(t, 0, snap.Score)
	assert.Empty(t, snap.FavoriteIndices)

	stored, ok := store.get("twilight")
	require.True(t, ok)
	assert.Empty(t, stored.Favorites, "emptying favorites is written through")
	assert.Equal(t, 0, stored.Score)
}

func TestToggleFavorite_UnfavoriteFloorsAtZero(t *testing.T) {
	store := newMemStore()
	store.data["lovers"] = Progress{Favorites: []int{0}, Score: 0}
	c, _ := newTestController(t, staticSource("Q1"), Config{Category: "lovers"}, WithStore(store))

	c.ToggleFavorite()
	snap := c.Snapshot()
	assert.Equal(t, 0, snap.Score)
	assert.Empty(t, snap.FavoriteIndices)
}

func TestMarkAnswered_Idempotent(t *testing.T) {
	var notes []Notification
	c, _ := newTestController(t, staticSource("Q1", "Q2"), Config{Category: "brainstorm"},
		OnNotify(func(n Notification) { notes = append(notes, n) }))

	c.MarkAnswered()
	c.MarkAnswered()

	assert.Equal(t, 5, c.Snapshot().Score)
	require.Len(t, notes, 1)
	assert.Equal(t, NotificationEarned, notes[0].Kind)
	assert.Equal(t, "discussing question", notes[0].Label)
}

func TestNotifications(t *testing.T) {
	var notes []Notification
	c, _ := newTestController(t, staticSource("Q1"), Config{Category: "twilight"},
		OnNotify(func(n Notification) { notes = append(notes, n) }))

	c.ToggleFavorite()
	c.ToggleFavorite()
	c.Reset()

	require.Len(t, notes, 2, "un-favorite is silent")
	assert.Equal(t, "favoriting question", notes[0].Label)
	assert.Equal(t, 5, notes[0].Delta)
	assert.Equal(t, NotificationReset, notes[1].Kind)
}

func TestScoreNeverNegative(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 7))
	c, sched := newTestController(t, staticSource("a", "b", "c", "d"), Config{Category: "twilight"})

	for i := 0; i < 500; i++ {
		switch r.IntN(4) {
		case 0:
			c.ToggleFavorite()
		case 1:
			c.MarkAnswered()
		case 2:
			c.Advance()
			sched.Tick(DefaultFlipDelay)
		case 3:
			c.Shuffle()
		}
		snap := c.Snapshot()
		require.GreaterOrEqual(t, snap.Score, 0)
		require.Less(t, snap.Index, snap.Total)
	}
}

func TestShuffle_IsPermutation(t *testing.T) {
	texts := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	c, _ := newTestController(t, staticSource(texts...), Config{Category: "twilight"})

	c.Shuffle()

	var got []string
	for _, p := range c.Cards() {
		got = append(got, p.Text)
	}
	assert.Len(t, got, len(texts))
	sort.Strings(got)
	assert.Equal(t, texts, got)
}

func TestShuffle_FavoritesFollowPrompts(t *testing.T) {
	c, sched := newTestController(t, staticSource("a", "b", "c", "d", "e"), Config{Category: "twilight"})

	c.Advance()
	sched.Tick(DefaultFlipDelay)
	c.ToggleFavorite()
	c.MarkAnswered()
	favorite := c.Snapshot().Current

	c.Shuffle()

	favs := c.Favorites()
	require.Len(t, favs, 1)
	assert.Equal(t, favorite, favs[0])

	cards := c.Cards()
	snap := c.Snapshot()
	require.Len(t, snap.FavoriteIndices, 1)
	assert.Equal(t, favorite, cards[snap.FavoriteIndices[0]])
	assert.Equal(t, favorite, cards[snap.AnsweredIndices[0]])
}

func TestShuffle_RestartsSessionAndCancelsAdvance(t *testing.T) {
	c, sched := newTestController(t, staticSource("a", "b", "c"), Config{Category: "twilight"})

	c.Reveal()
	c.Advance()
	c.Shuffle()

	snap := c.Snapshot()
	assert.True(t, snap.Shuffling)
	assert.False(t, snap.Started)
	assert.False(t, snap.Revealed)

	sched.Tick(DefaultFlipDelay)
	assert.Equal(t, 0, c.Snapshot().Index, "pending advance was dropped")

	sched.Tick(DefaultShuffleDuration)
	assert.False(t, c.Snapshot().Shuffling)
}

func TestReset_ClearsStore(t *testing.T) {
	store := newMemStore()
	c, _ := newTestController(t, staticSource("a", "b"), Config{Category: "mirror"}, WithStore(store))

	c.ToggleFavorite()
	c.MarkAnswered()
	_, ok := store.get("mirror")
	require.True(t, ok)

	c.Reset()

	snap := c.Snapshot()
	assert.Equal(t, 0, snap.Score)
	assert.Empty(t, snap.FavoriteIndices)
	assert.Empty(t, snap.AnsweredIndices)

	p, err := store.Load(context.Background(), "mirror")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestRestoreProgress(t *testing.T) {
	store := newMemStore()
	store.data["sunlit"] = Progress{Favorites: []int{2, 99, 2}, Answered: []int{0}, Score: 15}

	c, _ := newTestController(t, staticSource("a", "b", "c"), Config{Category: "sunlit"}, WithStore(store))

	snap := c.Snapshot()
	assert.Equal(t, 15, snap.Score)
	assert.Equal(t, []int{2}, snap.FavoriteIndices, "unknown and duplicate ids are dropped")
	assert.Equal(t, []int{0}, snap.AnsweredIndices)
	assert.Equal(t, 33, snap.ProgressPercent)
}

func TestResetOnOpen(t *testing.T) {
	store := newMemStore()
	store.data["sunlit"] = Progress{Favorites: []int{1}, Score: 5}

	c, _ := newTestController(t, staticSource("a", "b"), Config{Category: "sunlit", Restore: ResetOnOpen}, WithStore(store))

	assert.Equal(t, 0, c.Snapshot().Score)
	_, ok := store.get("sunlit")
	assert.False(t, ok)
}

func TestStoreFailureIsLogged(t *testing.T) {
	store := newMemStore()
	store.fail = true
	log := &recordingLogger{}

	c, _ := newTestController(t, staticSource("a"), Config{Category: "twilight"}, WithStore(store), WithLogger(log))
	c.ToggleFavorite()

	assert.Equal(t, 5, c.Snapshot().Score, "session continues in memory")
	assert.Equal(t, 2, log.count())
}

func TestOnChange_FiresForTimerTransitions(t *testing.T) {
	var (
		mu    sync.Mutex
		snaps []Snapshot
	)
	c, sched := newTestController(t, staticSource("a", "b"), Config{Category: "twilight"},
		OnChange(func(s Snapshot) {
			mu.Lock()
			snaps = append(snaps, s)
			mu.Unlock()
		}))

	c.Advance()
	sched.Tick(DefaultFlipDelay)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, snaps, 2)
	assert.Equal(t, 1, snaps[1].Index)
}

func TestClose_IgnoresLateTimers(t *testing.T) {
	c, sched := newTestController(t, staticSource("a", "b"), Config{Category: "twilight"})

	c.Advance()
	c.Close()
	sched.Tick(time.Second)

	assert.Equal(t, 0, c.Snapshot().Index)
}

func TestWallClock(t *testing.T) {
	c, err := New(context.Background(), staticSource("a", "b"), Config{Category: "twilight", FlipDelay: time.Millisecond})
	require.NoError(t, err)
	defer c.Close()

	done := make(chan struct{})
	var once sync.Once
	c.onChange = func(s Snapshot) {
		if s.Index == 1 {
			once.Do(func() { close(done) })
		}
	}
	c.Advance()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("advance never completed")
	}
}
