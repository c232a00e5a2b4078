package tui

import (
	"strings"
	"sync"
	"testing"
	"time"

	"bondify-be/internal/catalog"
	"bondify-be/internal/deck"
	"bondify-be/internal/progress"
	"bondify-be/internal/repository/memory"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// heldScheduler keeps callbacks until the test fires them.
type heldScheduler struct {
	mu    sync.Mutex
	funcs []func()
}

type heldTimer struct{}

func (heldTimer) Stop() bool { return true }

func (s *heldScheduler) AfterFunc(_ time.Duration, f func()) deck.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.funcs = append(s.funcs, f)
	return heldTimer{}
}

func (s *heldScheduler) fireAll() {
	s.mu.Lock()
	funcs := s.funcs
	s.funcs = nil
	s.mu.Unlock()
	for _, f := range funcs {
		f()
	}
}

func bundleCatalog(t *testing.T) Catalog {
	t.Helper()
	b, err := catalog.Default()
	require.NoError(t, err)
	return catalog.NewBundleSource(b)
}

// flatten drops card borders and line wrapping so wrapped text can be matched.
func flatten(view string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(view, "│", " ")), " ")
}

func runeKey(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

// send applies msg and then runs any returned command once, feeding its
// result back. Tick commands are skipped.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	model := next.(Model)
	if cmd == nil {
		return model
	}
	if _, isNotify := msg.(notifyMsg); isNotify {
		return model
	}
	out := cmd()
	if out == nil {
		return model
	}
	if _, quit := out.(tea.QuitMsg); quit {
		return model
	}
	return send(t, model, out)
}

func start(t *testing.T, opts Options) Model {
	t.Helper()
	m := NewModel(opts)
	return send(t, m, m.Init()())
}

func TestModel_ListAndOpenDeck(t *testing.T) {
	sched := &heldScheduler{}
	m := start(t, Options{Catalog: bundleCatalog(t), Scheduler: sched})

	require.Equal(t, screenList, m.screen)
	require.Len(t, m.categories, 6)
	assert.Contains(t, flatten(m.View()), "Twilight Tides")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenDeck, m.screen)
	defer m.closeDeck()

	assert.Equal(t, "lovers", m.snap.Category)
	assert.Equal(t, 40, m.snap.Total)
	assert.False(t, m.snap.Revealed)
	assert.Contains(t, flatten(m.View()), "Tap to Reveal")

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, m.snap.Revealed)
	assert.Contains(t, flatten(m.View()), m.snap.Current.Text)

	m = send(t, m, runeKey("a"))
	assert.True(t, m.snap.IsAnswered)
	assert.Equal(t, 5, m.snap.Score)

	m = send(t, m, runeKey("n"))
	assert.False(t, m.snap.Revealed, "card flips back before moving")
	sched.fireAll()
	m = send(t, m, deckChangedMsg{})
	assert.Equal(t, 1, m.snap.Index)
	assert.True(t, m.snap.Revealed)
}

func TestModel_UnknownCategoryShowsRecovery(t *testing.T) {
	m := start(t, Options{Catalog: bundleCatalog(t), Category: "nope"})

	require.Equal(t, screenNotFound, m.screen)
	assert.Nil(t, m.ctrl)
	assert.Contains(t, flatten(m.View()), "Category not found")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, screenList, m.screen)
	assert.Len(t, m.categories, 6)
}

func TestModel_ProgressSurvivesReopen(t *testing.T) {
	store := progress.NewStore(memory.NewProgressRepository())
	opts := Options{Catalog: bundleCatalog(t), Store: store, Category: "mirror", Scheduler: &heldScheduler{}}

	m := start(t, opts)
	require.Equal(t, screenDeck, m.screen)
	m = send(t, m, runeKey("f"))
	assert.True(t, m.snap.IsFavorite)
	m.closeDeck()

	m = start(t, opts)
	defer m.closeDeck()
	assert.True(t, m.snap.IsFavorite)
	assert.Equal(t, 5, m.snap.Score)
	assert.Contains(t, flatten(m.View()), "Favorite")

	opts.Restore = deck.ResetOnOpen
	fresh := start(t, opts)
	defer fresh.closeDeck()
	assert.False(t, fresh.snap.IsFavorite)
	assert.Zero(t, fresh.snap.Score)
}

func TestModel_ShowsOnlyNewestNotification(t *testing.T) {
	m := start(t, Options{Catalog: bundleCatalog(t), Category: "brainstorm", Scheduler: &heldScheduler{}})
	defer m.closeDeck()

	now := time.Now()
	newer := deck.Notification{Kind: deck.NotificationEarned, Delta: 5, Label: "discussing question", ExpiresAt: now.Add(2 * time.Second)}
	older := deck.Notification{Kind: deck.NotificationReset, Label: "resetting data", ExpiresAt: now.Add(time.Second)}

	m = send(t, m, notifyMsg(newer))
	m = send(t, m, notifyMsg(older))
	require.NotNil(t, m.toast)
	assert.Equal(t, newer, *m.toast)
	assert.Contains(t, flatten(m.View()), "+5 XP for discussing question")

	m = send(t, m, expireMsg{at: older.ExpiresAt})
	assert.NotNil(t, m.toast, "a stale expiry leaves the current toast")

	m = send(t, m, expireMsg{at: newer.ExpiresAt})
	assert.Nil(t, m.toast)
}

func TestModel_BackAndQuit(t *testing.T) {
	m := start(t, Options{Catalog: bundleCatalog(t), Category: "sunlit", Scheduler: &heldScheduler{}})
	require.Equal(t, screenDeck, m.screen)

	m = send(t, m, runeKey("b"))
	assert.Equal(t, screenList, m.screen)
	assert.Nil(t, m.ctrl)
	assert.Len(t, m.categories, 6)

	_, cmd := m.Update(runeKey("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
