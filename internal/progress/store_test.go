package progress

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"bondify-be/internal/deck"
	"bondify-be/internal/repository/contract"
	"bondify-be/internal/repository/implementation"
	"bondify-be/internal/repository/memory"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]contract.ProgressRepository {
	t.Helper()

	sqlite, err := implementation.OpenProgressSQLite(filepath.Join(t.TempDir(), "progress.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close() })

	repos := map[string]contract.ProgressRepository{
		"memory": memory.NewProgressRepository(),
		"sqlite": sqlite,
	}

	if url := os.Getenv("REDIS_URL"); url != "" {
		opts, err := redis.ParseURL(url)
		require.NoError(t, err)
		rdb := redis.NewClient(opts)
		t.Cleanup(func() { rdb.Close() })
		repos["redis"] = implementation.NewProgressRedisRepository(rdb, "bondify-test:"+t.Name()+":")
	}
	return repos
}

func TestStore_RoundTripAndClear(t *testing.T) {
	ctx := context.Background()

	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := NewStore(repo)

			p, err := s.Load(ctx, "twilight")
			require.NoError(t, err)
			assert.Nil(t, p, "nothing stored yet")

			want := deck.Progress{Favorites: []int{3, 1}, Answered: []int{1}, Score: 15}
			require.NoError(t, s.Save(ctx, "twilight", want))

			p, err = s.Load(ctx, "twilight")
			require.NoError(t, err)
			require.NotNil(t, p)
			assert.Equal(t, want, *p)

			require.NoError(t, s.Clear(ctx, "twilight"))
			p, err = s.Load(ctx, "twilight")
			require.NoError(t, err)
			assert.Nil(t, p)
		})
	}
}

func TestStore_EmptyCollectionsOverwrite(t *testing.T) {
	ctx := context.Background()
	s := NewStore(memory.NewProgressRepository())

	require.NoError(t, s.Save(ctx, "mirror", deck.Progress{Favorites: []int{2}, Score: 5}))
	require.NoError(t, s.Save(ctx, "mirror", deck.Progress{}))

	p, err := s.Load(ctx, "mirror")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Empty(t, p.Favorites)
	assert.Equal(t, 0, p.Score)
}

func TestStore_KeyLayout(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProgressRepository()
	s := NewStore(repo)

	require.NoError(t, s.Save(ctx, "sunlit", deck.Progress{Favorites: []int{4}, Answered: []int{}, Score: 10}))

	v, ok, err := repo.Get(ctx, "favorites-sunlit")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[4]", v)

	v, _, _ = repo.Get(ctx, "answered-sunlit")
	assert.Equal(t, "[]", v)

	v, _, _ = repo.Get(ctx, "xp-sunlit")
	assert.Equal(t, "10", v)
}

func TestStore_CorruptEntry(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProgressRepository()
	require.NoError(t, repo.Set(ctx, "xp-woodland", "lots"))

	_, err := NewStore(repo).Load(ctx, "woodland")
	assert.Error(t, err)
}

func TestStore_DrivesController(t *testing.T) {
	ctx := context.Background()
	store := NewStore(memory.NewProgressRepository())
	src := deck.SourceFunc(func(context.Context, string) ([]deck.Prompt, error) {
		return deck.PromptsFromTexts([]string{"a", "b"}), nil
	})

	c, err := deck.New(ctx, src, deck.Config{Category: "brainstorm"}, deck.WithStore(store))
	require.NoError(t, err)
	c.ToggleFavorite()
	c.MarkAnswered()
	c.Close()

	reopened, err := deck.New(ctx, src, deck.Config{Category: "brainstorm"}, deck.WithStore(store))
	require.NoError(t, err)
	defer reopened.Close()

	snap := reopened.Snapshot()
	assert.Equal(t, 10, snap.Score)
	assert.Equal(t, []int{0}, snap.FavoriteIndices)
	assert.Equal(t, []int{0}, snap.AnsweredIndices)
}
