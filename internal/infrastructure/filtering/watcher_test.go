package filtering_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/blockrules/internal/domain/entity"
	"github.com/bnema/blockrules/internal/filtering/rules"
	"github.com/bnema/blockrules/internal/infrastructure/filtering"
	"github.com/bnema/blockrules/internal/infrastructure/filtering/mocks"
)

func TestWatcher_RecompilesOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "list.txt", "||a.com^\n")
	source := entity.NewRuleSource("list", path, entity.RuleSourceKindAdblock)

	updated := make(chan struct{}, 4)
	updater := mocks.NewMockSourceUpdater(t)
	updater.EXPECT().
		Update(mock.Anything, source).
		RunAndReturn(func(_ context.Context, s *entity.RuleSource) (*filtering.UpdateResult, error) {
			updated <- struct{}{}
			return &filtering.UpdateResult{Source: s, FetchResult: rules.FetchSuccess}, nil
		})

	w, err := filtering.NewWatcher(updater, 150*time.Millisecond)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, w.Add(source))
	assert.Equal(t, 1, w.Watched())

	ctx, cancel := context.WithCancel(testContext())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Several writes in a burst collapse into one update.
	for i := range 3 {
		require.NoError(t, os.WriteFile(path, []byte("||b.com^\n"+string(rune('a'+i))+"\n"), 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.txt"), []byte("x"), 0o644))

	select {
	case <-updated:
	case <-time.After(5 * time.Second):
		t.Fatal("source was not recompiled")
	}

	select {
	case <-updated:
		t.Fatal("burst of writes triggered more than one update")
	case <-time.After(400 * time.Millisecond):
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestWatcher_AddMissingDirectory(t *testing.T) {
	updater := mocks.NewMockSourceUpdater(t)
	w, err := filtering.NewWatcher(updater, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	source := entity.NewRuleSource("x", filepath.Join(t.TempDir(), "nope", "list.txt"), "")
	assert.Error(t, w.Add(source))
	assert.Equal(t, 0, w.Watched())
}

func TestWatcher_Replace(t *testing.T) {
	dir := t.TempDir()
	a := entity.NewRuleSource("a", writeSource(t, dir, "a.txt", "||a.com^\n"), "")
	b := entity.NewRuleSource("b", writeSource(t, dir, "b.txt", "||b.com^\n"), "")
	c := entity.NewRuleSource("c", writeSource(t, dir, "c.txt", "||c.com^\n"), "")

	w, err := filtering.NewWatcher(mocks.NewMockSourceUpdater(t), 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, w.Add(a))
	require.NoError(t, w.Add(b))
	assert.Equal(t, 2, w.Watched())

	require.NoError(t, w.Replace([]*entity.RuleSource{c}))
	assert.Equal(t, 1, w.Watched())
}
