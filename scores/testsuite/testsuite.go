// Package testsuite holds the behaviour every scores.Store must satisfy.
package testsuite

import (
	"context"
	"testing"

	"github.com/battlesnakeio/classic/rules"
	"github.com/battlesnakeio/classic/scores"
	"github.com/stretchr/testify/require"
)

func testStoreEmpty(t *testing.T, s scores.Store) {
	ctx := context.Background()

	// Nothing stored yet, every difficulty reads as zero.
	table, err := s.Load(ctx)
	require.Nil(t, err)
	require.Equal(t, scores.NewTable(), table)
}

func testStoreSaveLoad(t *testing.T, s scores.Store) {
	ctx := context.Background()

	table := scores.NewTable()
	table[rules.DifficultyMedium] = 120
	table[rules.DifficultyHard] = 40
	require.Nil(t, s.Save(ctx, table))

	loaded, err := s.Load(ctx)
	require.Nil(t, err)
	require.Equal(t, table, loaded)

	// Full table overwrite, lowered values stick.
	table[rules.DifficultyMedium] = 10
	table[rules.DifficultyEasy] = 30
	require.Nil(t, s.Save(ctx, table))

	loaded, err = s.Load(ctx)
	require.Nil(t, err)
	require.Equal(t, 10, loaded[rules.DifficultyMedium])
	require.Equal(t, 30, loaded[rules.DifficultyEasy])
	require.Equal(t, 40, loaded[rules.DifficultyHard])
}

func testStoreIsolation(t *testing.T, s scores.Store) {
	ctx := context.Background()

	table := scores.NewTable()
	table[rules.DifficultyEasy] = 50
	require.Nil(t, s.Save(ctx, table))

	// Mutating the saved or loaded table never reaches the store.
	table[rules.DifficultyEasy] = 60
	loaded, err := s.Load(ctx)
	require.Nil(t, err)
	require.Equal(t, 50, loaded[rules.DifficultyEasy])

	loaded[rules.DifficultyEasy] = 70
	again, err := s.Load(ctx)
	require.Nil(t, err)
	require.Equal(t, 50, again[rules.DifficultyEasy])
}

func testStoreKeeper(t *testing.T, s scores.Store) {
	ctx := context.Background()

	table := scores.NewTable()
	table[rules.DifficultyMedium] = 100
	require.Nil(t, s.Save(ctx, table))

	k := scores.NewKeeper(s)
	require.Nil(t, k.Load(ctx))

	updated, err := k.Submit(ctx, rules.DifficultyMedium, 80)
	require.Nil(t, err)
	require.False(t, updated)

	updated, err = k.Submit(ctx, rules.DifficultyMedium, 120)
	require.Nil(t, err)
	require.True(t, updated)

	loaded, err := s.Load(ctx)
	require.Nil(t, err)
	require.Equal(t, 120, loaded[rules.DifficultyMedium])
}

// Suite will run all tests for a store implementation, calling reset before
// each of them.
func Suite(t *testing.T, s scores.Store, reset func()) {
	tests := []struct {
		name string
		fn   func(*testing.T, scores.Store)
	}{
		{"Empty", testStoreEmpty},
		{"SaveLoad", testStoreSaveLoad},
		{"Isolation", testStoreIsolation},
		{"Keeper", testStoreKeeper},
	}
	for _, test := range tests {
		reset()
		t.Run(test.name, func(t *testing.T) { test.fn(t, s) })
	}
}
