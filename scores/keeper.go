package scores

import (
	"context"
	"sync"

	"github.com/battlesnakeio/classic/rules"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Keeper owns the high score table for the process. It is loaded once at
// startup and written through to the store on every new best.
type Keeper struct {
	store Store
	table Table
	lock  sync.Mutex
	// saveLock orders writes so the store never ends on an older table.
	saveLock sync.Mutex
}

// NewKeeper returns a keeper with an all zero table. Call Load to read the
// stored table.
func NewKeeper(store Store) *Keeper {
	return &Keeper{
		store: store,
		table: NewTable(),
	}
}

// Load replaces the in memory table with the stored one.
func (k *Keeper) Load(ctx context.Context) error {
	t, err := k.store.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "unable to load high scores")
	}
	k.lock.Lock()
	defer k.lock.Unlock()
	k.table = NewTable()
	for d, v := range t {
		k.table[d] = v
	}
	return nil
}

// Table returns a copy of the current table.
func (k *Keeper) Table() Table {
	k.lock.Lock()
	defer k.lock.Unlock()
	return k.table.Clone()
}

// Best returns the high score for a difficulty.
func (k *Keeper) Best(d rules.Difficulty) int {
	k.lock.Lock()
	defer k.lock.Unlock()
	return k.table[d]
}

// Submit records a finished single player score. The table is only updated,
// and the full table persisted, when score is strictly greater than the
// current best. A failed write keeps the new best in memory and reports the
// error.
func (k *Keeper) Submit(ctx context.Context, d rules.Difficulty, score int) (bool, error) {
	if !d.Valid() {
		return false, rules.ErrInvalidDifficulty
	}

	k.saveLock.Lock()
	defer k.saveLock.Unlock()

	k.lock.Lock()
	if score <= k.table[d] {
		k.lock.Unlock()
		return false, nil
	}
	k.table[d] = score
	snapshot := k.table.Clone()
	k.lock.Unlock()

	log.WithFields(log.Fields{
		"Difficulty": d,
		"Score":      score,
	}).Info("new high score")

	if err := k.store.Save(ctx, snapshot); err != nil {
		return true, errors.Wrap(err, "unable to save high scores")
	}
	return true, nil
}
