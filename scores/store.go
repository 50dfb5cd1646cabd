// Package scores keeps the best single player score per difficulty and
// persists it through a pluggable Store.
package scores

import (
	"context"
	"errors"
	"sync"

	"github.com/battlesnakeio/classic/rules"
)

var (
	// ErrInvalidScore is returned when a stored table holds a negative score.
	ErrInvalidScore = errors.New("scores: invalid score")
)

// Table maps a difficulty to the best score achieved at it.
type Table map[rules.Difficulty]int

// NewTable returns a table with a zero entry for every difficulty.
func NewTable() Table {
	t := Table{}
	for _, d := range rules.Difficulties {
		t[d] = 0
	}
	return t
}

// Clone returns a copy of the table.
func (t Table) Clone() Table {
	c := make(Table, len(t))
	for k, v := range t {
		c[k] = v
	}
	return c
}

// FromMap builds a table from raw key/value pairs. Unknown difficulties are
// dropped, missing ones default to zero and negative values are rejected.
func FromMap(raw map[string]int) (Table, error) {
	t := NewTable()
	for k, v := range raw {
		d := rules.Difficulty(k)
		if !d.Valid() {
			continue
		}
		if v < 0 {
			return nil, ErrInvalidScore
		}
		t[d] = v
	}
	return t, nil
}

// ToMap converts the table into raw key/value pairs.
func (t Table) ToMap() map[string]int {
	raw := make(map[string]int, len(t))
	for k, v := range t {
		raw[string(k)] = v
	}
	return raw
}

// Store is the interface to the backend store. Save always receives the full
// table, never a partial update.
type Store interface {
	Load(context.Context) (Table, error)
	Save(context.Context, Table) error
}

// InMemStore returns an in memory implementation of the Store interface.
func InMemStore() Store {
	return &inmem{table: NewTable()}
}

type inmem struct {
	table Table
	lock  sync.Mutex
}

func (in *inmem) Load(ctx context.Context) (Table, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	return in.table.Clone(), nil
}

func (in *inmem) Save(ctx context.Context, t Table) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	in.table = t.Clone()
	return nil
}
