// Package backend opens a scores.Store by name.
package backend

import (
	"errors"

	"github.com/battlesnakeio/classic/scores"
	"github.com/battlesnakeio/classic/scores/filestore"
	"github.com/battlesnakeio/classic/scores/redisstore"
	"github.com/battlesnakeio/classic/scores/sqlstore"
)

// ErrUnknownBackend is returned for a backend name Open does not know.
var ErrUnknownBackend = errors.New("backend: unknown high score backend")

// Names lists the accepted backend names.
var Names = []string{"inmem", "file", "redis", "sql"}

// Open returns the named store, instrumented. args is backend specific: a
// file path for file, a connection URL for redis and sql.
func Open(name, args string) (scores.Store, error) {
	var (
		store scores.Store
		err   error
	)
	switch name {
	case "inmem":
		store = scores.InMemStore()
	case "file":
		store = filestore.NewFileStore(args)
	case "redis":
		store, err = redisstore.NewStore(args)
	case "sql":
		store, err = sqlstore.NewSQLStore(args)
	default:
		return nil, ErrUnknownBackend
	}
	if err != nil {
		return nil, err
	}
	return scores.InstrumentStore(store), nil
}
