// Package sqlstore keeps the high score table in postgres.
package sqlstore

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq" // Import pq driver.

	"github.com/battlesnakeio/classic/config"
	"github.com/battlesnakeio/classic/scores"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const migrations = `
CREATE TABLE IF NOT EXISTS high_scores (
	difficulty VARCHAR(32) PRIMARY KEY,
	score INTEGER NOT NULL CHECK (score >= 0),
	updated TIMESTAMP NOT NULL DEFAULT now()
);
`

// NewSQLStore returns a new store using a postgres database.
func NewSQLStore(url string) (*Store, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	db.SetMaxOpenConns(config.MaxOpenConns)
	db.SetMaxIdleConns(config.MaxIdleConns)

	if err = db.PingContext(ctx); err != nil {
		return nil, errors.Wrap(err, "unable to connect")
	}

	_, err = db.ExecContext(ctx, migrations)
	if err != nil {
		return nil, errors.Wrap(err, "unable to migrate")
	}
	return &Store{db: db}, nil
}

// Store represents an SQL store.
type Store struct {
	db *sql.DB
}

// Close closes the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// transact is a transaction wrapper, helps avoid failed to close connections.
func (s *Store) transact(
	ctx context.Context, txFunc func(*sql.Tx) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return
	}
	defer func() {
		if p := recover(); p != nil {
			if rErr := tx.Rollback(); rErr != nil {
				log.WithError(rErr).Error("rollback failed")
			}
			panic(p) // re-throw panic after Rollback
		} else if err != nil {
			// err is non-nil; don't change it
			if rErr := tx.Rollback(); rErr != nil {
				log.WithError(rErr).Error("rollback failed")
			}
		} else {
			err = tx.Commit() // err is nil; if Commit returns error update err
		}
	}()
	err = txFunc(tx)
	return err
}

// Load reads every stored row. Missing rows read as zero.
func (s *Store) Load(ctx context.Context) (scores.Table, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT difficulty, score FROM high_scores`)
	if err != nil {
		return nil, errors.Wrap(err, "unable to query high scores")
	}
	defer rows.Close()

	raw := map[string]int{}
	for rows.Next() {
		var (
			difficulty string
			score      int
		)
		if err := rows.Scan(&difficulty, &score); err != nil {
			return nil, errors.Wrap(err, "unable to scan high score")
		}
		raw[difficulty] = score
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "unable to read high scores")
	}
	return scores.FromMap(raw)
}

// Save writes the full table in one transaction.
func (s *Store) Save(ctx context.Context, t scores.Table) error {
	return s.transact(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM high_scores`); err != nil {
			return err
		}
		for difficulty, score := range t.ToMap() {
			if _, err := tx.ExecContext(ctx, `
			INSERT INTO high_scores (difficulty, score, updated) VALUES ($1, $2, now())`,
				difficulty, score,
			); err != nil {
				return err
			}
		}
		return nil
	})
}
