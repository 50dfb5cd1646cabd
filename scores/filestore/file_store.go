// Package filestore keeps the high score table in a single JSON file.
package filestore

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"os"
	"os/user"
	"path"
	"path/filepath"
	"sync"

	"github.com/battlesnakeio/classic/scores"
	"github.com/pkg/errors"
)

// FileName is the name of the file used inside the default directory.
const FileName = "snakeHighScores.json"

func defaultDir() string {
	return path.Join(homeDir(), ".battlesnake/classic")
}

func homeDir() string {
	usr, err := user.Current()
	if err != nil {
		return "."
	}
	return usr.HomeDir
}

// NewFileStore returns a file based store. An empty filename uses the file in
// the user's home directory.
func NewFileStore(filename string) scores.Store {
	if filename == "" {
		filename = path.Join(defaultDir(), FileName)
	}
	return &fileStore{filename: filename}
}

type fileStore struct {
	filename string
	lock     sync.Mutex
}

// Load reads the table. A missing file reads as an all zero table.
func (fs *fileStore) Load(ctx context.Context) (scores.Table, error) {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	data, err := ioutil.ReadFile(fs.filename)
	if os.IsNotExist(err) {
		return scores.NewTable(), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to read high score file")
	}

	raw := map[string]int{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "unable to decode high score file")
	}
	return scores.FromMap(raw)
}

// Save replaces the file with the full table. The table is written to a
// temporary file first and renamed over the old one.
func (fs *fileStore) Save(ctx context.Context, t scores.Table) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	data, err := json.Marshal(t.ToMap())
	if err != nil {
		return errors.Wrap(err, "unable to encode high scores")
	}

	dir := filepath.Dir(fs.filename)
	if err := os.MkdirAll(dir, 0775); err != nil {
		return errors.Wrap(err, "unable to create high score directory")
	}

	tmp, err := ioutil.TempFile(dir, ".highscores")
	if err != nil {
		return errors.Wrap(err, "unable to create temporary high score file")
	}
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrap(err, "unable to write high score file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "unable to close high score file")
	}
	return errors.Wrap(os.Rename(tmp.Name(), fs.filename), "unable to replace high score file")
}
