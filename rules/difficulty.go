package rules

import (
	"errors"
	"time"
)

// ErrInvalidDifficulty is returned for a difficulty key that is not one of
// Difficulties.
var ErrInvalidDifficulty = errors.New("rules: invalid difficulty")

// Difficulty selects the tick interval.
type Difficulty string

const (
	// DifficultyEasy ticks every 200ms
	DifficultyEasy Difficulty = "easy"
	// DifficultyMedium ticks every 150ms
	DifficultyMedium Difficulty = "medium"
	// DifficultyHard ticks every 100ms
	DifficultyHard Difficulty = "hard"
)

// DefaultDifficulty is used when none is configured.
const DefaultDifficulty = DifficultyMedium

// Difficulties lists every difficulty, easiest first.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

var intervals = map[Difficulty]time.Duration{
	DifficultyEasy:   200 * time.Millisecond,
	DifficultyMedium: 150 * time.Millisecond,
	DifficultyHard:   100 * time.Millisecond,
}

// ParseDifficulty converts a key into a difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !d.Valid() {
		return "", ErrInvalidDifficulty
	}
	return d, nil
}

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	_, ok := intervals[d]
	return ok
}

// Interval is the period between ticks at this difficulty.
func (d Difficulty) Interval() time.Duration {
	return intervals[d]
}
