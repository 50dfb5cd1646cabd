package rules

import (
	log "github.com/sirupsen/logrus"
)

// TickResult classifies what happened during a tick.
type TickResult struct {
	Turn      int     `json:"turn"`
	FoodEaten []int   `json:"foodEaten,omitempty"`
	Ended     bool    `json:"ended"`
	Outcome   Outcome `json:"outcome,omitempty"`
}

// Continuing reports whether the round carries on with nothing eaten.
func (t TickResult) Continuing() bool {
	return !t.Ended && len(t.FoodEaten) == 0
}

// Tick advances the round by one step. Collisions end the round and are
// reported through the result, not as errors. The only error from a running
// round is ErrNoFreeCell, which aborts the round. Ticks on a round that is
// not running return ErrNotRunning and change nothing.
func (r *Round) Tick() (TickResult, error) {
	if r.State != RoundStateRunning {
		return TickResult{Turn: r.Turn}, ErrNotRunning
	}
	r.Turn++
	result := TickResult{Turn: r.Turn}

	// Every new head is computed from the pre-tick state before any body
	// changes, so neither snake sees the other's move early.
	food := r.Food
	heads := make([]Point, len(r.Snakes))
	ate := make([]bool, len(r.Snakes))
	for i, s := range r.Snakes {
		heads[i] = s.nextHead()
		ate[i] = heads[i].Equal(food)
	}
	for i, s := range r.Snakes {
		s.advance(heads[i], ate[i])
	}

	deaths := checkForDeath(r.Board, r.Turn, r.Snakes)
	if outcome := decideOutcome(r.Mode, deaths); outcome != OutcomeNone {
		for _, du := range deaths {
			du.Snake.Death = du.Death
			log.WithFields(log.Fields{
				"RoundID": r.ID,
				"Turn":    r.Turn,
				"Player":  du.Player,
				"Cause":   du.Death.Cause,
			}).Info("snake collided")
		}
		r.end(outcome)
		result.Ended = true
		result.Outcome = outcome
		return result, nil
	}

	eaten := false
	for i := range r.Snakes {
		if !ate[i] {
			continue
		}
		eaten = true
		r.Scores[i] += ScoreIncrement
		result.FoodEaten = append(result.FoodEaten, i)
		log.WithFields(log.Fields{
			"RoundID": r.ID,
			"Turn":    r.Turn,
			"Player":  i,
			"Food":    food,
			"Score":   r.Scores[i],
		}).Info("snake ate")
	}
	if eaten {
		next, err := r.Board.PlaceFood(r.rng, occupiedPoints(r.Snakes))
		if err != nil {
			log.WithError(err).WithFields(log.Fields{
				"RoundID": r.ID,
				"Turn":    r.Turn,
			}).Error("aborting round, food could not be placed")
			r.end(OutcomeAborted)
			result.Ended = true
			result.Outcome = OutcomeAborted
			return result, err
		}
		r.Food = next
	}
	return result, nil
}

func (r *Round) end(outcome Outcome) {
	r.State = RoundStateEnded
	r.Outcome = outcome
	log.WithFields(log.Fields{
		"RoundID": r.ID,
		"Turn":    r.Turn,
		"Outcome": outcome,
		"Scores":  r.Scores,
	}).Info("round ended")
}
