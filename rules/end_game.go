package rules

// Outcome is the terminal classification of a round.
type Outcome string

const (
	// OutcomeNone is the outcome of a round that has not ended
	OutcomeNone Outcome = ""
	// OutcomeEnded is a finished single player round, it has no winner
	OutcomeEnded Outcome = "ended"
	// OutcomePlayer1 means the first player (index 0) won
	OutcomePlayer1 Outcome = "player1"
	// OutcomePlayer2 means the second player (index 1) won
	OutcomePlayer2 Outcome = "player2"
	// OutcomeTie means both snakes collided on the same tick
	OutcomeTie Outcome = "tie"
	// OutcomeAborted is a round stopped because food could not be placed
	OutcomeAborted Outcome = "aborted"
)

// Winner returns the index of the winning player, if there is one.
func (o Outcome) Winner() (int, bool) {
	switch o {
	case OutcomePlayer1:
		return 0, true
	case OutcomePlayer2:
		return 1, true
	}
	return 0, false
}

// decideOutcome classifies a tick's collisions. It returns OutcomeNone when
// nobody collided.
func decideOutcome(mode GameMode, deaths []deathUpdate) Outcome {
	if len(deaths) == 0 {
		return OutcomeNone
	}
	if mode == GameModeSinglePlayer {
		return OutcomeEnded
	}
	if len(deaths) > 1 {
		return OutcomeTie
	}
	if deaths[0].Player == 0 {
		return OutcomePlayer2
	}
	return OutcomePlayer1
}
