package rules

// Frame is a snapshot of a round for renderers and transports. It shares no
// memory with the round it was taken from.
type Frame struct {
	RoundID    string     `json:"roundId"`
	Turn       int        `json:"turn"`
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	Mode       GameMode   `json:"mode"`
	Difficulty Difficulty `json:"difficulty"`
	State      RoundState `json:"state"`
	Outcome    Outcome    `json:"outcome,omitempty"`
	Snakes     []*Snake   `json:"snakes"`
	Food       *Point     `json:"food,omitempty"`
	Scores     []int      `json:"scores"`
}

// Frame takes a snapshot of the round.
func (r *Round) Frame() Frame {
	f := Frame{
		RoundID:    r.ID,
		Turn:       r.Turn,
		Width:      r.Board.Width,
		Height:     r.Board.Height,
		Mode:       r.Mode,
		Difficulty: r.Difficulty,
		State:      r.State,
		Outcome:    r.Outcome,
		Snakes:     make([]*Snake, 0, len(r.Snakes)),
		Scores:     append([]int{}, r.Scores...),
	}
	for _, s := range r.Snakes {
		f.Snakes = append(f.Snakes, s.Clone())
	}
	if r.State != RoundStateIdle {
		food := r.Food
		f.Food = &food
	}
	return f
}

// AliveSnakes returns all the snakes that have not collided
func (f Frame) AliveSnakes() []*Snake {
	snakes := []*Snake{}
	for _, s := range f.Snakes {
		if s.Death == nil {
			snakes = append(snakes, s)
		}
	}
	return snakes
}
