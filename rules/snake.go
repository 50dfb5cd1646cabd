package rules

// Snake is an ordered body of points, head first.
type Snake struct {
	Body    []Point `json:"body"`
	Heading Heading `json:"heading"`
	Pending Heading `json:"pending"`
	Death   *Death  `json:"death,omitempty"`
}

// Death records why and when a snake stopped moving.
type Death struct {
	Turn  int    `json:"turn"`
	Cause string `json:"cause"`
}

func newSnake(head Point, heading Heading, length int) *Snake {
	dx, dy := heading.Opposite().Delta()
	body := make([]Point, 0, length)
	for i := 0; i < length; i++ {
		body = append(body, head.Add(dx*i, dy*i))
	}
	return &Snake{
		Body:    body,
		Heading: heading,
		Pending: heading,
	}
}

// Head returns the first point in the body
func (s *Snake) Head() Point {
	return s.Body[0]
}

// Tail returns the last point in the body
func (s *Snake) Tail() Point {
	return s.Body[len(s.Body)-1]
}

// Alive reports whether the snake is still moving.
func (s *Snake) Alive() bool {
	return s.Death == nil
}

// Turn sets the pending heading. Requests for the exact reverse of the
// current heading are ignored, as are requests for dead snakes.
func (s *Snake) Turn(h Heading) bool {
	if !h.Valid() || !s.Alive() {
		return false
	}
	if h == s.Heading.Opposite() {
		return false
	}
	s.Pending = h
	return true
}

// nextHead applies the pending heading and returns where the head will be
// after this move.
func (s *Snake) nextHead() Point {
	s.Heading = s.Pending
	dx, dy := s.Heading.Delta()
	return s.Head().Add(dx, dy)
}

// advance prepends head and drops the tail unless the snake is growing.
func (s *Snake) advance(head Point, grow bool) {
	body := make([]Point, 0, len(s.Body)+1)
	body = append(body, head)
	if grow {
		body = append(body, s.Body...)
	} else {
		body = append(body, s.Body[:len(s.Body)-1]...)
	}
	s.Body = body
}

// Clone returns a deep copy of the snake.
func (s *Snake) Clone() *Snake {
	c := &Snake{
		Body:    append([]Point(nil), s.Body...),
		Heading: s.Heading,
		Pending: s.Pending,
	}
	if s.Death != nil {
		d := *s.Death
		c.Death = &d
	}
	return c
}
