package rules

import "errors"

// ErrInvalidHeading is returned when a heading name is not recognised.
var ErrInvalidHeading = errors.New("rules: invalid heading")

// Heading is the cardinal direction a snake's head moves on the next tick.
type Heading string

const (
	// HeadingUp moves towards y = 0
	HeadingUp Heading = "up"
	// HeadingDown moves towards y = height-1
	HeadingDown Heading = "down"
	// HeadingLeft moves towards x = 0
	HeadingLeft Heading = "left"
	// HeadingRight moves towards x = width-1
	HeadingRight Heading = "right"
)

// ParseHeading converts a name into a heading.
func ParseHeading(s string) (Heading, error) {
	h := Heading(s)
	if !h.Valid() {
		return "", ErrInvalidHeading
	}
	return h, nil
}

// Valid reports whether h is one of the four cardinal headings.
func (h Heading) Valid() bool {
	switch h {
	case HeadingUp, HeadingDown, HeadingLeft, HeadingRight:
		return true
	}
	return false
}

// Delta is the unit vector of the heading.
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case HeadingUp:
		return 0, -1
	case HeadingDown:
		return 0, 1
	case HeadingLeft:
		return -1, 0
	case HeadingRight:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the reverse heading.
func (h Heading) Opposite() Heading {
	switch h {
	case HeadingUp:
		return HeadingDown
	case HeadingDown:
		return HeadingUp
	case HeadingLeft:
		return HeadingRight
	case HeadingRight:
		return HeadingLeft
	}
	return ""
}

// HeadingFromSwipe resolves a swipe vector to a heading using its dominant
// axis. Screen coordinates are assumed, so a positive dy is a downward swipe.
// A zero vector resolves to nothing.
func HeadingFromSwipe(dx, dy int) (Heading, bool) {
	if abs(dx) > abs(dy) {
		if dx > 0 {
			return HeadingRight, true
		}
		return HeadingLeft, true
	}
	switch {
	case dy > 0:
		return HeadingDown, true
	case dy < 0:
		return HeadingUp, true
	}
	return "", false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
