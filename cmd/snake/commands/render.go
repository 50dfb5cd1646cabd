package commands

import (
	"fmt"

	"github.com/battlesnakeio/classic/rules"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	foodColor    = termbox.ColorRed
	deadColor    = termbox.ColorRed
)

var snakeColors = []termbox.Attribute{termbox.ColorGreen, termbox.ColorBlue}

// view is what the terminal shows besides the board.
type view struct {
	frame   rules.Frame
	best    int
	message string
}

func render(v view) error {
	termbox.Clear(defaultColor, defaultColor)

	var (
		f      = v.frame
		w, h   = termbox.Size()
		left   = (w - f.Width) / 2
		top    = (h-f.Height)/2 - 1
		bottom = top + f.Height + 1
	)

	renderTitle(left, top, f)
	renderBoard(f, top, bottom, left)
	if f.Food != nil {
		termbox.SetCell(left+f.Food.X, top+1+f.Food.Y, '●', foodColor, bgColor)
	}
	colors := frameSnakeColors(f)
	for i, s := range f.Snakes {
		renderSnake(left, top, s, colors[i])
	}
	renderStatus(left, bottom, v)

	return termbox.Flush()
}

// frameSnakeColors picks each player's color, collided snakes are drawn in
// deadColor.
func frameSnakeColors(f rules.Frame) []termbox.Attribute {
	alive := map[*rules.Snake]bool{}
	for _, s := range f.AliveSnakes() {
		alive[s] = true
	}
	colors := make([]termbox.Attribute, len(f.Snakes))
	for i, s := range f.Snakes {
		colors[i] = deadColor
		if alive[s] {
			colors[i] = snakeColors[i%len(snakeColors)]
		}
	}
	return colors
}

func renderSnake(left, top int, s *rules.Snake, color termbox.Attribute) {
	for _, b := range s.Body {
		termbox.SetCell(left+b.X, top+1+b.Y, ' ', color, color)
	}
}

func renderBoard(f rules.Frame, top, bottom, left int) {
	for i := top; i < bottom; i++ {
		termbox.SetCell(left-1, i, '│', defaultColor, bgColor)
		termbox.SetCell(left+f.Width, i, '│', defaultColor, bgColor)
	}

	termbox.SetCell(left-1, top, '┌', defaultColor, bgColor)
	termbox.SetCell(left-1, bottom, '└', defaultColor, bgColor)
	termbox.SetCell(left+f.Width, top, '┐', defaultColor, bgColor)
	termbox.SetCell(left+f.Width, bottom, '┘', defaultColor, bgColor)

	fill(left, top, f.Width, 1, termbox.Cell{Ch: '─'})
	fill(left, bottom, f.Width, 1, termbox.Cell{Ch: '─'})
}

func renderTitle(left, top int, f rules.Frame) {
	tbprint(left, top-1, defaultColor, defaultColor, fmt.Sprintf("Snake  %s", f.Difficulty))
}

func renderStatus(left, bottom int, v view) {
	f := v.frame
	line := bottom + 1
	switch len(f.Scores) {
	case 0:
		tbprint(left, line, defaultColor, defaultColor, fmt.Sprintf("Best: %d", v.best))
	case 1:
		tbprint(left, line, defaultColor, defaultColor, fmt.Sprintf("Score: %d  Best: %d", f.Scores[0], v.best))
	default:
		tbprint(left, line, snakeColors[0], defaultColor, fmt.Sprintf("P1: %d", f.Scores[0]))
		tbprint(left+10, line, snakeColors[1], defaultColor, fmt.Sprintf("P2: %d", f.Scores[1]))
	}
	tbprint(left, line+1, defaultColor, defaultColor, stateText(f))
	if v.message != "" {
		tbprint(left, line+2, termbox.ColorYellow, defaultColor, v.message)
	}
}

func stateText(f rules.Frame) string {
	switch f.State {
	case rules.RoundStateIdle:
		return "enter to start, 1/2/3 difficulty, q to quit"
	case rules.RoundStatePaused:
		return "paused, space to resume"
	case rules.RoundStateEnded:
		return outcomeText(f.Outcome) + ", enter to restart"
	}
	return ""
}

func outcomeText(o rules.Outcome) string {
	if player, ok := o.Winner(); ok {
		return fmt.Sprintf("player %d wins", player+1)
	}
	switch o {
	case rules.OutcomeTie:
		return "tie"
	case rules.OutcomeAborted:
		return "board full"
	}
	return "game over"
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
