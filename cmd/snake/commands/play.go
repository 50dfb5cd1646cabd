package commands

import (
	"sync"

	"github.com/battlesnakeio/classic/rules"
	"github.com/battlesnakeio/classic/scores"
	"github.com/battlesnakeio/classic/session"
	termbox "github.com/nsf/termbox-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var playTwoPlayer bool

func init() {
	playCmd.Flags().BoolVarP(&playTwoPlayer, "two-player", "2", false, "two snakes on one keyboard, WASD against the arrow keys")
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "plays a round in the terminal",
	Run: func(*cobra.Command, []string) {
		cfg, err := roundConfig(modeFor(playTwoPlayer))
		if err != nil {
			log.WithError(err).Fatal("invalid round configuration")
		}
		k, closer, err := openKeeper()
		if err != nil {
			log.WithError(err).WithField("backend", backendName).Fatal("unable to load high scores")
		}
		defer closer()

		if err := play(cfg, k); err != nil {
			log.WithError(err).Fatal("terminal failed")
		}
	},
}

type action int

const (
	actionNone action = iota
	actionHeading
	actionPause
	actionStart
	actionDifficulty
	actionQuit
)

type command struct {
	action     action
	player     int
	heading    rules.Heading
	difficulty rules.Difficulty
}

var (
	arrowKeys = map[termbox.Key]rules.Heading{
		termbox.KeyArrowUp:    rules.HeadingUp,
		termbox.KeyArrowDown:  rules.HeadingDown,
		termbox.KeyArrowLeft:  rules.HeadingLeft,
		termbox.KeyArrowRight: rules.HeadingRight,
	}
	wasdKeys = map[rune]rules.Heading{
		'w': rules.HeadingUp, 'W': rules.HeadingUp,
		's': rules.HeadingDown, 'S': rules.HeadingDown,
		'a': rules.HeadingLeft, 'A': rules.HeadingLeft,
		'd': rules.HeadingRight, 'D': rules.HeadingRight,
	}
	difficultyKeys = map[rune]rules.Difficulty{
		'1': rules.DifficultyEasy,
		'2': rules.DifficultyMedium,
		'3': rules.DifficultyHard,
	}
)

// keyCommand maps a key press to a command. In two player mode WASD steers
// the first snake and the arrow keys the second, otherwise both steer the
// only snake.
func keyCommand(ev termbox.Event, mode rules.GameMode) command {
	if ev.Type != termbox.EventKey {
		return command{}
	}
	if h, ok := arrowKeys[ev.Key]; ok {
		player := 0
		if mode == rules.GameModeTwoPlayer {
			player = 1
		}
		return command{action: actionHeading, player: player, heading: h}
	}
	switch ev.Key {
	case termbox.KeySpace:
		return command{action: actionPause}
	case termbox.KeyEnter:
		return command{action: actionStart}
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return command{action: actionQuit}
	}
	if h, ok := wasdKeys[ev.Ch]; ok {
		return command{action: actionHeading, heading: h}
	}
	if d, ok := difficultyKeys[ev.Ch]; ok {
		return command{action: actionDifficulty, difficulty: d}
	}
	switch ev.Ch {
	case 'r', 'R':
		return command{action: actionStart}
	case 'q', 'Q':
		return command{action: actionQuit}
	}
	return command{}
}

// apply runs a command against the session and returns a message for the
// status line, if any.
func apply(s *session.Session, cmd command) string {
	var err error
	switch cmd.action {
	case actionHeading:
		_, err = s.Heading(cmd.player, cmd.heading)
		if err == rules.ErrNotRunning {
			err = nil
		}
	case actionPause:
		_, err = s.TogglePause()
		if err == rules.ErrNotRunning {
			err = nil
		}
	case actionStart:
		err = s.Start()
	case actionDifficulty:
		err = s.SetDifficulty(cmd.difficulty)
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

// screen collects session events for the render loop. Redraw requests are
// coalesced into one pending signal, the loop always draws the session's
// latest frame, so a burst of ticks can never hide the final one.
type screen struct {
	lock    sync.Mutex
	message string
	redraw  chan struct{}
}

func newScreen() *screen {
	return &screen{redraw: make(chan struct{}, 1)}
}

func (sc *screen) OnEvent(e session.Event) {
	sc.lock.Lock()
	if e.HighScore != nil {
		sc.message = "new high score!"
	}
	if e.Error != "" {
		sc.message = e.Error
	}
	sc.lock.Unlock()

	select {
	case sc.redraw <- struct{}{}:
	default:
	}
}

func (sc *screen) setMessage(msg string) {
	sc.lock.Lock()
	defer sc.lock.Unlock()
	sc.message = msg
}

func (sc *screen) currentMessage() string {
	sc.lock.Lock()
	defer sc.lock.Unlock()
	return sc.message
}

func play(cfg rules.Config, k *scores.Keeper) error {
	s := session.New(cfg, k, session.Options{})
	defer s.Close()

	sc := newScreen()
	unsubscribe := s.Subscribe(sc)
	defer unsubscribe()

	if err := termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()

	keys := setupEventQueue()
	for {
		f := s.Frame()
		v := view{
			frame:   f,
			best:    k.Best(f.Difficulty),
			message: sc.currentMessage(),
		}
		if err := render(v); err != nil {
			return err
		}

		select {
		case ev := <-keys:
			cmd := keyCommand(ev, cfg.Mode)
			switch cmd.action {
			case actionQuit:
				return nil
			case actionNone:
				continue
			case actionStart:
				sc.setMessage("")
			}
			if msg := apply(s, cmd); msg != "" {
				sc.setMessage(msg)
			}
		case <-sc.redraw:
		}
	}
}

func setupEventQueue() <-chan termbox.Event {
	eventQueue := make(chan termbox.Event)
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(eventQueue)
	return eventQueue
}
