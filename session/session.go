// Package session drives a round with a fixed interval timer. It owns the
// only reference to the round, serialises player input against ticks, and
// records single player high scores when a round ends.
package session

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/battlesnakeio/classic/rules"
	"github.com/battlesnakeio/classic/scores"
	log "github.com/sirupsen/logrus"
)

// Event is published to listeners after every change to the round.
type Event struct {
	Frame     rules.Frame       `json:"frame"`
	Result    *rules.TickResult `json:"result,omitempty"`
	HighScore *HighScore        `json:"highScore,omitempty"`
	Error     string            `json:"error,omitempty"`
}

// HighScore is attached to the event of a round that set a new best.
type HighScore struct {
	Difficulty rules.Difficulty `json:"difficulty"`
	Score      int              `json:"score"`
	Table      scores.Table     `json:"table"`
}

// Listener receives events. Listeners are called from the timer goroutine
// and must not block.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(Event)

// OnEvent calls f.
func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Options tune a session.
type Options struct {
	// Rand is the food placement source, nil seeds one from the clock.
	Rand *rand.Rand
	// Interval maps a difficulty to the tick period, nil uses
	// Difficulty.Interval.
	Interval func(rules.Difficulty) time.Duration
	// Manual disables the timer, ticks only happen through Step.
	Manual bool
}

// Session is safe for concurrent use.
type Session struct {
	keeper   *scores.Keeper
	interval func(rules.Difficulty) time.Duration
	manual   bool

	lock      sync.Mutex
	round     *rules.Round
	listeners map[int]Listener
	nextID    int
	cancel    context.CancelFunc
	gen       int
}

// New returns an idle session. keeper may be nil, in which case no high
// scores are recorded.
func New(cfg rules.Config, keeper *scores.Keeper, opts Options) *Session {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	interval := opts.Interval
	if interval == nil {
		interval = rules.Difficulty.Interval
	}
	return &Session{
		keeper:    keeper,
		interval:  interval,
		manual:    opts.Manual,
		round:     rules.NewRound(cfg, rng),
		listeners: map[int]Listener{},
	}
}

// Subscribe adds a listener and returns a function that removes it.
func (s *Session) Subscribe(l Listener) func() {
	s.lock.Lock()
	defer s.lock.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	return func() {
		s.lock.Lock()
		defer s.lock.Unlock()
		delete(s.listeners, id)
	}
}

// Configure sets the board size, mode and difficulty for the next start of
// an idle or ended round.
func (s *Session) Configure(cfg rules.Config) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.round.Configure(cfg)
}

// Config returns the configuration of the round.
func (s *Session) Config() rules.Config {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.round.Config()
}

// Start begins a fresh round from any state and arms the timer.
func (s *Session) Start() error {
	return s.mutate(func(r *rules.Round) error {
		if err := r.Start(); err != nil {
			return err
		}
		s.started(r)
		return nil
	})
}

// StartWith reconfigures and starts a fresh round from any state.
func (s *Session) StartWith(cfg rules.Config) error {
	return s.mutate(func(r *rules.Round) error {
		if err := r.StartWith(cfg); err != nil {
			return err
		}
		s.started(r)
		return nil
	})
}

var errRoundActive = errors.New("session: round already active")

// StartIfInactive starts a fresh round when none is running or paused. It
// reports whether a round was started.
func (s *Session) StartIfInactive() (bool, error) {
	err := s.mutate(func(r *rules.Round) error {
		if r.Active() {
			return errRoundActive
		}
		if err := r.Start(); err != nil {
			return err
		}
		s.started(r)
		return nil
	})
	if err == errRoundActive {
		return false, nil
	}
	return err == nil, err
}

func (s *Session) started(r *rules.Round) {
	roundsStarted.WithLabelValues(string(r.Mode)).Inc()
	s.arm()
}

// Pause stops the timer of a running round.
func (s *Session) Pause() error {
	return s.mutate(func(r *rules.Round) error {
		if err := r.Pause(); err != nil {
			return err
		}
		s.disarm()
		return nil
	})
}

// Resume continues a paused round on a freshly armed timer.
func (s *Session) Resume() error {
	return s.mutate(func(r *rules.Round) error {
		if err := r.Resume(); err != nil {
			return err
		}
		s.arm()
		return nil
	})
}

// TogglePause pauses a running round or resumes a paused one.
func (s *Session) TogglePause() (bool, error) {
	var paused bool
	err := s.mutate(func(r *rules.Round) error {
		var err error
		paused, err = r.TogglePause()
		if err != nil {
			return err
		}
		if paused {
			s.disarm()
		} else {
			s.arm()
		}
		return nil
	})
	return paused, err
}

// Heading requests a new heading for a player, applied on the next tick.
func (s *Session) Heading(player int, h rules.Heading) (bool, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.round.SetHeading(player, h)
}

// SetDifficulty changes the tick period. A running round keeps its snakes and
// continues on a replacement timer.
func (s *Session) SetDifficulty(d rules.Difficulty) error {
	return s.mutate(func(r *rules.Round) error {
		if err := r.SetDifficulty(d); err != nil {
			return err
		}
		if r.State == rules.RoundStateRunning {
			s.arm()
		}
		return nil
	})
}

// Frame returns a snapshot of the round.
func (s *Session) Frame() rules.Frame {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.round.Frame()
}

// HighScores returns the current high score table.
func (s *Session) HighScores() scores.Table {
	if s.keeper == nil {
		return scores.NewTable()
	}
	return s.keeper.Table()
}

// Step advances the round by one tick outside of the timer.
func (s *Session) Step() (rules.TickResult, error) {
	s.lock.Lock()
	return s.step()
}

// Close stops the timer. The round is left as it is.
func (s *Session) Close() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.disarm()
}

// mutate runs fn against the round under the lock and publishes the
// resulting frame when it succeeds.
func (s *Session) mutate(fn func(*rules.Round) error) error {
	s.lock.Lock()
	if err := fn(s.round); err != nil {
		s.lock.Unlock()
		return err
	}
	ev := Event{Frame: s.round.Frame()}
	listeners := s.snapshotListeners()
	s.lock.Unlock()

	publish(listeners, ev)
	return nil
}

// step must be called with the lock held, it releases it.
func (s *Session) step() (rules.TickResult, error) {
	result, err := s.round.Tick()
	if err == rules.ErrNotRunning {
		s.lock.Unlock()
		return result, err
	}
	ticks.Inc()

	ev := Event{
		Frame:  s.round.Frame(),
		Result: &result,
	}
	if err != nil {
		ev.Error = err.Error()
	}

	var (
		submit     bool
		difficulty = s.round.Difficulty
		score      = s.round.Score(0)
	)
	if result.Ended {
		s.disarm()
		roundsEnded.WithLabelValues(string(result.Outcome)).Inc()
		submit = s.round.Mode == rules.GameModeSinglePlayer && s.keeper != nil
	}
	listeners := s.snapshotListeners()
	s.lock.Unlock()

	if submit {
		ev.HighScore = s.recordHighScore(difficulty, score, &ev)
	}
	publish(listeners, ev)
	return result, err
}

func (s *Session) recordHighScore(d rules.Difficulty, score int, ev *Event) *HighScore {
	updated, err := s.keeper.Submit(context.Background(), d, score)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"Difficulty": d,
			"Score":      score,
		}).Error("unable to persist high score")
		if ev.Error == "" {
			ev.Error = err.Error()
		}
	}
	if !updated {
		return nil
	}
	return &HighScore{
		Difficulty: d,
		Score:      score,
		Table:      s.keeper.Table(),
	}
}

// arm replaces any running timer with one at the current difficulty. The
// lock must be held.
func (s *Session) arm() {
	s.disarm()
	if s.manual {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.gen++
	go s.loop(ctx, s.gen, s.interval(s.round.Difficulty))
}

// disarm cancels the running timer, if any. The lock must be held.
func (s *Session) disarm() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++
}

func (s *Session) loop(ctx context.Context, gen int, interval time.Duration) {
	log.WithField("interval", interval).Debug("timer armed")
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.lock.Lock()
			// A replaced timer can still fire once before it sees the
			// cancellation, it must not tick the round.
			if gen != s.gen {
				s.lock.Unlock()
				return
			}
			if _, err := s.step(); err == rules.ErrNotRunning {
				return
			}
		}
	}
}

func (s *Session) snapshotListeners() []Listener {
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	return listeners
}

func publish(listeners []Listener, ev Event) {
	for _, l := range listeners {
		l.OnEvent(ev)
	}
}
