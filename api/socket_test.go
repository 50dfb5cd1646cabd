package api

import (
	"testing"
	"time"

	"github.com/battlesnakeio/classic/rules"
	"github.com/battlesnakeio/classic/session"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func tickEvent(turn int) session.Event {
	return session.Event{Result: &rules.TickResult{Turn: turn}}
}

func TestSocketListenerKeepsImportantEvents(t *testing.T) {
	events := make(chan session.Event, 1)
	done := make(chan struct{})
	l := socketListener(events, done, rate.NewLimiter(rate.Inf, 1))

	l.OnEvent(tickEvent(1))
	// A full queue drops plain ticks.
	l.OnEvent(tickEvent(2))
	require.Len(t, events, 1)

	ended := session.Event{
		Frame:  rules.Frame{State: rules.RoundStateEnded},
		Result: &rules.TickResult{Turn: 3, Ended: true, Outcome: rules.OutcomeEnded},
	}
	sent := make(chan struct{})
	go func() {
		l.OnEvent(ended)
		close(sent)
	}()

	select {
	case <-sent:
		t.Fatal("ended event was dropped")
	case <-time.After(20 * time.Millisecond):
	}

	require.Equal(t, 1, (<-events).Result.Turn)
	<-sent
	require.Equal(t, ended, <-events)
}

func TestSocketListenerStopsWhenDone(t *testing.T) {
	events := make(chan session.Event, 1)
	done := make(chan struct{})
	l := socketListener(events, done, rate.NewLimiter(rate.Inf, 1))

	l.OnEvent(session.Event{Frame: rules.Frame{State: rules.RoundStateRunning}})
	close(done)
	// Returns instead of blocking on the full queue.
	l.OnEvent(session.Event{Frame: rules.Frame{State: rules.RoundStatePaused}})
	require.Len(t, events, 1)
}

func TestSocketListenerThrottlesTicks(t *testing.T) {
	events := make(chan session.Event, 10)
	l := socketListener(events, make(chan struct{}), rate.NewLimiter(rate.Every(time.Hour), 2))

	for i := 1; i <= 5; i++ {
		l.OnEvent(tickEvent(i))
	}
	require.Len(t, events, 2)
}
