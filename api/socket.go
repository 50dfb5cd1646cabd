package api

import (
	"net/http"
	"time"

	"github.com/battlesnakeio/classic/config"
	"github.com/battlesnakeio/classic/session"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	socketBuffer = 32
	writeTimeout = 5 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// socket streams session events to a websocket client. Plain tick events are
// throttled per connection, events that change the round's state, end it or
// set a high score are always sent.
func (s *Server) socket(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Error("unable to upgrade connection")
		return
	}

	events := make(chan session.Event, socketBuffer)
	done := make(chan struct{})
	limiter := rate.NewLimiter(config.SocketRate, config.SocketBurst)
	unsubscribe := s.session.Subscribe(socketListener(events, done, limiter))

	closed := make(chan struct{})
	go func() {
		// Drain reads so control frames and client close are handled.
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	defer func() {
		close(done)
		unsubscribe()
		if err := conn.Close(); err != nil {
			log.WithError(err).Warn("failed to close websocket")
		}
	}()

	// Send the current frame first so clients don't wait for the next tick.
	if err := writeEvent(conn, session.Event{Frame: s.session.Frame()}); err != nil {
		return
	}
	for {
		select {
		case e := <-events:
			if err := writeEvent(conn, e); err != nil {
				log.WithError(err).Debug("websocket write failed")
				return
			}
		case <-closed:
			return
		}
	}
}

// socketListener queues events for one connection. Plain ticks are rate
// limited and dropped when the queue is full. Important events wait for
// room until the connection is done.
func socketListener(events chan<- session.Event, done <-chan struct{}, limiter *rate.Limiter) session.Listener {
	return session.ListenerFunc(func(e session.Event) {
		if important(e) {
			select {
			case events <- e:
			case <-done:
			}
			return
		}
		if !limiter.Allow() {
			return
		}
		select {
		case events <- e:
		default:
			log.Debug("socket buffer full, dropping frame")
		}
	})
}

func important(e session.Event) bool {
	return e.Result == nil || e.Result.Ended || e.HighScore != nil || e.Error != ""
}

func writeEvent(conn *websocket.Conn, e session.Event) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return conn.WriteJSON(e)
}
