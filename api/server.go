// Package api exposes a session over HTTP, with a websocket that streams
// every frame to spectators and remote renderers.
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/battlesnakeio/classic/rules"
	"github.com/battlesnakeio/classic/scores"
	"github.com/battlesnakeio/classic/session"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

// Server is the HTTP front of a session.
type Server struct {
	hs      *http.Server
	session *session.Session
}

// New creates a server for the session listening on addr.
func New(addr string, s *session.Session) *Server {
	srv := &Server{session: s}

	router := httprouter.New()
	router.GET("/round", srv.getRound)
	router.POST("/round/start", srv.start)
	router.POST("/round/pause", srv.pause)
	router.POST("/round/resume", srv.resume)
	router.POST("/round/toggle", srv.toggle)
	router.POST("/round/heading", srv.heading)
	router.POST("/round/difficulty", srv.difficulty)
	router.GET("/scores", srv.getScores)
	router.GET("/socket", srv.socket)

	srv.hs = &http.Server{
		Addr:    addr,
		Handler: cors.Default().Handler(router),
	}
	return srv
}

// Handler returns the root handler, useful for tests.
func (s *Server) Handler() http.Handler { return s.hs.Handler }

// WaitForExit serves until the server is shut down.
func (s *Server) WaitForExit() error {
	log.WithField("addr", s.hs.Addr).Info("snake api listening")
	err := s.hs.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.hs.Shutdown(ctx)
}

// StartRequest optionally reconfigures the round before starting it. Zero
// fields keep the current configuration.
type StartRequest struct {
	Width      int              `json:"width"`
	Height     int              `json:"height"`
	Mode       rules.GameMode   `json:"mode"`
	Difficulty rules.Difficulty `json:"difficulty"`
}

// HeadingRequest asks for a player's next heading, either by name or as a
// touch swipe vector in screen coordinates.
type HeadingRequest struct {
	Player  int           `json:"player"`
	Heading rules.Heading `json:"heading"`
	Swipe   *Swipe        `json:"swipe,omitempty"`
}

// Swipe is the distance a touch moved between press and release.
type Swipe struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
}

// HeadingResponse reports whether the heading was accepted. A swipe while no
// round is active starts one instead of steering.
type HeadingResponse struct {
	Accepted bool `json:"accepted"`
	Started  bool `json:"started,omitempty"`
}

// DifficultyRequest changes the tick period.
type DifficultyRequest struct {
	Difficulty rules.Difficulty `json:"difficulty"`
}

// ScoresResponse is the high score table keyed by difficulty.
type ScoresResponse struct {
	HighScores map[string]int `json:"highScores"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) getRound(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, s.session.Frame())
}

func (s *Server) start(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := StartRequest{}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	cfg := s.session.Config()
	if req.Width != 0 {
		cfg.Width = req.Width
	}
	if req.Height != 0 {
		cfg.Height = req.Height
	}
	if req.Mode != "" {
		cfg.Mode = req.Mode
	}
	if req.Difficulty != "" {
		cfg.Difficulty = req.Difficulty
	}
	if err := s.session.StartWith(cfg); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, s.session.Frame())
}

func (s *Server) pause(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.respond(w, s.session.Pause())
}

func (s *Server) resume(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.respond(w, s.session.Resume())
}

func (s *Server) toggle(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	_, err := s.session.TogglePause()
	s.respond(w, err)
}

func (s *Server) heading(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := HeadingRequest{}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Swipe != nil {
		started, err := s.session.StartIfInactive()
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		if started {
			writeJSON(w, http.StatusOK, HeadingResponse{Started: true})
			return
		}
		h, ok := rules.HeadingFromSwipe(req.Swipe.DX, req.Swipe.DY)
		if !ok {
			writeJSON(w, http.StatusOK, HeadingResponse{})
			return
		}
		req.Heading = h
	}
	h, err := rules.ParseHeading(string(req.Heading))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	accepted, err := s.session.Heading(req.Player, h)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, HeadingResponse{Accepted: accepted})
}

func (s *Server) difficulty(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := DifficultyRequest{}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.respond(w, s.session.SetDifficulty(req.Difficulty))
}

func (s *Server) getScores(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, toScoresResponse(s.session.HighScores()))
}

func (s *Server) respond(w http.ResponseWriter, err error) {
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, s.session.Frame())
}

func toScoresResponse(t scores.Table) ScoresResponse {
	return ScoresResponse{HighScores: t.ToMap()}
}

func statusFor(err error) int {
	switch err {
	case rules.ErrNotRunning, rules.ErrNotPaused, rules.ErrRoundActive:
		return http.StatusConflict
	case rules.ErrInvalidDifficulty, rules.ErrInvalidMode, rules.ErrGridTooSmall,
		rules.ErrInvalidPlayer, rules.ErrInvalidHeading:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// decode reads a JSON body, an empty body leaves v untouched.
func decode(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if err == io.EOF {
		return nil
	}
	return err
}

func writeError(w http.ResponseWriter, status int, err error) {
	log.WithError(err).WithField("status", strconv.Itoa(status)).Info("api request failed")
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warn("failed to write response")
	}
}
