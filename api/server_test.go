package api

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/battlesnakeio/classic/rules"
	"github.com/battlesnakeio/classic/scores"
	"github.com/battlesnakeio/classic/session"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func createAPIServer(t *testing.T) (*Server, *session.Session) {
	k := scores.NewKeeper(scores.InMemStore())
	require.NoError(t, k.Load(context.Background()))
	s := session.New(rules.DefaultConfig(), k, session.Options{
		Rand:   rand.New(rand.NewSource(1)),
		Manual: true,
	})
	return New(":1234", s), s
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != "" {
		buf = bytes.NewBufferString(body)
	} else {
		buf = &bytes.Buffer{}
	}
	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	return rr
}

func decodeFrame(t *testing.T, rr *httptest.ResponseRecorder) rules.Frame {
	f := rules.Frame{}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&f))
	return f
}

func TestGetRoundIdle(t *testing.T) {
	s, _ := createAPIServer(t)

	rr := do(t, s, "GET", "/round", "")
	require.Equal(t, http.StatusOK, rr.Code)
	f := decodeFrame(t, rr)
	require.Equal(t, rules.RoundStateIdle, f.State)
	require.Equal(t, 20, f.Width)
}

func TestStart(t *testing.T) {
	s, _ := createAPIServer(t)

	rr := do(t, s, "POST", "/round/start", "")
	require.Equal(t, http.StatusOK, rr.Code)
	f := decodeFrame(t, rr)
	require.Equal(t, rules.RoundStateRunning, f.State)
	require.Len(t, f.Snakes, 1)
	require.NotNil(t, f.Food)

	rr = do(t, s, "POST", "/round/start", `{"mode":"two-player","difficulty":"hard"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	f = decodeFrame(t, rr)
	require.Len(t, f.Snakes, 2)
	require.Equal(t, rules.DifficultyHard, f.Difficulty)
}

func TestStartInvalid(t *testing.T) {
	s, _ := createAPIServer(t)

	rr := do(t, s, "POST", "/round/start", `{"difficulty":"nightmare"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "invalid difficulty")

	rr = do(t, s, "POST", "/round/start", `{"width":2}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, s, "POST", "/round/start", `{not json`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestPauseResume(t *testing.T) {
	s, _ := createAPIServer(t)

	rr := do(t, s, "POST", "/round/pause", "")
	require.Equal(t, http.StatusConflict, rr.Code)

	do(t, s, "POST", "/round/start", "")
	rr = do(t, s, "POST", "/round/pause", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, rules.RoundStatePaused, decodeFrame(t, rr).State)

	rr = do(t, s, "POST", "/round/pause", "")
	require.Equal(t, http.StatusConflict, rr.Code)

	rr = do(t, s, "POST", "/round/toggle", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, rules.RoundStateRunning, decodeFrame(t, rr).State)

	rr = do(t, s, "POST", "/round/resume", "")
	require.Equal(t, http.StatusConflict, rr.Code)
}

func TestHeading(t *testing.T) {
	s, sess := createAPIServer(t)
	do(t, s, "POST", "/round/start", "")

	rr := do(t, s, "POST", "/round/heading", `{"player":0,"heading":"left"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"accepted":false}`, rr.Body.String())

	rr = do(t, s, "POST", "/round/heading", `{"player":0,"heading":"up"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"accepted":true}`, rr.Body.String())

	rr = do(t, s, "POST", "/round/heading", `{"player":1,"heading":"up"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, s, "POST", "/round/heading", `{"player":0,"heading":"north"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	_, err := sess.Step()
	require.NoError(t, err)
	require.Equal(t, rules.Point{X: 10, Y: 9}, sess.Frame().Snakes[0].Body[0])
}

func TestDifficulty(t *testing.T) {
	s, _ := createAPIServer(t)

	rr := do(t, s, "POST", "/round/difficulty", `{"difficulty":"easy"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, rules.DifficultyEasy, decodeFrame(t, rr).Difficulty)

	rr = do(t, s, "POST", "/round/difficulty", `{"difficulty":"extreme"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestScores(t *testing.T) {
	s, _ := createAPIServer(t)

	rr := do(t, s, "GET", "/scores", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"highScores":{"easy":0,"medium":0,"hard":0}}`, rr.Body.String())
}

func TestSocket(t *testing.T) {
	s, sess := createAPIServer(t)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/socket"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	ev := session.Event{}
	require.NoError(t, conn.ReadJSON(&ev))
	require.Equal(t, rules.RoundStateIdle, ev.Frame.State)

	require.NoError(t, sess.Start())
	ev = session.Event{}
	require.NoError(t, conn.ReadJSON(&ev))
	require.Equal(t, rules.RoundStateRunning, ev.Frame.State)
	require.Nil(t, ev.Result)

	_, err = sess.Step()
	require.NoError(t, err)
	ev = session.Event{}
	require.NoError(t, conn.ReadJSON(&ev))
	require.NotNil(t, ev.Result)
	require.Equal(t, 1, ev.Result.Turn)
}

func TestHeadingSwipe(t *testing.T) {
	s, sess := createAPIServer(t)

	// A swipe with no active round starts one instead of steering.
	rr := do(t, s, "POST", "/round/heading", `{"swipe":{"dx":0,"dy":-40}}`)
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"accepted":false,"started":true}`, rr.Body.String())
	require.Equal(t, rules.RoundStateRunning, sess.Frame().State)
	require.Equal(t, 0, sess.Frame().Turn)

	// Mostly horizontal swipe to the left reverses a snake heading right.
	rr = do(t, s, "POST", "/round/heading", `{"swipe":{"dx":-50,"dy":10}}`)
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"accepted":false}`, rr.Body.String())

	// A tap resolves to no heading.
	rr = do(t, s, "POST", "/round/heading", `{"swipe":{"dx":0,"dy":0}}`)
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"accepted":false}`, rr.Body.String())

	rr = do(t, s, "POST", "/round/heading", `{"swipe":{"dx":5,"dy":30}}`)
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"accepted":true}`, rr.Body.String())

	_, err := sess.Step()
	require.NoError(t, err)
	require.Equal(t, rules.Point{X: 10, Y: 11}, sess.Frame().Snakes[0].Body[0])
	require.Equal(t, rules.HeadingDown, sess.Frame().Snakes[0].Heading)
}
