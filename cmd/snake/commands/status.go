package commands

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/battlesnakeio/classic/rules"
	"github.com/battlesnakeio/classic/session"
	"github.com/davecgh/go-spew/spew"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var follow bool

func init() {
	statusCmd.Flags().StringVar(&apiAddr, "api-addr", apiAddr, "address of the api server")
	statusCmd.Flags().BoolVarP(&follow, "follow", "f", false, "keep streaming events from the api server")
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "gets the current round from a snake api server",
	Run: func(*cobra.Command, []string) {
		f, err := getRound()
		if err != nil {
			log.WithError(err).WithField("addr", apiAddr).Fatal("unable to get round")
		}
		spew.Dump(f)

		if follow {
			if err := followRound(); err != nil {
				log.WithError(err).WithField("addr", apiAddr).Fatal("event stream failed")
			}
		}
	},
}

func getRound() (*rules.Frame, error) {
	client := &http.Client{
		Timeout: 5 * time.Second,
	}

	resp, err := client.Get(fmt.Sprintf("%s/round", apiAddr))
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.WithError(err).Warn("error while closing body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("round request failed with status %d", resp.StatusCode)
	}

	f := &rules.Frame{}
	if err := json.NewDecoder(resp.Body).Decode(f); err != nil {
		return nil, err
	}
	return f, nil
}

func socketURL(addr string) (string, error) {
	u, err := url.Parse(addr)
	if err != nil {
		return "", err
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = "/socket"
	return u.String(), nil
}

func followRound() error {
	addr, err := socketURL(apiAddr)
	if err != nil {
		return err
	}
	log.WithField("url", addr).Info("connecting")

	c, _, err := websocket.DefaultDialer.Dial(addr, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			log.WithError(err).Warn("failure to close websocket connection")
		}
	}()

	for {
		ev := session.Event{}
		if err := c.ReadJSON(&ev); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return nil
			}
			return err
		}
		fields := log.Fields{
			"RoundID": ev.Frame.RoundID,
			"Turn":    ev.Frame.Turn,
			"State":   ev.Frame.State,
			"Scores":  ev.Frame.Scores,
		}
		if ev.Frame.Outcome != rules.OutcomeNone {
			fields["Outcome"] = ev.Frame.Outcome
		}
		entry := log.WithFields(fields)
		if ev.Error != "" {
			entry = entry.WithField("error", ev.Error)
		}
		if ev.HighScore != nil {
			entry = entry.WithField("HighScore", ev.HighScore.Score)
		}
		entry.Info("round event")
	}
}
