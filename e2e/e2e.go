// Package e2e drives a snake api server over plain HTTP.
package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/battlesnakeio/classic/api"
	"github.com/battlesnakeio/classic/rules"
)

type client struct {
	apiURL string
	client *http.Client
}

func (c *client) beginRound(req api.StartRequest) (*rules.Frame, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Post(fmt.Sprintf("%s/round/start", c.apiURL), "application/json", bytes.NewBuffer(data))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("start failed with status %d", resp.StatusCode)
	}
	f := &rules.Frame{}
	return f, c.decode(resp, f)
}

func (c *client) round() (*rules.Frame, error) {
	resp, err := c.client.Get(fmt.Sprintf("%s/round", c.apiURL))
	if err != nil {
		return nil, err
	}
	f := &rules.Frame{}
	return f, c.decode(resp, f)
}

func (c *client) highScores() (*api.ScoresResponse, error) {
	resp, err := c.client.Get(fmt.Sprintf("%s/scores", c.apiURL))
	if err != nil {
		return nil, err
	}
	sr := &api.ScoresResponse{}
	return sr, c.decode(resp, sr)
}

func (c *client) decode(resp *http.Response, v interface{}) error {
	err := json.NewDecoder(resp.Body).Decode(v)
	if cErr := resp.Body.Close(); err == nil {
		err = cErr
	}
	return err
}
