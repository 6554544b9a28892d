package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/they4kman/remotesweep/game"
)

const DefaultBaseURL = "https://minesweeper-api.herokuapp.com"

// maxErrorBody bounds how much of a failed response is kept for the error.
const maxErrorBody = 512

// Config holds API configuration
type Config struct {
	BaseURL string
	// Timeout of each request; zero waits for as long as ctx allows
	Timeout time.Duration
}

// Client talks to the remote game service. It implements game.Service.
type Client struct {
	config Config
	http   *http.Client
	log    logrus.FieldLogger
}

var _ game.Service = (*Client)(nil)

func New(config Config, log logrus.FieldLogger) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	return &Client{
		config: config,
		http:   &http.Client{Timeout: config.Timeout},
		log:    log,
	}
}

// StatusError is returned when the service answers with a non-2xx status.
type StatusError struct {
	Code int
	Body string
}

func (err *StatusError) Error() string {
	if err.Body == "" {
		return fmt.Sprintf("api status %d", err.Code)
	}
	return fmt.Sprintf("api status %d: %s", err.Code, err.Body)
}

type startRequest struct {
	Difficulty int `json:"difficulty"`
}

type cellRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c *Client) StartGame(ctx context.Context, difficulty game.Difficulty) (game.Session, error) {
	var body interface{}
	if difficulty.IsSet() {
		body = startRequest{Difficulty: int(difficulty)}
	}
	session, err := c.apiPost(ctx, "/games", body)
	return session, errors.Wrap(err, "start game")
}

func (c *Client) Reveal(ctx context.Context, id int64, row, col int) (game.Session, error) {
	session, err := c.apiPost(ctx, fmt.Sprintf("/games/%d/check", id), cellRequest{Row: row, Col: col})
	return session, errors.Wrapf(err, "check (%d, %d) in game %d", row, col, id)
}

func (c *Client) ToggleFlag(ctx context.Context, id int64, row, col int) (game.Session, error) {
	session, err := c.apiPost(ctx, fmt.Sprintf("/games/%d/flag", id), cellRequest{Row: row, Col: col})
	return session, errors.Wrapf(err, "flag (%d, %d) in game %d", row, col, id)
}

// apiPost sends body as JSON (or no body when nil) and decodes the session
// in the response.
func (c *Client) apiPost(ctx context.Context, path string, body interface{}) (game.Session, error) {
	url := strings.TrimRight(c.config.BaseURL, "/") + path
	requestID := uuid.New().String()
	log := c.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"path":       path,
	})

	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return game.Session{}, errors.Wrap(err, "encode request")
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, payload)
	if err != nil {
		return game.Session{}, errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.WithError(err).Warn("Request failed")
		return game.Session{}, err
	}
	defer resp.Body.Close()

	log = log.WithFields(logrus.Fields{
		"status":  resp.StatusCode,
		"elapsed": time.Since(start),
	})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		log.Warn("Service rejected request")
		return game.Session{}, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(excerpt))}
	}

	var session game.Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		log.WithError(err).Warn("Undecodable session")
		return game.Session{}, errors.Wrap(err, "decode session")
	}

	log.WithFields(logrus.Fields{
		"game_id": session.ID,
		"state":   session.Phase,
	}).Debug("Received session")
	return session, nil
}
