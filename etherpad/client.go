package etherpad

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/antobinary/bbb-pads/errors"
)

// DefaultTimeout bounds every call to the document service. A call
// that does not resolve within the window fails instead of stalling
// the operation that issued it.
const DefaultTimeout = 10 * time.Second

type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Client talks to an Etherpad HTTP API. It implements registry.API.
type Client struct {
	baseURL string
	apiKey  string
	client  HTTPClient
}

func NewClient(c HTTPClient, baseURL, apiKey string) *Client {
	if c == nil {
		c = &http.Client{Timeout: DefaultTimeout}
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  c,
	}
}

// envelope is the fixed response frame of the Etherpad API.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) call(ctx context.Context, method string, params map[string]string) (json.RawMessage, error) {
	if err := validate(method, params); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("apikey", c.apiKey)
	for k, v := range params {
		q.Set(k, v)
	}

	req, err := http.NewRequest("GET", fmt.Sprintf("%s/api/1/%s?%s", c.baseURL, method, q.Encode()), nil)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)

	res, err := c.client.Do(req)
	if err != nil {
		return nil, errors.New(fmt.Sprintf("could not reach etherpad for %s", method), errors.BadGateway(), errors.WithCause(err))
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, errors.New(fmt.Sprintf("etherpad returned %d for %s", res.StatusCode, method), errors.BadGateway())
	}

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return nil, errors.New(fmt.Sprintf("could not decode %s response", method), errors.BadGateway(), errors.WithCause(err))
	}

	if env.Code != 0 {
		return nil, errors.New(fmt.Sprintf("%s failed: %s", method, env.Message), errors.BadGateway())
	}

	return env.Data, nil
}

func (c *Client) CreateAuthor(ctx context.Context, name string) (string, error) {
	params := map[string]string{}
	if name != "" {
		params["name"] = name
	}

	data, err := c.call(ctx, "createAuthor", params)
	if err != nil {
		return "", err
	}

	var d struct {
		AuthorID string `json:"authorID"`
	}
	if err := json.Unmarshal(data, &d); err != nil {
		return "", errors.New("could not decode author id", errors.BadGateway(), errors.WithCause(err))
	}

	return d.AuthorID, nil
}

func (c *Client) CreateGroup(ctx context.Context) (string, error) {
	data, err := c.call(ctx, "createGroup", nil)
	if err != nil {
		return "", err
	}

	var d struct {
		GroupID string `json:"groupID"`
	}
	if err := json.Unmarshal(data, &d); err != nil {
		return "", errors.New("could not decode group id", errors.BadGateway(), errors.WithCause(err))
	}

	return d.GroupID, nil
}

func (c *Client) CreateGroupPad(ctx context.Context, groupID, name string) error {
	_, err := c.call(ctx, "createGroupPad", map[string]string{
		"groupID": groupID,
		"padName": name,
	})
	return err
}

func (c *Client) CreateSession(ctx context.Context, groupID, authorID string, validUntil time.Time) (string, error) {
	data, err := c.call(ctx, "createSession", map[string]string{
		"groupID":    groupID,
		"authorID":   authorID,
		"validUntil": strconv.FormatInt(validUntil.Unix(), 10),
	})
	if err != nil {
		return "", err
	}

	var d struct {
		SessionID string `json:"sessionID"`
	}
	if err := json.Unmarshal(data, &d); err != nil {
		return "", errors.New("could not decode session id", errors.BadGateway(), errors.WithCause(err))
	}

	return d.SessionID, nil
}

func (c *Client) DeleteSession(ctx context.Context, sessionID string) error {
	_, err := c.call(ctx, "deleteSession", map[string]string{
		"sessionID": sessionID,
	})
	return err
}
