package sender

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/antobinary/bbb-pads/log"
	"github.com/antobinary/bbb-pads/registry"
)

type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Webhook forwards events to an external endpoint as JSON POSTs.
// Publish returns immediately and delivery failures are only logged,
// so a slow or dead endpoint never stalls a registry operation.
type Webhook struct {
	url    string
	client HTTPClient
	logger log.Logger
}

func NewWebhook(c HTTPClient, url string, logger log.Logger) *Webhook {
	if c == nil {
		c = &http.Client{Timeout: 10 * time.Second}
	}

	return &Webhook{
		url:    url,
		client: c,
		logger: logger,
	}
}

func (w *Webhook) Publish(event, meetingID string, payload interface{}) {
	evt := Event{
		Name:      event,
		MeetingID: meetingID,
		Timestamp: time.Now(),
		Payload:   payload,
	}

	go w.deliver(evt)
}

func (w *Webhook) deliver(evt Event) {
	body, err := json.Marshal(evt)
	if err != nil {
		w.logger.Errorf("could not marshal event %s: %v", evt.Name, err)
		return
	}

	req, err := http.NewRequest("POST", w.url, bytes.NewReader(body))
	if err != nil {
		w.logger.Errorf("could not build request for event %s: %v", evt.Name, err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := w.client.Do(req)
	if err != nil {
		w.logger.Errorf("could not deliver event %s: %v", evt.Name, err)
		return
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		w.logger.Errorf("event %s rejected with status %d", evt.Name, res.StatusCode)
	}
}

var _ registry.Sender = (*Webhook)(nil)
