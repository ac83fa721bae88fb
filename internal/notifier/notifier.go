// Package notifier posts class reminders to a user-configured webhook
// (an ntfy topic, a chat webhook, anything that accepts a small JSON POST).
package notifier

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Payload struct {
	Text  string `json:"text"`
	Title string `json:"title,omitempty"`
}

type Notifier struct {
	webhookURL string
	token      string
	http       *http.Client
}

// New returns a notifier for the given webhook. The token, when non-empty,
// is sent as a bearer credential.
func New(webhookURL, token string) *Notifier {
	return &Notifier{
		webhookURL: webhookURL,
		token:      token,
		http:       &http.Client{Timeout: 10 * time.Second},
	}
}

func (n *Notifier) Notify(title, text string) error {
	if n.webhookURL == "" {
		return errors.New("no webhook configured")
	}

	body, err := json.Marshal(Payload{Text: text, Title: title})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if n.token != "" {
		req.Header.Set("Authorization", "Bearer "+n.token)
	}

	res, err := n.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 200 && res.StatusCode < 300 {
		return nil
	}
	msg, _ := io.ReadAll(io.LimitReader(res.Body, 512))
	return fmt.Errorf("notification failed with status %d: %s", res.StatusCode, string(msg))
}
