package notify

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/ariebrainware/tripwire/model"
	"github.com/goccy/go-json"
)

// WebhookConfig configures the generic webhook notifier.
type WebhookConfig struct {
	URL       string
	Headers   map[string]string
	RateLimit time.Duration
	Timeout   time.Duration
}

// WebhookPayload is the JSON body posted for each alert.
type WebhookPayload struct {
	Alert     *model.Alert `json:"alert"`
	EventType string       `json:"event_type"`
	Timestamp time.Time    `json:"timestamp"`
	Source    string       `json:"source"`
}

// Webhook posts alerts to an HTTP endpoint.
type Webhook struct {
	url     string
	headers map[string]string
	client  *http.Client

	mu        sync.Mutex
	lastSent  time.Time
	rateLimit time.Duration
}

func NewWebhook(cfg WebhookConfig) *Webhook {
	rateLimit := cfg.RateLimit
	if rateLimit == 0 {
		rateLimit = 500 * time.Millisecond
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	headers := make(map[string]string, len(cfg.Headers))
	for k, v := range cfg.Headers {
		headers[k] = v
	}
	return &Webhook{
		url:       cfg.URL,
		headers:   headers,
		rateLimit: rateLimit,
		client:    &http.Client{Timeout: timeout},
	}
}

func (w *Webhook) Name() string { return "webhook" }

func (w *Webhook) Notify(ctx context.Context, alert *model.Alert) error {
	if w.url == "" {
		return nil
	}
	if err := w.wait(ctx); err != nil {
		return err
	}

	body, err := json.Marshal(WebhookPayload{
		Alert:     alert,
		EventType: "honeytoken_triggered",
		Timestamp: time.Now().UTC(),
		Source:    "tripwire",
	})
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range w.headers {
		req.Header.Set(k, v)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// wait reserves the next send slot, sleeping until it is due.
func (w *Webhook) wait(ctx context.Context) error {
	w.mu.Lock()
	next := w.lastSent.Add(w.rateLimit)
	now := time.Now()
	if next.Before(now) {
		next = now
	}
	w.lastSent = next
	w.mu.Unlock()

	delay := time.Until(next)
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
