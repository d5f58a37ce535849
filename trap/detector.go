// Package trap turns honeytoken accesses into alerts.
package trap

import (
	"context"
	"sync"
	"time"

	"github.com/ariebrainware/tripwire/metrics"
	"github.com/ariebrainware/tripwire/model"
	"github.com/ariebrainware/tripwire/notify"
	"github.com/ariebrainware/tripwire/store"
	"github.com/ariebrainware/tripwire/util"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Unknown is the placeholder for metadata the caller could not supply.
const Unknown = "Unknown"

// Alert sources used for metrics and logs.
const (
	SourceTrap      = "trap"
	SourcePixel     = "pixel"
	SourceSimulator = "simulator"
)

// Metadata is caller-supplied request data. It is recorded as-is.
type Metadata struct {
	IP          string
	UserAgent   string
	Headers     map[string]string
	Geolocation model.Geolocation
	Notes       string
	// Source labels metrics and logs; it defaults to SourceTrap.
	Source string
}

func (m Metadata) withDefaults() Metadata {
	if m.IP == "" {
		m.IP = Unknown
	}
	if m.UserAgent == "" {
		m.UserAgent = Unknown
	}
	if m.Geolocation.City == "" {
		m.Geolocation.City = Unknown
	}
	if m.Geolocation.Country == "" {
		m.Geolocation.Country = Unknown
	}
	headers := make(map[string]string, len(m.Headers))
	for k, v := range m.Headers {
		headers[k] = v
	}
	m.Headers = headers
	if m.Source == "" {
		m.Source = SourceTrap
	}
	return m
}

// Firer is the transactional append-and-increment the detector relies on.
type Firer interface {
	Fire(ctx context.Context, tokenID string, policy store.FirePolicy, build func(model.HoneyToken) model.Alert) (*model.Alert, store.Outcome, error)
}

// Detector decides whether an access fires an alert.
type Detector struct {
	firer         Firer
	notifier      notify.Notifier
	notifyTimeout time.Duration
	now           func() time.Time
	newID         func() string

	wg sync.WaitGroup
}

type Option func(*Detector)

// WithNotifier sends every fired alert to n in the background.
func WithNotifier(n notify.Notifier) Option {
	return func(d *Detector) { d.notifier = n }
}

func WithNotifyTimeout(timeout time.Duration) Option {
	return func(d *Detector) { d.notifyTimeout = timeout }
}

func WithClock(now func() time.Time) Option {
	return func(d *Detector) { d.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(d *Detector) { d.newID = newID }
}

func NewDetector(firer Firer, opts ...Option) *Detector {
	d := &Detector{
		firer:         firer,
		notifyTimeout: 10 * time.Second,
		now:           time.Now,
		newID:         func() string { return "alert-" + uuid.NewString() },
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// HandleAccess fires an alert for an Active token.
// Unknown and disabled tokens return (nil, nil) and change nothing.
// An error is returned only when the alert could not be stored.
func (d *Detector) HandleAccess(ctx context.Context, tokenID string, meta Metadata) (*model.Alert, error) {
	return d.fire(ctx, tokenID, store.FirePolicy{RequireActive: true}, meta)
}

func (d *Detector) fire(ctx context.Context, tokenID string, policy store.FirePolicy, meta Metadata) (*model.Alert, error) {
	meta = meta.withDefaults()
	alert, outcome, err := d.firer.Fire(ctx, tokenID, policy, func(token model.HoneyToken) model.Alert {
		return model.Alert{
			ID:             d.newID(),
			Timestamp:      d.now().UTC(),
			IP:             meta.IP,
			Geolocation:    meta.Geolocation,
			UserAgent:      meta.UserAgent,
			RequestHeaders: meta.Headers,
			Notes:          meta.Notes,
		}
	})
	if err != nil {
		log.Error().Err(err).Str("token_id", tokenID).Str("source", meta.Source).Msg("failed to record alert")
		return nil, err
	}
	if outcome != store.Fired {
		metrics.TrapIgnored.WithLabelValues(outcome.String()).Inc()
		util.LogTrapIgnored(tokenID, meta.IP, meta.UserAgent, outcome.String())
		return nil, nil
	}

	metrics.AlertsFired.WithLabelValues(meta.Source).Inc()
	if meta.Source == SourceSimulator {
		util.LogSecurityEvent(util.SecurityEvent{
			EventType: util.EventSimulatedAlert,
			TokenID:   alert.TokenID,
			AlertID:   alert.ID,
			IP:        alert.IP,
			UserAgent: alert.UserAgent,
			Message:   "Simulated alert generated",
		})
	} else {
		util.LogTrapTriggered(alert, meta.Source)
	}
	d.dispatch(alert)
	return alert, nil
}

func (d *Detector) dispatch(alert *model.Alert) {
	if d.notifier == nil {
		return
	}
	a := alert.Clone()
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), d.notifyTimeout)
		defer cancel()
		// Failures are logged and counted by the notifier.
		_ = d.notifier.Notify(ctx, &a)
	}()
}

// Wait blocks until in-flight notifications have finished.
func (d *Detector) Wait() {
	d.wg.Wait()
}
