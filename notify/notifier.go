// Package notify delivers fired alerts to external channels.
package notify

import (
	"context"
	"errors"

	"github.com/ariebrainware/tripwire/metrics"
	"github.com/ariebrainware/tripwire/model"
	"github.com/rs/zerolog/log"
)

// Notifier sends one alert somewhere.
type Notifier interface {
	Name() string
	Notify(ctx context.Context, alert *model.Alert) error
}

// Multi fans an alert out to every notifier. A failing notifier does not stop the others.
type Multi []Notifier

func (m Multi) Name() string { return "multi" }

func (m Multi) Notify(ctx context.Context, alert *model.Alert) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, alert); err != nil {
			metrics.Notifications.WithLabelValues(n.Name(), metrics.ResultError).Inc()
			log.Warn().Err(err).Str("notifier", n.Name()).Str("alert_id", alert.ID).Msg("alert notification failed")
			errs = append(errs, err)
			continue
		}
		metrics.Notifications.WithLabelValues(n.Name(), metrics.ResultSuccess).Inc()
	}
	return errors.Join(errs...)
}
