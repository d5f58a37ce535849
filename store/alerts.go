package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/ariebrainware/tripwire/model"
)

// AppendAlert adds an alert without touching any counter.
func (s *Store) AppendAlert(ctx context.Context, alert model.Alert) error {
	if alert.ID == "" {
		return fmt.Errorf("%w: alert id is required", model.ErrInvalidToken)
	}
	alert = alert.Clone()
	return s.mutate(ctx, "append_alert", func(st *state) (dirty, error) {
		if st.alertIndex(alert.ID) >= 0 {
			return 0, fmt.Errorf("alert %s: %w", alert.ID, model.ErrDuplicateID)
		}
		st.alerts = append(st.alerts, alert)
		return dirtyAlerts, nil
	})
}

// UpdateAlert applies an operator patch; only notes and status change.
func (s *Store) UpdateAlert(ctx context.Context, id string, patch model.AlertPatch) (*model.Alert, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	var updated model.Alert
	err := s.mutate(ctx, "update_alert", func(st *state) (dirty, error) {
		i := st.alertIndex(id)
		if i < 0 {
			return 0, fmt.Errorf("alert %s: %w", id, model.ErrNotFound)
		}
		if patch.Empty() {
			updated = st.alerts[i].Clone()
			return 0, nil
		}
		patch.Apply(&st.alerts[i])
		updated = st.alerts[i].Clone()
		return dirtyAlerts, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Store) GetAlert(id string) (*model.Alert, error) {
	st := s.snapshot()
	i := st.alertIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("alert %s: %w", id, model.ErrNotFound)
	}
	a := st.alerts[i].Clone()
	return &a, nil
}

// ListAlerts returns every alert, most recent timestamp first.
// Equal timestamps are ordered by most recent insertion first.
func (s *Store) ListAlerts() []model.Alert {
	return sortedAlerts(s.snapshot().alerts, func(model.Alert) bool { return true })
}

// ListAlertsByToken returns the alerts referencing tokenID, including those of deleted tokens.
func (s *Store) ListAlertsByToken(tokenID string) []model.Alert {
	return sortedAlerts(s.snapshot().alerts, func(a model.Alert) bool { return a.TokenID == tokenID })
}

func sortedAlerts(alerts []model.Alert, keep func(model.Alert) bool) []model.Alert {
	out := make([]model.Alert, 0, len(alerts))
	for i := len(alerts) - 1; i >= 0; i-- {
		if keep(alerts[i]) {
			out = append(out, alerts[i].Clone())
		}
	}
	slices.SortStableFunc(out, func(a, b model.Alert) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return out
}
