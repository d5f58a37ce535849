package store

import (
	"context"
	"fmt"

	"github.com/ariebrainware/tripwire/model"
)

// Outcome describes what Fire did.
type Outcome int

const (
	Fired Outcome = iota
	UnknownToken
	InactiveToken
)

func (o Outcome) String() string {
	switch o {
	case Fired:
		return "fired"
	case UnknownToken:
		return "unknown"
	case InactiveToken:
		return "disabled"
	}
	return "invalid"
}

// FirePolicy controls which tokens may fire.
type FirePolicy struct {
	RequireActive bool
}

// Fire appends the alert produced by build and increments the token's
// alertCount in one committed write. build sees the token as stored at that
// moment; its TokenID, TokenName and Status are overwritten, and a zero
// Timestamp is set to the store clock.
//
// An unknown token, or an inactive one under RequireActive, returns a nil
// alert and a nil error with the matching Outcome. Nothing is written.
func (s *Store) Fire(ctx context.Context, tokenID string, policy FirePolicy, build func(model.HoneyToken) model.Alert) (*model.Alert, Outcome, error) {
	var (
		fired   model.Alert
		outcome Outcome
	)
	err := s.mutate(ctx, "fire", func(st *state) (dirty, error) {
		i := st.tokenIndex(tokenID)
		if i < 0 {
			outcome = UnknownToken
			return 0, nil
		}
		token := st.tokens[i]
		if policy.RequireActive && !token.IsActive() {
			outcome = InactiveToken
			return 0, nil
		}

		alert := build(token).Clone()
		alert.TokenID = token.ID
		alert.TokenName = token.Name
		alert.Status = model.AlertNew
		if alert.Timestamp.IsZero() {
			alert.Timestamp = s.now().UTC()
		}
		if alert.ID == "" {
			return 0, fmt.Errorf("%w: alert id is required", model.ErrInvalidToken)
		}
		if st.alertIndex(alert.ID) >= 0 {
			return 0, fmt.Errorf("alert %s: %w", alert.ID, model.ErrDuplicateID)
		}

		st.alerts = append(st.alerts, alert)
		st.tokens[i].AlertCount++
		fired = alert
		outcome = Fired
		return dirtyTokens | dirtyAlerts, nil
	})
	if err != nil || outcome != Fired {
		return nil, outcome, err
	}
	out := fired.Clone()
	return &out, Fired, nil
}
