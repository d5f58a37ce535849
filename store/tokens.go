package store

import (
	"context"
	"fmt"

	"github.com/ariebrainware/tripwire/model"
)

// CreateToken adds a token. An existing id fails with model.ErrDuplicateID.
// The caller's AlertCount is ignored; the stored count is the number of
// alerts already recorded for the id.
func (s *Store) CreateToken(ctx context.Context, token model.HoneyToken) error {
	if token.ID == "" {
		return fmt.Errorf("%w: id is required", model.ErrInvalidToken)
	}
	if !token.Kind.Valid() {
		return fmt.Errorf("%w: unknown kind %q", model.ErrInvalidToken, token.Kind)
	}
	if !token.Status.Valid() {
		return fmt.Errorf("%w: unknown token status %q", model.ErrInvalidStatus, token.Status)
	}
	return s.mutate(ctx, "create_token", func(st *state) (dirty, error) {
		if st.tokenIndex(token.ID) >= 0 {
			return 0, fmt.Errorf("token %s: %w", token.ID, model.ErrDuplicateID)
		}
		token.AlertCount = 0
		for _, a := range st.alerts {
			if a.TokenID == token.ID {
				token.AlertCount++
			}
		}
		st.tokens = append(st.tokens, token)
		return dirtyTokens, nil
	})
}

func (s *Store) GetToken(id string) (*model.HoneyToken, error) {
	st := s.snapshot()
	i := st.tokenIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("token %s: %w", id, model.ErrNotFound)
	}
	t := st.tokens[i]
	return &t, nil
}

// ListTokens returns tokens in creation order.
func (s *Store) ListTokens() []model.HoneyToken {
	st := s.snapshot()
	out := make([]model.HoneyToken, len(st.tokens))
	copy(out, st.tokens)
	return out
}

func (s *Store) UpdateTokenStatus(ctx context.Context, id string, status model.TokenStatus) (*model.HoneyToken, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown token status %q", model.ErrInvalidStatus, status)
	}
	var updated model.HoneyToken
	err := s.mutate(ctx, "update_token_status", func(st *state) (dirty, error) {
		i := st.tokenIndex(id)
		if i < 0 {
			return 0, fmt.Errorf("token %s: %w", id, model.ErrNotFound)
		}
		if st.tokens[i].Status == status {
			updated = st.tokens[i]
			return 0, nil
		}
		st.tokens[i].Status = status
		updated = st.tokens[i]
		return dirtyTokens, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// IncrementAlertCount adds one to a token's counter and returns the new value.
// Fire is the normal path; it pairs the increment with an alert append.
func (s *Store) IncrementAlertCount(ctx context.Context, id string) (int, error) {
	var n int
	err := s.mutate(ctx, "increment_alert_count", func(st *state) (dirty, error) {
		i := st.tokenIndex(id)
		if i < 0 {
			return 0, fmt.Errorf("token %s: %w", id, model.ErrNotFound)
		}
		st.tokens[i].AlertCount++
		n = st.tokens[i].AlertCount
		return dirtyTokens, nil
	})
	return n, err
}

// DeleteToken removes a token. Its alerts are kept.
func (s *Store) DeleteToken(ctx context.Context, id string) error {
	return s.mutate(ctx, "delete_token", func(st *state) (dirty, error) {
		i := st.tokenIndex(id)
		if i < 0 {
			return 0, fmt.Errorf("token %s: %w", id, model.ErrNotFound)
		}
		st.tokens = append(st.tokens[:i], st.tokens[i+1:]...)
		return dirtyTokens, nil
	})
}
