// Package store owns the honeytoken and alert collections.
//
// Reads are served from an in-memory snapshot of the last committed state.
// Writes are serialized through a single writer: each one copies the snapshot,
// applies its change, persists the touched collections in one adapter call and
// publishes the new snapshot only after the write succeeded.
package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/ariebrainware/tripwire/metrics"
	"github.com/ariebrainware/tripwire/model"
	"github.com/ariebrainware/tripwire/persistence"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

// Persisted collection keys.
const (
	KeyTokens = "tokens"
	KeyAlerts = "alerts"
)

type dirty uint8

const (
	dirtyTokens dirty = 1 << iota
	dirtyAlerts
)

// Options configure Open.
type Options struct {
	// SeedTokens and SeedAlerts are persisted when neither collection exists yet.
	SeedTokens []model.HoneyToken
	SeedAlerts []model.Alert
	// Now defaults to time.Now.
	Now func() time.Time
}

type state struct {
	tokens []model.HoneyToken
	alerts []model.Alert // insertion order
}

func (s *state) clone() *state {
	return &state{
		tokens: slices.Clone(s.tokens),
		alerts: slices.Clone(s.alerts),
	}
}

func (s *state) tokenIndex(id string) int {
	return slices.IndexFunc(s.tokens, func(t model.HoneyToken) bool { return t.ID == id })
}

func (s *state) alertIndex(id string) int {
	return slices.IndexFunc(s.alerts, func(a model.Alert) bool { return a.ID == id })
}

// Store is safe for concurrent use.
type Store struct {
	adapter persistence.Adapter
	now     func() time.Time

	writeMu sync.Mutex

	mu      sync.RWMutex
	current *state
}

// Open loads both collections from the adapter. Missing keys are empty collections.
func Open(ctx context.Context, adapter persistence.Adapter, opts Options) (*Store, error) {
	s := &Store{adapter: adapter, now: opts.Now}
	if s.now == nil {
		s.now = time.Now
	}

	tokens, tokensFound, err := load[model.HoneyToken](ctx, adapter, KeyTokens)
	if err != nil {
		return nil, err
	}
	alerts, alertsFound, err := load[model.Alert](ctx, adapter, KeyAlerts)
	if err != nil {
		return nil, err
	}

	st := &state{tokens: tokens, alerts: alerts}
	var d dirty
	if !tokensFound && !alertsFound && (len(opts.SeedTokens) > 0 || len(opts.SeedAlerts) > 0) {
		st.tokens = slices.Clone(opts.SeedTokens)
		st.alerts = make([]model.Alert, 0, len(opts.SeedAlerts))
		for _, a := range opts.SeedAlerts {
			st.alerts = append(st.alerts, a.Clone())
		}
		d = dirtyTokens | dirtyAlerts
	}
	if reconcileCounts(st) {
		d |= dirtyTokens
	}
	if d != 0 {
		if err := s.persist(ctx, "open", st, d); err != nil {
			return nil, err
		}
	}

	s.current = st
	log.Info().Int("tokens", len(st.tokens)).Int("alerts", len(st.alerts)).Msg("store loaded")
	return s, nil
}

func load[T any](ctx context.Context, adapter persistence.Adapter, key string) ([]T, bool, error) {
	raw, err := adapter.Get(ctx, key)
	if errors.Is(err, persistence.ErrKeyNotFound) {
		return []T{}, false, nil
	}
	if err != nil {
		metrics.StoreErrors.WithLabelValues("load").Inc()
		return nil, false, fmt.Errorf("load %s: %w: %w", key, model.ErrStorageUnavailable, err)
	}
	out := []T{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, false, fmt.Errorf("decode %s: %w: %w", key, model.ErrStorageUnavailable, err)
		}
	}
	return out, true, nil
}

// reconcileCounts recomputes every alertCount from the alert collection.
func reconcileCounts(st *state) bool {
	counts := make(map[string]int, len(st.tokens))
	for _, a := range st.alerts {
		counts[a.TokenID]++
	}
	changed := false
	for i := range st.tokens {
		if st.tokens[i].AlertCount != counts[st.tokens[i].ID] {
			log.Warn().
				Str("token_id", st.tokens[i].ID).
				Int("stored", st.tokens[i].AlertCount).
				Int("actual", counts[st.tokens[i].ID]).
				Msg("reconciling token alert count")
			st.tokens[i].AlertCount = counts[st.tokens[i].ID]
			changed = true
		}
	}
	return changed
}

func (s *Store) snapshot() *state {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// mutate runs fn against a private copy of the state and commits it.
// The state lock is never held while the adapter is writing.
func (s *Store) mutate(ctx context.Context, op string, fn func(st *state) (dirty, error)) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	next := s.snapshot().clone()
	d, err := fn(next)
	if err != nil || d == 0 {
		return err
	}
	// A write that has started is finished even if the caller goes away.
	if err := s.persist(context.WithoutCancel(ctx), op, next, d); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = next
	s.mu.Unlock()
	return nil
}

func (s *Store) persist(ctx context.Context, op string, st *state, d dirty) error {
	var entries []persistence.Entry
	if d&dirtyTokens != 0 {
		raw, err := json.Marshal(st.tokens)
		if err != nil {
			return fmt.Errorf("%s: encode tokens: %w", op, err)
		}
		entries = append(entries, persistence.Entry{Key: KeyTokens, Value: raw})
	}
	if d&dirtyAlerts != 0 {
		raw, err := json.Marshal(st.alerts)
		if err != nil {
			return fmt.Errorf("%s: encode alerts: %w", op, err)
		}
		entries = append(entries, persistence.Entry{Key: KeyAlerts, Value: raw})
	}
	if err := s.adapter.Set(ctx, entries...); err != nil {
		metrics.StoreErrors.WithLabelValues(op).Inc()
		log.Error().Err(err).Str("op", op).Msg("store write failed")
		return fmt.Errorf("%s: %w: %w", op, model.ErrStorageUnavailable, err)
	}
	return nil
}

// Stats summarises the committed state.
func (s *Store) Stats() model.Stats {
	st := s.snapshot()
	return model.ComputeStats(st.tokens, st.alerts)
}
