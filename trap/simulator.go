package trap

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/ariebrainware/tripwire/model"
	"github.com/ariebrainware/tripwire/store"
	"github.com/rs/zerolog/log"
)

// Policy selects which tokens the simulator may fire.
type Policy string

const (
	// PolicyActiveOnly applies the same Active rule as real accesses.
	PolicyActiveOnly Policy = "active_only"
	// PolicyAnyStatus fires disabled tokens too.
	PolicyAnyStatus Policy = "any_status"
)

func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyActiveOnly:
		return PolicyActiveOnly, nil
	case PolicyAnyStatus:
		return PolicyAnyStatus, nil
	}
	return "", fmt.Errorf("unknown simulator policy %q", s)
}

const (
	simulatedUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/108.0.0.0 Safari/537.36"
	simulatedLanguage  = "en-US,en;q=0.9"
)

// TokenLister is the read side the simulator picks tokens from.
type TokenLister interface {
	ListTokens() []model.HoneyToken
}

// Simulator periodically fires synthetic alerts through the detector.
type Simulator struct {
	detector *Detector
	tokens   TokenLister
	interval time.Duration
	policy   Policy
}

func NewSimulator(detector *Detector, tokens TokenLister, interval time.Duration, policy Policy) *Simulator {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	if policy == "" {
		policy = PolicyActiveOnly
	}
	return &Simulator{
		detector: detector,
		tokens:   tokens,
		interval: interval,
		policy:   policy,
	}
}

// Serve runs until ctx is cancelled. A tick already inside a store write completes.
func (s *Simulator) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	log.Info().Dur("interval", s.interval).Str("policy", string(s.policy)).Msg("alert simulator started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("alert simulator stopped")
			return ctx.Err()
		case <-ticker.C:
			if _, err := s.Tick(ctx); err != nil {
				log.Warn().Err(err).Msg("simulated alert failed")
			}
		}
	}
}

func (s *Simulator) String() string { return "alert-simulator" }

// Tick fires one synthetic alert. It returns nil when there is no eligible token.
func (s *Simulator) Tick(ctx context.Context) (*model.Alert, error) {
	var candidates []model.HoneyToken
	for _, t := range s.tokens.ListTokens() {
		if s.policy == PolicyAnyStatus || t.IsActive() {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	token := candidates[rand.IntN(len(candidates))]

	policy := store.FirePolicy{RequireActive: s.policy == PolicyActiveOnly}
	return s.detector.fire(ctx, token.ID, policy, s.metadata())
}

func (s *Simulator) metadata() Metadata {
	return Metadata{
		IP: fmt.Sprintf("1%d.%d.%d.%d",
			rand.IntN(99), rand.IntN(255), rand.IntN(255), rand.IntN(255)),
		UserAgent: simulatedUserAgent,
		Headers:   map[string]string{"Accept-Language": simulatedLanguage},
		Geolocation: model.Geolocation{
			City:      Unknown,
			Country:   Unknown,
			Latitude:  rand.Float64()*180 - 90,
			Longitude: rand.Float64()*360 - 180,
		},
		Source: SourceSimulator,
	}
}
