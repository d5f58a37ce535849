package generator

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ariebrainware/tripwire/metrics"
	"github.com/ariebrainware/tripwire/model"
)

var whitespace = regexp.MustCompile(`\s+`)

// Mock returns canned URLs derived from the prompt. It is used when no provider is configured.
type Mock struct {
	Delay time.Duration
}

func (m Mock) Generate(ctx context.Context, prompt string) ([]string, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, ErrEmptyPrompt
	}
	if m.Delay > 0 {
		timer := time.NewTimer(m.Delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %w", model.ErrGenerationFailed, ctx.Err())
		}
	}

	metrics.GeneratorRequests.WithLabelValues("mock").Inc()
	return []string{
		"https://example.com/mock/" + strings.ToLower(whitespace.ReplaceAllString(prompt, "-")) + "/secret-data.zip",
		"https://sharepoint.corp/sites/finance/docs/" + whitespace.ReplaceAllString(prompt, "_") + "_confidential.xlsx",
		"https://api.internal.dev/backup/creds-for-" + whitespace.ReplaceAllString(prompt, "") + ".txt",
	}, nil
}
