// Package generator suggests deceptive URLs for new honeytokens.
package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ariebrainware/tripwire/model"
	"github.com/goccy/go-json"
)

// ErrEmptyPrompt is returned for blank prompts before any upstream call.
var ErrEmptyPrompt = errors.New("prompt is required")

// Generator turns a free-text prompt into candidate bait URLs.
// Upstream failures are returned wrapping model.ErrGenerationFailed.
type Generator interface {
	Generate(ctx context.Context, prompt string) ([]string, error)
}

// BuildPrompt wraps the operator prompt in the generation instructions.
func BuildPrompt(prompt string) string {
	return fmt.Sprintf(`Based on the following user prompt, generate 3 to 5 highly deceptive, realistic-looking URL paths. The goal is to create URLs that an attacker would find enticing to click on.

User Prompt: %q

Return the response as a JSON object with a single key "urls" which is an array of strings. For example: {"urls": ["https://example.com/path1", "https://example.com/path2"]}.
`, prompt)
}

type urlsResponse struct {
	URLs []string `json:"urls"`
}

// ParseURLs extracts the urls array from a model reply. Markdown code fences are ignored.
func ParseURLs(raw string) ([]string, error) {
	body := strings.TrimSpace(raw)
	if strings.HasPrefix(body, "```") {
		body = strings.TrimPrefix(body, "```json")
		body = strings.TrimPrefix(body, "```")
		body = strings.TrimSuffix(strings.TrimSpace(body), "```")
	}

	var resp urlsResponse
	if err := json.Unmarshal([]byte(strings.TrimSpace(body)), &resp); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON in response: %w", model.ErrGenerationFailed, err)
	}
	urls := make([]string, 0, len(resp.URLs))
	for _, u := range resp.URLs {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}
	if len(urls) == 0 {
		return nil, fmt.Errorf("%w: response contained no urls", model.ErrGenerationFailed)
	}
	return urls, nil
}
