package trap

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ariebrainware/tripwire/model"
	"github.com/ariebrainware/tripwire/util"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// TokenIDPlaceholder marks where the new token id goes in a trigger template.
const TokenIDPlaceholder = "{token_id}"

// Lowercase alphanumerics only, so ids are safe in paths, queries and file names.
const tokenIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// CreateTokenRequest is the operator input for a new honeytoken
// @Description Honeytoken creation request
type CreateTokenRequest struct {
	Name            string `json:"name" binding:"required" example:"AWS Root Credentials Backup"`
	Kind            string `json:"kind" binding:"required" example:"DeceptiveURL"`
	DisplayValue    string `json:"displayValue,omitempty" example:"https://s3-us-west-2.amazonaws.com/acme-corp-backups-private/root-credentials.csv"`
	TriggerTemplate string `json:"triggerValue,omitempty" example:"https://tripwire.app/trap?token_id={token_id}"`
}

// NewTokenID returns a fresh "token-" prefixed id.
func NewTokenID() (string, error) {
	id, err := gonanoid.Generate(tokenIDAlphabet, 16)
	if err != nil {
		return "", fmt.Errorf("generate token id: %w", err)
	}
	return "token-" + id, nil
}

// DefaultTriggerTemplate is the trap URL template under baseURL.
func DefaultTriggerTemplate(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/trap?token_id=" + TokenIDPlaceholder
}

// PixelURL is the tracking pixel endpoint for a TrackedFile token.
func PixelURL(baseURL, tokenID string) string {
	return strings.TrimRight(baseURL, "/") + "/pixel/" + url.PathEscape(tokenID) + ".gif"
}

// NewToken validates req and builds an Active token with a fresh id.
func NewToken(req CreateTokenRequest, baseURL string, now time.Time) (model.HoneyToken, error) {
	name := util.NormalizeName(req.Name)
	if name == "" {
		return model.HoneyToken{}, fmt.Errorf("%w: name is required", model.ErrInvalidToken)
	}
	kind, err := model.ParseTokenKind(req.Kind)
	if err != nil {
		return model.HoneyToken{}, err
	}
	id, err := NewTokenID()
	if err != nil {
		return model.HoneyToken{}, err
	}

	var trigger string
	switch kind {
	case model.KindDeceptiveURL:
		tmpl := strings.TrimSpace(req.TriggerTemplate)
		if tmpl == "" {
			tmpl = DefaultTriggerTemplate(baseURL)
		}
		if !strings.Contains(tmpl, TokenIDPlaceholder) {
			return model.HoneyToken{}, fmt.Errorf("%w: triggerValue must contain %s", model.ErrInvalidToken, TokenIDPlaceholder)
		}
		trigger = strings.ReplaceAll(tmpl, TokenIDPlaceholder, url.QueryEscape(id))
	case model.KindTrackedFile:
		trigger = PixelURL(baseURL, id)
	}

	return model.HoneyToken{
		ID:           id,
		Name:         name,
		Kind:         kind,
		TriggerValue: trigger,
		DisplayValue: strings.TrimSpace(req.DisplayValue),
		CreatedAt:    now.UTC(),
		AlertCount:   0,
		Status:       model.TokenActive,
	}, nil
}
