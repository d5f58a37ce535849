package model

import (
	"fmt"
	"strings"
	"time"
)

// TokenKind is the type of bait a honeytoken is embedded in.
type TokenKind string

const (
	KindDeceptiveURL TokenKind = "DeceptiveURL"
	KindTrackedFile  TokenKind = "TrackedFile"
)

// Valid reports whether k is a known token kind.
func (k TokenKind) Valid() bool {
	return k == KindDeceptiveURL || k == KindTrackedFile
}

// ParseTokenKind accepts the canonical kind names and the labels used by the dashboard.
func ParseTokenKind(s string) (TokenKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deceptiveurl", "url", "fake url":
		return KindDeceptiveURL, nil
	case "trackedfile", "file", "fake file":
		return KindTrackedFile, nil
	}
	return "", fmt.Errorf("%w: unknown token kind %q", ErrInvalidToken, s)
}

// TokenStatus controls whether a token fires.
type TokenStatus string

const (
	TokenActive   TokenStatus = "Active"
	TokenDisabled TokenStatus = "Disabled"
)

// Valid reports whether s is a known token status.
func (s TokenStatus) Valid() bool {
	return s == TokenActive || s == TokenDisabled
}

// ParseTokenStatus matches a status name case-insensitively.
func ParseTokenStatus(s string) (TokenStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active":
		return TokenActive, nil
	case "disabled":
		return TokenDisabled, nil
	}
	return "", fmt.Errorf("%w: unknown token status %q", ErrInvalidStatus, s)
}

// HoneyToken represents a planted artifact
// @Description Honeytoken information
type HoneyToken struct {
	ID           string      `json:"id" example:"token-V1StGXR8Z5jdHi6B"`
	Name         string      `json:"name" example:"Q4 Financials - Sharepoint"`
	Kind         TokenKind   `json:"kind" example:"DeceptiveURL"`
	TriggerValue string      `json:"triggerValue" example:"https://tripwire.app/trap?token_id=token-V1StGXR8Z5jdHi6B"`
	DisplayValue string      `json:"displayValue,omitempty" example:"https://acmecorp.sharepoint.com/sites/finance/Q4-FINAL.xlsx"`
	CreatedAt    time.Time   `json:"createdAt"`
	AlertCount   int         `json:"alertCount" example:"0"`
	Status       TokenStatus `json:"status" example:"Active"`
}

// IsActive reports whether the token should fire on access.
func (t HoneyToken) IsActive() bool {
	return t.Status == TokenActive
}
