package model

import (
	"fmt"
	"strings"
	"time"
)

// AlertStatus is the investigation state of an alert.
type AlertStatus string

const (
	AlertNew           AlertStatus = "New"
	AlertInvestigating AlertStatus = "Investigating"
	AlertFalsePositive AlertStatus = "False Positive"
	AlertResolved      AlertStatus = "Resolved"
)

// AlertStatuses lists every status in display order.
var AlertStatuses = []AlertStatus{AlertNew, AlertInvestigating, AlertFalsePositive, AlertResolved}

// Valid reports whether s is a known alert status.
func (s AlertStatus) Valid() bool {
	for _, v := range AlertStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ParseAlertStatus accepts both "False Positive" and "FalsePositive" spellings.
func ParseAlertStatus(s string) (AlertStatus, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	for _, v := range AlertStatuses {
		if key == strings.ToLower(strings.ReplaceAll(string(v), " ", "")) {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: unknown alert status %q", ErrInvalidStatus, s)
}

// Geolocation is caller-supplied location data for the source of an access.
type Geolocation struct {
	City      string  `json:"city" example:"Amsterdam"`
	Country   string  `json:"country" example:"NL"`
	Latitude  float64 `json:"lat" example:"52.3676"`
	Longitude float64 `json:"lon" example:"4.9041"`
}

// Alert is the durable record of one detected trigger
// @Description Alert information
type Alert struct {
	ID             string            `json:"id" example:"alert-7c9e6679-7425-40de-944b-e07fc1f90ae7"`
	TokenID        string            `json:"tokenId" example:"token-V1StGXR8Z5jdHi6B"`
	TokenName      string            `json:"tokenName" example:"Q4 Financials - Sharepoint"`
	Timestamp      time.Time         `json:"timestamp"`
	IP             string            `json:"ip" example:"203.0.113.88"`
	Geolocation    Geolocation       `json:"geolocation"`
	UserAgent      string            `json:"userAgent" example:"curl/7.64.1"`
	RequestHeaders map[string]string `json:"requestHeaders"`
	Notes          string            `json:"notes"`
	Status         AlertStatus       `json:"status" example:"New"`
}

// Clone returns a copy of the alert that shares no maps with the receiver.
func (a Alert) Clone() Alert {
	if a.RequestHeaders != nil {
		headers := make(map[string]string, len(a.RequestHeaders))
		for k, v := range a.RequestHeaders {
			headers[k] = v
		}
		a.RequestHeaders = headers
	}
	return a
}

// AlertPatch is a partial operator update; nil fields are left untouched.
// @Description Alert update request
type AlertPatch struct {
	Notes  *string      `json:"notes,omitempty" example:"Initial access, seems automated."`
	Status *AlertStatus `json:"status,omitempty" example:"Investigating"`
}

// Empty reports whether the patch changes nothing.
func (p AlertPatch) Empty() bool {
	return p.Notes == nil && p.Status == nil
}

// Validate rejects unknown statuses.
func (p AlertPatch) Validate() error {
	if p.Status != nil && !p.Status.Valid() {
		return fmt.Errorf("%w: unknown alert status %q", ErrInvalidStatus, *p.Status)
	}
	return nil
}

// Apply writes the patched fields onto a.
func (p AlertPatch) Apply(a *Alert) {
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
}
