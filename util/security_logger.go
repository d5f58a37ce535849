package util

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/ariebrainware/tripwire/model"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SecurityEventType represents different types of security events
type SecurityEventType string

const (
	EventTrapTriggered      SecurityEventType = "TRAP_TRIGGERED"
	EventTrapIgnored        SecurityEventType = "TRAP_IGNORED"
	EventSimulatedAlert     SecurityEventType = "SIMULATED_ALERT"
	EventTokenCreated       SecurityEventType = "TOKEN_CREATED"
	EventTokenDeleted       SecurityEventType = "TOKEN_DELETED"
	EventTokenStatusChanged SecurityEventType = "TOKEN_STATUS_CHANGED"
	EventAlertUpdated       SecurityEventType = "ALERT_UPDATED"
	EventRateLimitExceeded  SecurityEventType = "RATE_LIMIT_EXCEEDED"
	EventEndpointCall       SecurityEventType = "ENDPOINT_CALL"
)

// SecurityEvent represents a security event to be logged
type SecurityEvent struct {
	EventType SecurityEventType
	TokenID   string
	AlertID   string
	IP        string
	UserAgent string
	Message   string
	Details   map[string]interface{}
}

var (
	securityLogger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "security").Logger()
	securityDB     *gorm.DB
)

// SetSecurityLoggerDB enables best-effort persistence of security events.
func SetSecurityLoggerDB(db *gorm.DB) error {
	if db != nil {
		if err := db.AutoMigrate(&model.SecurityLog{}); err != nil {
			return fmt.Errorf("migrate security_logs: %w", err)
		}
	}
	securityDB = db
	return nil
}

const maxLogValueLen = 200

// sanitizeLogValue removes newlines and other characters that could break log parsing
func sanitizeLogValue(value string) string {
	value = strings.ReplaceAll(value, "\n", " ")
	value = strings.ReplaceAll(value, "\r", " ")
	value = strings.ReplaceAll(value, "\t", " ")
	// Truncate very long values to prevent log flooding
	if len(value) > maxLogValueLen {
		cut := maxLogValueLen
		for cut > 0 && !utf8.RuneStart(value[cut]) {
			cut--
		}
		value = value[:cut] + "..."
	}
	return value
}

// LogSecurityEvent logs a security event
func LogSecurityEvent(event SecurityEvent) {
	e := securityLogger.Info().
		Str("event", sanitizeLogValue(string(event.EventType))).
		Str("token_id", sanitizeLogValue(event.TokenID)).
		Str("ip", sanitizeLogValue(event.IP)).
		Str("user_agent", sanitizeLogValue(event.UserAgent))
	if event.AlertID != "" {
		e = e.Str("alert_id", sanitizeLogValue(event.AlertID))
	}
	if len(event.Details) > 0 {
		// Attacker-controlled detail values are not echoed, only their count
		e = e.Int("details_count", len(event.Details))
	}
	e.Msg(sanitizeLogValue(event.Message))

	if securityDB == nil {
		return
	}

	var details datatypes.JSON
	if event.Details != nil {
		if b, err := json.Marshal(event.Details); err == nil {
			details = datatypes.JSON(b)
		}
	}

	var location string
	if geo, ok := LookupGeolocation(event.IP); ok {
		location = fmt.Sprintf("%s/%s", geo.City, geo.Country)
	}

	entry := model.SecurityLog{
		EventType: string(event.EventType),
		TokenID:   sanitizeLogValue(event.TokenID),
		AlertID:   sanitizeLogValue(event.AlertID),
		IP:        sanitizeLogValue(event.IP),
		Location:  sanitizeLogValue(location),
		UserAgent: sanitizeLogValue(event.UserAgent),
		Message:   sanitizeLogValue(event.Message),
		Details:   details,
	}
	if err := securityDB.Create(&entry).Error; err != nil {
		securityLogger.Warn().Err(err).Msg("failed to persist security event")
	}
}

// LogTrapTriggered logs an access that produced an alert
func LogTrapTriggered(alert *model.Alert, source string) {
	LogSecurityEvent(SecurityEvent{
		EventType: EventTrapTriggered,
		TokenID:   alert.TokenID,
		AlertID:   alert.ID,
		IP:        alert.IP,
		UserAgent: alert.UserAgent,
		Message:   fmt.Sprintf("Honeytoken %q triggered via %s", alert.TokenName, source),
	})
}

// LogTrapIgnored logs an access for an unknown or disabled token. It is never reflected in responses.
func LogTrapIgnored(tokenID, ip, userAgent, reason string) {
	LogSecurityEvent(SecurityEvent{
		EventType: EventTrapIgnored,
		TokenID:   tokenID,
		IP:        ip,
		UserAgent: userAgent,
		Message:   fmt.Sprintf("Trap access ignored: %s", reason),
	})
}

// LogRateLimitExceeded logs when rate limit is exceeded
func LogRateLimitExceeded(ip, endpoint string) {
	LogSecurityEvent(SecurityEvent{
		EventType: EventRateLimitExceeded,
		IP:        ip,
		Message:   fmt.Sprintf("Rate limit exceeded for endpoint: %s", endpoint),
	})
}

// GetSecurityLoggerForTest returns the current security logger for testing purposes
func GetSecurityLoggerForTest() zerolog.Logger {
	return securityLogger
}

// SetSecurityLoggerForTest sets a custom logger for testing purposes
func SetSecurityLoggerForTest(logger zerolog.Logger) {
	securityLogger = logger
}
