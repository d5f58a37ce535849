package model

import "time"

const (
	chromeLinuxUA   = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/107.0.0.0 Safari/537.36"
	chromeWindowsUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/108.0.0.0 Safari/537.36"
)

// DemoTokens returns the demo honeytokens loaded when SEED_DEMO_DATA is enabled.
// Alert counts are left at zero; the store reconciles them from the seeded alerts.
func DemoTokens() []HoneyToken {
	return []HoneyToken{
		{
			ID:           "token-1",
			Name:         "Q4 Financials - Sharepoint",
			Kind:         KindDeceptiveURL,
			TriggerValue: "https://tripwire.app/trap?token_id=token-1",
			DisplayValue: "https://acmecorp.sharepoint.com/sites/finance/Shared%20Documents/Q4-Financials-FINAL-CONFIDENTIAL.xlsx?authkey=AbCDeFgHiJkLmNoPqRsTuVwXyZ",
			CreatedAt:    time.Date(2023, 10, 15, 10, 0, 0, 0, time.UTC),
			Status:       TokenActive,
		},
		{
			ID:           "token-2",
			Name:         "AWS Root Credentials Backup",
			Kind:         KindDeceptiveURL,
			TriggerValue: "https://tripwire.app/trap?token_id=token-2",
			DisplayValue: "https://s3-us-west-2.amazonaws.com/acme-corp-backups-private/root-credentials.csv",
			CreatedAt:    time.Date(2023, 11, 1, 14, 30, 0, 0, time.UTC),
			Status:       TokenActive,
		},
		{
			ID:           "token-3",
			Name:         "Project Chimera Source Code.docx",
			Kind:         KindTrackedFile,
			TriggerValue: "https://tripwire.sentinel/webhook/pxl-a3b4c5d6e7f8",
			CreatedAt:    time.Date(2023, 11, 20, 9, 0, 0, 0, time.UTC),
			Status:       TokenDisabled,
		},
	}
}

// DemoAlerts returns the demo alerts with timestamps relative to now.
func DemoAlerts(now time.Time) []Alert {
	return []Alert{
		{
			ID:             "alert-1",
			TokenID:        "token-1",
			TokenName:      "Q4 Financials - Sharepoint",
			Timestamp:      now.Add(-1 * time.Hour),
			IP:             "198.51.100.14",
			Geolocation:    Geolocation{City: "Moscow", Country: "RU", Latitude: 55.7558, Longitude: 37.6173},
			UserAgent:      chromeLinuxUA,
			RequestHeaders: map[string]string{"Accept-Language": "ru-RU,ru;q=0.9"},
			Notes:          "Initial access, seems automated.",
			Status:         AlertInvestigating,
		},
		{
			ID:             "alert-2",
			TokenID:        "token-2",
			TokenName:      "AWS Root Credentials Backup",
			Timestamp:      now.Add(-5 * time.Hour),
			IP:             "203.0.113.88",
			Geolocation:    Geolocation{City: "Amsterdam", Country: "NL", Latitude: 52.3676, Longitude: 4.9041},
			UserAgent:      "curl/7.64.1",
			RequestHeaders: map[string]string{"User-Agent": "curl/7.64.1", "Accept": "*/*"},
			Status:         AlertNew,
		},
		{
			ID:             "alert-3",
			TokenID:        "token-1",
			TokenName:      "Q4 Financials - Sharepoint",
			Timestamp:      now.Add(-24 * time.Hour),
			IP:             "192.0.2.1",
			Geolocation:    Geolocation{City: "San Francisco", Country: "US", Latitude: 37.7749, Longitude: -122.4194},
			UserAgent:      chromeWindowsUA,
			RequestHeaders: map[string]string{"Accept-Language": "en-US,en;q=0.9"},
			Notes:          "Marked as false positive, internal security scan.",
			Status:         AlertFalsePositive,
		},
	}
}
