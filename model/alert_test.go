package model

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlertStatus(t *testing.T) {
	cases := map[string]AlertStatus{
		"New":            AlertNew,
		"investigating":  AlertInvestigating,
		"False Positive": AlertFalsePositive,
		"FalsePositive":  AlertFalsePositive,
		" resolved ":     AlertResolved,
	}
	for in, want := range cases {
		got, err := ParseAlertStatus(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseAlertStatus("Closed")
	assert.Error(t, err)
}

func TestAlertPatchApplyTouchesOnlyNotesAndStatus(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	a := Alert{
		ID:             "alert-1",
		TokenID:        "token-1",
		TokenName:      "bait",
		Timestamp:      ts,
		IP:             "10.0.0.1",
		RequestHeaders: map[string]string{"Accept": "*/*"},
		Status:         AlertNew,
	}
	before := a.Clone()

	notes := "x"
	status := AlertInvestigating
	AlertPatch{Notes: &notes, Status: &status}.Apply(&a)

	assert.Equal(t, "x", a.Notes)
	assert.Equal(t, AlertInvestigating, a.Status)
	a.Notes, a.Status = before.Notes, before.Status
	assert.Equal(t, before, a)
}

func TestAlertPatchPartial(t *testing.T) {
	a := Alert{Notes: "keep", Status: AlertNew}
	status := AlertResolved
	AlertPatch{Status: &status}.Apply(&a)
	assert.Equal(t, "keep", a.Notes)
	assert.Equal(t, AlertResolved, a.Status)

	assert.True(t, AlertPatch{}.Empty())
	bad := AlertStatus("Closed")
	assert.Error(t, AlertPatch{Status: &bad}.Validate())
}

func TestAlertCloneDoesNotShareHeaders(t *testing.T) {
	a := Alert{RequestHeaders: map[string]string{"A": "1"}}
	c := a.Clone()
	c.RequestHeaders["A"] = "2"
	assert.Equal(t, "1", a.RequestHeaders["A"])
}

func TestAlertJSONFieldNames(t *testing.T) {
	a := Alert{
		ID:          "alert-1",
		TokenID:     "token-1",
		Geolocation: Geolocation{City: "Moscow", Country: "RU", Latitude: 55.7, Longitude: 37.6},
		Status:      AlertFalsePositive,
	}
	raw, err := json.Marshal(a)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, "token-1", m["tokenId"])
	assert.Equal(t, "False Positive", m["status"])
	geo := m["geolocation"].(map[string]any)
	assert.Equal(t, 55.7, geo["lat"])
	assert.Equal(t, 37.6, geo["lon"])
}
