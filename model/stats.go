package model

// Stats is the dashboard summary over both collections
// @Description Dashboard statistics
type Stats struct {
	TotalTokens    int                 `json:"totalTokens" example:"3"`
	ActiveTokens   int                 `json:"activeTokens" example:"2"`
	TotalAlerts    int                 `json:"totalAlerts" example:"3"`
	AlertsByStatus map[AlertStatus]int `json:"alertsByStatus"`
}

// ComputeStats summarises tokens and alerts.
func ComputeStats(tokens []HoneyToken, alerts []Alert) Stats {
	s := Stats{
		TotalTokens:    len(tokens),
		TotalAlerts:    len(alerts),
		AlertsByStatus: make(map[AlertStatus]int, len(AlertStatuses)),
	}
	for _, st := range AlertStatuses {
		s.AlertsByStatus[st] = 0
	}
	for _, t := range tokens {
		if t.IsActive() {
			s.ActiveTokens++
		}
	}
	for _, a := range alerts {
		s.AlertsByStatus[a.Status]++
	}
	return s
}
