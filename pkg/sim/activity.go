package sim

// Activity is one step in a character's daily cycle: go to a zone, stay
// there for the duration, then mark the status key complete.
type Activity struct {
	Label     string  `json:"label"`
	Zone      string  `json:"zone"`
	Duration  float64 `json:"duration"` // simulated seconds
	StatusKey string  `json:"status_key"`
}

// Act is a shorthand constructor used when assembling rosters.
func Act(label, zone string, duration float64, statusKey string) Activity {
	return Activity{Label: label, Zone: zone, Duration: duration, StatusKey: statusKey}
}
