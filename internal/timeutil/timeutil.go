package timeutil

import (
	"time"
)

// Colombo is the Sri Lanka Standard Time location (UTC+5:30)
var Colombo *time.Location

func init() {
	var err error
	Colombo, err = time.LoadLocation("Asia/Colombo")
	if err != nil {
		// Fallback: create fixed zone if Asia/Colombo not available
		Colombo = time.FixedZone("SLST", 5*60*60+30*60) // UTC+5:30
	}
}

// Now returns the current time in Sri Lanka Standard Time
func Now() time.Time {
	return time.Now().In(Colombo)
}

// ToLocal converts any time to Sri Lanka Standard Time
func ToLocal(t time.Time) time.Time {
	return t.In(Colombo)
}

// StartOfDay returns the start of day (00:00:00) for the given time
func StartOfDay(t time.Time) time.Time {
	local := t.In(Colombo)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, Colombo)
}

// Common layouts for display formatting
const (
	DateLayout    = "2006-01-02"
	DisplayLayout = "02 Jan 2006"
)
