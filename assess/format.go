package assess

import (
	"fmt"
	"math"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
	secondsPerYear   = 31536000
)

// CrackTimeDisplay is a crack time scaled to a human-readable unit.
type CrackTimeDisplay struct {
	Value float64
	Unit  string
}

func (d CrackTimeDisplay) String() string {
	if math.IsInf(d.Value, 1) {
		return "effectively forever"
	}
	return fmt.Sprintf("%.1f %s", d.Value, d.Unit)
}

// FormatCrackTime picks the largest unit the duration strictly exceeds.
func FormatCrackTime(seconds float64) CrackTimeDisplay {
	switch {
	case seconds > secondsPerYear:
		return CrackTimeDisplay{Value: seconds / secondsPerYear, Unit: "years"}
	case seconds > secondsPerDay:
		return CrackTimeDisplay{Value: seconds / secondsPerDay, Unit: "days"}
	case seconds > secondsPerHour:
		return CrackTimeDisplay{Value: seconds / secondsPerHour, Unit: "hours"}
	case seconds > secondsPerMinute:
		return CrackTimeDisplay{Value: seconds / secondsPerMinute, Unit: "minutes"}
	default:
		return CrackTimeDisplay{Value: seconds, Unit: "seconds"}
	}
}
