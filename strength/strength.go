// Package strength maps 0-100 scores onto the six strength categories.
package strength

// Category is a six-level strength label.
type Category int

const (
	VeryWeak Category = iota
	Weak
	Fair
	Good
	Strong
	VeryStrong
)

// Threshold table used for generated passwords: a score strictly below the
// bound falls into the category at the same index.
const (
	ThresholdVeryWeak = 20
	ThresholdWeak     = 40
	ThresholdFair     = 60
	ThresholdGood     = 75
	ThresholdStrong   = 90
)

// ForScore labels a generation score using the threshold table.
func ForScore(score int) Category {
	switch {
	case score < ThresholdVeryWeak:
		return VeryWeak
	case score < ThresholdWeak:
		return Weak
	case score < ThresholdFair:
		return Fair
	case score < ThresholdGood:
		return Good
	case score < ThresholdStrong:
		return Strong
	default:
		return VeryStrong
	}
}

// Bucket labels an assessment score as score/20, clamped to the enum range.
func Bucket(score int) Category {
	if score < 0 {
		return VeryWeak
	}
	c := Category(score / 20)
	if c > VeryStrong {
		return VeryStrong
	}
	return c
}

// Clamp restricts score to [0,100].
func Clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func (c Category) String() string {
	switch c {
	case VeryWeak:
		return "Very Weak"
	case Weak:
		return "Weak"
	case Fair:
		return "Fair"
	case Good:
		return "Good"
	case Strong:
		return "Strong"
	case VeryStrong:
		return "Very Strong"
	default:
		return "Unknown"
	}
}

// MarshalText renders the human label.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
