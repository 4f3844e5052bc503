package assess

import (
	"math"
	"strings"

	"github.com/MrEthical07/goPassgen/internal/secmem"
	"github.com/MrEthical07/goPassgen/strength"
)

const (
	// DefaultGuessesPerSecond models an offline GPU-class attacker.
	DefaultGuessesPerSecond = 1e9

	// MinScoredLength is the shortest password that receives a non-zero score.
	MinScoredLength = 8

	weakPatternPercent = 70
	dictionaryPercent  = 60

	approxSymbolPool = 32
)

// Assessment is the result of scoring one password. It holds no reference to
// the password itself.
type Assessment struct {
	Score             int               `json:"score"`
	Category          strength.Category `json:"category"`
	Entropy           float64           `json:"entropy_bits"`
	CrackTimeSeconds  float64           `json:"crack_time_seconds"`
	HasWeakPattern    bool              `json:"has_weak_pattern"`
	HasDictionaryWord bool              `json:"has_dictionary_word"`
	IsDuplicate       bool              `json:"is_duplicate"`
}

// WithDuplicate returns a copy of a with IsDuplicate set.
func (a Assessment) WithDuplicate(dup bool) Assessment {
	a.IsDuplicate = dup
	return a
}

// Assessor scores passwords against a fixed attacker model.
type Assessor struct {
	guessesPerSecond float64
}

// New returns an Assessor using rate guesses per second. Non-positive rates
// fall back to DefaultGuessesPerSecond.
func New(rate float64) *Assessor {
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		rate = DefaultGuessesPerSecond
	}
	return &Assessor{guessesPerSecond: rate}
}

// GuessesPerSecond reports the attacker rate used for crack-time estimates.
func (a *Assessor) GuessesPerSecond() float64 {
	return a.guessesPerSecond
}

var defaultAssessor = New(DefaultGuessesPerSecond)

// Assess scores password with the default attacker rate.
func Assess(password string) Assessment {
	return defaultAssessor.Assess(password)
}

// Assess computes the post-penalty score, category, entropy and crack time of
// password. IsDuplicate is always false; duplicate tracking belongs to the
// caller.
func (a *Assessor) Assess(password string) Assessment {
	out := Assessment{
		Score:             StrengthScore(password),
		HasWeakPattern:    HasWeakPattern(password),
		HasDictionaryWord: HasDictionaryWord(password),
	}

	if out.HasWeakPattern {
		out.Score = out.Score * weakPatternPercent / 100
	}
	if out.HasDictionaryWord {
		out.Score = out.Score * dictionaryPercent / 100
	}
	out.Score = strength.Clamp(out.Score)
	out.Category = strength.Bucket(out.Score)

	out.Entropy = SimpleEntropy(password)
	out.CrackTimeSeconds = CrackTime(out.Entropy, a.guessesPerSecond)
	return out
}

type classes struct {
	lower, upper, digit, other bool
}

func (c classes) count() int {
	n := 0
	for _, b := range [...]bool{c.lower, c.upper, c.digit, c.other} {
		if b {
			n++
		}
	}
	return n
}

func classify(password string) classes {
	var c classes
	for i := 0; i < len(password); i++ {
		switch ch := password[i]; {
		case isLower(ch):
			c.lower = true
		case isUpper(ch):
			c.upper = true
		case isDigit(ch):
			c.digit = true
		default:
			c.other = true
		}
	}
	return c
}

// StrengthScore is the unpenalized 0..100 composition score.
func StrengthScore(password string) int {
	n := len(password)
	if n < MinScoredLength {
		return 0
	}

	score := 0
	switch {
	case n >= 12:
		score += 40
	case n >= 10:
		score += 30
	default:
		score += 20
	}

	c := classify(password)
	score += 10 * c.count()

	for i := 1; i < n-1; i++ {
		if !isAlpha(password[i]) {
			score += 10
			break
		}
	}

	if c.lower && c.upper && c.digit {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}

// HasWeakPattern reports table substrings, three-character numeric or
// alphabetic runs, triple repeats and keyboard-row fragments.
func HasWeakPattern(password string) bool {
	for _, p := range weakPatterns {
		if strings.Contains(password, p.Pattern) {
			return true
		}
	}

	for i := 0; i+2 < len(password); i++ {
		c1, c2, c3 := password[i], password[i+1], password[i+2]

		if isDigit(c1) && isDigit(c2) && isDigit(c3) && isRun(c1, c2, c3) {
			return true
		}
		if isAlpha(c1) && isAlpha(c2) && isAlpha(c3) && isRun(toLower(c1), toLower(c2), toLower(c3)) {
			return true
		}
		if c1 == c2 && c2 == c3 {
			return true
		}
	}

	for _, tri := range keyboardTriples {
		if strings.Contains(password, tri) {
			return true
		}
	}
	return false
}

func isRun(a, b, c byte) bool {
	return (a+1 == b && b+1 == c) || (a-1 == b && b-1 == c)
}

// HasDictionaryWord lowercases password and looks for any common password as
// a substring, first directly and then after leetspeak normalization.
func HasDictionaryWord(password string) bool {
	lower := []byte(strings.ToLower(password))
	defer secmem.Wipe(lower)
	if containsWord(lower) {
		return true
	}

	for i, ch := range lower {
		if r := leetTable[ch]; r != 0 {
			lower[i] = r
		}
	}
	return containsWord(lower)
}

func containsWord(s []byte) bool {
	for _, w := range dictionaryWords {
		if bytesContains(s, w) {
			return true
		}
	}
	return false
}

func bytesContains(s []byte, w string) bool {
	n := len(w)
	for i := 0; i+n <= len(s); i++ {
		if string(s[i:i+n]) == w {
			return true
		}
	}
	return false
}

// SimpleEntropy estimates entropy from the character classes observed in
// password: 26 per letter case, 10 for digits, 32 for anything else. It does
// not know how the password was generated and is deliberately coarser than
// generator.Entropy.
func SimpleEntropy(password string) float64 {
	if len(password) == 0 {
		return 0
	}
	c := classify(password)
	pool := 0
	if c.lower {
		pool += 26
	}
	if c.upper {
		pool += 26
	}
	if c.digit {
		pool += 10
	}
	if c.other {
		pool += approxSymbolPool
	}
	return float64(len(password)) * math.Log2(float64(pool))
}

// CrackTime returns 2^entropyBits / guessesPerSecond seconds, or 0 when either
// input is non-positive. The result is unbounded and may be +Inf.
func CrackTime(entropyBits, guessesPerSecond float64) float64 {
	if entropyBits <= 0 || guessesPerSecond <= 0 {
		return 0
	}
	return math.Exp2(entropyBits) / guessesPerSecond
}

// Similar reports whether a and b have equal length and at least threshold of
// their positions hold the same character. It is positional only; an
// insertion or deletion makes two passwords dissimilar.
func Similar(a, b string, threshold float64) bool {
	if len(a) != len(b) || len(a) == 0 {
		return false
	}
	matches := 0
	for i := 0; i < len(a); i++ {
		if a[i] == b[i] {
			matches++
		}
	}
	return float64(matches)/float64(len(a)) >= threshold
}

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isAlpha(c byte) bool { return isLower(c) || isUpper(c) }

func toLower(c byte) byte {
	if isUpper(c) {
		return c + ('a' - 'A')
	}
	return c
}
