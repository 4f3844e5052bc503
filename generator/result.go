package generator

import (
	"math"

	"github.com/MrEthical07/goPassgen/charset"
	"github.com/MrEthical07/goPassgen/internal/secmem"
	"github.com/MrEthical07/goPassgen/strength"
)

// Result owns a generated password and its metadata. The secret must be
// released with Destroy.
type Result struct {
	password *secmem.Buffer

	Length   int
	Entropy  float64
	Score    int
	Category strength.Category

	// Charset is the selection the entropy was computed from. For pattern
	// results it is inferred from the codes present.
	Charset charset.Config
	// Pattern is the template for pattern results, empty otherwise.
	Pattern string
	// Repairs counts positions overwritten by the repair pass.
	Repairs int
}

func newResult(buf *secmem.Buffer, cfg charset.Config, pattern string, repairs int) *Result {
	entropy := Entropy(buf.Len(), cfg)
	score := ScoreForEntropy(entropy)
	return &Result{
		password: buf,
		Length:   buf.Len(),
		Entropy:  entropy,
		Score:    score,
		Category: strength.ForScore(score),
		Charset:  cfg,
		Pattern:  pattern,
		Repairs:  repairs,
	}
}

// Password returns a copy of the secret. The copy is an immutable Go string
// and is not covered by Destroy.
func (r *Result) Password() string {
	if r == nil {
		return ""
	}
	return r.password.String()
}

// Bytes exposes the secret storage. The slice is zeroed by Destroy.
func (r *Result) Bytes() []byte {
	if r == nil {
		return nil
	}
	return r.password.Bytes()
}

// Destroyed reports whether the secret has been released.
func (r *Result) Destroyed() bool {
	return r == nil || r.password.Len() == 0
}

// Destroy wipes the secret and resets the metadata.
func (r *Result) Destroy() {
	if r == nil {
		return
	}
	r.password.Wipe()
	r.Length = 0
	r.Entropy = 0
	r.Score = 0
	r.Category = strength.VeryWeak
	r.Repairs = 0
}

// Entropy returns length × log2(pool size) for the declared selection. It is
// the theoretical maximum under uniform selection and ignores the bias the
// repair pass introduces, so it over-estimates short passwords with strict
// minimums.
func Entropy(length int, cfg charset.Config) float64 {
	n := cfg.PoolSize()
	if n == 0 || length <= 0 {
		return 0
	}
	return float64(length) * math.Log2(float64(n))
}

// ScoreForEntropy maps entropy onto 0-100 with 128 bits as the ceiling.
func ScoreForEntropy(entropy float64) int {
	return strength.Clamp(int(entropy / 128.0 * 100))
}
