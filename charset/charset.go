package charset

import (
	"errors"
	"strings"

	"github.com/MrEthical07/goPassgen/internal/secmem"
)

// Category alphabets. The special set is fixed at eight characters and shares
// nothing with the ambiguous set.
const (
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits    = "0123456789"
	Special   = "!@#$%^&*"
	Ambiguous = "lI1O0"
)

// ErrEmptyPool is returned by Build when no character survives selection and
// filtering.
var ErrEmptyPool = errors.New("character pool is empty")

// Category identifies one of the four character classes.
type Category uint8

const (
	CategoryLower Category = iota
	CategoryUpper
	CategoryDigit
	CategorySpecial
)

// Categories lists every category in repair order.
var Categories = [...]Category{CategoryLower, CategoryUpper, CategoryDigit, CategorySpecial}

// Alphabet returns the full alphabet of c.
func (c Category) Alphabet() string {
	switch c {
	case CategoryLower:
		return Lowercase
	case CategoryUpper:
		return Uppercase
	case CategoryDigit:
		return Digits
	case CategorySpecial:
		return Special
	default:
		return ""
	}
}

// Filtered returns the alphabet of c without ambiguous characters when
// avoidAmbiguous is set.
func (c Category) Filtered(avoidAmbiguous bool) string {
	a := c.Alphabet()
	if !avoidAmbiguous {
		return a
	}
	return stripAmbiguous(a)
}

// Code returns the pattern letter for c.
func (c Category) Code() byte {
	switch c {
	case CategoryLower:
		return 'l'
	case CategoryUpper:
		return 'U'
	case CategoryDigit:
		return 'n'
	default:
		return 's'
	}
}

func (c Category) String() string {
	switch c {
	case CategoryLower:
		return "lowercase"
	case CategoryUpper:
		return "uppercase"
	case CategoryDigit:
		return "numbers"
	case CategorySpecial:
		return "special"
	default:
		return "unknown"
	}
}

// Classify reports which fixed alphabet b belongs to.
func Classify(b byte) (Category, bool) {
	switch {
	case b >= 'a' && b <= 'z':
		return CategoryLower, true
	case b >= 'A' && b <= 'Z':
		return CategoryUpper, true
	case b >= '0' && b <= '9':
		return CategoryDigit, true
	case strings.IndexByte(Special, b) >= 0:
		return CategorySpecial, true
	default:
		return 0, false
	}
}

// IsAmbiguous reports whether b is one of l, I, 1, O, 0.
func IsAmbiguous(b byte) bool {
	return strings.IndexByte(Ambiguous, b) >= 0
}

// Config selects the categories a pool is assembled from.
type Config struct {
	Lowercase      bool `json:"lowercase"`
	Uppercase      bool `json:"uppercase"`
	Numbers        bool `json:"numbers"`
	Special        bool `json:"special"`
	AvoidAmbiguous bool `json:"avoid_ambiguous"`
}

// All selects every category.
func All() Config {
	return Config{Lowercase: true, Uppercase: true, Numbers: true, Special: true}
}

// Includes reports whether cat is selected.
func (c Config) Includes(cat Category) bool {
	switch cat {
	case CategoryLower:
		return c.Lowercase
	case CategoryUpper:
		return c.Uppercase
	case CategoryDigit:
		return c.Numbers
	case CategorySpecial:
		return c.Special
	default:
		return false
	}
}

// Selected returns the selected categories in repair order.
func (c Config) Selected() []Category {
	out := make([]Category, 0, len(Categories))
	for _, cat := range Categories {
		if c.Includes(cat) {
			out = append(out, cat)
		}
	}
	return out
}

// Count returns the number of selected categories.
func (c Config) Count() int {
	n := 0
	for _, cat := range Categories {
		if c.Includes(cat) {
			n++
		}
	}
	return n
}

// Codes renders the selection as pattern letters, e.g. "lUns".
func (c Config) Codes() string {
	var b strings.Builder
	for _, cat := range c.Selected() {
		b.WriteByte(cat.Code())
	}
	return b.String()
}

// PoolSize returns the declared pool size for the selection: the sum of the
// selected alphabets minus the ambiguous characters each one contains when
// AvoidAmbiguous is set.
func (c Config) PoolSize() int {
	n := 0
	for _, cat := range c.Selected() {
		n += len(cat.Filtered(c.AvoidAmbiguous))
	}
	return n
}

// Pool is the owned alphabet random characters are drawn from.
type Pool struct {
	chars *secmem.Buffer
}

// Build concatenates the selected alphabets in category order, then removes
// ambiguous characters if requested.
func Build(cfg Config) (*Pool, error) {
	assembled := secmem.NewBuffer(len(Lowercase) + len(Uppercase) + len(Digits) + len(Special))
	for _, cat := range cfg.Selected() {
		assembled.AppendString(cat.Alphabet())
	}

	if cfg.AvoidAmbiguous && assembled.Len() > 0 {
		filtered := secmem.NewBuffer(assembled.Len())
		for _, ch := range assembled.Bytes() {
			if !IsAmbiguous(ch) {
				filtered.Append(ch)
			}
		}
		assembled.Wipe()
		assembled = filtered
	}

	if assembled.Len() == 0 {
		assembled.Wipe()
		return nil, ErrEmptyPool
	}

	return &Pool{chars: assembled}, nil
}

// Len returns the number of characters in the pool.
func (p *Pool) Len() int {
	if p == nil {
		return 0
	}
	return p.chars.Len()
}

// At returns the character at index i.
func (p *Pool) At(i int) byte {
	return p.chars.At(i)
}

// Contains reports whether ch is in the pool.
func (p *Pool) Contains(ch byte) bool {
	if p == nil {
		return false
	}
	return p.chars.IndexByte(ch) >= 0
}

// String returns a copy of the pool contents.
func (p *Pool) String() string {
	if p == nil {
		return ""
	}
	return p.chars.String()
}

// Wipe zeroes and releases the pool.
func (p *Pool) Wipe() {
	if p == nil {
		return
	}
	p.chars.Wipe()
}

func stripAmbiguous(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if !IsAmbiguous(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
