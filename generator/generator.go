package generator

import (
	"errors"
	"fmt"
	"io"

	"github.com/MrEthical07/goPassgen/charset"
	"github.com/MrEthical07/goPassgen/internal/secmem"
	"github.com/MrEthical07/goPassgen/internal/securerand"
)

// Generator draws passwords from a secure byte source. A Generator has no
// per-call state and may be shared between goroutines.
type Generator struct {
	rand *securerand.Source
}

// New returns a Generator reading from r, or from crypto/rand when r is nil.
func New(r io.Reader) *Generator {
	return &Generator{rand: securerand.New(r)}
}

// Generate validates opts, draws Length characters from the pool and repairs
// the result until every requested per-category minimum holds.
func (g *Generator) Generate(opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	pool, err := charset.Build(opts.Charset)
	if err != nil {
		return nil, ErrEmptyPool
	}
	defer pool.Wipe()

	buf := secmem.NewBufferLen(opts.Length)
	done := false
	defer func() {
		if !done {
			buf.Wipe()
		}
	}()

	for i := 0; i < opts.Length; i++ {
		idx, err := g.rand.Index(pool.Len())
		if err != nil {
			return nil, randomError(err)
		}
		buf.Set(i, pool.At(idx))
	}

	repairs, err := g.repair(buf, opts)
	if err != nil {
		return nil, err
	}

	done = true
	return newResult(buf, opts.Charset, "", repairs), nil
}

// repair overwrites positions left to right until every category reaches its
// requirement. A position is overwritten at most once, and only when its
// current character belongs to a category holding more than it needs, so a
// repair never undoes an earlier one.
func (g *Generator) repair(buf *secmem.Buffer, opts Options) (int, error) {
	req := opts.requirements()

	var counts [len(charset.Categories)]int
	for _, ch := range buf.Bytes() {
		if cat, ok := charset.Classify(ch); ok {
			counts[cat]++
		}
	}

	repaired := make([]bool, buf.Len())
	repairs := 0

	fill := func(cat charset.Category, target int) error {
		alphabet := cat.Filtered(opts.Charset.AvoidAmbiguous)
		for counts[cat] < target {
			pos := -1
			for i := 0; i < buf.Len(); i++ {
				if repaired[i] {
					continue
				}
				cur, ok := charset.Classify(buf.At(i))
				if ok && (cur == cat || counts[cur] <= req[cur]) {
					continue
				}
				pos = i
				break
			}
			if pos < 0 {
				return ErrRepairExhausted
			}

			ch, err := g.rand.Pick(alphabet)
			if err != nil {
				return randomError(err)
			}
			if cur, ok := charset.Classify(buf.At(pos)); ok {
				counts[cur]--
			}
			buf.Set(pos, ch)
			repaired[pos] = true
			counts[cat]++
			repairs++
		}
		return nil
	}

	if opts.RequireAllTypes {
		for _, cat := range opts.Charset.Selected() {
			if err := fill(cat, 1); err != nil {
				return repairs, err
			}
		}
	}
	if err := fill(charset.CategoryDigit, opts.MinNumbers); err != nil {
		return repairs, err
	}
	if err := fill(charset.CategorySpecial, opts.MinSpecial); err != nil {
		return repairs, err
	}

	return repairs, nil
}

// FromPattern produces one character per template code: l lowercase,
// U uppercase, n number, s special. The template is checked in full before
// any randomness is drawn.
func (g *Generator) FromPattern(pattern string) (*Result, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	if len(pattern) > MaxLength {
		return nil, ErrPatternTooLong
	}

	var cfg charset.Config
	cats := make([]charset.Category, len(pattern))
	for i := 0; i < len(pattern); i++ {
		cat, ok := categoryForCode(pattern[i])
		if !ok {
			return nil, fmt.Errorf("%w %q at position %d", ErrInvalidPatternCode, pattern[i], i)
		}
		cats[i] = cat
		switch cat {
		case charset.CategoryLower:
			cfg.Lowercase = true
		case charset.CategoryUpper:
			cfg.Uppercase = true
		case charset.CategoryDigit:
			cfg.Numbers = true
		case charset.CategorySpecial:
			cfg.Special = true
		}
	}

	buf := secmem.NewBufferLen(len(pattern))
	for i, cat := range cats {
		ch, err := g.rand.Pick(cat.Alphabet())
		if err != nil {
			buf.Wipe()
			return nil, randomError(err)
		}
		buf.Set(i, ch)
	}

	return newResult(buf, cfg, pattern, 0), nil
}

func categoryForCode(code byte) (charset.Category, bool) {
	switch code {
	case 'l':
		return charset.CategoryLower, true
	case 'U':
		return charset.CategoryUpper, true
	case 'n':
		return charset.CategoryDigit, true
	case 's':
		return charset.CategorySpecial, true
	default:
		return 0, false
	}
}

func randomError(err error) error {
	if errors.Is(err, securerand.ErrUnavailable) {
		return fmt.Errorf("%w: %v", ErrRandomUnavailable, err)
	}
	return fmt.Errorf("%w: %v", ErrResource, err)
}
