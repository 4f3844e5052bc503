package generator

import (
	"bytes"
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/MrEthical07/goPassgen/charset"
	"github.com/MrEthical07/goPassgen/strength"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("no entropy") }

func countIn(s, alphabet string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(alphabet, s[i]) >= 0 {
			n++
		}
	}
	return n
}

func TestGenerateRequireAllTypes(t *testing.T) {
	g := New(nil)
	configs := []charset.Config{
		charset.All(),
		{Lowercase: true, Numbers: true},
		{Uppercase: true, Special: true},
		{Lowercase: true, Uppercase: true, Numbers: true, Special: true, AvoidAmbiguous: true},
	}

	for _, cfg := range configs {
		opts := Options{Length: 8, Charset: cfg, RequireAllTypes: true}
		for i := 0; i < 300; i++ {
			res, err := g.Generate(opts)
			if err != nil {
				t.Fatalf("Generate error: %v", err)
			}
			pw := res.Password()
			for _, cat := range cfg.Selected() {
				if countIn(pw, cat.Alphabet()) == 0 {
					t.Fatalf("password %q missing %s", pw, cat)
				}
			}
			res.Destroy()
		}
	}
}

func TestGenerateMinimumCounts(t *testing.T) {
	g := New(nil)
	tests := []Options{
		{Length: 8, Charset: charset.All(), RequireAllTypes: true, MinNumbers: 3, MinSpecial: 3},
		{Length: 8, Charset: charset.Config{Numbers: true, Special: true}, MinNumbers: 4, MinSpecial: 4},
		{Length: 12, Charset: charset.Config{Lowercase: true, Numbers: true}, MinNumbers: 11},
		{Length: 20, Charset: charset.Config{Lowercase: true, Special: true, AvoidAmbiguous: true}, RequireAllTypes: true, MinSpecial: 10},
	}

	for _, opts := range tests {
		for i := 0; i < 300; i++ {
			res, err := g.Generate(opts)
			if err != nil {
				t.Fatalf("Generate(%+v) error: %v", opts, err)
			}
			pw := res.Password()
			if len(pw) != opts.Length {
				t.Fatalf("expected length %d, got %d", opts.Length, len(pw))
			}
			if got := countIn(pw, charset.Digits); got < opts.MinNumbers {
				t.Fatalf("password %q has %d digits, want >= %d", pw, got, opts.MinNumbers)
			}
			if got := countIn(pw, charset.Special); got < opts.MinSpecial {
				t.Fatalf("password %q has %d special, want >= %d", pw, got, opts.MinSpecial)
			}
			if opts.RequireAllTypes {
				for _, cat := range opts.Charset.Selected() {
					if countIn(pw, cat.Alphabet()) == 0 {
						t.Fatalf("password %q missing %s", pw, cat)
					}
				}
			}
			res.Destroy()
		}
	}
}

func TestGenerateAvoidAmbiguousNeverEmitsAmbiguous(t *testing.T) {
	g := New(nil)
	opts := Options{
		Length:          128,
		Charset:         charset.Config{Lowercase: true, Uppercase: true, Numbers: true, Special: true, AvoidAmbiguous: true},
		RequireAllTypes: true,
		MinNumbers:      20,
		MinSpecial:      5,
	}
	for i := 0; i < 200; i++ {
		res, err := g.Generate(opts)
		if err != nil {
			t.Fatalf("Generate error: %v", err)
		}
		if pw := res.Password(); strings.ContainsAny(pw, charset.Ambiguous) {
			t.Fatalf("password %q contains ambiguous characters", pw)
		}
		res.Destroy()
	}
}

func TestGenerateCharactersStayInsidePool(t *testing.T) {
	g := New(nil)
	cfg := charset.Config{Uppercase: true, Numbers: true}
	res, err := g.Generate(Options{Length: 64, Charset: cfg})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	defer res.Destroy()

	allowed := charset.Uppercase + charset.Digits
	for _, c := range res.Bytes() {
		if strings.IndexByte(allowed, c) < 0 {
			t.Fatalf("unexpected character %q", c)
		}
	}
}

func TestRepairOverwritesFirstSurplusPosition(t *testing.T) {
	// Pool "a..z0..9" has 36 entries; byte 0 draws 'a', byte 5 picks '5'.
	src := bytes.NewReader([]byte{0, 0, 0, 0, 0, 0, 0, 0, 5})
	g := New(src)

	res, err := g.Generate(Options{
		Length:          8,
		Charset:         charset.Config{Lowercase: true, Numbers: true},
		RequireAllTypes: true,
	})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	defer res.Destroy()

	if got := res.Password(); got != "5aaaaaaa" {
		t.Fatalf("expected 5aaaaaaa, got %q", got)
	}
	if res.Repairs != 1 {
		t.Fatalf("expected 1 repair, got %d", res.Repairs)
	}
}

func TestRepairDoesNotConsumeRequiredCharacters(t *testing.T) {
	// Pool digits+special: indexes 0..9 digits, 10..17 special. Draw one
	// digit followed by seven '!' then repair to three digits.
	draws := []byte{0, 10, 10, 10, 10, 10, 10, 10}
	draws = append(draws, 1, 2)
	g := New(bytes.NewReader(draws))

	res, err := g.Generate(Options{
		Length:          8,
		Charset:         charset.Config{Numbers: true, Special: true},
		RequireAllTypes: true,
		MinNumbers:      3,
	})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	defer res.Destroy()

	if got := res.Password(); got != "012!!!!!" {
		t.Fatalf("expected 012!!!!!, got %q", got)
	}
}

func TestGenerateRandomFailureReturnsNoResult(t *testing.T) {
	g := New(failingReader{})
	res, err := g.Generate(DefaultOptions())
	if !errors.Is(err, ErrRandomUnavailable) || !errors.Is(err, ErrResource) {
		t.Fatalf("expected resource error, got %v", err)
	}
	if res != nil {
		t.Fatal("expected nil result on failure")
	}
}

func TestGenerateRandomFailureDuringRepair(t *testing.T) {
	// Eight draws succeed, the repair draw hits EOF.
	g := New(bytes.NewReader([]byte{0, 0, 0, 0, 0, 0, 0, 0}))
	res, err := g.Generate(Options{
		Length:          8,
		Charset:         charset.Config{Lowercase: true, Numbers: true},
		RequireAllTypes: true,
	})
	if !errors.Is(err, ErrRandomUnavailable) {
		t.Fatalf("expected ErrRandomUnavailable, got %v", err)
	}
	if res != nil {
		t.Fatal("expected nil result on failure")
	}
}

func TestGenerateInvalidOptions(t *testing.T) {
	g := New(nil)
	res, err := g.Generate(Options{Length: 4, Charset: charset.All()})
	if !errors.Is(err, ErrInvalidLength) || !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
	if res != nil {
		t.Fatal("expected nil result")
	}
}

func TestGenerateEntropyAndScore(t *testing.T) {
	g := New(nil)
	res, err := g.Generate(DefaultOptions())
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	defer res.Destroy()

	want := 16 * math.Log2(70)
	if math.Abs(res.Entropy-want) > 1e-9 {
		t.Fatalf("expected entropy %f, got %f", want, res.Entropy)
	}
	if res.Score != 76 {
		t.Fatalf("expected score 76, got %d", res.Score)
	}
	if res.Category != strength.Strong {
		t.Fatalf("expected Strong, got %v", res.Category)
	}
}

func TestEntropySubtractsAmbiguousPerCategory(t *testing.T) {
	cfg := charset.Config{Lowercase: true, Numbers: true, AvoidAmbiguous: true}
	want := 10 * math.Log2(33)
	if got := Entropy(10, cfg); math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %f, got %f", want, got)
	}
	if Entropy(10, charset.Config{}) != 0 {
		t.Fatal("expected zero entropy for empty selection")
	}
}

func TestScoreForEntropyClamps(t *testing.T) {
	if ScoreForEntropy(512) != 100 {
		t.Fatal("expected clamp to 100")
	}
	if ScoreForEntropy(-3) != 0 {
		t.Fatal("expected clamp to 0")
	}
	if ScoreForEntropy(64) != 50 {
		t.Fatalf("expected 50, got %d", ScoreForEntropy(64))
	}
}

func TestFromPatternPositions(t *testing.T) {
	g := New(nil)
	alphabets := []string{charset.Lowercase, charset.Lowercase, charset.Uppercase, charset.Digits, charset.Special, charset.Special}

	for i := 0; i < 200; i++ {
		res, err := g.FromPattern("llUnss")
		if err != nil {
			t.Fatalf("FromPattern error: %v", err)
		}
		pw := res.Password()
		if len(pw) != 6 {
			t.Fatalf("expected 6 characters, got %q", pw)
		}
		for pos, alphabet := range alphabets {
			if strings.IndexByte(alphabet, pw[pos]) < 0 {
				t.Fatalf("position %d of %q not in %q", pos, pw, alphabet)
			}
		}
		if res.Pattern != "llUnss" || res.Repairs != 0 {
			t.Fatalf("unexpected metadata %+v", res)
		}
		res.Destroy()
	}
}

func TestFromPatternEntropyUsesCodesPresent(t *testing.T) {
	g := New(nil)
	res, err := g.FromPattern("llUnss")
	if err != nil {
		t.Fatalf("FromPattern error: %v", err)
	}
	defer res.Destroy()

	want := 6 * math.Log2(70)
	if math.Abs(res.Entropy-want) > 1e-9 {
		t.Fatalf("expected %f, got %f", want, res.Entropy)
	}
	if res.Charset.Codes() != "lUns" {
		t.Fatalf("unexpected inferred charset %+v", res.Charset)
	}
}

func TestFromPatternErrors(t *testing.T) {
	g := New(nil)

	if _, err := g.FromPattern(""); !errors.Is(err, ErrEmptyPattern) {
		t.Fatalf("expected ErrEmptyPattern, got %v", err)
	}
	if _, err := g.FromPattern(strings.Repeat("l", MaxLength+1)); !errors.Is(err, ErrPatternTooLong) {
		t.Fatalf("expected ErrPatternTooLong, got %v", err)
	}

	res, err := g.FromPattern("llXn")
	if !errors.Is(err, ErrInvalidPatternCode) || !errors.Is(err, ErrPattern) {
		t.Fatalf("expected ErrInvalidPatternCode, got %v", err)
	}
	if res != nil {
		t.Fatal("expected no partial result")
	}
}

func TestFromPatternRandomFailure(t *testing.T) {
	g := New(io.LimitReader(bytes.NewReader([]byte{1, 2}), 2))
	res, err := g.FromPattern("lllll")
	if !errors.Is(err, ErrRandomUnavailable) {
		t.Fatalf("expected ErrRandomUnavailable, got %v", err)
	}
	if res != nil {
		t.Fatal("expected nil result")
	}
}

func TestDestroyWipesSecret(t *testing.T) {
	g := New(nil)
	res, err := g.Generate(DefaultOptions())
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	view := res.Bytes()

	res.Destroy()
	for i, c := range view {
		if c != 0 {
			t.Fatalf("byte %d not wiped", i)
		}
	}
	if !res.Destroyed() || res.Password() != "" || res.Length != 0 {
		t.Fatalf("expected destroyed result, got %+v", res)
	}
	res.Destroy()
}
