package generator

import (
	"errors"

	"github.com/MrEthical07/goPassgen/charset"
	"github.com/go-playground/validator/v10"
)

const (
	MinLength     = 8
	MaxLength     = 128
	DefaultLength = 16
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Options describes one generation request.
type Options struct {
	Length          int            `json:"length" validate:"gte=8,lte=128"`
	Charset         charset.Config `json:"charset"`
	RequireAllTypes bool           `json:"require_all_types"`
	MinNumbers      int            `json:"min_numbers" validate:"gte=0"`
	MinSpecial      int            `json:"min_special" validate:"gte=0"`
}

// DefaultOptions returns 16 characters from every category with at least one
// of each type, one digit and one special character.
func DefaultOptions() Options {
	return Options{
		Length:          DefaultLength,
		Charset:         charset.All(),
		RequireAllTypes: true,
		MinNumbers:      1,
		MinSpecial:      1,
	}
}

// Valid reports whether Validate returns nil.
func (o Options) Valid() bool {
	return o.Validate() == nil
}

// Validate checks o and returns the first violated rule as a configuration
// error.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			if verrs[0].Field() == "Length" {
				return ErrInvalidLength
			}
			return ErrNegativeMinimum
		}
		return ErrConfiguration
	}

	if o.Charset.Count() == 0 {
		return ErrNoCharset
	}

	if o.RequireAllTypes && o.Length < o.Charset.Count() {
		return ErrLengthBelowTypes
	}

	if o.MinNumbers > 0 && !o.Charset.Numbers {
		return ErrMinimumUnavailable
	}
	if o.MinSpecial > 0 && !o.Charset.Special {
		return ErrMinimumUnavailable
	}

	if o.MinNumbers+o.MinSpecial > o.Length {
		return ErrMinimumsExceedLength
	}

	req := o.requirements()
	total := 0
	for _, n := range req {
		total += n
	}
	if total > o.Length {
		return ErrMinimumsExceedLength
	}

	return nil
}

// requirements returns the minimum count per category after combining
// RequireAllTypes with the explicit minimums.
func (o Options) requirements() [len(charset.Categories)]int {
	var req [len(charset.Categories)]int
	if o.RequireAllTypes {
		for _, cat := range o.Charset.Selected() {
			req[cat] = 1
		}
	}
	if o.MinNumbers > req[charset.CategoryDigit] {
		req[charset.CategoryDigit] = o.MinNumbers
	}
	if o.MinSpecial > req[charset.CategorySpecial] {
		req[charset.CategorySpecial] = o.MinSpecial
	}
	return req
}
