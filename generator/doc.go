// Package generator implements random password generation under composition
// constraints.
//
// # Algorithm
//
// [Generator.Generate] validates [Options], builds a [charset.Pool], draws one
// uniformly random pool index per position and then runs a repair pass that
// overwrites positions left to right until every selected category is present
// (RequireAllTypes) and the digit and special minimums hold. Each position is
// repaired at most once, so the pass terminates within Length steps.
//
// Index selection rejection-samples single secure bytes; there is no modulo
// bias. A failing byte source is reported as [ErrRandomUnavailable]. There is
// no fallback generator.
//
// # Ownership
//
// A [Result] owns its secret buffer. Callers release it with [Result.Destroy],
// which zeroes the bytes. On every error path the partially built buffer is
// wiped before returning, and a non-nil error is always paired with a nil
// Result.
package generator
