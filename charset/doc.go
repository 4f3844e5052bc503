// Package charset defines the four fixed character categories and builds the
// character pool random characters are drawn from.
//
// A [Pool] is owned by the generation call that built it and is wiped with
// [Pool.Wipe] when that call returns. Pools are never shared.
package charset
