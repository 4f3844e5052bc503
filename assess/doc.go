// Package assess scores arbitrary passwords without knowing how they were
// produced.
//
// # Scoring
//
// [StrengthScore] awards up to 40 points for length, 10 per character class
// present, 10 for a non-letter strictly inside the password and 10 when
// lowercase, uppercase and digits all appear. Passwords shorter than
// [MinScoredLength] score zero. [Assessor.Assess] then applies a 70% penalty
// when [HasWeakPattern] matches and a 60% penalty when [HasDictionaryWord]
// matches, in that order with integer truncation after each step, and buckets
// the result as score/20.
//
// # Entropy
//
// [SimpleEntropy] infers the pool from observed classes. It differs from
// generator.Entropy, which knows the selected categories, and the two are not
// interchangeable.
//
// # Concurrency
//
// All functions are pure. The reference tables are package-level and never
// mutated after init, so concurrent use needs no locking.
package assess
