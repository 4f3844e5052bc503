// Package internal contains helpers that are private to goPassgen.
//
// # Sub-packages
//
//   - audit: async event dispatch (Dispatcher and Sink implementations)
//   - secmem: wipeable byte buffers for generated passwords
//   - securerand: crypto/rand health check and unbiased index selection
//
// # What this package must NOT do
//
//   - Export types that appear in the public goPassgen API.
//   - Be imported by any package outside the goPassgen module.
package internal
