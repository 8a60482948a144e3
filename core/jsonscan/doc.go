// Package jsonscan implements the JSON extraction engine. It recovers the
// first embedded JSON object or array from noisy surrounding text, typically
// model output interleaved with commentary, using a bracket-stack scan, and
// tolerates exactly one category of damage: a single missing closing
// delimiter at end of input, which is repaired automatically and reported
// with a check status so callers know to verify the value.
//
// An optimistic fast path decodes the slice up to the last matching closer
// before any structural scan runs, so well-formed input is handled with a
// single decode. All outcomes, including malformed input, are reported
// through [github.com/leofalp/snipex/core/result.Result]; the engine never
// returns an error or panics.
package jsonscan
