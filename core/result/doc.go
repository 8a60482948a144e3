// Package result defines the shared outcome record produced by the snippet
// extraction engines. Every engine call returns a [Result] with a tri-state
// [Status] (success, check, or fail) instead of signalling conditions
// through errors, so ambiguous or damaged input never panics or raises.
//
// The field-presence rules are strict: Data carries the extracted value only
// on a positive outcome, and Raw carries a reconstruction of the problematic
// candidate only when diagnosis is needed. The constructors in this package
// are the supported way to build a Result; they keep those rules in one place.
package result
