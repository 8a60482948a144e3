// Package parse provides typed recovery of structured data from raw model
// text output. Because language models frequently wrap JSON in narrative
// prose, markdown code fences, or truncate it mid-structure, this package
// applies a layered strategy of preprocessing, candidate extraction, and
// automatic JSON repair before falling back to a clear error.
//
// The main entry point is the generic [ParseAs] function, which handles both
// primitive types (string, bool, int, float) and complex types (structs,
// maps, slices) in a single, uniform API. Callers who need the tri-state
// verdict instead of an error should use the extract package directly.
package parse
