// Package utils provides shared low-level helpers used throughout the snipex
// internals: JSON serialization for log and CLI output, and string
// truncation for bounding diagnostic payloads.
//
// Key entry points: [JSONToString] for safe marshalling that never panics,
// and [TruncateString] for capping long raw candidates before they reach a
// log line.
package utils
