// Package observability defines the interfaces used for structured logging
// and metrics collection around snippet extraction.
//
// The central entry point is [Provider], which composes [Logger] and
// [Metrics] into a single injectable dependency. The extraction engines are
// pure functions and record nothing; the dispatcher emits one log event and
// one counter increment per call when a Provider is configured. [Nop] is the
// default no-op implementation.
//
// The semconv.go file contains the standard attribute-key and metric-name
// constants that should be used when recording observations, ensuring
// consistency across providers.
package observability
