// Package slogobs implements observability.Provider on top of Go's standard
// library log/slog, with an in-memory counter store. It is the default
// concrete observer for the snipex CLI and a convenient choice for library
// users who want extraction outcomes in their existing slog pipeline via
// [WithLogger].
package slogobs
