package observability

import "context"

// Nop returns a Provider that discards every observation. It is the default
// used when no observer is configured, so call sites never need nil checks.
func Nop() Provider {
	return nopProvider{}
}

type nopProvider struct{}

func (nopProvider) Debug(context.Context, string, ...Attribute) {}
func (nopProvider) Info(context.Context, string, ...Attribute)  {}
func (nopProvider) Warn(context.Context, string, ...Attribute)  {}
func (nopProvider) Error(context.Context, string, ...Attribute) {}

func (nopProvider) Counter(string) Counter { return nopCounter{} }

type nopCounter struct{}

func (nopCounter) Add(context.Context, int64, ...Attribute) {}
