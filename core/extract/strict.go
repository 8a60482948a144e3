package extract

import "github.com/leofalp/snipex/core/result"

// ResultError is returned by Strict for any non-success outcome. It carries
// the full Result so callers can inspect the status, raw candidate, and
// diagnostic comments after unwrapping with errors.As.
type ResultError struct {
	Result result.Result
}

// Error returns the diagnostic comments of the underlying Result.
func (e *ResultError) Error() string {
	return e.Result.Comments
}

// Strict runs Extract and converts any non-success Result into an error.
// On success it returns the extracted data directly. Check outcomes are
// treated as failures here: a caller using Strict has declared that it
// cannot review repaired values.
func Strict(content string, opts ...Option) (any, error) {
	res := Extract(content, opts...)
	if !res.OK() {
		return nil, &ResultError{Result: res}
	}
	return res.Data, nil
}
