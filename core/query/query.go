package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/itchyny/gojq"
)

// Run executes a jq expression against an extracted JSON value and returns
// every value the expression produces. The input must be a decoded JSON
// value (map[string]any, []any, and friends) as returned by the JSON
// extraction engine.
//
// Per-item evaluation errors are tolerated as long as at least one value is
// produced; if the expression yields nothing but errors, they are returned
// joined.
func Run(data any, expression string) ([]any, error) {
	parsed, err := gojq.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid jq expression: %w", err)
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to compile jq expression: %w", err)
	}

	var values []any
	var itemErrs []error

	iter := code.Run(data)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if itemErr, isErr := v.(error); isErr {
			var halt *gojq.HaltError
			if errors.As(itemErr, &halt) && halt.Value() == nil {
				break
			}
			itemErrs = append(itemErrs, itemErr)
			continue
		}
		values = append(values, v)
	}

	if len(values) == 0 && len(itemErrs) > 0 {
		return nil, fmt.Errorf("jq evaluation produced no values: %s", joinErrs(itemErrs))
	}
	return values, nil
}

func joinErrs(errs []error) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}
