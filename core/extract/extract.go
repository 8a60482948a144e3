package extract

import (
	"context"
	"fmt"

	"github.com/leofalp/snipex/core/clean"
	"github.com/leofalp/snipex/core/jsonscan"
	"github.com/leofalp/snipex/core/result"
	"github.com/leofalp/snipex/core/tagscan"
	"github.com/leofalp/snipex/internal/utils"
	"github.com/leofalp/snipex/providers/observability"
)

// Format selects which extraction engine handles the input.
type Format string

const (
	// FormatJSON extracts an embedded JSON object or array. The input is
	// run through the clean preprocessor first.
	FormatJSON Format = "json"
	// FormatTag extracts an embedded HTML/XML element. The input is used
	// exactly as given.
	FormatTag Format = "tag"
)

// Option configures a single dispatcher call.
type Option func(*options)

type options struct {
	format           Format
	tagCaseSensitive bool
	observer         observability.Provider
}

// WithFormat selects the extraction engine. The default is FormatJSON.
func WithFormat(format Format) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithTagCaseSensitive makes tag-name comparison exact instead of
// case-folded. It only affects FormatTag.
func WithTagCaseSensitive(enabled bool) Option {
	return func(o *options) {
		o.tagCaseSensitive = enabled
	}
}

// WithObserver records one log event and one counter increment per call on
// the given provider. The engines themselves stay pure.
func WithObserver(observer observability.Provider) Option {
	return func(o *options) {
		o.observer = observer
	}
}

// Extract routes content to the engine selected by WithFormat and returns
// its Result. An unrecognized format yields a fail Result carrying the
// original, unmodified input in Raw; no engine is invoked.
func Extract(content string, opts ...Option) result.Result {
	cfg := options{
		format:   FormatJSON,
		observer: observability.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var res result.Result
	switch cfg.format {
	case FormatJSON:
		res = jsonscan.Extract(clean.Strip(content))
	case FormatTag:
		res = tagscan.Extract(content, tagscan.WithCaseSensitive(cfg.tagCaseSensitive))
	default:
		res = result.FailRaw(content, fmt.Sprintf("Invalid format '%s'. Expected 'json' or 'tag'.", cfg.format))
	}

	observe(cfg.observer, cfg.format, content, res)
	return res
}

func observe(observer observability.Provider, format Format, content string, res result.Result) {
	ctx := context.Background()
	attrs := []observability.Attribute{
		observability.String(observability.AttrFormat, string(format)),
		observability.String(observability.AttrStatus, res.Status.String()),
		observability.Int(observability.AttrInputBytes, len(content)),
	}

	switch res.Status {
	case result.StatusSuccess:
		observer.Debug(ctx, "Snippet extracted", attrs...)
	default:
		attrs = append(attrs, observability.String(observability.AttrComments,
			utils.TruncateString(res.Comments, utils.DefaultMaxStringLength)))
		observer.Info(ctx, "Snippet extraction needs attention", attrs...)
	}

	observer.Counter(observability.MetricExtractions).Add(ctx, 1,
		observability.String(observability.AttrStatus, res.Status.String()))
}
