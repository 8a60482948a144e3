// Package render converts extracted tag snippets into Markdown using the
// html-to-markdown library. It is a thin presentation layer over the tag
// engine's output, used by the CLI's --markdown flag.
package render
