package render

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/leofalp/snipex/core/result"
)

// Markdown converts an extracted tag snippet into Markdown.
func Markdown(snippet string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(snippet)
	if err != nil {
		return "", fmt.Errorf("converting snippet to markdown: %w", err)
	}
	return markdown, nil
}

// MarkdownResult renders the snippet carried by a successful tag extraction
// Result. Non-success results and results whose data is not a snippet string
// are rejected.
func MarkdownResult(res result.Result) (string, error) {
	if !res.OK() {
		return "", fmt.Errorf("cannot render %s result: %s", res.Status, res.Comments)
	}
	snippet, ok := res.Data.(string)
	if !ok {
		return "", fmt.Errorf("result data is %T, not a tag snippet", res.Data)
	}
	return Markdown(snippet)
}
