package clean

import (
	"regexp"
	"strings"
)

var (
	// Leading code-fence marker with an optional language tag, e.g. ```json.
	openFenceRe = regexp.MustCompile("^```[a-zA-Z0-9]*[ \t]*\r?\n?")
	// String-concatenation artifacts left behind when a model emits JSON as
	// quoted fragments joined with '+'.
	concatRe = regexp.MustCompile(`"\s*\+\s*"|'\s*\+\s*'`)
)

// Strip normalizes raw model output before JSON extraction. It removes
// leading/trailing markdown code-fence markers, outer enclosing quotes and
// stray backticks, collapses escaped newline sequences into literal newlines,
// and removes quote-plus-quote concatenation artifacts, then trims
// surrounding whitespace.
//
// Strip is a pure function and is applied on the JSON path only; the tag
// engine consumes its input untouched.
func Strip(content string) string {
	s := strings.TrimSpace(content)

	s = stripFences(s)
	s = strings.Trim(s, "`")
	s = stripOuterQuotes(s)
	s = strings.ReplaceAll(s, `\r\n`, "\n")
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = concatRe.ReplaceAllString(s, "")

	return strings.TrimSpace(s)
}

// stripFences removes a leading ```lang marker and a trailing ``` marker.
// Interior fences are left alone so fenced content inside the snippet is not
// damaged.
func stripFences(s string) string {
	if loc := openFenceRe.FindStringIndex(s); loc != nil {
		s = s[loc[1]:]
	}
	s = strings.TrimRight(s, " \t\r\n")
	if strings.HasSuffix(s, "```") {
		s = strings.TrimRight(strings.TrimSuffix(s, "```"), " \t\r\n")
	}
	return s
}

// stripOuterQuotes removes one pair of matching enclosing quote characters.
func stripOuterQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if first == last && (first == '"' || first == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
