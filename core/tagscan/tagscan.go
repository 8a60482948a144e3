package tagscan

import (
	"fmt"
	"strings"

	"github.com/leofalp/snipex/core/result"
)

// Option configures a single Extract call.
type Option func(*options)

type options struct {
	caseSensitive bool
}

// WithCaseSensitive controls whether tag names are compared exactly. By
// default names are folded to lower case before comparison on both open and
// close, so <Div> matches </div>.
func WithCaseSensitive(enabled bool) Option {
	return func(o *options) {
		o.caseSensitive = enabled
	}
}

// Extract locates the first embedded HTML/XML element in content and
// validates that its tags are correctly nested and matched. There is no
// repair path: any mismatch or unclosed tag fails the call. The returned
// Result is restricted to success and fail; on success Data holds the exact
// snippet substring with no surrounding text.
func Extract(content string, opts ...Option) result.Result {
	if content == "" {
		return result.Fail("Invalid input: content must be a non-empty string")
	}

	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	var stack []string
	start := -1

	i := 0
	for i < len(content) {
		if content[i] != '<' {
			i++
			continue
		}
		// Snippet start is the first '<' seen, fixed for the whole call.
		if start < 0 {
			start = i
		}

		j := i + 1
		closing := j < len(content) && content[j] == '/'
		if closing {
			j++
		}

		nameStart := j
		for j < len(content) && isNameChar(content[j]) {
			j++
		}
		name := content[nameStart:j]
		if name == "" {
			return result.FailRaw(content[start:nameStart], "Invalid tag name")
		}
		if !cfg.caseSensitive {
			name = strings.ToLower(name)
		}

		// Advance to the closing '>' of this tag.
		for j < len(content) && content[j] != '>' {
			j++
		}
		if j == len(content) {
			// Tag never terminated; account for it so the end-of-input
			// report names it.
			if !closing {
				stack = append(stack, name)
			}
			break
		}
		selfClosing := content[j-1] == '/'

		switch {
		case closing:
			if len(stack) == 0 {
				return result.FailRaw(content[start : j+1], fmt.Sprintf("Unexpected closing tag '</%s>'", name))
			}
			expected := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if expected != name {
				return result.FailRaw(content[start : j+1], fmt.Sprintf("Tag mismatch: expected '</%s>', found '</%s>'", expected, name))
			}
		case selfClosing:
			// Never pushed; contributes nothing to nesting depth.
		default:
			stack = append(stack, name)
		}

		// Balance is checked after every tag: the first balanced span wins
		// and anything beyond it is ignored.
		if len(stack) == 0 {
			return result.Success(content[start : j+1], "Valid tag structure found")
		}
		i = j + 1
	}

	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return result.FailRaw(content[start:], fmt.Sprintf("Unclosed tag '<%s>' at end of input", top))
	}
	return result.Fail("No tags found")
}

// isNameChar reports whether c may appear in a tag name: ASCII word
// characters plus colon and hyphen.
func isNameChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '_' || c == ':' || c == '-':
		return true
	default:
		return false
	}
}
