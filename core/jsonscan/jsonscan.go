package jsonscan

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/leofalp/snipex/core/result"
)

// delimiters maps each opening bracket to its expected closer.
var delimiters = map[byte]byte{
	'{': '}',
	'[': ']',
}

// Extract locates the first embedded JSON value in content, validates its
// bracket structure, and decodes it. The input is assumed to be already
// normalized (markdown fences and outer quoting stripped); Extract performs
// no such cleanup itself.
//
// The scan is single-pass and allocates only a small local stack, so calls
// are safe to run concurrently on independent inputs.
func Extract(content string) result.Result {
	if content == "" {
		return result.Fail("Invalid input: content must be a non-empty string")
	}

	start := strings.IndexAny(content, "{[")
	if start < 0 {
		return result.Fail("No JSON structure found")
	}
	closer := delimiters[content[start]]

	// Optimistic fast path: slice up to the last occurrence of the expected
	// closer and try to decode. This skips balance verification entirely and
	// can accept slices the strict scan would reject (for example brackets
	// inside string literals), which is the point: the common well-formed
	// case never pays for a full scan.
	if rel := strings.LastIndexByte(content[start:], closer); rel > 0 {
		candidate := content[start : start+rel+1]
		var value any
		if err := json.Unmarshal([]byte(candidate), &value); err == nil {
			return result.Success(value, "JSON successfully extracted and parsed")
		}
	}

	// Structural scan. First balanced top-level span wins; content after it
	// is never considered.
	var stack []byte
	end := -1
	for i := start; i < len(content); i++ {
		c := content[i]
		if expected, ok := delimiters[c]; ok {
			stack = append(stack, expected)
			continue
		}
		if c == '}' || c == ']' {
			if len(stack) == 0 || stack[len(stack)-1] != c {
				return result.FailRaw(content[start : i+1], "Bracket mismatch detected")
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				end = i
				break
			}
		}
	}

	if end < 0 {
		// Input exhausted with open structure. A single missing closer is
		// the one defect we repair; anything deeper is reported as-is.
		if len(stack) == 1 {
			candidate := content[start:] + string(stack[0])
			var value any
			if err := json.Unmarshal([]byte(candidate), &value); err != nil {
				return result.FailRaw(candidate, fmt.Sprintf("Auto-repair failed to produce valid JSON: %v", err))
			}
			return result.Check(value, "One missing closing bracket auto-added. Please verify")
		}
		return result.FailRaw(content[start:], "Unbalanced JSON structure")
	}

	candidate := content[start : end+1]
	var value any
	if err := json.Unmarshal([]byte(candidate), &value); err != nil {
		// Balanced but undecodable (e.g. a trailing separator). Reported as
		// Check with the candidate in Raw and no data.
		return result.CheckRaw(candidate, fmt.Sprintf("Balanced JSON candidate failed to parse: %v", err))
	}
	return result.Success(value, "JSON successfully extracted and parsed")
}
