package parse

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/kaptinlin/jsonrepair"
	"github.com/leofalp/snipex/core/clean"
	"github.com/leofalp/snipex/core/jsonscan"
)

// ParseAs attempts to parse raw model output into the specified type T.
// For primitive types (string, bool, int, uint, float), it performs direct
// conversion. For complex types (structs, maps, slices), it first recovers
// the embedded JSON candidate with the extraction engine and decodes that;
// if extraction yields nothing usable, it falls back to repairing the
// cleaned text with jsonrepair and retrying the unmarshal.
//
// Type parameters:
//   - T: The target type to parse the content into
//
// Parameters:
//   - content: The raw text to parse
//
// Returns:
//   - T: The parsed value of type T
//   - error: An error if parsing fails after all attempts
//
// Example usage:
//
//	type Person struct {
//	    Name string `json:"name"`
//	    Age  int    `json:"age"`
//	}
//
//	// Parse JSON embedded in prose
//	person, err := ParseAs[Person]("Sure! {\"name\":\"John\",\"age\":30}")
//
//	// Parse an invalid JSON string (will be auto-repaired)
//	person, err := ParseAs[Person](`{name: 'John', age: 30}`)
//
//	// Parse primitive types
//	num, err := ParseAs[int]("42")
//	flag, err := ParseAs[bool]("true")
func ParseAs[T any](content string) (T, error) {
	var result T

	switch reflect.TypeFor[T]().Kind() {
	case reflect.String:
		// For string type, return content as-is via reflection
		reflect.ValueOf(&result).Elem().SetString(content)
		return result, nil

	case reflect.Bool:
		val, err := strconv.ParseBool(content)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as bool: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetBool(val)
		return result, nil

	case reflect.Float32, reflect.Float64:
		val, err := strconv.ParseFloat(content, 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as float: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetFloat(val)
		return result, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		val, err := strconv.ParseInt(content, 10, 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as int: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetInt(val)
		return result, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		val, err := strconv.ParseUint(content, 10, 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as uint: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetUint(val)
		return result, nil

	default:
		return parseComplex[T](content)
	}
}

// parseComplex recovers a JSON candidate from content and decodes it into T,
// with a jsonrepair fallback for candidates the extraction engine cannot
// salvage (unquoted keys, single quotes, and similar damage outside its
// single-repair scope).
func parseComplex[T any](content string) (T, error) {
	var result T
	cleaned := clean.Strip(content)

	if res := jsonscan.Extract(cleaned); res.Data != nil {
		encoded, err := json.Marshal(res.Data)
		if err == nil {
			if err := json.Unmarshal(encoded, &result); err == nil {
				return result, nil
			}
		}
	}

	repairedJSON, repairErr := jsonrepair.JSONRepair(cleaned)
	if repairErr != nil {
		return result, fmt.Errorf("failed to extract content as %T and failed to repair JSON: %w", result, repairErr)
	}
	if err := json.Unmarshal([]byte(repairedJSON), &result); err != nil {
		return result, fmt.Errorf("failed to unmarshal repaired JSON as %T: %w (original content: %s, repaired: %s)", result, err, content, repairedJSON)
	}
	return result, nil
}
