package resolve

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/leofalp/salvage/core/sanitize"
	"github.com/leofalp/salvage/internal/utils"
)

// As parses raw model output into the specified type T. For primitive
// types (string, bool, int, uint, float), it performs direct conversion
// on the cleaned text. For complex types (structs, maps, slices), it
// runs the full recovery chain and unmarshals the recovered value.
//
// Example usage:
//
//	type Review struct {
//	    Rating  int    `json:"rating"`
//	    Summary string `json:"summary"`
//	}
//
//	// Strict JSON parses directly
//	review, err := resolve.As[Review](`{"rating": 5, "summary": "great"}`)
//
//	// Python-literal output is recovered first
//	review, err := resolve.As[Review](`{'rating': 5, 'summary': 'great'}`)
//
//	// Primitive types convert directly
//	num, err := resolve.As[int]("42")
func As[T any](raw string) (T, error) {
	var result T

	cleaned := sanitize.Clean(raw)

	switch reflect.TypeFor[T]().Kind() {
	case reflect.String:
		reflect.ValueOf(&result).Elem().SetString(cleaned)
		return result, nil

	case reflect.Bool:
		val, err := strconv.ParseBool(cleaned)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as bool: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetBool(val)
		return result, nil

	case reflect.Float32, reflect.Float64:
		val, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as float: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetFloat(val)
		return result, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		val, err := strconv.ParseInt(cleaned, 10, 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as int: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetInt(val)
		return result, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		val, err := strconv.ParseUint(cleaned, 10, 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as uint: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetUint(val)
		return result, nil

	default:
		// For structs, slices, maps, and other complex types, recover a
		// value through the fallback chain and re-decode it into T.
		value := Value(raw)
		if value == nil {
			return result, fmt.Errorf("failed to recover a JSON value from content: %s", utils.TruncateString(raw, 200))
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return result, fmt.Errorf("failed to re-encode recovered value: %w", err)
		}
		if err := json.Unmarshal(encoded, &result); err != nil {
			return result, fmt.Errorf("failed to unmarshal recovered value as %T: %w", result, err)
		}
		return result, nil
	}
}
