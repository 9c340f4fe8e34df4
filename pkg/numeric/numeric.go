// Package numeric converts loosely typed JSON values into bounded numbers.
//
// Upstream clients send form data where any field may arrive as a number, a
// numeric string, a boolean, null, or garbage. Every function here is total:
// conversion failures yield the caller's default, never an error or a panic.
package numeric

import (
	"strconv"
	"strings"
)

// Float returns the numeric interpretation of v, or def when v has none.
//
// Strings are parsed after trimming whitespace; "NaN" and "Inf" parse to their
// IEEE values and are left for downstream finiteness checks to reject, which
// mirrors how the upstream form behaves. Booleans map to 1 and 0.
func Float(v interface{}, def float64) float64 {
	f, ok := parse(v)
	if !ok {
		return def
	}
	return f
}

// TryFloat is Float without a fallback: it reports whether v had a numeric
// interpretation at all. Callers that must distinguish "absent or garbage"
// from "present but out of range" use this instead of Float.
func TryFloat(v interface{}) (float64, bool) {
	return parse(v)
}

// Int is Float with the result truncated toward zero.
func Int(v interface{}, def int) int {
	f, ok := parse(v)
	if !ok {
		return def
	}
	return int(f)
}

// Bool interprets v as a flag. Strings go through strconv.ParseBool, numbers
// are true when non-zero, anything else yields def.
func Bool(v interface{}, def bool) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		if err != nil {
			return def
		}
		return parsed
	}
	f, ok := parse(v)
	if !ok {
		return def
	}
	return f != 0
}

// Clamp bounds v to [low, high] inclusive.
func Clamp(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

func parse(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
