package decoder

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"dress-diary/models"
)

// coercion is one attempt at reading a loosely-typed value as T
type coercion[T any] func(v interface{}) (T, bool)

// firstOf runs the attempts in order; the first one that matches wins
func firstOf[T any](v interface{}, attempts ...coercion[T]) (T, bool) {
	for _, attempt := range attempts {
		if out, ok := attempt(v); ok {
			return out, true
		}
	}
	var zero T
	return zero, false
}

// boxedNumber reads any numeric representation other than the native one as float64
func boxedNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func nativeInt(v interface{}) (int, bool) {
	n, ok := v.(int)
	return n, ok
}

// boxedInt accepts any numeric type, truncating fractions towards zero.
// Values outside the int range carry no identity.
func boxedInt(v interface{}) (int, bool) {
	if n, ok := v.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
	}
	f, ok := boxedNumber(v)
	if !ok || math.IsNaN(f) || f < math.MinInt || f >= math.MaxInt {
		return 0, false
	}
	return int(f), true
}

func nativeFloat(v interface{}) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}

func boxedFloat(v interface{}) (float64, bool) {
	return boxedNumber(v)
}

// commaDecimalString parses "42,5" the same as "42.5"
func commaDecimalString(v interface{}) (float64, bool) {
	s, ok := v.(string)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func nativeString(v interface{}) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// oneDecimalString renders a boxed number as the wire string form, e.g. 80 -> "80.0"
func oneDecimalString(v interface{}) (string, bool) {
	f, ok := boxedNumber(v)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%.1f", f), true
}

func nativeBool(v interface{}) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// numericTruthiness treats any non-zero number as true
func numericTruthiness(v interface{}) (bool, bool) {
	f, ok := boxedNumber(v)
	if !ok {
		return false, false
	}
	return f != 0, true
}

func stringSlice(v interface{}) ([]string, bool) {
	s, ok := v.([]string)
	return s, ok
}

// interfaceStringSlice accepts a JSON-decoded array only when every element is a string
func interfaceStringSlice(v interface{}) ([]string, bool) {
	raw, ok := v.([]interface{})
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(raw))
	for _, elem := range raw {
		s, ok := elem.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

func intSlice(v interface{}) ([]int, bool) {
	s, ok := v.([]int)
	return s, ok
}

// boxedIntSlice accepts typed numeric slices and JSON arrays; a single
// non-numeric element invalidates the whole sequence
func boxedIntSlice(v interface{}) ([]int, bool) {
	var raw []interface{}
	switch s := v.(type) {
	case []int64:
		out := make([]int, len(s))
		for i, n := range s {
			out[i] = int(n)
		}
		return out, true
	case []int32:
		out := make([]int, len(s))
		for i, n := range s {
			out[i] = int(n)
		}
		return out, true
	case []float64:
		raw = make([]interface{}, len(s))
		for i, n := range s {
			raw[i] = n
		}
	case []interface{}:
		raw = s
	default:
		return nil, false
	}
	out := make([]int, 0, len(raw))
	for _, elem := range raw {
		n, ok := firstOf[int](elem, nativeInt, boxedInt)
		if !ok {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}

func bytesValue(v interface{}) ([]byte, bool) {
	b, ok := v.([]byte)
	return b, ok
}

func asMap(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case models.Record:
		return m, true
	case map[string]interface{}:
		return m, true
	}
	return nil, false
}

// nestedRecords accepts the shapes a list of sub-records can take;
// one element that is not a record invalidates the whole list
func nestedRecords(v interface{}) ([]map[string]interface{}, bool) {
	switch s := v.(type) {
	case []models.Record:
		out := make([]map[string]interface{}, len(s))
		for i, r := range s {
			out[i] = r
		}
		return out, true
	case []map[string]interface{}:
		return s, true
	case []interface{}:
		out := make([]map[string]interface{}, 0, len(s))
		for _, elem := range s {
			m, ok := asMap(elem)
			if !ok {
				return nil, false
			}
			out = append(out, m)
		}
		return out, true
	}
	return nil, false
}
