package ftl

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
)

// ToResult converts any accepted return shape into the canonical response
// envelope. It is total and evaluates an ordered set of precedence rules:
//
//  1. an envelope passes through unchanged
//  2. a single-key {result: v} mapping becomes a structured envelope
//  3. a string becomes a text-only envelope
//  4. a mapping or sequence becomes a structured envelope whose text is its
//     pretty-printed JSON form
//  5. a number or boolean becomes a text-only envelope in canonical string form
//  6. nil becomes an empty text envelope
//  7. anything else is stringified into a text-only envelope
func ToResult(v any) *Result {
	switch value := v.(type) {
	case nil:
		return Text("")
	case *Result:
		return value
	case Result:
		return &value
	case string:
		return Text(value)
	case map[string]any:
		if _, ok := value["content"]; ok {
			if r, ok := decodeEnvelope(value); ok {
				return r
			}
		}
		if wrapped, ok := value["result"]; ok && len(value) == 1 {
			return WithStructured(stringify(wrapped), value)
		}
		return structured(value)
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Text("")
		}
		rv = rv.Elem()
		v = rv.Interface()
	}

	switch rv.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return Text(stringify(v))
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return structured(v)
	default:
		return Text(fmt.Sprint(v))
	}
}

// structured builds an envelope carrying the value both as pretty-printed
// JSON text and as structured content.
func structured(v any) *Result {
	text, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return Text(fmt.Sprint(v))
	}
	return WithStructured(string(text), v)
}

// decodeEnvelope converts an envelope-shaped mapping (one carrying a
// "content" key) into a Result.
func decodeEnvelope(m map[string]any) (*Result, bool) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, false
	}
	var r Result
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, false
	}
	return &r, true
}

// stringify renders a value in its canonical string form. Strings pass
// through unchanged.
func stringify(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(value), 'g', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}
