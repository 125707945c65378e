package faceit

import (
	"encoding/json"
	"math"
)

// Document is one decoded JSON object as returned by the API. Single-resource
// operations hand it back untouched. The accessors never fail: a missing key,
// a null value or a value of another JSON type all report ok=false.
type Document map[string]any

func (d Document) Get(key string) (any, bool) {
	if d == nil {
		return nil, false
	}
	value, ok := d[key]
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

func (d Document) String(key string) (string, bool) {
	value, ok := d.Get(key)
	if !ok {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}

func (d Document) Float(key string) (float64, bool) {
	value, ok := d.Get(key)
	if !ok {
		return 0, false
	}
	switch typed := value.(type) {
	case float64:
		return typed, true
	case float32:
		return float64(typed), true
	case int:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case json.Number:
		f, err := typed.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// Int returns integral numbers only; 1.5 reports ok=false.
func (d Document) Int(key string) (int64, bool) {
	value, ok := d.Get(key)
	if !ok {
		return 0, false
	}
	switch typed := value.(type) {
	case int:
		return int64(typed), true
	case int64:
		return typed, true
	case float64:
		if typed != math.Trunc(typed) || typed >= math.MaxInt64 || typed < math.MinInt64 {
			return 0, false
		}
		return int64(typed), true
	case json.Number:
		n, err := typed.Int64()
		return n, err == nil
	default:
		return 0, false
	}
}

func (d Document) Bool(key string) (bool, bool) {
	value, ok := d.Get(key)
	if !ok {
		return false, false
	}
	b, ok := value.(bool)
	return b, ok
}

func (d Document) Map(key string) (Document, bool) {
	value, ok := d.Get(key)
	if !ok {
		return nil, false
	}
	return asObject(value)
}

func (d Document) Slice(key string) ([]any, bool) {
	value, ok := d.Get(key)
	if !ok {
		return nil, false
	}
	items, ok := value.([]any)
	return items, ok
}

// Strings returns ok=false when any element is not a string.
func (d Document) Strings(key string) ([]string, bool) {
	items, ok := d.Slice(key)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// Documents returns the object elements of an array field, skipping anything
// that is not an object.
func (d Document) Documents(key string) ([]Document, bool) {
	items, ok := d.Slice(key)
	if !ok {
		return nil, false
	}
	out := make([]Document, 0, len(items))
	for _, item := range items {
		if doc, ok := asObject(item); ok {
			out = append(out, doc)
		}
	}
	return out, true
}

func asObject(value any) (Document, bool) {
	switch typed := value.(type) {
	case Document:
		return typed, true
	case map[string]any:
		return Document(typed), true
	default:
		return nil, false
	}
}
