package entity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Kind tags the shape held by a Value.
type Kind int

const (
	KindNull Kind = iota // absent or JSON null
	KindString
	KindList
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Field is one key of a Map value.
type Field struct {
	Key   string
	Value Value
}

// Value is an any-shaped JSON value as returned by a model. Scalars (strings,
// numbers, booleans) are all held as their string form; maps keep the key
// order they were decoded in. The zero Value is null.
type Value struct {
	kind   Kind
	str    string
	items  []Value
	fields []Field
}

func String(s string) Value { return Value{kind: KindString, str: s} }

func List(items ...Value) Value { return Value{kind: KindList, items: items} }

func Map(fields ...Field) Value { return Value{kind: KindMap, fields: fields} }

func (v Value) Kind() Kind     { return v.kind }
func (v Value) IsNull() bool   { return v.kind == KindNull }
func (v Value) Str() string    { return v.str }
func (v Value) Items() []Value { return v.items }
func (v Value) Fields() []Field {
	return v.fields
}

// Get looks up key in a Map value. ok is false for missing keys and non-maps.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMap {
		return Value{}, false
	}
	for _, f := range v.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Value{}, false
}

// String renders v for display: scalars as-is, null as "", lists joined with
// ", " and maps as "key: value" pairs joined with ", ".
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindString:
		return v.str
	case KindList:
		parts := make([]string, 0, len(v.items))
		for _, it := range v.items {
			parts = append(parts, it.String())
		}
		return strings.Join(parts, ", ")
	case KindMap:
		parts := make([]string, 0, len(v.fields))
		for _, f := range v.fields {
			parts = append(parts, f.Key+": "+f.Value.String())
		}
		return strings.Join(parts, ", ")
	}
	return ""
}

// ParseJSON decodes a single JSON document into a Value, keeping object key
// order. Trailing non-whitespace data is an error.
func ParseJSON(data []byte) (Value, error) {
	if !json.Valid(data) {
		var probe any
		if err := json.Unmarshal(data, &probe); err != nil {
			return Value{}, err
		}
		return Value{}, fmt.Errorf("invalid JSON")
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return Value{}, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, fmt.Errorf("unexpected data after top-level value")
	}
	return v, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	out, err := ParseJSON(data)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return Value{}, fmt.Errorf("unexpected delimiter %q", t)
		}
	case string:
		return String(t), nil
	case json.Number:
		return String(t.String()), nil
	case bool:
		return String(strconv.FormatBool(t)), nil
	case nil:
		return Value{}, nil
	default:
		return Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeObject(dec *json.Decoder) (Value, error) {
	var fields []Field
	index := map[string]int{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key is %T, want string", tok)
		}
		item, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		// duplicate keys: last value wins, first position kept
		if i, seen := index[key]; seen {
			fields[i].Value = item
			continue
		}
		index[key] = len(fields)
		fields = append(fields, Field{Key: key, Value: item})
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return Map(fields...), nil
}

func decodeArray(dec *json.Decoder) (Value, error) {
	items := []Value{}
	for dec.More() {
		item, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return List(items...), nil
}
