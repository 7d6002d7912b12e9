package jsontable

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Value is a node of a parsed JSON document. It is implemented by exactly
// three types: [*Object], [Array], and [Scalar].
type Value interface {
	value()
}

// Member is a single key/value entry of an [Object].
type Member struct {
	Key   string
	Value Value
}

// Object is a JSON object whose members keep their document order.
type Object struct {
	Members []Member
}

// Array is a JSON array.
type Array []Value

// ScalarKind identifies the JSON type of a [Scalar].
type ScalarKind int

const (
	KindString ScalarKind = iota
	KindNumber
	KindBool
	KindNull
)

// Scalar is a JSON leaf. Text holds the value as it is rendered in a cell.
type Scalar struct {
	Kind ScalarKind
	Text string
}

func (*Object) value() {}
func (Array) value()   {}
func (Scalar) value()  {}

// NewObject returns an object holding members in the given order.
func NewObject(members ...Member) *Object {
	return &Object{Members: members}
}

// Set appends a member, or replaces the value of an existing key in place.
func (o *Object) Set(key string, v Value) {
	for i := range o.Members {
		if o.Members[i].Key == key {
			o.Members[i].Value = v
			return
		}
	}
	o.Members = append(o.Members, Member{Key: key, Value: v})
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	for _, m := range o.Members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Len returns the number of members.
func (o *Object) Len() int { return len(o.Members) }

// String returns a string scalar.
func String(s string) Scalar { return Scalar{Kind: KindString, Text: s} }

// Number returns a number scalar carrying its source text, e.g. "1.50".
func Number(text string) Scalar { return Scalar{Kind: KindNumber, Text: text} }

// Bool returns a boolean scalar.
func Bool(b bool) Scalar { return Scalar{Kind: KindBool, Text: strconv.FormatBool(b)} }

// Null returns the null scalar.
func Null() Scalar { return Scalar{Kind: KindNull, Text: "null"} }

// String returns the cell text of the scalar.
func (s Scalar) String() string { return s.Text }

// Records normalizes a document into the record sequence consumed by
// [Flatten]. An [Array] yields its elements; any other value becomes a
// one-element sequence.
func Records(v Value) []Value {
	if arr, ok := v.(Array); ok {
		return arr
	}
	if v == nil {
		return nil
	}
	return []Value{v}
}

// FromAny converts a generic Go value, as produced by decoding JSON or YAML
// into an any, into a [Value]. Map keys are sorted because Go maps carry no
// order. Use [Decode] to keep the document's own key order.
func FromAny(v any) Value {
	switch val := v.(type) {
	case nil:
		return Null()
	case Value:
		return val
	case string:
		return String(val)
	case bool:
		return Bool(val)
	case float64:
		return Number(strconv.FormatFloat(val, 'f', -1, 64))
	case float32:
		return Number(strconv.FormatFloat(float64(val), 'f', -1, 32))
	case int:
		return Number(strconv.Itoa(val))
	case int64:
		return Number(strconv.FormatInt(val, 10))
	case uint64:
		return Number(strconv.FormatUint(val, 10))
	case json.Number:
		return Number(val.String())
	case fmt.Stringer:
		return String(val.String())
	case []any:
		arr := make(Array, len(val))
		for i, e := range val {
			arr[i] = FromAny(e)
		}
		return arr
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := &Object{Members: make([]Member, 0, len(keys))}
		for _, k := range keys {
			obj.Members = append(obj.Members, Member{Key: k, Value: FromAny(val[k])})
		}
		return obj
	case map[any]any:
		m := make(map[string]any, len(val))
		for k, e := range val {
			m[fmt.Sprint(k)] = e
		}
		return FromAny(m)
	default:
		return String(fmt.Sprint(val))
	}
}
