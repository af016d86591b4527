package ujson

import (
	"fmt"
	"math"
	"sort"
)

// Kind identifies which JSON variant a Value holds.
type Kind uint8

// List of supported value kinds. KindInvalid denotes the zero Value,
// which is not a legal JSON value.
const (
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "invalid"
}

// IsNumber returns true if k is either an integer or a float.
func (k Kind) IsNumber() bool {
	return k == KindInt || k == KindFloat
}

// A Value is a dynamically-typed JSON value: one of null, bool, integer,
// float, string, array or object. Integers and floats are distinct kinds;
// the decoder picks one based on the literal, never on magnitude.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	a    *Array
	o    *Object
}

// Null returns the null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Int returns an integer value.
func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// Float returns a floating point value.
func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// NewArray returns a value holding a new empty array.
func NewArray() Value {
	return Value{kind: KindArray, a: &Array{}}
}

// NewObject returns a value holding a new empty object.
func NewObject() Value {
	return Value{kind: KindObject, o: &Object{}}
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean payload, or false if the value is not a bool.
func (v Value) Bool() bool { return v.b }

// Int returns the integer payload, or 0 if the value is not an integer.
func (v Value) Int() int64 { return v.i }

// Float returns the float payload, or 0 if the value is not a float.
func (v Value) Float() float64 { return v.f }

// Num returns the numeric payload of an integer or float value as a
// float64, or 0 for non-numeric values.
func (v Value) Num() float64 {
	if v.kind == KindInt {
		return float64(v.i)
	}
	return v.f
}

// Str returns the string payload, or "" if the value is not a string.
func (v Value) Str() string { return v.s }

// Array returns the underlying array, or nil if the value is not an array.
func (v Value) Array() *Array { return v.a }

// Object returns the underlying object, or nil if the value is not an object.
func (v Value) Object() *Object { return v.o }

// String renders the value as compact JSON. Values that cannot be
// encoded (non-finite floats) render as their kind name.
func (v Value) String() string {
	s, err := Dumps(v, nil)
	if err != nil {
		return "<" + v.kind.String() + ">"
	}
	return s
}

// MarshalJSON implements json.Marshaler using the package encoder.
func (v Value) MarshalJSON() ([]byte, error) {
	s, err := Dumps(v, nil)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalJSON implements json.Unmarshaler using the package decoder.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec, err := LoadBytes(data)
	if err != nil {
		return err
	}
	*v = dec
	return nil
}

// Interface returns the value as native Go data: nil, bool, int64,
// float64, string, []any or map[string]any. Object key order is lost in
// the map form.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindArray:
		out := make([]any, v.a.Len())
		for i, item := range v.a.items {
			out[i] = item.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, v.o.Len())
		for _, m := range v.o.members {
			out[m.key] = m.val.Interface()
		}
		return out
	}
	return nil
}

// FromInterface builds a Value from native Go data. Supported inputs are
// nil, booleans, integer and float types, strings, []any, map[string]any,
// map[any]any with string keys, and Value itself. Map keys are inserted
// in sorted order so the result is deterministic.
func FromInterface(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		if t.kind == KindInvalid {
			return Value{}, newEncodeError("invalid zero value", ErrUnsupportedType)
		}
		return t, nil
	case bool:
		return Bool(t), nil
	case int:
		return Int(int64(t)), nil
	case int8:
		return Int(int64(t)), nil
	case int16:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint:
		return FromInterface(uint64(t))
	case uint8:
		return Int(int64(t)), nil
	case uint16:
		return Int(int64(t)), nil
	case uint32:
		return Int(int64(t)), nil
	case uint64:
		if t > math.MaxInt64 {
			return Float(float64(t)), nil
		}
		return Int(int64(t)), nil
	case float32:
		return Float(float64(t)), nil
	case float64:
		return Float(t), nil
	case string:
		return String(t), nil
	case []any:
		arr := NewArray()
		for _, item := range t {
			v, err := FromInterface(item)
			if err != nil {
				return Value{}, err
			}
			arr.a.Append(v)
		}
		return arr, nil
	case map[string]any:
		obj := NewObject()
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			v, err := FromInterface(t[k])
			if err != nil {
				return Value{}, err
			}
			obj.o.Set(k, v)
		}
		return obj, nil
	case map[any]any:
		obj := NewObject()
		keys := make([]string, 0, len(t))
		for k := range t {
			s, ok := k.(string)
			if !ok {
				return Value{}, newEncodeError("object key is not a string", ErrNonStringKey)
			}
			keys = append(keys, s)
		}
		sort.Strings(keys)
		for _, k := range keys {
			v, err := FromInterface(t[k])
			if err != nil {
				return Value{}, err
			}
			obj.o.Set(k, v)
		}
		return obj, nil
	}
	return Value{}, newEncodeError(fmt.Sprintf("unsupported type %T", x), ErrUnsupportedType)
}

// Equal reports deep equality between two values. Integer and float
// values never compare equal to each other, even when numerically equal.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindInt:
		return a.i == b.i
	case KindFloat:
		return a.f == b.f
	case KindString:
		return a.s == b.s
	case KindArray:
		if a.a.Len() != b.a.Len() {
			return false
		}
		for i := range a.a.items {
			if !Equal(a.a.items[i], b.a.items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if a.o.Len() != b.o.Len() {
			return false
		}
		for _, m := range a.o.members {
			other, ok := b.o.Get(m.key)
			if !ok || !Equal(m.val, other) {
				return false
			}
		}
		return true
	}
	return false
}

// An Array is an ordered sequence of values.
type Array struct {
	items []Value
}

// Append adds a value at the end of the array.
func (a *Array) Append(v Value) {
	a.items = append(a.items, v)
}

// Len returns the number of elements.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.items)
}

// At returns the element at index i.
func (a *Array) At(i int) (Value, bool) {
	if a == nil || i < 0 || i >= len(a.items) {
		return Value{}, false
	}
	return a.items[i], true
}

// Iterate calls fn for each element in order. Iteration stops at the
// first error, which is returned.
func (a *Array) Iterate(fn func(i int, v Value) error) error {
	if a == nil {
		return nil
	}
	for i, v := range a.items {
		if err := fn(i, v); err != nil {
			return err
		}
	}
	return nil
}

type objectMember struct {
	key string
	val Value
}

// An Object is a string-keyed mapping that preserves insertion order.
// Setting an existing key replaces its value in place; the key keeps the
// position of its first insertion.
type Object struct {
	members []objectMember
	index   map[string]int
}

// Set stores v under key k. The last write for a given key wins.
func (o *Object) Set(k string, v Value) {
	if i, ok := o.index[k]; ok {
		o.members[i].val = v
		return
	}
	if o.index == nil {
		o.index = make(map[string]int)
	}
	o.index[k] = len(o.members)
	o.members = append(o.members, objectMember{key: k, val: v})
}

// Get returns the value stored under key k.
func (o *Object) Get(k string) (Value, bool) {
	if o == nil {
		return Value{}, false
	}
	i, ok := o.index[k]
	if !ok {
		return Value{}, false
	}
	return o.members[i].val, true
}

// Has reports whether key k is present.
func (o *Object) Has(k string) bool {
	if o == nil {
		return false
	}
	_, ok := o.index[k]
	return ok
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.members)
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.key
	}
	return keys
}

// Delete removes key k and reports whether it was present.
func (o *Object) Delete(k string) bool {
	if o == nil {
		return false
	}
	i, ok := o.index[k]
	if !ok {
		return false
	}
	o.members = append(o.members[:i], o.members[i+1:]...)
	delete(o.index, k)
	for j := i; j < len(o.members); j++ {
		o.index[o.members[j].key] = j
	}
	return true
}

// Iterate calls fn for each key/value pair in insertion order. Iteration
// stops at the first error, which is returned.
func (o *Object) Iterate(fn func(k string, v Value) error) error {
	if o == nil {
		return nil
	}
	for _, m := range o.members {
		if err := fn(m.key, m.val); err != nil {
			return err
		}
	}
	return nil
}
