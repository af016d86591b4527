package ujson

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// EncodeOptions controls the output format of Dumps and Dump.
// The zero value produces compact single-line output with keys in
// insertion order.
type EncodeOptions struct {
	// Indent is the number of spaces added per nesting level. Zero or
	// negative means compact output.
	Indent int
	// SortKeys emits object keys in byte-wise ascending order instead
	// of insertion order.
	SortKeys bool
}

// Dumps encodes v as JSON text. v may be a Value or native Go data:
// nil, booleans, integer and float types, strings, []any, []Value,
// map[string]any, and map[any]any with string keys. Native maps are
// emitted in sorted-key order; use *Object for insertion-ordered output.
//
// Non-finite floats, maps with non-string keys and unsupported types
// are reported as *EncodeError.
func Dumps(v any, opts *EncodeOptions) (string, error) {
	e := newEncoder(opts)
	if err := e.encode(v, 0); err != nil {
		return "", err
	}
	return e.buf.String(), nil
}

// Dump encodes v as JSON text and writes it to w. The value is encoded
// in full before anything is written, so a failed encode leaves w
// untouched.
func Dump(v any, w io.Writer, opts *EncodeOptions) error {
	e := newEncoder(opts)
	if err := e.encode(v, 0); err != nil {
		return err
	}
	if _, err := w.Write(e.buf.Bytes()); err != nil {
		return errors.Wrap(err, "ujson: write output")
	}
	return nil
}

type encoder struct {
	buf      bytes.Buffer
	indent   int
	sortKeys bool
	itemSep  string // separator between elements in compact mode
	keySep   string // separator between key and value
}

func newEncoder(opts *EncodeOptions) *encoder {
	e := &encoder{itemSep: ", ", keySep: ": "}
	if opts != nil {
		if opts.Indent > 0 {
			e.indent = opts.Indent
		}
		e.sortKeys = opts.SortKeys
	}
	return e
}

type kv struct {
	k string
	v any
}

func (e *encoder) encode(v any, level int) error {
	switch x := v.(type) {
	case Value:
		return e.encodeValue(x, level)
	case nil:
		e.buf.WriteString("null")
	case bool:
		e.writeBool(x)
	case string:
		e.writeString(x)
	case int:
		e.writeInt(int64(x))
	case int8:
		e.writeInt(int64(x))
	case int16:
		e.writeInt(int64(x))
	case int32:
		e.writeInt(int64(x))
	case int64:
		e.writeInt(x)
	case uint:
		e.writeUint(uint64(x))
	case uint8:
		e.writeUint(uint64(x))
	case uint16:
		e.writeUint(uint64(x))
	case uint32:
		e.writeUint(uint64(x))
	case uint64:
		e.writeUint(x)
	case float32:
		return e.writeFloat(float64(x))
	case float64:
		return e.writeFloat(x)
	case []any:
		return e.encodeArray(len(x), func(i int) any { return x[i] }, level)
	case []Value:
		return e.encodeArray(len(x), func(i int) any { return x[i] }, level)
	case *Array:
		return e.encodeArray(x.Len(), func(i int) any { return x.items[i] }, level)
	case map[string]any:
		kvs := make([]kv, 0, len(x))
		for k, vv := range x {
			kvs = append(kvs, kv{k, vv})
		}
		sort.Slice(kvs, func(i, j int) bool { return kvs[i].k < kvs[j].k })
		return e.encodeObject(kvs, level)
	case map[any]any:
		kvs := make([]kv, 0, len(x))
		for k, vv := range x {
			s, ok := k.(string)
			if !ok {
				return newEncodeError(fmt.Sprintf("object key %v is not a string", k), ErrNonStringKey)
			}
			kvs = append(kvs, kv{s, vv})
		}
		sort.Slice(kvs, func(i, j int) bool { return kvs[i].k < kvs[j].k })
		return e.encodeObject(kvs, level)
	case *Object:
		return e.encodeObjectMembers(x, level)
	default:
		return newEncodeError(fmt.Sprintf("object of type %T", v), ErrUnsupportedType)
	}
	return nil
}

func (e *encoder) encodeValue(v Value, level int) error {
	switch v.kind {
	case KindNull:
		e.buf.WriteString("null")
	case KindBool:
		e.writeBool(v.b)
	case KindInt:
		e.writeInt(v.i)
	case KindFloat:
		return e.writeFloat(v.f)
	case KindString:
		e.writeString(v.s)
	case KindArray:
		return e.encodeArray(v.a.Len(), func(i int) any { return v.a.items[i] }, level)
	case KindObject:
		return e.encodeObjectMembers(v.o, level)
	default:
		return newEncodeError("invalid zero value", ErrUnsupportedType)
	}
	return nil
}

func (e *encoder) encodeArray(n int, item func(i int) any, level int) error {
	e.buf.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			if e.indent > 0 {
				e.buf.WriteByte(',')
			} else {
				e.buf.WriteString(e.itemSep)
			}
		}
		if e.indent > 0 {
			e.writeIndent(level + 1)
		}
		if err := e.encode(item(i), level+1); err != nil {
			return err
		}
	}
	if n > 0 && e.indent > 0 {
		e.writeIndent(level)
	}
	e.buf.WriteByte(']')
	return nil
}

func (e *encoder) encodeObjectMembers(o *Object, level int) error {
	kvs := make([]kv, o.Len())
	for i, m := range o.members {
		kvs[i] = kv{m.key, m.val}
	}
	return e.encodeObject(kvs, level)
}

func (e *encoder) encodeObject(kvs []kv, level int) error {
	if e.sortKeys {
		sort.Slice(kvs, func(i, j int) bool { return kvs[i].k < kvs[j].k })
	}
	e.buf.WriteByte('{')
	for i, p := range kvs {
		if i > 0 {
			if e.indent > 0 {
				e.buf.WriteByte(',')
			} else {
				e.buf.WriteString(e.itemSep)
			}
		}
		if e.indent > 0 {
			e.writeIndent(level + 1)
		}
		e.writeString(p.k)
		e.buf.WriteString(e.keySep)
		if err := e.encode(p.v, level+1); err != nil {
			return err
		}
	}
	if len(kvs) > 0 && e.indent > 0 {
		e.writeIndent(level)
	}
	e.buf.WriteByte('}')
	return nil
}

func (e *encoder) writeIndent(level int) {
	e.buf.WriteByte('\n')
	for i := 0; i < e.indent*level; i++ {
		e.buf.WriteByte(' ')
	}
}

func (e *encoder) writeBool(b bool) {
	if b {
		e.buf.WriteString("true")
	} else {
		e.buf.WriteString("false")
	}
}

func (e *encoder) writeInt(i int64) {
	e.buf.WriteString(strconv.FormatInt(i, 10))
}

func (e *encoder) writeUint(u uint64) {
	e.buf.WriteString(strconv.FormatUint(u, 10))
}

// writeFloat formats f with the shortest representation that survives a
// round trip, keeping a trailing ".0" on integral values so the float
// kind is preserved when the output is decoded again.
func (e *encoder) writeFloat(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return newEncodeError("non-finite float", ErrOutOfRangeFloat)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.IndexAny(s, ".eE") < 0 {
		s += ".0"
	}
	e.buf.WriteString(s)
	return nil
}

const hexDigits = "0123456789abcdef"

// writeString emits s as a quoted JSON string. Only the two quoting
// characters, the named control escapes and bytes below 0x20 are
// escaped; everything else, including non-ASCII text, passes through.
func (e *encoder) writeString(s string) {
	e.buf.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			e.buf.WriteString(`\"`)
		case '\\':
			e.buf.WriteString(`\\`)
		case '\n':
			e.buf.WriteString(`\n`)
		case '\r':
			e.buf.WriteString(`\r`)
		case '\t':
			e.buf.WriteString(`\t`)
		case '\b':
			e.buf.WriteString(`\b`)
		case '\f':
			e.buf.WriteString(`\f`)
		default:
			if c < 0x20 {
				e.buf.WriteString(`\u00`)
				e.buf.WriteByte(hexDigits[c>>4])
				e.buf.WriteByte(hexDigits[c&0xf])
			} else {
				e.buf.WriteByte(c)
			}
		}
	}
	e.buf.WriteByte('"')
}
