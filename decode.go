package ujson

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// Loads decodes a JSON document from a string.
func Loads(s string) (Value, error) {
	return Load(strings.NewReader(s))
}

// LoadBytes decodes a JSON document from a byte slice.
func LoadBytes(b []byte) (Value, error) {
	return Load(bytes.NewReader(b))
}

// Load decodes a single JSON document from r, reading one byte at a
// time. The input is not buffered up front, so r may be an incremental
// stream. Readers that do not implement io.ByteReader are wrapped in a
// bufio.Reader.
//
// Grammar violations are reported as *DecodeError. Read failures from r
// are returned as wrapped I/O errors instead.
func Load(r io.Reader) (Value, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	d := &decoder{r: br}
	if err := d.next(); err != nil {
		return Value{}, err
	}
	return d.decode()
}

type decoder struct {
	r   io.ByteReader
	cur byte
	eof bool
	buf []byte // scratch for string and number literals
}

func (d *decoder) next() error {
	b, err := d.r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			d.eof = true
			d.cur = 0
			return nil
		}
		return errors.Wrap(err, "ujson: read input")
	}
	d.cur = b
	return nil
}

// decode runs the main dispatch loop. Instead of recursive descent it
// keeps an explicit heap-allocated stack of open containers plus a
// single pending-key slot, so decoding depth is bounded by memory rather
// than by the goroutine call stack.
//
// Whitespace, commas and colons are all treated as skip tokens. This is
// deliberately more permissive than the strict JSON grammar (trailing
// commas are tolerated, separator placement is not validated) and
// matches the behavior of the runtimes this codec stays compatible with.
func (d *decoder) decode() (Value, error) {
	var (
		stack  []Value
		top    Value
		hasTop bool
		key    string
		hasKey bool
	)
loop:
	for {
		if d.eof {
			return Value{}, newDecodeError("unexpected end of input", ErrUnexpectedEnd)
		}
		cur := d.cur
		if err := d.next(); err != nil {
			return Value{}, err
		}
		var next Value
		enter := false
		switch {
		case cur == ',' || cur == ':' || isSpace(cur):
			continue
		case cur == 'n':
			if err := d.literal("ull"); err != nil {
				return Value{}, err
			}
			next = Null()
		case cur == 'f':
			if err := d.literal("alse"); err != nil {
				return Value{}, err
			}
			next = Bool(false)
		case cur == 't':
			if err := d.literal("rue"); err != nil {
				return Value{}, err
			}
			next = Bool(true)
		case cur == '"':
			s, err := d.scanString()
			if err != nil {
				return Value{}, err
			}
			next = String(s)
		case cur == '-' || isDigit(cur):
			v, err := d.scanNumber(cur)
			if err != nil {
				return Value{}, err
			}
			next = v
		case cur == '[':
			next = NewArray()
			enter = true
		case cur == '{':
			next = NewObject()
			enter = true
		case cur == ']' || cur == '}':
			if !hasTop {
				return Value{}, newDecodeError("unbalanced closing bracket", ErrSyntax)
			}
			if hasKey {
				return Value{}, newDecodeError("object key with no value", ErrSyntax)
			}
			if len(stack) == 0 {
				break loop
			}
			top = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			continue
		default:
			return Value{}, newDecodeError(fmt.Sprintf("unexpected character %q", cur), ErrSyntax)
		}

		if !hasTop {
			top = next
			hasTop = true
			if !enter {
				break loop
			}
			continue
		}
		switch top.kind {
		case KindArray:
			top.a.Append(next)
		case KindObject:
			if !hasKey {
				if next.kind != KindString {
					return Value{}, newDecodeError("object key is not a string", ErrNonStringKey)
				}
				key = next.s
				hasKey = true
				continue
			}
			top.o.Set(key, next)
			hasKey = false
		}
		if enter {
			stack = append(stack, top)
			top = next
		}
	}

	// Only whitespace may follow the first complete value.
	for !d.eof {
		if !isSpace(d.cur) {
			return Value{}, newDecodeError("extra data after top-level value", ErrTrailingData)
		}
		if err := d.next(); err != nil {
			return Value{}, err
		}
	}
	return top, nil
}

// literal matches the remainder of a keyword, case-sensitive.
func (d *decoder) literal(rest string) error {
	for i := 0; i < len(rest); i++ {
		if d.cur != rest[i] {
			return newDecodeError("invalid literal", ErrSyntax)
		}
		if err := d.next(); err != nil {
			return err
		}
	}
	return nil
}

// scanString consumes the contents of a string literal up to the closing
// quote, then resolves escape sequences. The cursor sits on the first
// byte after the opening quote when called.
func (d *decoder) scanString() (string, error) {
	raw := d.buf[:0]
	for {
		if d.eof {
			return "", newDecodeError("unterminated string", ErrUnexpectedEnd)
		}
		c := d.cur
		if c == '"' {
			if err := d.next(); err != nil {
				return "", err
			}
			break
		}
		if c == '\\' {
			if err := d.next(); err != nil {
				return "", err
			}
			if d.eof {
				return "", newDecodeError("unterminated string", ErrUnexpectedEnd)
			}
			raw = append(raw, '\\', d.cur)
			if err := d.next(); err != nil {
				return "", err
			}
			continue
		}
		raw = append(raw, c)
		if err := d.next(); err != nil {
			return "", err
		}
	}
	d.buf = raw
	return unescapeString(raw)
}

// unescapeString resolves the escape sequences in the raw contents of a
// string literal. Surrogate pairs written as two \uXXXX escapes are
// combined into a single scalar; a lone surrogate decodes to U+FFFD.
func unescapeString(raw []byte) (string, error) {
	if bytes.IndexByte(raw, '\\') < 0 {
		return string(raw), nil
	}
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); {
		c := raw[i]
		if c != '\\' {
			out = append(out, c)
			i++
			continue
		}
		// scanString guarantees a byte follows every backslash
		switch raw[i+1] {
		case '"':
			out = append(out, '"')
		case '\\':
			out = append(out, '\\')
		case '/':
			out = append(out, '/')
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'u':
			r, n, err := decodeUnicodeEscape(raw[i:])
			if err != nil {
				return "", err
			}
			out = utf8.AppendRune(out, r)
			i += n
			continue
		default:
			return "", newDecodeError(fmt.Sprintf("invalid escape character %q", raw[i+1]), ErrInvalidEscape)
		}
		i += 2
	}
	return string(out), nil
}

// decodeUnicodeEscape decodes one \uXXXX escape starting at raw[0],
// merging a following low-surrogate escape when present. It returns the
// decoded rune and the number of bytes consumed.
func decodeUnicodeEscape(raw []byte) (rune, int, error) {
	if len(raw) < 6 {
		return 0, 0, newDecodeError("incomplete unicode escape", ErrInvalidEscape)
	}
	r1, err := parseHex4(raw[2:6])
	if err != nil {
		return 0, 0, err
	}
	if !utf16.IsSurrogate(r1) {
		return r1, 6, nil
	}
	if len(raw) >= 12 && raw[6] == '\\' && raw[7] == 'u' {
		if r2, err := parseHex4(raw[8:12]); err == nil {
			if r := utf16.DecodeRune(r1, r2); r != utf8.RuneError {
				return r, 12, nil
			}
		}
	}
	return utf8.RuneError, 6, nil
}

func parseHex4(h []byte) (rune, error) {
	var r rune
	for _, c := range h {
		r <<= 4
		switch {
		case c >= '0' && c <= '9':
			r |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			r |= rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			r |= rune(c-'A') + 10
		default:
			return 0, newDecodeError("invalid hex digit in unicode escape", ErrInvalidEscape)
		}
	}
	return r, nil
}

// scanNumber accumulates a number literal starting with first and parses
// it as an integer unless a '.', 'e' or 'E' was seen. Integer literals
// that overflow int64 fall back to float64.
func (d *decoder) scanNumber(first byte) (Value, error) {
	raw := append(d.buf[:0], first)
	isFloat := false
scan:
	for !d.eof {
		c := d.cur
		switch {
		case c == '.' || c == 'e' || c == 'E':
			isFloat = true
		case c == '+' || c == '-' || isDigit(c):
		default:
			break scan
		}
		raw = append(raw, c)
		if err := d.next(); err != nil {
			return Value{}, err
		}
	}
	d.buf = raw
	lit := string(raw)
	if isFloat {
		f, err := strconv.ParseFloat(lit, 64)
		// out-of-range literals saturate to ±Inf, matching the
		// reference runtimes
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return Value{}, newDecodeError("invalid number literal "+strconv.Quote(lit), ErrInvalidNumber)
		}
		return Float(f), nil
	}
	i, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			if f, ferr := strconv.ParseFloat(lit, 64); ferr == nil || errors.Is(ferr, strconv.ErrRange) {
				return Float(f), nil
			}
		}
		return Value{}, newDecodeError("invalid number literal "+strconv.Quote(lit), ErrInvalidNumber)
	}
	return Int(i), nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
