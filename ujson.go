// Package ujson implements a CPython-compatible JSON codec built around
// a dynamically-typed value model.
//
// Loads, LoadBytes and Load decode JSON text into a Value, a closed sum
// over null, bool, integer, float, string, array and object. The decoder
// is single-pass and non-recursive: it keeps its own container stack on
// the heap, so arbitrarily deep documents decode without exhausting the
// call stack. Dumps and Dump serialize a Value (or plain Go data) back
// to text, with optional indentation and key sorting.
//
// Like the runtimes it stays compatible with, the decoder treats
// whitespace, commas and colons uniformly as separators, so it accepts
// slightly more than the strict JSON grammar (trailing commas in
// particular). It never accepts malformed literals, strings or numbers.
package ujson

// Valid reports whether s is a decodable JSON document.
func Valid(s string) bool {
	_, err := Loads(s)
	return err == nil
}

// Pretty reformats a JSON document with the given indentation width.
// Non-positive indent defaults to 4 spaces.
func Pretty(s string, indent int) (string, error) {
	v, err := Loads(s)
	if err != nil {
		return "", err
	}
	if indent <= 0 {
		indent = 4
	}
	return Dumps(v, &EncodeOptions{Indent: indent})
}

// Minify reformats a JSON document onto a single line with no
// insignificant whitespace at all, tighter than compact Dumps output.
func Minify(s string) (string, error) {
	v, err := Loads(s)
	if err != nil {
		return "", err
	}
	e := &encoder{itemSep: ",", keySep: ":"}
	if err := e.encode(v, 0); err != nil {
		return "", err
	}
	return e.buf.String(), nil
}
