package ujson

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/buger/jsonparser"
)

// benchDoc matches the document used by the upstream parser benchmarks.
var benchDoc = []byte(`{"users": [{"name": "Alice", "age": 30}, {"name": "Bob", "age": 25}], "count": 2}`)

func BenchmarkLoads(b *testing.B) {
	b.SetBytes(int64(len(benchDoc)))
	for i := 0; i < b.N; i++ {
		if _, err := LoadBytes(benchDoc); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLoads_Stdlib(b *testing.B) {
	b.SetBytes(int64(len(benchDoc)))
	for i := 0; i < b.N; i++ {
		var v any
		if err := json.Unmarshal(benchDoc, &v); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLoads_JSONParser(b *testing.B) {
	b.SetBytes(int64(len(benchDoc)))
	for i := 0; i < b.N; i++ {
		if _, err := jsonparser.GetString(benchDoc, "users", "[0]", "name"); err != nil {
			b.Fatal(err)
		}
		if _, err := jsonparser.GetInt(benchDoc, "count"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLoads_DeepNesting(b *testing.B) {
	input := strings.Repeat("[", 10000) + strings.Repeat("]", 10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Loads(input); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDumps(b *testing.B) {
	v, err := LoadBytes(benchDoc)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Dumps(v, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDumps_Indent(b *testing.B) {
	v, err := LoadBytes(benchDoc)
	if err != nil {
		b.Fatal(err)
	}
	opts := &EncodeOptions{Indent: 2, SortKeys: true}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Dumps(v, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDumps_Stdlib(b *testing.B) {
	var v any
	if err := json.Unmarshal(benchDoc, &v); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := json.Marshal(v); err != nil {
			b.Fatal(err)
		}
	}
}
