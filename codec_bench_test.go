package neon

import "testing"

func benchmarkUsers(n int) Value {
	rows := make([]Value, n)
	for i := 0; i < n; i++ {
		o := NewObject()
		o.Set("id", Number(float64(i)))
		o.Set("name", Str("user"))
		o.Set("active", Bool(i%2 == 0))
		rows[i] = ObjectValue(o)
	}
	return Array(rows)
}

func BenchmarkEncode_TabularUsers(b *testing.B) {
	v := benchmarkUsers(1000)
	enc := NewEncoder(CompactEncodeOptions())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := enc.Encode(v); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode_TabularUsers(b *testing.B) {
	v := benchmarkUsers(1000)
	enc := NewEncoder(CompactEncodeOptions())
	text, err := enc.Encode(v)
	if err != nil {
		b.Fatal(err)
	}
	dec := NewDecoder(DefaultDecodeOptions())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dec.Decode(text); err != nil {
			b.Fatal(err)
		}
	}
}
