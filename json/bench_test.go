package json_test

import (
	"bytes"
	"testing"

	"github.com/TerameTechYT/luadata"
	"github.com/TerameTechYT/luadata/json"
)

var benchmarkInput = []byte(`{"name":"luadata","enabled":true,"ratio":0.25,"counts":[1,2,3,4,5],"nested":{"a":[1,null,2.5],"b":"text with \"escapes\""}}`)

func benchmarkTable(b *testing.B) *luadata.Table {
	b.Helper()
	v, err := json.Unmarshal(benchmarkInput)
	if err != nil {
		b.Fatalf("failed to build benchmark data: %v", err)
	}
	return v.(*luadata.Table)
}

func BenchmarkEncode(b *testing.B) {
	data := benchmarkTable(b)

	b.ReportAllocs()
	b.SetBytes(int64(len(benchmarkInput)))

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)

	b.ResetTimer()
	for b.Loop() {
		if err := enc.Encode(data); err != nil {
			b.Fatalf("Encode failed during benchmark: %v", err)
		}
		buf.Reset()
	}
}

func BenchmarkDecode(b *testing.B) {
	b.ReportAllocs()
	b.SetBytes(int64(len(benchmarkInput)))

	b.ResetTimer()
	for b.Loop() {
		if _, err := json.Unmarshal(benchmarkInput); err != nil {
			b.Fatalf("Unmarshal failed during benchmark: %v", err)
		}
	}
}
