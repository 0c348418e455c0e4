package sizer

import "testing"

type BenchmarkPayload struct {
	ID     uint32
	Name   string
	Scores []uint64
	Tags   map[string]uint8
	Next   *BenchmarkPayload
}

var benchmarkPayload = BenchmarkPayload{
	ID:     1,
	Name:   "payload",
	Scores: []uint64{1, 2, 3, 4, 5, 6, 7, 8},
	Tags:   map[string]uint8{"env": 1, "zone": 2},
	Next: &BenchmarkPayload{
		ID:   2,
		Name: "tail",
	},
}

func BenchmarkOf(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Of(&benchmarkPayload)
	}
}

func BenchmarkEstimate(b *testing.B) {
	v := Struct("Payload",
		Field{Name: "ID", Val: Uint32(1)},
		Field{Name: "Name", Val: String("payload")},
		Field{Name: "Scores", Val: Nums([]uint64{1, 2, 3, 4, 5, 6, 7, 8})},
		Field{Name: "Tags", Val: Map(
			Entry{Key: String("env"), Val: Uint8(1)},
			Entry{Key: String("zone"), Val: Uint8(2)},
		)},
	)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Estimate(v)
	}
}
