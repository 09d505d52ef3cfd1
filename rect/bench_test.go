package rect_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/ndrect/rect"
)

// benchmarkAlong builds a k-component sequence of d-dimensional rects
// and resolves it along the first dimension once per iteration.
// It resets the timer after setup and fails on unexpected errors.
func benchmarkAlong(b *testing.B, k, d int) {
	shape := make(map[rect.Dim]float64, d)
	for i := 0; i < d; i++ {
		shape[rect.Dim(fmt.Sprintf("d%03d", i))] = float64(i + 1)
	}
	seq, err := rect.MustNew(shape).Repeat(k)
	if err != nil {
		b.Fatalf("Repeat failed: %v", err)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err = seq.Along("d000"); err != nil {
			b.Fatalf("Along failed: %v", err)
		}
	}
}

// BenchmarkAlong_ShortChain resolves 10 components of 3 dimensions.
func BenchmarkAlong_ShortChain(b *testing.B) { benchmarkAlong(b, 10, 3) }

// BenchmarkAlong_LongChain resolves 1000 components of 3 dimensions.
func BenchmarkAlong_LongChain(b *testing.B) { benchmarkAlong(b, 1000, 3) }

// BenchmarkAlong_WideShapes resolves 100 components of 32 dimensions.
func BenchmarkAlong_WideShapes(b *testing.B) { benchmarkAlong(b, 100, 32) }

// BenchmarkThen_Chain measures flat append behavior when chaining 100
// rects one Then at a time.
func BenchmarkThen_Chain(b *testing.B) {
	r := rect.MustNew(map[rect.Dim]float64{"w": 1, "h": 2})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seq := r.Then(r)
		for j := 2; j < 100; j++ {
			seq = seq.Then(r)
		}
		if seq.Len() != 100 {
			b.Fatalf("unexpected chain length %d", seq.Len())
		}
	}
}

// BenchmarkFillInto measures the per-dimension fill walk on an
// 8-dimensional rect doubled along every axis.
func BenchmarkFillInto(b *testing.B) {
	shape := make(map[rect.Dim]float64, 8)
	bound := make(map[rect.Dim]float64, 8)
	for i := 0; i < 8; i++ {
		d := rect.Dim(fmt.Sprintf("d%d", i))
		shape[d] = float64(i + 1)
		bound[d] = float64(2 * (i + 1))
	}
	v := rect.MustNew(shape)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rect.FillInto(v, bound); err != nil {
			b.Fatalf("FillInto failed: %v", err)
		}
	}
}
