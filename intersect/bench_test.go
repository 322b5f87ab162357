package intersect_test

import (
	"testing"

	"github.com/katalvlaran/quintic/intersect"
)

// sinks to defeat dead-code elimination
var (
	sinkRank   int
	sinkPassed bool
)

// BenchmarkBuildSquare measures the full 105×105 assembly.
func BenchmarkBuildSquare(b *testing.B) {
	for i := 0; i < b.N; i++ {
		square, err := intersect.BuildSquare()
		if err != nil {
			b.Fatal(err)
		}
		sinkRank = square.Rows()
	}
}

// BenchmarkVerify measures the complete check suite including both rank
// computations.
func BenchmarkVerify(b *testing.B) {
	square, err := intersect.BuildSquare()
	if err != nil {
		b.Fatal(err)
	}
	square101, err := intersect.BuildSquare101(square)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rep, err := intersect.Verify(square, square101)
		if err != nil {
			b.Fatal(err)
		}
		sinkPassed = rep.AllPassed()
		sinkRank = rep.RankSquare
	}
}
