package populate_test

import (
	"testing"

	"github.com/katalvlaran/socialpath/core"
	"github.com/katalvlaran/socialpath/populate"
)

// BenchmarkExhaustive populates 1000 users with an average of 5 friends.
func BenchmarkExhaustive(b *testing.B) {
	g := core.NewGraph()
	s := populate.NewExhaustive(populate.WithSeed(1))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Populate(g, 1000, 5)
	}
}

// BenchmarkRejection runs the same workload through the rejection sampler.
func BenchmarkRejection(b *testing.B) {
	g := core.NewGraph()
	s := populate.NewRejection(populate.WithSeed(1))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Populate(g, 1000, 5)
	}
}
