package huffman_test

import (
	"testing"

	"github.com/katalvlaran/huffviz/huffman"
)

// benchmarkBuild runs Build over a seeded alphabet of n symbols.
func benchmarkBuild(b *testing.B, n int) {
	in := randomAlphabet(42, n)
	b.ResetTimer() // exclude fixture setup
	for i := 0; i < b.N; i++ {
		if _, err := huffman.Build(in); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}

// BenchmarkBuild_Small covers a typical classroom alphabet.
func BenchmarkBuild_Small(b *testing.B) { benchmarkBuild(b, 8) }

// BenchmarkBuild_Medium covers a full lowercase alphabet plus digits.
func BenchmarkBuild_Medium(b *testing.B) { benchmarkBuild(b, 36) }

// BenchmarkBuild_Large sits at the upper end of realistic alphabets.
func BenchmarkBuild_Large(b *testing.B) { benchmarkBuild(b, 200) }
