package grid_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/point"
)

const benchSide = 140

func benchText() string {
	line := strings.Repeat("XMAS.", benchSide/5)
	return strings.Repeat(line+"\n", benchSide)
}

// BenchmarkFromRunes measures parsing a puzzle-sized text grid.
func BenchmarkFromRunes(b *testing.B) {
	text := benchText()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := grid.FromRunes(text); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAdjacentValues8 measures the Conn8 neighbour scan over every cell.
func BenchmarkAdjacentValues8(b *testing.B) {
	g, err := grid.FromRunes(benchText())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for x := 0; x < g.Rows(); x++ {
			for y := 0; y < g.Cols(); y++ {
				_ = g.AdjacentValues(point.New(x, y), grid.Conn8)
			}
		}
	}
}

// BenchmarkHash measures content hashing for state de-duplication.
func BenchmarkHash(b *testing.B) {
	g, err := grid.FromRunes(benchText())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Hash()
	}
}
