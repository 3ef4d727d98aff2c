package dbm_test

import (
	"testing"

	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/dbm"
)

var benchDims = []int{4, 16, 64}

func BenchmarkTighten(b *testing.B) {
	b.ReportAllocs()
	for _, dim := range benchDims {
		dim := dim
		m, err := dbm.New(dim)
		if err != nil {
			b.Fatalf("New(%d): %v", dim, err)
		}
		dbm.UniversalPositive(m)
		for i := 1; i < dim; i++ {
			if _, err := dbm.Constrain(m, clock.ID(i), clock.Zero, clock.LE, int32(i*3)); err != nil {
				b.Fatalf("Constrain: %v", err)
			}
		}

		b.Run(benchLabel(dim), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				dbm.Tighten(m)
			}
		})
	}
}

func BenchmarkConstrain(b *testing.B) {
	b.ReportAllocs()
	for _, dim := range benchDims {
		dim := dim
		b.Run(benchLabel(dim), func(b *testing.B) {
			m, err := dbm.New(dim)
			if err != nil {
				b.Fatalf("New(%d): %v", dim, err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				dbm.UniversalPositive(m)
				if _, err := dbm.Constrain(m, clock.ID(1), clock.Zero, clock.LE, 10); err != nil {
					b.Fatalf("Constrain: %v", err)
				}
			}
		})
	}
}

func BenchmarkConvexUnion(b *testing.B) {
	b.ReportAllocs()
	a, err := dbm.New(4)
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	dbm.UniversalPositive(a)
	bb, err := dbm.New(4)
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	dbm.UniversalPositive(bb)
	result, err := dbm.New(4)
	if err != nil {
		b.Fatalf("New: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dbm.ConvexUnion(result, a, bb)
	}
}

func benchLabel(dim int) string {
	switch dim {
	case 4:
		return "dim=4"
	case 16:
		return "dim=16"
	case 64:
		return "dim=64"
	default:
		return "dim=?"
	}
}
