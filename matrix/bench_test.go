// Package matrix_test provides benchmarks for the validators and statistics
// kernels, using deterministic random symmetric fills.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/distcmp/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{128, 256, 512}

// sinks to defeat dead-code elimination
var (
	sinkV []float64
	sinkF float64
)

// symmetricDense builds an n×n symmetric distance-like matrix with a zero diagonal.
func symmetricDense(b *testing.B, n int, seed int64) *matrix.Dense {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := rng.Float64()
			rows[i][j], rows[j][i] = v, v
		}
	}
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		b.Fatal(err)
	}
	return m
}

func BenchmarkValidateSymmetricClose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := symmetricDense(b, n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := matrix.ValidateSymmetricClose(A, matrix.DefaultRelTol, matrix.DefaultAbsTol); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkUpperTriangleMean(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := symmetricDense(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := matrix.UpperTriangleMean(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = v
			}
		})
	}
}

func BenchmarkUpperTriangle(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := symmetricDense(b, n, 11)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := matrix.UpperTriangle(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = v
			}
		})
	}
}

func BenchmarkFrobeniusDistance(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := symmetricDense(b, n, 11)
			B := symmetricDense(b, n, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := matrix.FrobeniusDistance(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = v
			}
		})
	}
}
