// Package matrix_test provides benchmarks for core matrix package operations,
// using deterministic random fill for Dense and Sparse matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/matriks/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkG [][]float64
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, randomGrid(n, n, 1337, 0))
			B := mustDense(b, randomGrid(n, n, 4242, 0))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		A := mustDense(b, randomGrid(n, n, 11, 0))
		B := mustDense(b, randomGrid(n, n, 22, 0))
		b.Run(fmt.Sprintf("dense/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
		b.Run(fmt.Sprintf("fallback/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(hide{A}, hide{B})
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMulSparse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			S := mustSparse(b, randomGrid(n, n, 33, 2))
			D := mustDense(b, randomGrid(n, n, 44, 0))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(S, D)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, randomGrid(n, n, 55, 0))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Transpose(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkSparseDenseView(b *testing.B) {
	b.ReportAllocs()
	S := mustSparse(b, randomGrid(256, 256, 66, 2))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkG = S.DenseView()
	}
}
