// Package matriks turns numeric CSV tables into matrices and runs small-scale
// linear algebra and regression on them.
//
// 🚀 What is matriks?
//
//	A compact toolkit that brings together:
//		• Representations: Dense and coordinate-Sparse behind one read contract
//		• Validators: square, symmetric, identity
//		• Arithmetic: add, subtract, multiply, transpose, scale
//		• Closed forms: 2×2 and 3×3 determinant and inverse
//		• Regression: simple least squares, multiple via normal equations or pseudo-inverse
//		• Ingestion: Parse → Select → Classify → Convert/Impute → Normalize → Materialize
//
// Everything is organized under these packages:
//
//	matrix/      Matrix contract, Dense, Sparse, validators and kernels
//	matrix/ops/  Determinant, Inverse, PseudoInverse
//	regression/  SimpleLinear, MultipleLinear
//	csvload/     CSV ingestion pipeline with functional options
//	export/      CSV and JSON writers (and a JSON reader)
//	report/      HTML line chart and regression plot
//	config/      environment and .env defaults for the CLI
//	cmd/matriks  the command-line driver
//
// Quick example:
//
//	m, err := csvload.Load("data.csv", csvload.WithHeader(), csvload.WithImpute(csvload.ImputeMean))
//	if err != nil { ... }
//	mt, _ := matrix.Transpose(m)
//	gram, _ := matrix.Mul(mt, m)
//
//	go install github.com/katalvlaran/matriks/cmd/matriks@latest
package matriks
