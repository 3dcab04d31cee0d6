// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels and decompositions.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvreg/matrix"
)

// MustDense ALLOCATES an r×c *Dense[float64] or fails the test (fatal on error).
// Implementation:
//   - Stage 1: Call matrix.NewDense(r,c).
//   - Stage 2: t.Fatalf on error to abort the test early.
//
// Complexity:
//   - Time O(r*c) zeroing by runtime, Space O(r*c).
//
// AI-Hints:
//   - When you need non-zero data, pair with RandomFill or MustFrom.
func MustDense(t *testing.T, r, c int) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.NewDense[float64](r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFrom BUILDS a *Dense[float64] from a literal or fails the test.
func MustFrom(t *testing.T, rows [][]float64) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		t.Fatalf("NewDenseFrom: %v", err)
	}

	return m
}

// MustVec BUILDS a *Vector[float64] or fails the test.
func MustVec(t *testing.T, vals ...float64) *matrix.Vector[float64] {
	t.Helper()
	v, err := matrix.NewVectorFrom(vals)
	if err != nil {
		t.Fatalf("NewVectorFrom: %v", err)
	}

	return v
}

// RandomFill WRITES uniform values in [-1,1) using a fixed seed.
// Determinism: identical seed → identical matrix.
// Complexity: O(r*c).
func RandomFill(t *testing.T, m *matrix.Dense[float64], seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			MustSet(t, m, i, j, 2*rng.Float64()-1)
		}
	}
}

// MustSet SETS m[i,j]=v or fails the test.
func MustSet(t *testing.T, m *matrix.Dense[float64], i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d): %v", i, j, err)
	}
}

// MustAt READS m[i,j] or fails the test.
func MustAt[T matrix.Number](t *testing.T, m *matrix.Dense[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareClose ASSERTS AllClose(a,b,rtol,atol) and reports the first offending cell.
func CompareClose(t *testing.T, a, b *matrix.Dense[float64], rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	if err != nil {
		t.Fatalf("AllClose: %v", err)
	}
	if ok {
		return
	}
	var i, j int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, bv := MustAt(t, a, i, j), MustAt(t, b, i, j)
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				t.Fatalf("mismatch at [%d,%d]: %.12g vs %.12g", i, j, av, bv)
			}
		}
	}
}

// InDelta REPORTS whether |a-b| ≤ delta.
func InDelta(a, b, delta float64) bool {
	return math.Abs(a-b) <= delta
}

// propOrthonormal asserts QᵀQ ≈ I_n for an m×n Q within delta.
func propOrthonormal(t *testing.T, Q *matrix.Dense[float64], delta float64) {
	t.Helper()

	QtQ, err := matrix.Mul(Q.Transpose(), Q)
	if err != nil {
		t.Fatalf("matrix.Mul(Qt, Q): want err == nil, got: %v", err)
	}

	n := Q.Cols()
	var (
		i, j int
		v    float64
		want float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = MustAt(t, QtQ, i, j)
			want = 0
			if i == j {
				want = 1
			}
			if !InDelta(v, want, delta) {
				t.Fatalf("QᵀQ at [%d,%d]: want |%.6g-%.6g|<=%.1e", i, j, v, want, delta)
			}
		}
	}
}

// propReconstructionQR asserts A ≈ Q*R within delta.
func propReconstructionQR(t *testing.T, A, Q, R *matrix.Dense[float64], delta float64) {
	t.Helper()

	QR, err := matrix.Mul(Q, R)
	if err != nil {
		t.Fatalf("matrix.Mul(Q, R): want err == nil, got: %v", err)
	}
	if A.Rows() != QR.Rows() || A.Cols() != QR.Cols() {
		t.Fatalf("shape: A %dx%d vs Q*R %dx%d", A.Rows(), A.Cols(), QR.Rows(), QR.Cols())
	}

	var i, j int
	var lv, rv float64
	for i = 0; i < A.Rows(); i++ {
		for j = 0; j < A.Cols(); j++ {
			lv = MustAt(t, A, i, j)
			rv = MustAt(t, QR, i, j)
			if !InDelta(lv, rv, delta) {
				t.Fatalf("A vs Q*R mismatch at [%d,%d]: want |%.6g-%.6g|<=%.1e", i, j, lv, rv, delta)
			}
		}
	}
}

// propUpperTriangular asserts U[i,j] ≈ 0 for i > j.
func propUpperTriangular(t *testing.T, U *matrix.Dense[float64], delta float64) {
	t.Helper()
	var i, j int
	for i = 1; i < U.Rows(); i++ {
		for j = 0; j < i && j < U.Cols(); j++ {
			if v := MustAt(t, U, i, j); !InDelta(v, 0, delta) {
				t.Fatalf("below-diagonal [%d,%d] = %.6g", i, j, v)
			}
		}
	}
}

// propIdentity asserts M ≈ I within delta.
func propIdentity(t *testing.T, M *matrix.Dense[float64], delta float64) {
	t.Helper()
	I, err := matrix.NewIdentity(M.Rows())
	if err != nil {
		t.Fatalf("NewIdentity: %v", err)
	}
	CompareClose(t, M, I, 0, delta)
}
