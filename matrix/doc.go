// Package matrix provides the dense linear algebra behind lvreg's regression engine.
//
// The matrix package provides:
//
//   - Dense[T] and Vector[T]: row-major storage over any primitive numeric
//     element type (matrix.Number), with bounds-checked accessors that return
//     errors instead of panicking.
//   - Arithmetic kernels: Add, Sub, Mul, MulVec, Scale, Transpose.
//   - Column surgery used by stepwise selection: RemoveColumn, InsertColumn,
//     PrependOnes.
//   - QR by modified Gram–Schmidt with a relative rank tolerance, and
//     SolveUpper for the back substitution R·β = Qᵗ·y.
//   - LU with partial pivoting (packed Crout layout), Inverse and Determinant.
//
// All decompositions compute in float64 regardless of T. Errors are package
// sentinels (ErrDimensionMismatch, ErrSingular, ErrRankDeficient, ...) wrapped
// with an operation tag; match them with errors.Is.
//
// Matrices are not safe for concurrent mutation. Kernels never mutate their
// inputs; Set, Fill, SwapRows and the column-surgery methods mutate the receiver.
package matrix
