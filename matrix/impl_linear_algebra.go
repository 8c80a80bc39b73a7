// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels behind the inverse cache:
// matrix product, LU factorization with partial pivoting, inversion and
// tolerance-based comparison. All kernels perform fail-fast validation and
// return wrapped sentinels on bad input.
//
// Notes:
//   - Inputs are never mutated; every kernel allocates a fresh Dense result.
//   - Non-*Dense inputs are copied into a Dense once and then share the flat path.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for forward/backward substitution.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU/Inverse routines.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul      = "Mul"
	opInverse  = "Inverse"
	opLU       = "LU"
	opAllClose = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes the matrix product C = A × B.
// Implementation:
//   - Stage 1: Validate non-nil operands and a.Cols == b.Rows.
//   - Stage 2: i→k→j loop over flat slices (row-major friendly).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	r, n, c := da.r, da.c, db.c
	res, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, k, j int
		aik     float64
	)
	for i = 0; i < r; i++ {
		for k = 0; k < n; k++ {
			aik = da.data[i*n+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < c; j++ {
				res.data[i*c+j] += aik * db.data[k*c+j]
			}
		}
	}

	return res, nil
}

// luFactor runs Gaussian elimination with partial pivoting on a copy of m.
// The returned buffer packs L (strictly below the diagonal, unit diagonal
// implied) and U (on and above the diagonal); perm[i] is the row of m that
// ended up at row i, so that P·A = L·U.
//
// Pivot choice: the largest |a[i,k]| for i ≥ k; the first such row wins ties.
// A column whose best pivot is exactly zero yields ErrSingular.
func luFactor(m Matrix) (*Dense, []int, error) {
	src, err := toDense(m)
	if err != nil {
		return nil, nil, err
	}
	lu := src.Clone().(*Dense)
	n := lu.r
	a := lu.data

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var (
		i, j, k, p   int
		best, abs, f float64
	)
	for k = 0; k < n; k++ {
		// Select pivot row.
		p, best = k, math.Abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			if abs = math.Abs(a[i*n+k]); abs > best {
				p, best = i, abs
			}
		}
		if best == ZeroPivot {
			return nil, nil, fmt.Errorf("zero pivot in column %d: %w", k, ErrSingular)
		}

		// Swap whole rows so already stored multipliers follow their row.
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
		}

		// Eliminate below the pivot and store multipliers in place.
		for i = k + 1; i < n; i++ {
			f = a[i*n+k] / a[k*n+k]
			a[i*n+k] = f
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a[i*n+j] -= f * a[k*n+j]
			}
		}
	}

	return lu, perm, nil
}

// LU computes P·A = L·U with unit diagonal on L and row partial pivoting.
// Implementation:
//   - Stage 1: Validate m (not nil, square).
//   - Stage 2: Factor a copy of m in place (luFactor).
//   - Stage 3: Split the packed buffer into fresh L and U.
//
// Returns:
//   - L (unit lower triangular), U (upper triangular), perm where row i of
//     P·A is row perm[i] of A.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m Matrix) (Matrix, Matrix, []int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}

	lu, perm, err := luFactor(m)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}

	n := lu.r
	L, _ := NewDense(n, n) // n>0 guaranteed by the constructor that built m
	U, _ := NewDense(n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case j < i:
				L.data[i*n+j] = lu.data[i*n+j]
			case j == i:
				L.data[i*n+j] = 1.0
				U.data[i*n+j] = lu.data[i*n+j]
			default:
				U.data[i*n+j] = lu.data[i*n+j]
			}
		}
	}

	return L, U, perm, nil
}

// Inverse returns A^{-1} for a square, non-singular A.
// Implementation:
//   - Stage 1: Validate m (not nil, square).
//   - Stage 2: Factor P·A = L·U with partial pivoting.
//   - Stage 3: For each column e_col of I, solve L·y = P·e_col, then U·x = y.
//   - Stage 4: Write x into column col of the result.
//   - Stage 5: Reject a result holding NaN/±Inf (a tiny but non-zero pivot).
//
// Returns:
//   - Matrix: fresh Dense(n×n) with finite entries; the input is not mutated.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular; all wrapped with "Inverse: ".
//   - A non-finite result matches both ErrSingular and ErrNaNInf.
//
// Determinism:
//   - Fixed traversal and deterministic pivot choice; identical inputs give
//     bit-identical outputs.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	lu, perm, err := luFactor(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := lu.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		col, i, k int
		sum       float64
		a         = lu.data
		y         = make([]float64, n) // forward substitution workspace
		x         = make([]float64, n) // backward substitution workspace
	)
	for col = 0; col < n; col++ {
		// Forward substitution: L*y = P*e_col (unit diagonal).
		for i = 0; i < n; i++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += a[i*n+k] * y[k]
			}
			if perm[i] == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = ZeroSum - sum // keeps +0 when sum is zero
			}
		}
		// Backward substitution: U*x = y.
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			for k = i + 1; k < n; k++ {
				sum += a[i*n+k] * x[k]
			}
			x[i] = (y[i] - sum) / a[i*n+i]
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	if err = ValidateFinite(inv); err != nil {
		return nil, matrixErrorf(opInverse, fmt.Errorf("%w: %w", ErrSingular, err))
	}

	return inv, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Negative tolerances are normalized to their absolute value; NaN/Inf
// tolerances are rejected with ErrNaNInf.
//
// Errors:
//   - ErrNaNInf, ErrNilMatrix, ErrDimensionMismatch.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	da, err := toDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := toDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	for idx := range da.data {
		if math.Abs(da.data[idx]-db.data[idx]) > atol+rtol*math.Abs(db.data[idx]) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}
