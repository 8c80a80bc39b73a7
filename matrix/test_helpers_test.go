// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the dense kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kepler123/cachematrix/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the interface (non-*Dense) read path in the kernels.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustRows builds a *Dense from row slices or fails the test.
func MustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// RandWellConditioned returns a deterministic n×n matrix M + (n+1)·I with
// entries of M in [-1,1), which is strictly diagonally dominant and
// therefore invertible.
func RandWellConditioned(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := rng.Float64()*2 - 1
			if i == j {
				v += float64(n) + 1
			}
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

// RequireIdentity asserts that m is the n×n identity within tol.
func RequireIdentity(t *testing.T, m matrix.Matrix, tol float64) {
	t.Helper()
	n := m.Rows()
	I, err := matrix.NewIdentity(n)
	require.NoError(t, err)
	ok, err := matrix.AllClose(m, I, 0, tol)
	require.NoError(t, err)
	require.True(t, ok, "want identity within %g, got:\n%v", tol, m)
}
