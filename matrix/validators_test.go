// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kepler123/cachematrix/matrix"
)

func nan() float64 { return math.NaN() }
func inf() float64 { return math.Inf(1) }

func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	var typed *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(typed), matrix.ErrNilMatrix)

	var other *ptrMatrix
	require.ErrorIs(t, matrix.ValidateNotNil(other), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
	require.NoError(t, matrix.ValidateNotNil(hide{MustDense(t, 1, 1)}))
	require.NoError(t, matrix.ValidateNotNil(&ptrMatrix{MustDense(t, 1, 1)}))
}

// ptrMatrix is a Matrix used through a pointer, unlike hide.
type ptrMatrix struct{ matrix.Matrix }

func TestValidateSquare(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateSquare(MustDense(t, 3, 3)))
	require.ErrorIs(t, matrix.ValidateSquare(MustDense(t, 2, 3)), matrix.ErrNonSquare)
}

func TestValidateShapes(t *testing.T) {
	t.Parallel()

	a, b := MustDense(t, 2, 3), MustDense(t, 3, 2)
	require.ErrorIs(t, matrix.ValidateSameShape(a, b), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateSameShape(a, MustDense(t, 2, 3)))
	require.NoError(t, matrix.ValidateMulCompatible(a, b))
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, a), matrix.ErrDimensionMismatch)
}

// nanMatrix reports a NaN at (1,0) regardless of what was Set.
type nanMatrix struct{ matrix.Matrix }

func (m nanMatrix) At(i, j int) (float64, error) {
	if i == 1 && j == 0 {
		return math.NaN(), nil
	}
	return m.Matrix.At(i, j)
}

func TestValidateFinite(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateFinite(MustDense(t, 2, 2)))
	require.NoError(t, matrix.ValidateFinite(hide{MustDense(t, 2, 2)}))
	require.ErrorIs(t, matrix.ValidateFinite(nanMatrix{MustDense(t, 2, 2)}), matrix.ErrNaNInf)
}
