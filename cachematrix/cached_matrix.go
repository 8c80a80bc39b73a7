package cachematrix

import (
	"github.com/apex/log"

	"github.com/kepler123/cachematrix/matrix"
)

// Inverter computes the inverse of a square matrix. It must fail with an
// error (not a partial result) on singular or non-square input.
type Inverter func(matrix.Matrix) (matrix.Matrix, error)

// CachedMatrix holds a matrix and, once resolved, its inverse.
//
// Invariant: a present cached inverse is always the inverse of the current
// matrix. SetMatrix clears the cache in the same call that replaces the
// matrix; only Resolve stores into it.
//
// The zero value holds no matrix and uses the package defaults (log.Log and
// matrix.Inverse), so Resolve on it fails with matrix.ErrNilMatrix.
type CachedMatrix struct {
	m   matrix.Matrix
	inv matrix.Matrix // nil means absent

	invert Inverter
	logger log.Interface
}

// Option configures a CachedMatrix.
type Option func(*CachedMatrix)

// WithLogger routes the cache notifications to l instead of the apex/log
// package logger.
func WithLogger(l log.Interface) Option {
	return func(cm *CachedMatrix) {
		if l != nil {
			cm.logger = l
		}
	}
}

// WithInverter replaces matrix.Inverse as the inversion routine.
func WithInverter(fn Inverter) Option {
	return func(cm *CachedMatrix) {
		if fn != nil {
			cm.invert = fn
		}
	}
}

// New wraps m with an empty inverse cache.
// m is cloned so later mutation by the caller cannot leave a stale inverse
// behind. No shape or singularity check is made here; an unusable matrix
// fails when Resolve first tries to invert it.
func New(m matrix.Matrix, opts ...Option) *CachedMatrix {
	cm := &CachedMatrix{
		m:      cloneOrNil(m),
		invert: matrix.Inverse,
		logger: log.Log,
	}
	for _, opt := range opts {
		opt(cm)
	}

	return cm
}

// SetMatrix replaces the matrix and drops the cached inverse.
func (cm *CachedMatrix) SetMatrix(m matrix.Matrix) {
	cm.m = cloneOrNil(m)
	cm.inv = nil
}

// Matrix returns the current matrix. The result must not be mutated.
func (cm *CachedMatrix) Matrix() matrix.Matrix {
	return cm.m
}

// Inverse returns the cached inverse and true, or nil and false when no
// inverse has been stored since the matrix was last set.
func (cm *CachedMatrix) Inverse() (matrix.Matrix, bool) {
	if cm.inv == nil {
		return nil, false
	}

	return cm.inv, true
}

// setInverse stores inv as the cached inverse, overwriting any previous value.
// inv is trusted to be the inverse of the current matrix; Resolve is the only
// caller.
func (cm *CachedMatrix) setInverse(inv matrix.Matrix) {
	cm.inv = inv
}

// notifier returns the configured logger or the apex/log package logger.
func (cm *CachedMatrix) notifier() log.Interface {
	if cm.logger == nil {
		return log.Log
	}

	return cm.logger
}

// inverter returns the configured inversion routine or matrix.Inverse.
func (cm *CachedMatrix) inverter() Inverter {
	if cm.invert == nil {
		return matrix.Inverse
	}

	return cm.invert
}

// cloneOrNil copies m, mapping nil and typed-nil pointers to nil.
func cloneOrNil(m matrix.Matrix) matrix.Matrix {
	if matrix.ValidateNotNil(m) != nil {
		return nil
	}

	return m.Clone()
}
