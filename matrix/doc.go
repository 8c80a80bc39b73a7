// Package matrix provides the dense linear-algebra primitives used by the
// inverse cache.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - Inverse, LU (partial pivoting) and Mul kernels.
//   - AllClose for tolerance-based comparison in tests and verification.
//   - Central validators returning the package sentinels from errors.go.
//
// All kernels return errors instead of panicking on user input; callers
// match failures with errors.Is against the exported sentinels.
package matrix
