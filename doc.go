// Package cachematrix is the root of a small library that memoizes matrix
// inverses.
//
// Under the hood, everything is organized under these subpackages:
//
//	cachematrix/     — CachedMatrix and Resolve, the memoizing inverse cache
//	matrix/          — Dense storage, LU with partial pivoting, Inverse, Mul, AllClose
//	config/          — YAML document loader for the command-line driver
//	logging/         — apex/log handler and level setup
//	cmd/cachesolve/  — command that resolves matrices from a YAML document
//
// Quick example:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{4, 2}, {7, 6}})
//	cm := cachematrix.New(a)
//	inv, _ := cachematrix.Resolve(cm) // computed
//	inv, _ = cachematrix.Resolve(cm)  // served from cache
//
//	go get github.com/kepler123/cachematrix
package cachematrix
