// Package cachematrix memoizes the inverse of a square matrix.
//
// A CachedMatrix holds a matrix together with its lazily computed inverse.
// Resolve is the single entry point clients use to obtain the inverse: the
// first call computes it and stores it, every later call returns the stored
// value until SetMatrix replaces the matrix and clears the cache.
//
//	cm := cachematrix.New(a)
//	inv, err := cachematrix.Resolve(cm) // "Getting a freshly computed inverse value."
//	inv, err = cachematrix.Resolve(cm)  // "Getting cached inverse."
//
// Each Resolve call emits exactly one Info entry on the CachedMatrix logger
// telling the two paths apart. A CachedMatrix is meant for a single owner;
// it does no locking.
package cachematrix
