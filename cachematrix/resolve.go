package cachematrix

import "github.com/kepler123/cachematrix/matrix"

// Notification messages emitted by Resolve, one per call.
const (
	MsgCached = "Getting cached inverse."
	MsgFresh  = "Getting a freshly computed inverse value."
)

// Resolve returns the inverse of cm's matrix.
//
// On a cache hit the stored inverse is returned as is and nothing is written
// to cm. On a miss the inverter runs on the current matrix and its result is
// stored exactly once before being returned. An inverter error is returned
// untouched and leaves the cache absent.
func Resolve(cm *CachedMatrix) (matrix.Matrix, error) {
	if inv, ok := cm.Inverse(); ok {
		cm.notifier().Info(MsgCached)
		return inv, nil
	}

	cm.notifier().Info(MsgFresh)
	inv, err := cm.inverter()(cm.Matrix())
	if err != nil {
		return nil, err
	}
	cm.setInverse(inv)

	return inv, nil
}
