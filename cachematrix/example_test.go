package cachematrix_test

import (
	"fmt"
	"os"

	"github.com/apex/log"

	"github.com/kepler123/cachematrix/cachematrix"
	"github.com/kepler123/cachematrix/matrix"
)

// printHandler writes only the message so example output stays stable.
var printHandler = log.HandlerFunc(func(e *log.Entry) error {
	_, err := fmt.Fprintln(os.Stdout, e.Message)
	return err
})

func ExampleResolve() {
	logger := &log.Logger{Handler: printHandler, Level: log.InfoLevel}
	a, _ := matrix.NewDenseFromRows([][]float64{{2, 0}, {0, 4}})
	cm := cachematrix.New(a, cachematrix.WithLogger(logger))

	inv, _ := cachematrix.Resolve(cm)
	fmt.Print(inv)
	inv, _ = cachematrix.Resolve(cm)
	fmt.Print(inv)

	// Output:
	// Getting a freshly computed inverse value.
	// [0.5, 0]
	// [0, 0.25]
	// Getting cached inverse.
	// [0.5, 0]
	// [0, 0.25]
}

func ExampleCachedMatrix_SetMatrix() {
	logger := &log.Logger{Handler: printHandler, Level: log.InfoLevel}
	a, _ := matrix.NewDenseFromRows([][]float64{{2}})
	cm := cachematrix.New(a, cachematrix.WithLogger(logger))
	_, _ = cachematrix.Resolve(cm)

	b, _ := matrix.NewDenseFromRows([][]float64{{4}})
	cm.SetMatrix(b)
	_, cached := cm.Inverse()
	fmt.Println("cached after SetMatrix:", cached)

	inv, _ := cachematrix.Resolve(cm)
	fmt.Print(inv)

	// Output:
	// Getting a freshly computed inverse value.
	// cached after SetMatrix: false
	// Getting a freshly computed inverse value.
	// [0.25]
}
