// cachesolve reads matrices from a YAML document, feeds them one after the
// other through a single CachedMatrix and prints each inverse, showing on
// stderr whether it was freshly computed or served from the cache.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	os.Exit(realMain(context.Background(), os.Args))
}

func realMain(ctx context.Context, args []string) int {
	app, err := NewApp(os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	return 0
}
