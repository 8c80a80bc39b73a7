package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/kepler123/cachematrix/cachematrix"
	"github.com/kepler123/cachematrix/config"
	"github.com/kepler123/cachematrix/logging"
	"github.com/kepler123/cachematrix/matrix"
)

// ErrVerify is returned when A·A⁻¹ is not the identity within tolerance.
var ErrVerify = errors.New("cachesolve: inverse failed verification")

// NewApp builds the root command. Inverses go to stdout, log lines to
// stderr.
func NewApp(stdout, stderr io.Writer) (*cli.Command, error) {
	if stdout == nil || stderr == nil {
		return nil, errors.New("cachesolve: nil writer")
	}

	return &cli.Command{
		Name:      "cachesolve",
		Usage:     "invert matrices through a memoizing inverse cache",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "YAML document listing the matrices",
				Required: true,
				Sources:  cli.EnvVars("CACHESOLVE_FILE"),
			},
			&cli.IntFlag{
				Name:    "repeat",
				Aliases: []string{"r"},
				Usage:   "resolve each matrix this many times (overrides the document)",
			},
			&cli.BoolFlag{
				Name:  "verify",
				Usage: "check that A*inverse is the identity",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error (default from $" + logging.EnvLevel + " or the document)",
			},
		},
		Action: run,
	}, nil
}

func run(ctx context.Context, cmd *cli.Command) error {
	doc, err := config.Load(cmd.String("file"))
	if err != nil {
		return err
	}

	if err := logging.Init(cmd.ErrWriter, logging.ResolveLevel(cmd.String("log-level"), doc.LogLevel)); err != nil {
		return err
	}

	repeat := doc.Repeat
	if cmd.IsSet("repeat") {
		repeat = int(cmd.Int("repeat"))
	}
	if repeat < 1 {
		return fmt.Errorf("cachesolve: --repeat must be >= 1, got %d", repeat)
	}
	verify := doc.Verify || cmd.Bool("verify")

	var cm *cachematrix.CachedMatrix
	for _, e := range doc.Matrices {
		m, err := e.Dense()
		if err != nil {
			return err
		}
		if cm == nil {
			cm = cachematrix.New(m)
		} else {
			cm.SetMatrix(m)
		}
		ctxLog := log.WithFields(log.Fields{"matrix": e.Name, "rows": m.Rows(), "cols": m.Cols()})
		ctxLog.Debug("matrix set")

		var inv matrix.Matrix
		for i := 0; i < repeat; i++ {
			if inv, err = cachematrix.Resolve(cm); err != nil {
				ctxLog.WithError(err).Error("inversion failed")
				return fmt.Errorf("%s: %w", e.Name, err)
			}
		}

		fmt.Fprintf(cmd.Writer, "%s:\n%v", e.Name, inv)

		if verify {
			if err := verifyInverse(m, inv, doc.Tolerance); err != nil {
				return fmt.Errorf("%s: %w", e.Name, err)
			}
			ctxLog.WithField("tolerance", doc.Tolerance).Debug("verified")
		}
	}

	return nil
}

// verifyInverse checks a·inv ≈ I with absolute tolerance tol.
func verifyInverse(a, inv matrix.Matrix, tol float64) error {
	p, err := matrix.Mul(a, inv)
	if err != nil {
		return err
	}
	I, err := matrix.NewIdentity(a.Rows())
	if err != nil {
		return err
	}
	ok, err := matrix.AllClose(p, I, 0, tol)
	if err != nil {
		return err
	}
	if !ok {
		return ErrVerify
	}

	return nil
}
