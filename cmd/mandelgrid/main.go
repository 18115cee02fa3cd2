// mandelgrid evaluates the escape-time membership test over an npoints ×
// npoints grid of the complex plane and prints the in-set coordinates as
// CSV on stdout. Threads only change how fast the grid is processed, never
// which points come out.
//
// Usage:
//
//	mandelgrid nthreads npoints
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/marben/mandelgrid/eval"
)

// exitError carries the process exit code alongside the message printed to
// stderr. Parameter problems exit with 2, runtime failures with 1.
type exitError struct {
	code    int
	message string
}

func (e *exitError) Error() string {
	return e.message
}

func main() {
	if err := run(os.Args, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		os.Exit(1)
	}
}

// run holds the whole CLI logic so tests can drive it with their own
// argument lists and streams.
func run(args []string, stdout, stderr io.Writer) error {
	// Step 1: the two positional parameters, nothing else.
	if len(args) != 3 {
		return &exitError{code: 2, message: fmt.Sprintf("usage: %s nthreads npoints", filepath.Base(args[0]))}
	}
	nthreads, err := strconv.Atoi(args[1])
	if err != nil {
		return &exitError{code: 2, message: fmt.Sprintf("nthreads: %v", err)}
	}
	npoints, err := strconv.Atoi(args[2])
	if err != nil {
		return &exitError{code: 2, message: fmt.Sprintf("npoints: %v", err)}
	}

	cfg := eval.Config{Threads: nthreads, Points: npoints}

	// Step 2: buffer stdout; a flush failure means dropped records, which
	// is as fatal as a failed write.
	out := bufio.NewWriter(stdout)

	// Step 3: run the parallel region under the wall clock.
	start := time.Now()
	if err := eval.Run(cfg, eval.NewCSVSink(out)); err != nil {
		if errors.Is(err, eval.ErrThreads) || errors.Is(err, eval.ErrPoints) {
			return &exitError{code: 2, message: err.Error()}
		}
		return err
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	elapsed := time.Since(start)

	// Step 4: timing diagnostic for the scaling harness. Goes to stderr so
	// the result stream on stdout stays exactly the header plus records.
	fmt.Fprintf(stderr, "TIME_SECONDS=%.6f\n", elapsed.Seconds())
	return nil
}
