// Package batch runs a line-oriented processing stage across
// worker goroutines while keeping results in input order.
package batch

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of processing one input line. Err carries the
// per-line failure; it does not abort the batch.
type Result struct {
	Index  int
	Line   string
	Output string
	Err    error
}

// Func processes a single line.
type Func func(line string) (string, error)

// Process applies fn to every line using the given number of workers and
// returns one Result per line, in input order. Only a context cancellation
// fails the batch as a whole.
func Process(ctx context.Context, lines []string, workers int, fn Func) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]Result, len(lines))
	g, ctx := errgroup.WithContext(ctx)

	indexes := make(chan int, workers)
	g.Go(func() error {
		defer close(indexes)
		for i := range lines {
			select {
			case indexes <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range indexes {
				output, err := fn(lines[i])
				results[i] = Result{Index: i, Line: lines[i], Output: output, Err: err}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
