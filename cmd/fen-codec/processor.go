// processor.go - Batch validation and canonicalization of FEN records
package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/lgbarn/fen-codec-go/internal/batch"
	"github.com/lgbarn/fen-codec-go/internal/chess"
	"github.com/lgbarn/fen-codec-go/internal/fen"
)

// Options collects everything a processing run needs.
type Options struct {
	Rules     chess.Rules
	FenOpts   fen.Opts
	CheckOnly bool
	Quiet     bool
	Workers   int
}

// Stats summarizes a processing run.
type Stats struct {
	Total  int
	Failed int
}

// processLines parses every record and, unless CheckOnly is set, re-emits
// its canonical serialization. Results keep input order regardless of the
// worker count.
func processLines(ctx context.Context, lines []string, opts Options) ([]batch.Result, Stats, error) {
	results, err := batch.Process(ctx, lines, opts.Workers, func(line string) (string, error) {
		setup, err := fen.Parse(opts.Rules, line)
		if err != nil {
			return "", err
		}
		if opts.CheckOnly {
			return "", nil
		}
		return fen.Make(setup, opts.FenOpts), nil
	})
	if err != nil {
		return nil, Stats{}, err
	}
	stats := Stats{Total: len(results)}
	for _, r := range results {
		if r.Err != nil {
			stats.Failed++
		}
	}
	return results, stats, nil
}

var (
	okLabel  = color.New(color.FgGreen).SprintFunc()
	errLabel = color.New(color.FgRed).SprintFunc()
)

// writeResults prints per-record lines to out and a one-line summary to
// errOut.
func writeResults(out, errOut io.Writer, results []batch.Result, stats Stats, opts Options) {
	if !opts.Quiet {
		for _, r := range results {
			switch {
			case r.Err != nil:
				fmt.Fprintf(out, "%s %s: %v\n", errLabel("error"), r.Line, r.Err)
			case opts.CheckOnly:
				fmt.Fprintf(out, "%s %s\n", okLabel("ok"), r.Line)
			default:
				fmt.Fprintln(out, r.Output)
			}
		}
	}
	fmt.Fprintf(errOut, "%d records, %d invalid\n", stats.Total, stats.Failed)
}
