package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/lgbarn/fen-codec-go/internal/chess"
	"github.com/lgbarn/fen-codec-go/internal/fen"
)

func testOptions() Options {
	return Options{
		Rules:   chess.Standard(),
		Workers: 4,
	}
}

func TestProcessLinesCanonicalizes(t *testing.T) {
	lines := []string{
		fen.InitialFEN,
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 99999999 1",
		"bogus",
	}
	results, stats, err := processLines(context.Background(), lines, testOptions())
	if err != nil {
		t.Fatalf("processLines() error = %v", err)
	}
	if stats.Total != 3 || stats.Failed != 2 {
		t.Errorf("stats = %+v; want 3 total, 2 failed", stats)
	}
	if results[0].Output != fen.InitialFEN {
		t.Errorf("result 0 = %q; want initial FEN", results[0].Output)
	}
	if results[1].Err == nil {
		t.Error("8-digit clock should be rejected")
	}
	if results[2].Err == nil {
		t.Error("bogus record should be rejected")
	}
}

func TestProcessLinesShredder(t *testing.T) {
	opts := testOptions()
	opts.FenOpts = fen.Opts{Shredder: true}

	results, _, err := processLines(context.Background(), []string{fen.InitialFEN}, opts)
	if err != nil {
		t.Fatalf("processLines() error = %v", err)
	}
	want := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w HAha - 0 1"
	if results[0].Output != want {
		t.Errorf("output = %q; want %q", results[0].Output, want)
	}
}

func TestProcessLinesCheckOnly(t *testing.T) {
	opts := testOptions()
	opts.CheckOnly = true

	results, stats, err := processLines(context.Background(), []string{fen.InitialFEN}, opts)
	if err != nil {
		t.Fatalf("processLines() error = %v", err)
	}
	if stats.Failed != 0 || results[0].Output != "" {
		t.Errorf("check-only run should validate without output, got %+v", results[0])
	}
}

func TestWriteResults(t *testing.T) {
	opts := testOptions()
	lines := []string{fen.InitialFEN, "bogus"}
	results, stats, err := processLines(context.Background(), lines, opts)
	if err != nil {
		t.Fatalf("processLines() error = %v", err)
	}

	var out, errOut bytes.Buffer
	writeResults(&out, &errOut, results, stats, opts)

	if !strings.Contains(out.String(), fen.InitialFEN) {
		t.Error("canonical record missing from output")
	}
	if !strings.Contains(out.String(), "error") {
		t.Error("invalid record not reported")
	}
	if !strings.Contains(errOut.String(), "2 records, 1 invalid") {
		t.Errorf("summary = %q", errOut.String())
	}
}

func TestWriteResultsQuiet(t *testing.T) {
	opts := testOptions()
	opts.Quiet = true
	results, stats, err := processLines(context.Background(), []string{fen.InitialFEN}, opts)
	if err != nil {
		t.Fatalf("processLines() error = %v", err)
	}

	var out, errOut bytes.Buffer
	writeResults(&out, &errOut, results, stats, opts)
	if out.Len() != 0 {
		t.Errorf("quiet run wrote output: %q", out.String())
	}
	if !strings.Contains(errOut.String(), "1 records, 0 invalid") {
		t.Errorf("summary = %q", errOut.String())
	}
}
