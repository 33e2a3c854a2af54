// fen-codec is a tool for validating and canonicalizing chess positions in
// extended FEN notation, including Shredder castling, drop-variant pockets
// and remaining-check counters. It reads one record per line from the given
// files, or stdin when none are given.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/fen-codec-go/internal/chess"
	"github.com/lgbarn/fen-codec-go/internal/fen"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}
	if *version {
		fmt.Printf("fen-codec version %s\n", programVersion)
		os.Exit(0)
	}
	if *noColor {
		color.NoColor = true
	}

	rules := chess.Rules{Files: *boardFiles, Ranks: *boardRanks}
	if !rules.Valid() {
		log.Fatalf("unsupported board dimensions %dx%d", *boardFiles, *boardRanks)
	}

	lines, err := readInput(flag.Args())
	if err != nil {
		log.Fatal(err)
	}

	opts := Options{
		Rules: rules,
		FenOpts: fen.Opts{
			Shredder: *shredderForm,
			EPD:      *epdForm,
			Promoted: *promotedMarks,
		},
		CheckOnly: *checkOnly,
		Quiet:     *quiet,
		Workers:   *numWorkers,
	}

	results, stats, err := processLines(context.Background(), lines, opts)
	if err != nil {
		log.Fatal(err)
	}

	out := os.Stdout
	if *outputFile != "" {
		f, err := os.Create(*outputFile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}
	writeResults(out, os.Stderr, results, stats, opts)

	if stats.Failed > 0 {
		os.Exit(1)
	}
}

// readInput collects non-blank lines from the given files, or stdin when
// the list is empty. Lines starting with '#' are treated as comments.
func readInput(paths []string) ([]string, error) {
	var lines []string
	collect := func(scanner *bufio.Scanner) error {
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			lines = append(lines, line)
		}
		return scanner.Err()
	}

	if len(paths) == 0 {
		if err := collect(bufio.NewScanner(os.Stdin)); err != nil {
			return nil, err
		}
		return lines, nil
	}
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		err = collect(bufio.NewScanner(f))
		f.Close()
		if err != nil {
			return nil, err
		}
	}
	return lines, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: fen-codec [options] [file ...]\n\n")
	fmt.Fprintf(os.Stderr, "Validates or canonicalizes FEN records, one per line.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
