// flags.go - Command-line flag definitions
package main

import (
	"flag"
	"runtime"
)

var (
	// Output options
	outputFile    = flag.String("o", "", "Output file (default: stdout)")
	checkOnly     = flag.Bool("check", false, "Validate records without printing canonical output")
	quiet         = flag.Bool("q", false, "Suppress per-record output, print the summary only")
	noColor       = flag.Bool("nocolor", false, "Disable coloured output")
	shredderForm  = flag.Bool("shredder", false, "Serialize castling rights as explicit file letters")
	epdForm       = flag.Bool("epd", false, "Omit move counters from output (EPD form)")
	promotedMarks = flag.Bool("promoted", false, "Mark promoted pieces with '~'")

	// Variant options
	boardFiles = flag.Int("files", 8, "Board width in files")
	boardRanks = flag.Int("ranks", 8, "Board height in ranks")

	// Processing options
	numWorkers = flag.Int("j", runtime.NumCPU(), "Number of parallel workers")

	// Info
	help    = flag.Bool("h", false, "Show usage")
	version = flag.Bool("version", false, "Show version and exit")
)
