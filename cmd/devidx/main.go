package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"devidx"
	"devidx/internal/devgen"
)

var (
	order   = flag.Int("order", 3, "Maximum node length of the index.")
	seed    = flag.Bool("seed", false, "Seed the index with fake devices on startup.")
	records = flag.Int("records", 1000, "Number of fake devices to seed.")
	verbose = flag.Bool("v", false, "Log index diagnostics to stderr.")
)

func main() {
	flag.Usage = func() {
		fmt.Println("\ndevidx demo\n\nArguments:")
		flag.PrintDefaults()
	}
	flag.Parse()

	var opts []devidx.Option
	if *verbose {
		opts = append(opts, devidx.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))))
	}

	ix, err := devidx.New(*order, opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *seed {
		for _, d := range devgen.Batch(1, *records) {
			ix.Add(d)
		}
	}

	repl := newREPL(bufio.NewScanner(os.Stdin), os.Stdout, ix)
	repl.start()
}
