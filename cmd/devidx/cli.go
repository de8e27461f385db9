package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"devidx"
)

// repl drives the interactive session. All output goes through out so the
// command loop is testable.
type repl struct {
	scanner *bufio.Scanner
	out     io.Writer
	index   *devidx.Index
	vis     *devidx.Visualizer
}

func newREPL(s *bufio.Scanner, out io.Writer, ix *devidx.Index) *repl {
	return &repl{
		scanner: s,
		out:     out,
		index:   ix,
		vis:     &devidx.Visualizer{Index: ix},
	}
}

func (r *repl) start() {
	r.printHelp()
	r.printPrompt()
	for r.scanner.Scan() {
		if !r.process(r.scanner.Text()) {
			return
		}
		r.printPrompt()
	}
}

func (r *repl) printHelp() {
	fmt.Fprintln(r.out, `
devidx demo

Available commands:
  ADD <id> <addr> [path]  Insert or replace a device
  GET <id>                Look up a device by ID
  WALK                    List every device in ID order
  CHECK                   Validate the tree structure
  STATS                   Show index and cache counters
  DUMP                    Render the tree
  HELP                    Show this message
  EXIT                    Terminate this session`)
}

func (r *repl) printPrompt() {
	fmt.Fprint(r.out, "> ")
}

// process handles one input line; the return reports whether the session
// continues.
func (r *repl) process(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	switch strings.ToLower(fields[0]) {
	case "add":
		r.add(fields[1:])
	case "get":
		r.get(fields[1:])
	case "walk":
		r.walk()
	case "check":
		r.check()
	case "stats":
		r.stats()
	case "dump":
		fmt.Fprint(r.out, r.vis.Visualize())
	case "help":
		r.printHelp()
	case "exit":
		return false
	default:
		fmt.Fprintf(r.out, "unknown command %q\n", fields[0])
	}
	return true
}

func (r *repl) add(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(r.out, "usage: ADD <id> <addr> [path]")
		return
	}

	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(r.out, "bad id %q\n", args[0])
		return
	}

	d := devidx.Device{ID: id, Addr: args[1]}
	if len(args) > 2 {
		d.Path = args[2]
	}

	r.index.Add(d)
	fmt.Fprint(r.out, r.vis.Visualize())
}

func (r *repl) get(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "usage: GET <id>")
		return
	}

	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(r.out, "bad id %q\n", args[0])
		return
	}

	d, ok := r.index.Find(id)
	if !ok {
		fmt.Fprintln(r.out, "not found")
		return
	}
	fmt.Fprintln(r.out, d)
}

func (r *repl) walk() {
	n := 0
	r.index.Walk(func(d devidx.Device) {
		fmt.Fprintln(r.out, d)
		n++
	})
	fmt.Fprintf(r.out, "%d devices\n", n)
}

func (r *repl) check() {
	switch {
	case r.index.Len() == 0:
		fmt.Fprintln(r.out, "index is empty")
	case r.index.IsValid():
		fmt.Fprintln(r.out, "tree is valid")
	default:
		fmt.Fprintln(r.out, "tree is INVALID")
	}
}

func (r *repl) stats() {
	cs := r.index.CacheStats()
	fmt.Fprintf(r.out, "devices=%d height=%d order=%d\n",
		r.index.Len(), r.index.Height(), r.index.Order())
	fmt.Fprintf(r.out, "cache hits=%d misses=%d invalidations=%d\n",
		cs.Hits, cs.Misses, cs.Invalidations)
}
