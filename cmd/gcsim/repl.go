package main

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/joerp78/mark-and-sweep-project/heap"
)

const helpText = `Available commands:
  alloc <name> <size>        - Allocate object
  ref <from> [to]            - Add external (or nested if 'to' is given) reference
  delref <name>              - Delete external reference
  rc                         - Run reference counting GC
  ms                         - Run mark-and-sweep GC
  mem                        - Show available memory
  list                       - List current objects
  help                       - Show this help menu
  exit                       - Quit the program
`

// runREPL drives the interactive garbage-collection simulator: a
// line-oriented loop mapping typed commands onto driver calls. Exact
// output wording is informational except the free-list print format,
// which runREPL never reformats.
func runREPL(in io.Reader, out io.Writer, h *heap.Heap) error {
	d := newDriver(h)
	defer d.close()

	fmt.Fprintln(out, "==== Interactive Garbage Collection Simulator ====")
	fmt.Fprint(out, helpText)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\n> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "alloc":
			handleAlloc(out, d, fields[1:])
		case "ref":
			handleRef(out, d, fields[1:])
		case "delref":
			handleDelref(out, d, fields[1:])
		case "rc":
			n, msg := d.collectRC()
			fmt.Fprintf(out, "%s (%d object(s) reclaimed).\n", msg, n)
		case "ms":
			n, msg := d.collectMS()
			fmt.Fprintf(out, "%s (%d object(s) reclaimed).\n", msg, n)
		case "mem":
			fmt.Fprintf(out, "Available memory: %d bytes.\n", d.availableMemory())
		case "list":
			handleList(out, d)
		case "help":
			fmt.Fprint(out, helpText)
		case "exit":
			fmt.Fprintln(out, "Exiting garbage collection simulator.")
			return nil
		default:
			fmt.Fprintln(out, "Unknown command. Try again.")
		}
	}
}

func handleAlloc(out io.Writer, d *driver, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(out, "Usage: alloc <name> <size>")
		return
	}
	size, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		fmt.Fprintln(out, "Invalid input. Usage: alloc <name> <size>")
		return
	}
	msg, err := d.alloc(args[0], uintptr(size))
	if err != nil {
		fmt.Fprintf(out, "Allocation failed: %v.\n", err)
		return
	}
	fmt.Fprintln(out, msg+".")
}

func handleRef(out io.Writer, d *driver, args []string) {
	var msg string
	var err error
	switch len(args) {
	case 1:
		msg, err = d.addRoot(args[0])
	case 2:
		msg, err = d.addNested(args[0], args[1])
	default:
		fmt.Fprintln(out, "Usage: ref <from> [to]")
		return
	}
	if err != nil {
		fmt.Fprintf(out, "%v.\n", err)
		return
	}
	fmt.Fprintln(out, msg+".")
}

func handleDelref(out io.Writer, d *driver, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(out, "Usage: delref <name>")
		return
	}
	msg, err := d.deleteRoot(args[0])
	if err != nil {
		fmt.Fprintf(out, "%v.\n", err)
		return
	}
	fmt.Fprintln(out, msg)
}

func handleList(out io.Writer, d *driver) {
	objects := d.list()
	names := make([]string, 0, len(objects))
	for name := range objects {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(out, "Tracked objects:")
	for _, name := range names {
		fmt.Fprintf(out, "  %s: 0x%x\n", name, objects[name])
	}
}
