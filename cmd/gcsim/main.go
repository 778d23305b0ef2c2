// Command gcsim is the interactive driver for the heap and gc packages:
// a line-oriented read-eval-print loop that maps user-typed object names
// onto collector addresses. The core packages never format output or
// print errors themselves; that is entirely this command's job.
package main

func main() {
	execute()
}
