// Command ellers prints a perfect maze, one row at a time, generated with
// Eller's algorithm.
//
// Usage:
//
//	ellers [width] [iterations] [flags]
//
// Run with --help for the list of flags.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
