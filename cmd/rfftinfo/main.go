// Command rfftinfo prints the plan layout of real FFTs and optionally checks
// their accuracy.
//
// Usage:
//
//	rfftinfo [flags] length...
//
// Examples:
//
//	rfftinfo 1024
//	rfftinfo --check 1000 1023 1024
//	rfftinfo --backend gonum --precision 32 --format yaml 480
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
