package main

import (
	"fmt"
	"os"
)

// Set via -ldflags at build time.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "venvman:", err)
		os.Exit(1)
	}
}
