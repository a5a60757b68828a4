package main

import (
	"fmt"
	"os"
)

// Version is stamped at release time via -ldflags.
var Version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "go-docxml:", err)
		os.Exit(1)
	}
}
