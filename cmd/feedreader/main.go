// ABOUTME: Main entry point for the feed reader
// ABOUTME: Runs the serve, feeds and load commands

package main

import (
	"fmt"
	"os"
)

func main() {
	if err := RootApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
