// Package main provides the jsfmt CLI: a source-preserving formatter and
// terminal viewer for JS-like source files.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

func main() {
	cmd := formatCmd()
	cmd.AddCommand(viewCmd())

	err := fang.Execute(context.Background(), cmd)
	if err != nil {
		os.Exit(1)
	}
}
