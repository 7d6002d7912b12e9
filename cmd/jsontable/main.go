// Command jsontable converts nested JSON into CSV or Markdown tables.
//
// Usage:
//
//	jsontable [file] [--format csv|markdown|tsv] [--data '<json>'] [-o out]
//
// With no file (or "-") the document is read from stdin.
package main

import (
	"fmt"
	"os"

	"github.com/bjaus/jsontable/internal/cli"
)

func main() {
	if err := cli.NewCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}
