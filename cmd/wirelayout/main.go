// Command wirelayout reports the computed wire.Record layout — field
// order, bit width, and bit offset — for every wire.NewRecord declaration
// in a Go source file or directory. It is a development-time
// introspection tool; it has no part in the runtime codec path.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/shmit-go/wirecodec/cmd/wirelayout/core"
)

// CLI defines the wirelayout command-line interface.
type CLI struct {
	Input   string `short:"i" help:"Input Go file or directory (recursive)" default:"."`
	Output  string `short:"o" help:"Write a formatted *_layout.go companion file instead of printing to stdout"`
	Verbose bool   `short:"v" help:"Enable verbose diagnostics"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("wirelayout"),
		kong.Description("Report the computed byte/bit layout of wire.Record declarations."),
	)

	if err := run(&cli); err != nil {
		ctx.FatalIfErrorf(err)
	}
}

func run(cli *CLI) error {
	input := strings.TrimSpace(cli.Input)
	if input == "" {
		input = "."
	}

	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("stat input: %w", err)
	}

	if info.IsDir() {
		if cli.Output != "" {
			return fmt.Errorf("--output is not allowed when input is a directory")
		}
		return filepath.WalkDir(input, func(path string, entry os.DirEntry, err error) error {
			if err != nil {
				return fmt.Errorf("walk %q: %w", path, err)
			}
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".go") || strings.HasSuffix(entry.Name(), "_test.go") {
				return nil
			}
			return reportFile(path, "", cli.Verbose)
		})
	}

	return reportFile(input, cli.Output, cli.Verbose)
}

func reportFile(path, output string, verbose bool) error {
	records, err := core.Scan(path)
	if err != nil {
		return fmt.Errorf("scan %q: %w", path, err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "wirelayout: %s: %d record declarations\n", path, len(records))
	}

	if output == "" {
		for _, r := range records {
			core.Print(os.Stdout, r)
		}
		return nil
	}

	return core.WriteCompanion(output, path, records)
}
