package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/gclformat/gcl"
)

// CLI defines the command-line interface
var CLI struct {
	Input   string `arg:"" optional:"" help:"Path to a GCL document. Reads from stdin if not specified." type:"path"`
	Indent  int    `help:"Number of spaces per indentation level." default:"4"`
	Version bool   `help:"Show version information." short:"v"`
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	parser := kong.Must(&CLI,
		kong.Name("gcl"),
		kong.Description("Parse a GCL document and pretty-print it."),
		kong.UsageOnError(),
	)

	if _, err := parser.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("gcl version %s\n", Version)
		return
	}

	if err := run(); err != nil {
		var gerr *gcl.Error
		if errors.As(err, &gerr) {
			// Name the error kind alongside the rendered diagnostic.
			fmt.Fprintf(os.Stderr, "gcl: %s: %v\n", gerr.ID, gerr)
		} else {
			fmt.Fprintf(os.Stderr, "gcl: %v\n", err)
		}
		os.Exit(1)
	}
}

// run reads the document, parses it, and pretty-prints the result.
func run() error {
	data, err := readInput()
	if err != nil {
		return err
	}

	v, err := gcl.Parse(data, nil)
	if err != nil {
		return err
	}

	out, err := gcl.Format(v, &gcl.FormatOptions{Indent: strings.Repeat(" ", CLI.Indent)})
	if err != nil {
		return err
	}

	fmt.Println(string(out))
	return nil
}

// readInput reads the whole document from the input file or stdin.
func readInput() ([]byte, error) {
	if CLI.Input != "" {
		return os.ReadFile(CLI.Input)
	}

	return io.ReadAll(os.Stdin)
}
