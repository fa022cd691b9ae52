// Command tabular renders box-drawn Unicode tables from JSON or YAML
// descriptions.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"tabular/importer"
	"tabular/render"
	"tabular/terminal"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		interactive bool
		boxBold     bool
		borderBold  bool
		debug       bool
		outputFile  string
		showHelp    bool
	)
	pflag.BoolVarP(&interactive, "interactive", "i", false, "Preview the table on an interactive screen")
	pflag.BoolVarP(&boxBold, "bold", "b", false, "Draw all box characters with heavy strokes")
	pflag.BoolVar(&borderBold, "bold-border", false, "Draw the outer border with heavy strokes")
	pflag.BoolVar(&debug, "debug", false, "Trace layout and smoothing decisions to stderr")
	pflag.StringVarP(&outputFile, "output", "o", "", "Write output to file (default: stdout)")
	pflag.BoolVarP(&showHelp, "help", "h", false, "Show help")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] table.{json,yaml}\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Renders a box-drawn Unicode table described by a JSON or YAML file.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if showHelp {
		pflag.Usage()
		return 0
	}
	if pflag.NArg() != 1 {
		pflag.Usage()
		return 2
	}

	tbl, opts, err := importer.Load(pflag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "tabular: %v\n", err)
		return 1
	}
	if boxBold {
		opts.BoxBold = true
	}
	if borderBold {
		opts.BorderBold = true
	}
	if debug {
		opts.Debug = os.Stderr
	}

	if interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "tabular: interactive mode needs a terminal")
			return 1
		}
		if err := terminal.Preview(tbl, opts); err != nil {
			fmt.Fprintf(os.Stderr, "tabular: %v\n", err)
			return 1
		}
		return 0
	}

	out, err := render.Render(tbl, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tabular: %v\n", err)
		return 1
	}
	var dst io.Writer = os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tabular: %v\n", err)
			return 1
		}
		defer f.Close()
		dst = f
	}
	if _, err := io.WriteString(dst, out); err != nil {
		fmt.Fprintf(os.Stderr, "tabular: %v\n", err)
		return 1
	}
	return 0
}
