// Package main implements a tool that prints all the 1-4-3 minifloat encodings.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/avdva/fp8/plot"
	"github.com/avdva/fp8/table"
	"github.com/retroenv/retrogolib/buildinfo"
)

var (
	stdout io.WriteCloser = os.Stdout
	stderr io.Writer      = os.Stderr
)

var (
	version = "0.1.0"
	commit  = ""
	date    = ""
)

const (
	formatText = "text"
	formatCSV  = "csv"
	formatJSON = "json"
	formatPlot = "plot"
)

type optionFlags struct {
	format string
	output string
	quiet  bool
}

func main() {
	options := readArguments()

	if err := run(context.Background(), options); err != nil {
		fmt.Fprintln(stderr, fmt.Errorf("writing table failed: %w", err))
		os.Exit(1)
	}
}

func readArguments() optionFlags {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	options := optionFlags{}

	flags.StringVar(&options.format, "f", formatText, "output format: text, csv, json, plot")
	flags.StringVar(&options.output, "o", "", "name of the output file, printed on console if no name given")
	flags.BoolVar(&options.quiet, "q", false, "perform operations quietly")

	if err := flags.Parse(os.Args[1:]); err != nil || flags.NArg() > 0 {
		printBanner()
		fmt.Printf("usage: fp8table [options]\n\n")
		flags.PrintDefaults()
		os.Exit(1)
	}
	return options
}

func printBanner() {
	fmt.Fprintln(stderr, "[----------------------------------]")
	fmt.Fprintln(stderr, "[ fp8table - 1-4-3 minifloat table ]")
	fmt.Fprintf(stderr, "[----------------------------------]\n\n")
	fmt.Fprintf(stderr, "version: %s\n\n", buildinfo.Version(version, commit, date))
}

func run(ctx context.Context, options optionFlags) error {
	if !options.quiet {
		printBanner()
	}

	write, err := writerFor(options.format)
	if err != nil {
		return err
	}

	tbl, err := table.Build(ctx)
	if err != nil {
		return err
	}

	var outputFile io.WriteCloser
	if options.output == "" {
		outputFile = stdout
	} else {
		outputFile, err = os.Create(options.output)
		if err != nil {
			return fmt.Errorf("creating file '%s': %w", options.output, err)
		}
	}
	if err = write(tbl, outputFile); err != nil {
		_ = outputFile.Close()
		return fmt.Errorf("writing %s: %w", options.format, err)
	}
	if err = outputFile.Close(); err != nil {
		return fmt.Errorf("closing file: %w", err)
	}
	return nil
}

func writerFor(format string) (func(*table.Table, io.Writer) error, error) {
	switch format {
	case formatText:
		return (*table.Table).WriteText, nil
	case formatCSV:
		return (*table.Table).WriteCSV, nil
	case formatJSON:
		return (*table.Table).WriteJSON, nil
	case formatPlot:
		return func(t *table.Table, w io.Writer) error {
			return plot.New(t).WriteCSV(w)
		}, nil
	}
	return nil, fmt.Errorf("unsupported format '%s'", format)
}
