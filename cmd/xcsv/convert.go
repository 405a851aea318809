package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/glaciome/xcsv"
)

const (
	formJSON = "json"
	formText = "text"
)

func newConvertCmd() *cobra.Command {
	cfg := xcsv.NewConfig()

	var (
		to     string
		output string
	)

	cmd := &cobra.Command{
		Use:   "convert [flags] <file>",
		Short: "Convert between XCSV text and the JSON envelope",
		Long: `convert reads an XCSV file, or its JSON envelope, and writes the other form.
Pass - to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runConvert(cfg, args[0], to, output)
		},
	}

	cfg.RegisterFlags(cmd.Flags())
	cmd.Flags().StringVar(&to, "to", formJSON,
		fmt.Sprintf("target form, one of: %s", []string{formJSON, formText}))
	cmd.Flags().StringVarP(&output, "output", "o", "-",
		"output path, - for stdout")

	completionErr := cfg.RegisterCompletions(cmd)
	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	completionErr = cmd.RegisterFlagCompletionFunc("to",
		cobra.FixedCompletions([]string{formJSON, formText}, cobra.ShellCompDirectiveNoFileComp))
	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	return cmd
}

func runConvert(cfg *xcsv.Config, input, to, output string) error {
	switch to {
	case formJSON:
		return convertToJSON(cfg, input, output)
	case formText:
		return convertToText(cfg, input, output)
	}

	return fmt.Errorf("unknown target form %q", to)
}

func convertToJSON(cfg *xcsv.Config, input, output string) error {
	doc, err := readDocument(cfg, input)
	if err != nil {
		return err
	}

	slog.Debug("parsed document",
		slog.Int("header_items", doc.Metadata.Header.Len()),
		slog.Int("columns", doc.Data.NumCols()),
		slog.Int("rows", doc.Data.NumRows()),
	)

	var buf bytes.Buffer

	err = xcsv.WriteEnvelope(&buf, doc)
	if err != nil {
		return err
	}

	out := buf.Bytes()

	// Indent when a human is looking at the result.
	if (output == "" || output == "-") && term.IsTerminal(int(os.Stdout.Fd())) {
		var indented bytes.Buffer

		err = json.Indent(&indented, out, "", "  ")
		if err != nil {
			return fmt.Errorf("%w: %w", xcsv.ErrWriteOutput, err)
		}

		out = indented.Bytes()
	}

	out = append(out, '\n')

	return writeOutput(output, out)
}

func convertToText(cfg *xcsv.Config, input, output string) error {
	data, err := readInput(input)
	if err != nil {
		return err
	}

	doc, err := xcsv.ReadEnvelope(bytes.NewReader(data))
	if err != nil {
		return err
	}

	if output != "" && output != "-" {
		return xcsv.WriteFile(output, doc, cfg.WriteOptions()...)
	}

	w := xcsv.NewWriter(os.Stdout, cfg.WriteOptions()...)

	return w.Write(doc)
}

// readDocument parses the textual form from a file or stdin.
func readDocument(cfg *xcsv.Config, input string) (*xcsv.Document, error) {
	if input != "-" {
		return xcsv.ReadFile(input, cfg.ReadOptions()...)
	}

	data, err := readInput(input)
	if err != nil {
		return nil, err
	}

	r := xcsv.NewReader(bytes.NewReader(data), cfg.ReadOptions()...)

	return r.Read()
}

func readInput(input string) ([]byte, error) {
	if input == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %w", xcsv.ErrReadInput, err)
		}

		return data, nil
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", xcsv.ErrReadInput, err)
	}

	return data, nil
}
