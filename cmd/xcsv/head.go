package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/glaciome/xcsv"
)

func newHeadCmd() *cobra.Command {
	cfg := xcsv.NewConfig()

	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "head [flags] <file>",
		Short: "Print the parsed metadata of an XCSV file",
		Long: `head reads an XCSV file and prints its parsed metadata, both the extended
header and the column headers, without the tabular data.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runHead(cfg, args[0], format, output)
		},
	}

	cfg.RegisterFlags(cmd.Flags())
	cmd.Flags().StringVar(&format, "format", "yaml",
		fmt.Sprintf("output format, one of: %s", []string{"yaml", "json"}))
	cmd.Flags().StringVarP(&output, "output", "o", "-",
		"output path, - for stdout")

	completionErr := cfg.RegisterCompletions(cmd)
	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	completionErr = cmd.RegisterFlagCompletionFunc("format",
		cobra.FixedCompletions([]string{"yaml", "json"}, cobra.ShellCompDirectiveNoFileComp))
	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	return cmd
}

func runHead(cfg *xcsv.Config, input, format, output string) error {
	doc, err := readDocument(cfg, input)
	if err != nil {
		return err
	}

	var out []byte

	switch format {
	case "yaml":
		out, err = yaml.Marshal(metadataMapSlice(doc.Metadata))
	case "json":
		out, err = json.MarshalIndent(doc.Metadata, "", "  ")
		out = append(out, '\n')
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	if err != nil {
		return fmt.Errorf("%w: %w", xcsv.ErrWriteOutput, err)
	}

	return writeOutput(output, out)
}

// metadataMapSlice renders metadata as ordered YAML mappings, preserving the
// key order of the source file.
func metadataMapSlice(md *xcsv.Metadata) yaml.MapSlice {
	header := yaml.MapSlice{}
	if md.Header != nil {
		for _, key := range md.Header.Keys() {
			value, _ := md.Header.Get(key)
			header = append(header, yaml.MapItem{Key: key, Value: headerValueYAML(value)})
		}
	}

	columnHeaders := yaml.MapSlice{}
	if md.ColumnHeaders != nil {
		for _, label := range md.ColumnHeaders.Labels() {
			tokens, _ := md.ColumnHeaders.Get(label)
			columnHeaders = append(columnHeaders, yaml.MapItem{
				Key: label,
				Value: yaml.MapSlice{
					{Key: "name", Value: tokens.Name},
					{Key: "units", Value: derefOrNil(tokens.Units)},
					{Key: "notes", Value: derefOrNil(tokens.Notes)},
				},
			})
		}
	}

	return yaml.MapSlice{
		{Key: "header", Value: header},
		{Key: "column_headers", Value: columnHeaders},
	}
}

func headerValueYAML(value xcsv.HeaderValue) any {
	switch v := value.(type) {
	case xcsv.Scalar:
		return string(v)
	case xcsv.Pair:
		return yaml.MapSlice{
			{Key: "value", Value: v.Value},
			{Key: "units", Value: v.Units},
		}
	case xcsv.List:
		items := make([]any, 0, len(v))
		for _, item := range v {
			items = append(items, headerValueYAML(item))
		}

		return items
	}

	return nil
}

func derefOrNil(s *string) any {
	if s == nil {
		return nil
	}

	return *s
}
