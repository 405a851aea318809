package xcsv

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Default header micro-syntax. The write defaults carry single-space right
// padding for readability; the padding is stripped on re-read, so a written
// file reads back identically.
const (
	DefaultReadComment    = "#"
	DefaultReadDelimiter  = ":"
	DefaultWriteComment   = "# "
	DefaultWriteDelimiter = ": "
)

// options is the resolved configuration shared by [Reader], [Writer], and
// the file helpers.
type options struct {
	comment       string
	delimiter     string
	encoding      string
	parseMetadata bool
}

// Option configures a [Reader], a [Writer], or the file helpers.
type Option func(*options)

// WithComment sets the comment prefix of the extended header section.
func WithComment(comment string) Option {
	return func(o *options) {
		o.comment = comment
	}
}

// WithDelimiter sets the key/value delimiter of the extended header section.
func WithDelimiter(delimiter string) Option {
	return func(o *options) {
		o.delimiter = delimiter
	}
}

// WithParseMetadata enables or disables the token grammars. When disabled,
// header values stay plain strings and column names are their verbatim
// labels.
func WithParseMetadata(parse bool) Option {
	return func(o *options) {
		o.parseMetadata = parse
	}
}

// WithEncoding sets the character encoding used by [ReadFile] and
// [WriteFile], as an IANA name such as "utf-8" or "latin1". Only the file
// helpers consume it; [Reader] and [Writer] always operate on UTF-8 text.
func WithEncoding(name string) Option {
	return func(o *options) {
		o.encoding = name
	}
}

func newReadOptions(opts []Option) options {
	o := options{
		comment:       DefaultReadComment,
		delimiter:     DefaultReadDelimiter,
		parseMetadata: true,
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func newWriteOptions(opts []Option) options {
	o := options{
		comment:       DefaultWriteComment,
		delimiter:     DefaultWriteDelimiter,
		parseMetadata: true,
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Flags holds CLI flag names for XCSV configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	Comment       string
	Delimiter     string
	ParseMetadata string
	Encoding      string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags:         f,
		Comment:       DefaultReadComment,
		Delimiter:     DefaultReadDelimiter,
		ParseMetadata: true,
		Encoding:      "utf-8",
	}
}

// Config holds CLI flag values for XCSV configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.ReadOptions] and [Config.WriteOptions]
// to convert the flag values into [Option] values for the library.
type Config struct {
	Flags         Flags
	Comment       string
	Delimiter     string
	Encoding      string
	ParseMetadata bool
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		Comment:       "comment",
		Delimiter:     "delimiter",
		ParseMetadata: "parse-metadata",
		Encoding:      "encoding",
	}

	return f.NewConfig()
}

// RegisterFlags adds XCSV flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Comment, c.Flags.Comment, DefaultReadComment,
		"comment prefix of the extended header section")
	flags.StringVar(&c.Delimiter, c.Flags.Delimiter, DefaultReadDelimiter,
		"key/value delimiter of the extended header section")
	flags.BoolVar(&c.ParseMetadata, c.Flags.ParseMetadata, true,
		"parse header values and column labels into structured metadata")
	flags.StringVar(&c.Encoding, c.Flags.Encoding, "utf-8",
		"character encoding of the input file (IANA name)")
}

// RegisterCompletions registers shell completions for XCSV flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Encoding,
		cobra.FixedCompletions([]string{"utf-8", "utf-16", "latin1", "windows-1252"},
			cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Encoding, err)
	}

	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	for _, flag := range []string{c.Flags.Comment, c.Flags.Delimiter} {
		regErr := cmd.RegisterFlagCompletionFunc(flag, noFileComp)
		if regErr != nil {
			return fmt.Errorf("registering %s completion: %w", flag, regErr)
		}
	}

	return nil
}

// ReadOptions converts the flag values into read-side [Option] values.
func (c *Config) ReadOptions() []Option {
	return []Option{
		WithComment(c.Comment),
		WithDelimiter(c.Delimiter),
		WithParseMetadata(c.ParseMetadata),
		WithEncoding(c.Encoding),
	}
}

// WriteOptions converts the flag values into write-side [Option] values. The
// comment and delimiter gain single-space right padding, which the reader
// strips, so convert round trips cleanly.
func (c *Config) WriteOptions() []Option {
	return []Option{
		WithComment(c.Comment + " "),
		WithDelimiter(c.Delimiter + " "),
		WithParseMetadata(c.ParseMetadata),
		WithEncoding(c.Encoding),
	}
}
