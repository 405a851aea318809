package profile

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for profiling configuration, allowing callers
// to customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	CPUProfile  string
	HeapProfile string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
	}
}

// Config holds CLI flag values for profiling configuration. An empty path
// disables the corresponding profile.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewProfiler] to create a [Profiler]
// wrapping command execution.
type Config struct {
	CPUProfile  string
	HeapProfile string
	Flags       Flags
}

// NewConfig returns a new [Config] with default flag names and all profiles
// disabled.
func NewConfig() *Config {
	f := Flags{
		CPUProfile:  "cpu-profile",
		HeapProfile: "heap-profile",
	}

	return f.NewConfig()
}

// RegisterFlags adds profiling flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.CPUProfile, c.Flags.CPUProfile, "",
		"write a CPU profile to the given file")
	flags.StringVar(&c.HeapProfile, c.Flags.HeapProfile, "",
		"write a heap profile to the given file on exit")
}

// RegisterCompletions registers shell completions for profiling flags on
// cmd. Profile flags take file paths, so default file completion applies.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	for _, flag := range []string{c.Flags.CPUProfile, c.Flags.HeapProfile} {
		err := cmd.RegisterFlagCompletionFunc(flag,
			func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
				return nil, cobra.ShellCompDirectiveDefault
			})
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", flag, err)
		}
	}

	return nil
}

// NewProfiler creates a [Profiler] reading the flag values stored in c. The
// profiler sees flag values parsed after it is created.
func (c *Config) NewProfiler() *Profiler {
	return &Profiler{cfg: c}
}
