// Package profile adds runtime profiling to CLI applications through
// command-line flags.
//
// It covers CPU profiles, taken across command execution, and heap
// snapshots written on exit. Use [Config.RegisterFlags] to add CLI flags
// and [Config.RegisterCompletions] to wire up shell completions.
//
// Typical usage creates a [Config], registers flags, then creates a
// [Profiler] to wrap command execution:
//
//	cfg := profile.NewConfig()
//	p := cfg.NewProfiler()
//
//	rootCmd := &cobra.Command{
//	    PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
//	        return p.Start()
//	    },
//	    PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
//	        return p.Stop()
//	    },
//	}
//
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//
// Users can then enable profiling via flags like --cpu-profile=cpu.prof.
package profile
