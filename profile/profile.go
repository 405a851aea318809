package profile

import (
	"fmt"
	"os"
	"runtime/pprof"
)

// Profiler controls the lifecycle of a profiling session: [Profiler.Start]
// begins CPU profiling, [Profiler.Stop] ends it and writes the heap
// snapshot.
//
// Create instances with [Config.NewProfiler].
type Profiler struct {
	cpuFile *os.File
	cfg     *Config
}

// Start begins CPU profiling when a CPU profile path is configured. It is a
// no-op otherwise.
func (p *Profiler) Start() error {
	if p.cfg.CPUProfile == "" {
		return nil
	}

	f, err := os.Create(p.cfg.CPUProfile) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		return fmt.Errorf("creating CPU profile: %w", err)
	}

	err = pprof.StartCPUProfile(f)
	if err != nil {
		_ = f.Close()

		return fmt.Errorf("starting CPU profile: %w", err)
	}

	p.cpuFile = f

	return nil
}

// Stop ends CPU profiling and writes the heap profile when configured.
// It is safe to call after a failed or skipped [Profiler.Start].
func (p *Profiler) Stop() error {
	if p.cpuFile != nil {
		pprof.StopCPUProfile()

		err := p.cpuFile.Close()
		p.cpuFile = nil

		if err != nil {
			return fmt.Errorf("closing CPU profile: %w", err)
		}
	}

	if p.cfg.HeapProfile != "" {
		err := writeHeapProfile(p.cfg.HeapProfile)
		if err != nil {
			return err
		}
	}

	return nil
}

func writeHeapProfile(path string) error {
	f, err := os.Create(path) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		return fmt.Errorf("creating heap profile: %w", err)
	}

	err = pprof.Lookup("heap").WriteTo(f, 0)

	closeErr := f.Close()
	if err != nil {
		return fmt.Errorf("writing heap profile: %w", err)
	}

	if closeErr != nil {
		return fmt.Errorf("closing heap profile: %w", closeErr)
	}

	return nil
}
