package profile

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// ErrProfile indicates a profile could not be started or written.
var ErrProfile = errors.New("profile")

// Profiler controls one profiling session.
//
// Create instances with [Config.NewProfiler].
type Profiler struct {
	cpuFile *os.File
	cfg     Config
}

// Start begins CPU profiling if enabled.
func (p *Profiler) Start() error {
	if p.cfg.CPU == "" {
		return nil
	}

	f, err := os.Create(p.cfg.CPU) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		return fmt.Errorf("%w: create cpu profile: %w", ErrProfile, err)
	}

	err = pprof.StartCPUProfile(f)
	if err != nil {
		return errors.Join(
			fmt.Errorf("%w: start cpu profile: %w", ErrProfile, err),
			f.Close(),
		)
	}

	p.cpuFile = f

	return nil
}

// Stop ends CPU profiling and writes the enabled snapshot profiles. It is
// safe to call Stop without a successful Start.
func (p *Profiler) Stop() error {
	var errs []error

	if p.cpuFile != nil {
		pprof.StopCPUProfile()

		err := p.cpuFile.Close()
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: close cpu profile: %w", ErrProfile, err))
		}

		p.cpuFile = nil
	}

	snapshots := []struct {
		name string
		path string
	}{
		{"heap", p.cfg.Heap},
		{"allocs", p.cfg.Allocs},
	}

	gc := false

	for _, s := range snapshots {
		if s.path == "" {
			continue
		}

		// Heap profiles report the state as of the most recent GC.
		if !gc {
			runtime.GC()

			gc = true
		}

		err := writeProfile(s.name, s.path)
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func writeProfile(name, path string) error {
	f, err := os.Create(path) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		return fmt.Errorf("%w: create %s profile: %w", ErrProfile, name, err)
	}

	err = pprof.Lookup(name).WriteTo(f, 0)
	if err != nil {
		return errors.Join(
			fmt.Errorf("%w: write %s profile: %w", ErrProfile, name, err),
			f.Close(),
		)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("%w: close %s profile: %w", ErrProfile, name, err)
	}

	return nil
}
