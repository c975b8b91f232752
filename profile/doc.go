// Package profile writes pprof profiles covering one run of the
// tokenize-comment command, for finding slow spots when scanning large source
// trees.
//
// A CPU profile covers the time between [Profiler.Start] and [Profiler.Stop];
// heap and allocs profiles are snapshots taken at Stop:
//
//	cfg := profile.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//
//	p := cfg.NewProfiler()
//	err := p.Start()
//	// ...
//	err = p.Stop()
//
// Profiles are enabled with flags such as --cpu-profile=cpu.prof.
package profile
