// Package profile provides optional runtime profiling for the procfile
// command, backed by [github.com/pkg/profile].
//
// Profiling is compiled in only with the "pprof" build tag:
//
//	go build -tags pprof .
//
// Without the tag, [Modes] is empty and [Profiler.Start] returns a no-op
// [Stopper], so callers never need build constraints of their own.
//
// # Modes
//
// With the tag, the supported modes are allocs, block, clock, cpu,
// goroutine, heap, mem, mutex, thread and trace. The command exposes them
// through the --pprof-mode flag:
//
//	procfile --pprof-mode cpu check Procfile
//	go tool pprof -http=: ~/.cache/procfile/pprof/cpu.pprof
//
// Profiles are written to the directory given by [WithPath], named after the
// mode (cpu.pprof, mem.pprof, and so on).
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
