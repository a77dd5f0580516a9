// Package profile provides optional runtime profiling for the jan
// interpreter.
//
// Profiling is built on [github.com/pkg/profile] and compiled in only with
// the "pprof" build tag:
//
//	go build -tags pprof .
//
// Without the tag, [Modes] is empty and [Config.Start] returns a no-op, so
// callers never need their own build constraints.
//
// # Modes
//
//   - allocs:    memory allocation profiling (all allocations)
//   - block:     block (synchronization) profiling
//   - clock:     wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: goroutine profiling
//   - heap:      heap profiling (live allocations)
//   - mem:       general memory profiling
//   - mutex:     mutex contention profiling
//   - thread:    thread creation profiling
//   - trace:     execution trace
//
// # Usage
//
//	p := profile.Make(
//		profile.WithMode("cpu"),
//		profile.WithPath("/tmp/jan"),
//	).Start()
//	defer p.Stop()
//
// Deeply recursive scripts are a good fit for the cpu and clock modes:
//
//	jan --pprof-mode=cpu run fib.jan
//	go tool pprof -http=: ~/.cache/jan/pprof/cpu.pprof
//
// Profile files are named after their mode (cpu.pprof, mem.pprof, ...). The
// pprof build also registers the [net/http/pprof] handlers on
// [net/http.DefaultServeMux].
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
