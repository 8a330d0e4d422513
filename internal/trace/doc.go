// Package trace records what sprig does while it lexes, parses, expands and
// formats files.
//
// # Usage
//
//	sprig expand --trace=- --trace-level=phase main.swift
//
// # Architecture
//
//   - Nop: zero-overhead tracer when disabled
//   - StreamTracer: writes every event to a file or stderr
//   - RingTracer: keeps the last events in memory and dumps them on failure
//   - MultiTracer: fans out to several tracers
//
// # Levels and scopes
//
// LevelPhase emits ScopeDriver and ScopePass events (one span per pass over a
// file), LevelDetail adds ScopeFile, LevelDebug adds ScopeNode (one event per
// placeholder). LevelError only lets point events carrying an error through.
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span, ctx := trace.StartSpan(ctx, trace.ScopePass, "parse")
//	defer span.End("")
package trace
