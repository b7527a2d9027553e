// Package remember provides a replay cache stage for file pipelines.
//
// A Stage sits in the middle of a pipeline run, silently recording every
// file that flows through it into a named in-memory cache. When the run
// ends, flushing the stage re-emits every file the cache holds, including
// files cached during earlier runs, so downstream steps always see the
// full set even when an upstream filter only let changed files through.
//
// Caches are addressed by name and live for the lifetime of the process.
// Two stages constructed with the same name share one cache; this sharing
// is what carries files across runs.
//
// # Quick Start
//
// Record files during a run and replay the full cache at the end:
//
//	stage := remember.New("scripts")
//	for f := range changed {
//	    if err := stage.Write(f); err != nil {
//	        return err
//	    }
//	}
//	err := stage.Flush(func(f remember.File) error {
//	    return downstream.Write(f)
//	})
//
// Or host the stage on channels:
//
//	out := make(chan remember.File)
//	go stage.Run(ctx, in, out)
//
// # Forgetting
//
// Files are dropped from a cache by their current path or by any path
// they were previously known by:
//
//	remember.Forget("scripts", "app.js")
//	remember.ForgetUsingHistory("scripts", "old-name.js")
//	remember.ForgetAll("scripts")
//
// Unknown caches and unknown paths are soft failures: the call logs a
// warning through the configured logger and returns without mutating
// anything.
//
// # Concurrency
//
// The registry of named caches is safe to access from unrelated call
// sites, but an individual cache assumes one cooperative pipeline run at
// a time. Driving two simultaneous runs against the same cache name
// produces undefined interleavings.
package remember
