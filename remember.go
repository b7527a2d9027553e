package remember

import "fmt"

// stageState tracks the one-way lifecycle of a Stage.
type stageState int

const (
	stateOpen stageState = iota
	stateFlushing
	stateClosed
)

// Stage records every file written to it into a named cache and, on
// flush, replays the cache's full contents downstream.
//
// The lifecycle is Open, then Flushing, then Closed, with exactly one
// flush per stage. Files written while Open are stored silently; nothing
// is forwarded until Flush. A file therefore passes through the stage
// twice: once to be cached during its run, and once in the flush of
// whichever run finally replays it.
//
// Stages constructed with the same cache name share one cache, so a
// second run's flush emits files written during the first.
type Stage struct {
	cache *Cache
	state stageState
}

// Option configures a Stage.
type Option func(*stageConfig)

type stageConfig struct {
	registry *Registry
}

// WithRegistry binds the stage's cache name inside reg instead of the
// package-level default registry.
func WithRegistry(reg *Registry) Option {
	return func(cfg *stageConfig) {
		cfg.registry = reg
	}
}

// New returns a stage bound to the named cache, creating the cache on
// first use. The empty string resolves to DefaultCache. The bound cache
// is shared with every other stage and forget call using the same name
// in the same registry.
func New(cacheName string, opts ...Option) *Stage {
	cfg := stageConfig{registry: defaultRegistry}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return &Stage{cache: cfg.registry.Lookup(cacheName)}
}

// Write stores f in the bound cache, replacing any file already cached at
// the same path and indexing its history. The file is not forwarded
// downstream; replay happens in Flush.
//
// Write returns ErrFlushing during a flush and ErrClosed after one.
func (s *Stage) Write(f File) error {
	switch s.state {
	case stateFlushing:
		return ErrFlushing
	case stateClosed:
		return ErrClosed
	}
	s.cache.Put(f)
	return nil
}

// Flush emits every file the bound cache currently holds, in the cache's
// insertion order, by calling emit once per file. The set includes files
// cached by earlier runs and files written during this run. After the
// last file the stage is closed; Flush can run at most once.
//
// An emit error aborts the replay, closes the stage, and is returned
// wrapped. Files already emitted are not retracted and the cache is left
// untouched either way.
func (s *Stage) Flush(emit func(File) error) error {
	if s.state != stateOpen {
		return ErrClosed
	}
	s.state = stateFlushing
	defer func() { s.state = stateClosed }()

	for f := range s.cache.Records() {
		if err := emit(f); err != nil {
			return fmt.Errorf("remember: flush %s: %w", f.Path(), err)
		}
	}
	return nil
}

// Cache exposes the stage's bound cache for inspection.
func (s *Stage) Cache() *Cache {
	return s.cache
}
