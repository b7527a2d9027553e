package remember

import (
	"sync"

	"github.com/apex/log"
)

// DefaultCache is the cache name used when a call site passes the empty
// string.
const DefaultCache = "_default"

// pluginName tags every warning this package logs.
const pluginName = "remember"

// Registry owns the process's named caches. Entries are created lazily on
// first reference and live until the process exits or ForgetAll wipes
// them; there is no automatic teardown.
//
// Most programs use the package-level default registry through New,
// Forget and friends. Construct a Registry directly to isolate caches,
// for example per test.
//
// The name table is safe for concurrent access. The Caches it hands out
// are not; see the package documentation.
type Registry struct {
	mu     sync.Mutex
	caches map[string]*Cache
	log    log.Interface
}

// NewRegistry returns an empty registry logging warnings through logger.
// A nil logger falls back to the apex/log default.
func NewRegistry(logger log.Interface) *Registry {
	if logger == nil {
		logger = log.Log
	}
	return &Registry{
		caches: make(map[string]*Cache),
		log:    logger,
	}
}

// defaultRegistry backs the package-level functions. Caches must be
// addressable by name from unrelated call sites, so the table is shared
// process-wide.
var defaultRegistry = NewRegistry(nil)

// resolveName maps the empty string to DefaultCache.
func resolveName(name string) string {
	if name == "" {
		return DefaultCache
	}
	return name
}

// Lookup returns the cache stored under name, creating an empty one on
// first use. The empty string resolves to DefaultCache. Repeated calls
// with the same name return the same Cache.
func (r *Registry) Lookup(name string) *Cache {
	name = resolveName(name)

	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.caches[name]
	if !ok {
		c = newCache()
		r.caches[name] = c
	}
	return c
}

// lookupExisting returns the cache under name without creating one.
func (r *Registry) lookupExisting(name string) (*Cache, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.caches[name]
	return c, ok
}

// Wipe resets the named cache to empty, in place, so stages already bound
// to it observe the wipe. Wiping a cache that was never created logs a
// warning and mutates nothing.
func (r *Registry) Wipe(name string) {
	name = resolveName(name)
	c, ok := r.lookupExisting(name)
	if !ok {
		r.warnf("cache %s has not been created", name)
		return
	}
	c.Clear()
}

// Files returns the named cache's live path-to-file map, or an empty map
// if the cache does not exist. Read-only contract per Cache.Files.
func (r *Registry) Files(name string) map[string]File {
	c, ok := r.lookupExisting(resolveName(name))
	if !ok {
		return map[string]File{}
	}
	return c.Files()
}

// History returns the named cache's live historical-path index, or an
// empty map if the cache does not exist.
func (r *Registry) History(name string) map[string]string {
	c, ok := r.lookupExisting(resolveName(name))
	if !ok {
		return map[string]string{}
	}
	return c.History()
}

func (r *Registry) warnf(format string, args ...any) {
	r.log.WithField("plugin", pluginName).Warnf(format, args...)
}
