package remember

// Forget drops the file stored under path in the named cache. The empty
// cache name resolves to DefaultCache.
//
// Forgetting from a cache that does not exist, or a path not present in
// an existing cache, logs a warning and mutates nothing. The file's
// history entries are removed together with the file itself.
func (r *Registry) Forget(cacheName, path string) {
	cacheName = resolveName(cacheName)
	c, ok := r.lookupExisting(cacheName)
	if !ok {
		r.warnf("forget: cache %s has not been created", cacheName)
		return
	}
	if !c.Remove(path) {
		r.warnf("forget: %s is not in cache %s", path, cacheName)
	}
}

// ForgetUsingHistory drops a file by any path it has ever been known by.
//
// A path present in the cache's files map takes priority and is forgotten
// directly. Otherwise the path is resolved through the history index to
// the file that most recently claimed it. A path unresolvable either way
// logs a warning and mutates nothing.
func (r *Registry) ForgetUsingHistory(cacheName, path string) {
	cacheName = resolveName(cacheName)
	c, ok := r.lookupExisting(cacheName)
	if !ok {
		r.warnf("forget: cache %s has not been created", cacheName)
		return
	}
	if _, ok := c.Get(path); ok {
		r.Forget(cacheName, path)
		return
	}
	if current, ok := c.Resolve(path); ok {
		r.Forget(cacheName, current)
		return
	}
	r.warnf("forget: %s is not in cache %s or its history", path, cacheName)
}

// ForgetAll empties the named cache. Equivalent to Wipe: the reset
// happens in place, so bound stages flush nothing afterwards.
func (r *Registry) ForgetAll(cacheName string) {
	r.Wipe(cacheName)
}

// Forget drops path from the named cache in the default registry.
func Forget(cacheName, path string) {
	defaultRegistry.Forget(cacheName, path)
}

// ForgetUsingHistory drops a file from the named cache in the default
// registry, resolving path through the cache's history when it is not a
// current path.
func ForgetUsingHistory(cacheName, path string) {
	defaultRegistry.ForgetUsingHistory(cacheName, path)
}

// ForgetAll empties the named cache in the default registry.
func ForgetAll(cacheName string) {
	defaultRegistry.ForgetAll(cacheName)
}

// CacheFor returns the named cache's live path-to-file map from the
// default registry, or an empty map if the cache does not exist.
// Read-only contract per Cache.Files.
func CacheFor(cacheName string) map[string]File {
	return defaultRegistry.Files(cacheName)
}

// HistoryFor returns the named cache's live historical-path index from
// the default registry, or an empty map if the cache does not exist.
func HistoryFor(cacheName string) map[string]string {
	return defaultRegistry.History(cacheName)
}
