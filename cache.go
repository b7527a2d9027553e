package remember

import "iter"

// Cache is one named store of files plus a history index.
//
// The files map is keyed by current path; the history index maps any path
// a file has ever been known by to the current path of the file that most
// recently claimed it. The two are always updated together: Put and
// Remove are the only mutation points, and each leaves every history
// entry resolving to a live files entry.
//
// Iteration order over files is insertion order. A path overwritten by a
// later Put keeps its original position, so flush order is stable across
// runs regardless of which files were rewritten.
//
// A Cache assumes one cooperative pipeline run at a time; it performs no
// locking of its own.
type Cache struct {
	files   map[string]File
	history map[string]string
	order   []string
}

func newCache() *Cache {
	return &Cache{
		files:   make(map[string]File),
		history: make(map[string]string),
	}
}

// Put stores f under its current path, replacing any file already stored
// there, and indexes every path in its history.
//
// History entries previously resolving to f's path are purged first, so a
// replaced file cannot leave behind pointers for historical names its
// replacement no longer claims. When two distinct files contest the same
// historical path the later Put wins that entry; the earlier file's other
// history entries remain valid.
func (c *Cache) Put(f File) {
	path := f.Path()

	if _, ok := c.files[path]; !ok {
		c.order = append(c.order, path)
	}
	c.files[path] = f

	for h, current := range c.history {
		if current == path {
			delete(c.history, h)
		}
	}
	history := f.History()
	if len(history) == 0 {
		history = []string{path}
	}
	for _, h := range history {
		c.history[h] = path
	}
}

// Remove drops the file stored at path along with every history entry
// resolving to it. It reports whether a file was present.
func (c *Cache) Remove(path string) bool {
	if _, ok := c.files[path]; !ok {
		return false
	}
	for h, current := range c.history {
		if current == path {
			delete(c.history, h)
		}
	}
	delete(c.files, path)
	for i, p := range c.order {
		if p == path {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// Resolve maps a historical path to the current path of the file that
// most recently claimed it.
func (c *Cache) Resolve(historical string) (string, bool) {
	current, ok := c.history[historical]
	return current, ok
}

// Get returns the file stored at path.
func (c *Cache) Get(path string) (File, bool) {
	f, ok := c.files[path]
	return f, ok
}

// Len returns the number of stored files.
func (c *Cache) Len() int {
	return len(c.files)
}

// Records iterates the stored files in insertion order.
func (c *Cache) Records() iter.Seq[File] {
	return func(yield func(File) bool) {
		for _, path := range c.order {
			if !yield(c.files[path]) {
				return
			}
		}
	}
}

// Files returns the live path-to-file map. Callers must treat it as
// read-only; mutate through Put and Remove so the history index stays
// consistent.
func (c *Cache) Files() map[string]File {
	return c.files
}

// History returns the live historical-path index under the same read-only
// contract as Files.
func (c *Cache) History() map[string]string {
	return c.history
}

// Clear empties the cache in place. Stages already bound to it observe
// the wipe because the Cache value itself survives.
func (c *Cache) Clear() {
	c.files = make(map[string]File)
	c.history = make(map[string]string)
	c.order = nil
}
