package load

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"os"
	"sync"
)

// Cache memoizes decoded manifests by path, keyed on a digest of the
// file contents. Watch loops use it to skip regeneration when a write
// event did not change the manifest, as editors often emit several
// events per save.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	sum      [sha256.Size]byte
	manifest *Manifest
}

// NewCache returns an empty manifest cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*cacheEntry)}
}

// Load reads the manifest at path and reports whether its contents
// changed since the previous Load of the same path. An unchanged file
// returns the previously decoded manifest without re-parsing. The first
// read of a path counts as changed.
func (c *Cache) Load(path string) (m *Manifest, changed bool, err error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("load: read manifest: %w", err)
	}
	sum := sha256.Sum256(buf)
	c.mu.Lock()
	e, ok := c.entries[path]
	c.mu.Unlock()
	if ok && e.sum == sum {
		return e.manifest, false, nil
	}
	m, err = ParseManifest(bytes.NewReader(buf))
	if err != nil {
		return nil, false, fmt.Errorf("load: parse manifest %s: %w", path, err)
	}
	c.mu.Lock()
	c.entries[path] = &cacheEntry{sum: sum, manifest: m}
	c.mu.Unlock()
	return m, true, nil
}

// Invalidate drops the cached entry for path. The next Load of the path
// reports changed regardless of its contents.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	delete(c.entries, path)
	c.mu.Unlock()
}

// Clear drops all cached entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]*cacheEntry)
	c.mu.Unlock()
}

// Len returns the number of cached manifests.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
