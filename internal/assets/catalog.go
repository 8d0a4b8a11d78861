// Package assets resolves the author-supplied files the page references:
// the profile photo, certificate and project thumbnails, and the CV.
package assets

import (
	"io/fs"
	"path"
	"strings"
	"sync"
)

// Resolver reports whether an asset referenced by the page exists.
type Resolver interface {
	Exists(name string) bool
}

// Catalog resolves asset names against a file system and caches the answers
// until Invalidate is called.
type Catalog struct {
	fsys fs.FS

	mu    sync.RWMutex
	cache map[string]bool
}

func NewCatalog(fsys fs.FS) *Catalog {
	return &Catalog{fsys: fsys, cache: make(map[string]bool)}
}

// FS returns the file system the catalog resolves against.
func (c *Catalog) FS() fs.FS {
	return c.fsys
}

// Exists reports whether name is a regular file in the catalog. Names are
// page-relative paths such as "co1.jpg" or "/assets/co1.jpg".
func (c *Catalog) Exists(name string) bool {
	key, ok := Clean(name)
	if !ok {
		return false
	}

	c.mu.RLock()
	found, cached := c.cache[key]
	c.mu.RUnlock()
	if cached {
		return found
	}

	info, err := fs.Stat(c.fsys, key)
	found = err == nil && info.Mode().IsRegular()

	c.mu.Lock()
	c.cache[key] = found
	c.mu.Unlock()
	return found
}

// Invalidate drops every cached answer.
func (c *Catalog) Invalidate() {
	c.mu.Lock()
	clear(c.cache)
	c.mu.Unlock()
}

// Clean turns a page reference into an fs.FS path. It rejects absolute URLs
// and paths that escape the asset root.
func Clean(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" || strings.Contains(name, "://") || strings.HasPrefix(name, "//") {
		return "", false
	}
	name = strings.TrimPrefix(name, "/")
	name = path.Clean(name)
	if !fs.ValidPath(name) || name == "." {
		return "", false
	}
	return name, true
}

// Missing returns the names that do not resolve, in input order.
func Missing(r Resolver, names []string) []string {
	var missing []string
	for _, name := range names {
		if !r.Exists(name) {
			missing = append(missing, name)
		}
	}
	return missing
}
