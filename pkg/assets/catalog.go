// Package assets maps template identifiers to image locations.
package assets

import (
	"path/filepath"
	"sort"
)

// Catalog is an immutable template id to image location mapping.
type Catalog struct {
	paths map[string]string
	base  string
}

// New creates a catalog from id to path pairs. The map is copied.
func New(paths map[string]string) *Catalog {
	c := &Catalog{paths: make(map[string]string, len(paths))}
	for id, p := range paths {
		c.paths[id] = p
	}
	return c
}

// Default returns the built-in templates.
func Default() *Catalog {
	return New(map[string]string{
		"drake":      "templates/drake.jpeg",
		"distracted": "templates/distracted.jpeg",
		"buttons":    "templates/buttons.jpeg",
		"simply":     "templates/simply.jpeg",
		"success":    "templates/success.jpeg",
	})
}

// WithBase returns a copy whose relative paths resolve against dir.
func (c *Catalog) WithBase(dir string) *Catalog {
	cp := New(c.paths)
	cp.base = dir
	return cp
}

// Resolve returns the location of the template id.
func (c *Catalog) Resolve(id string) (string, bool) {
	p, ok := c.paths[id]
	if !ok {
		return "", false
	}
	if c.base != "" && !filepath.IsAbs(p) {
		p = filepath.Join(c.base, p)
	}
	return p, true
}

// IDs returns the template ids in sorted order.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.paths))
	for id := range c.paths {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Map returns a copy of the raw id to path mapping.
func (c *Catalog) Map() map[string]string {
	m := make(map[string]string, len(c.paths))
	for id, p := range c.paths {
		m[id] = p
	}
	return m
}
