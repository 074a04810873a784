package hl7

import (
	"fmt"
	"sort"
	"sync"
)

// Catalog is the set of segment declarations, composite types and code
// tables of one HL7 version.
type Catalog struct {
	Version string

	mu       sync.RWMutex
	segments map[string]*SegmentDef
	types    map[string]*TypeDef
	tables   map[string]*CodeTable
}

// NewCatalog returns an empty catalog for version
func NewCatalog(version string) *Catalog {
	return &Catalog{
		Version:  version,
		segments: map[string]*SegmentDef{},
		types:    map[string]*TypeDef{},
		tables:   map[string]*CodeTable{},
	}
}

// AddSegments registers segment declarations, replacing any with the same tag
func (c *Catalog) AddSegments(defs ...*SegmentDef) *Catalog {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, d := range defs {
		c.segments[d.Tag] = d
	}
	return c
}

// AddTypes registers composite types by id
func (c *Catalog) AddTypes(types ...*TypeDef) *Catalog {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range types {
		c.types[t.ID] = t
	}
	return c
}

// AddTables registers code tables by id
func (c *Catalog) AddTables(tables ...*CodeTable) *Catalog {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range tables {
		c.tables[t.ID] = t
	}
	return c
}

// Segment returns the declaration for tag, or nil
func (c *Catalog) Segment(tag string) *SegmentDef {
	if c == nil {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.segments[tag]
}

// Type returns the composite type with id, or nil
func (c *Catalog) Type(id string) *TypeDef {
	if c == nil {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.types[id]
}

// Table returns the code table with id, or nil
func (c *Catalog) Table(id string) *CodeTable {
	if c == nil {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tables[id]
}

// Tags returns the registered segment tags in sorted order
func (c *Catalog) Tags() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	tags := make([]string, 0, len(c.segments))
	for t := range c.segments {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// Code returns the wire code registered under name in table
func (c *Catalog) Code(table, name string) (string, bool) {
	t := c.Table(table)
	if t == nil {
		return "", false
	}
	return t.Code(name)
}

// Describe returns the display text of a wire code in table
func (c *Catalog) Describe(table, code string) (string, bool) {
	t := c.Table(table)
	if t == nil {
		return "", false
	}
	return t.Display(code)
}

// Registry maps HL7 versions to catalogs
type Registry struct {
	mu       sync.RWMutex
	catalogs map[string]*Catalog
}

// NewRegistry returns a registry holding the given catalogs
func NewRegistry(catalogs ...*Catalog) *Registry {
	r := &Registry{catalogs: map[string]*Catalog{}}
	for _, c := range catalogs {
		r.Register(c)
	}
	return r
}

// Register adds a catalog, replacing any with the same version
func (r *Registry) Register(c *Catalog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.catalogs[c.Version] = c
}

// Catalog returns the catalog for version
func (r *Registry) Catalog(version string) (*Catalog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.catalogs[version]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, version)
	}
	return c, nil
}

// Versions returns the registered versions in sorted order
func (r *Registry) Versions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.catalogs))
	for v := range r.catalogs {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
