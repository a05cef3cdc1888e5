// Package finish defines the ceramic tile finishes a user can pick and the
// fixed catalog they come from.
package finish

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Option is one selectable tile appearance. Values are immutable once the
// catalog is loaded; callers pass them by value.
type Option struct {
	ID        int    `yaml:"id"`
	Name      string `yaml:"name"`
	BaseColor Color  `yaml:"color"`
	Texture   string `yaml:"texture"` // image URI
}

// Catalog is the ordered, fixed list of finishes. Order is display order.
type Catalog struct {
	options []Option
}

type catalogFile struct {
	Finishes []Option `yaml:"finishes"`
}

//go:embed catalog.yaml
var defaultCatalog []byte

// ErrEmptyCatalog is returned by First on a catalog with no entries.
var ErrEmptyCatalog = errors.New("finish: catalog is empty")

// NewCatalog builds a catalog from options, rejecting duplicate IDs.
// The slice is copied so later edits by the caller cannot reach the catalog.
func NewCatalog(options []Option) (*Catalog, error) {
	seen := make(map[int]bool, len(options))
	for _, o := range options {
		if seen[o.ID] {
			return nil, fmt.Errorf("finish: duplicate id %d", o.ID)
		}
		seen[o.ID] = true
	}
	out := make([]Option, len(options))
	copy(out, options)
	return &Catalog{options: out}, nil
}

// ParseCatalog decodes a YAML catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("finish: parse catalog: %w", err)
	}
	return NewCatalog(f.Finishes)
}

// Default returns the built-in five-entry catalog.
func Default() *Catalog {
	c, err := ParseCatalog(defaultCatalog)
	if err != nil {
		panic(err)
	}
	return c
}

// Load reads a catalog from path. An empty path returns Default().
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("finish: %w", err)
	}
	return ParseCatalog(data)
}

// Len returns the number of finishes.
func (c *Catalog) Len() int {
	return len(c.options)
}

// All returns a copy of the finishes in display order.
func (c *Catalog) All() []Option {
	out := make([]Option, len(c.options))
	copy(out, c.options)
	return out
}

// At returns the i-th finish in display order.
func (c *Catalog) At(i int) Option {
	return c.options[i]
}

// ByID looks a finish up by id.
func (c *Catalog) ByID(id int) (Option, bool) {
	for _, o := range c.options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// First returns the finish selected at startup.
func (c *Catalog) First() (Option, error) {
	if len(c.options) == 0 {
		return Option{}, ErrEmptyCatalog
	}
	return c.options[0], nil
}

// Textures returns every texture URI in the catalog, in order, without duplicates.
func (c *Catalog) Textures() []string {
	seen := make(map[string]bool, len(c.options))
	var out []string
	for _, o := range c.options {
		if o.Texture == "" || seen[o.Texture] {
			continue
		}
		seen[o.Texture] = true
		out = append(out, o.Texture)
	}
	return out
}
