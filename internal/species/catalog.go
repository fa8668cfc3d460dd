package species

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog is an immutable, id-ordered set of species.
type Catalog struct {
	species []Species
	byID    map[ID]*Species
}

// NewCatalog builds a catalog from list. Entries are ordered by ascending id
// regardless of input order.
func NewCatalog(list []Species) (*Catalog, error) {
	if err := validate(list); err != nil {
		return nil, err
	}
	sorted := make([]Species, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	c := &Catalog{
		species: sorted,
		byID:    make(map[ID]*Species, len(sorted)),
	}
	for i := range c.species {
		c.byID[c.species[i].ID] = &c.species[i]
	}
	return c, nil
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc struct {
		Species []Species `yaml:"species"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return NewCatalog(doc.Species)
}

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	return Parse(catalogYAML)
})

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	return loadDefault()
}

// Get returns the species with the given id.
func (c *Catalog) Get(id ID) (Species, bool) {
	s, ok := c.byID[id]
	if !ok {
		return Species{}, false
	}
	return *s, true
}

// All returns every species in ascending id order.
func (c *Catalog) All() []Species {
	out := make([]Species, len(c.species))
	copy(out, c.species)
	return out
}

// Len returns the number of species.
func (c *Catalog) Len() int {
	return len(c.species)
}

// StarterCosts returns each species' starter cost in ascending id order.
func (c *Catalog) StarterCosts() []StarterCost {
	out := make([]StarterCost, len(c.species))
	for i, s := range c.species {
		out[i] = StarterCost{ID: s.ID, Cost: s.StarterCost}
	}
	return out
}

// Filter returns the species matching keep, preserving catalog order.
func (c *Catalog) Filter(keep func(Species) bool) []Species {
	var out []Species
	for _, s := range c.species {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}
