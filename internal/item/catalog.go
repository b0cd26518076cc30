package item

import (
	"fmt"
	"strings"
)

// Catalog is the read-only list of items a market sells. It is owned by the
// caller that built it; nothing in this module keeps a global copy.
type Catalog struct {
	items []Item
}

// NewCatalog validates items and returns a catalog holding its own copy of them.
// Two entries may share a name as long as their rarities differ.
func NewCatalog(items []Item) (*Catalog, error) {
	seen := make(map[string]bool, len(items))
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return nil, err
		}
		key := it.Name + "\x00" + string(it.Rarity)
		if seen[key] {
			return nil, fmt.Errorf("%w: duplicate entry %s (%s)", ErrInvalidItem, it.Name, it.Rarity)
		}
		seen[key] = true
		out = append(out, it)
	}
	return &Catalog{items: out}, nil
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int { return len(c.items) }

// Items returns a copy of every entry in insertion order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// FilterByRarity returns the entries of the given rarity.
func (c *Catalog) FilterByRarity(r Rarity) []Item {
	var out []Item
	for _, it := range c.items {
		if it.Rarity == r {
			out = append(out, it)
		}
	}
	return out
}

// Search returns entries whose name contains query, ignoring case.
// An empty query matches everything.
func (c *Catalog) Search(query string) []Item {
	q := strings.ToLower(query)
	var out []Item
	for _, it := range c.items {
		if strings.Contains(strings.ToLower(it.Name), q) {
			out = append(out, it)
		}
	}
	return out
}

// Find returns the entry with exactly this name and rarity.
func (c *Catalog) Find(name string, rarity Rarity) (Item, bool) {
	for _, it := range c.items {
		if it.Matches(name, rarity) {
			return it, true
		}
	}
	return Item{}, false
}
