package model

import "fmt"

// Option is one scoreable answer choice for an item.
type Option struct {
	Label string `json:"label" yaml:"label"` // e.g., "A"
	Text  string `json:"text" yaml:"text"`
	Score int    `json:"score" yaml:"score"` // 1 (most severe) to 4 (least severe)
}

// Item is one assessable question-equivalent unit.
type Item struct {
	ID       string   `json:"id" yaml:"id"`
	Category string   `json:"category" yaml:"category"`
	Intent   string   `json:"intent" yaml:"intent"` // canonical question intent; the model phrases it naturally
	Options  []Option `json:"options" yaml:"options"`
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Hints    []string `json:"hints,omitempty" yaml:"hints,omitempty"`
}

// Category groups items; order is significant.
type Category struct {
	Name  string `json:"name" yaml:"name"`
	Items []Item `json:"items" yaml:"items"`
}

// Catalog is the fixed assessment instrument. Immutable after load, shared
// read-only across sessions.
type Catalog struct {
	Categories []Category `json:"categories" yaml:"categories"`
}

// Items returns every item in catalog order.
func (c *Catalog) Items() []Item {
	var items []Item
	for _, cat := range c.Categories {
		items = append(items, cat.Items...)
	}
	return items
}

// Len returns the total item count.
func (c *Catalog) Len() int {
	n := 0
	for _, cat := range c.Categories {
		n += len(cat.Items)
	}
	return n
}

// ItemByID looks up an item by its identifier.
func (c *Catalog) ItemByID(id string) (*Item, bool) {
	for ci := range c.Categories {
		for ii := range c.Categories[ci].Items {
			if c.Categories[ci].Items[ii].ID == id {
				return &c.Categories[ci].Items[ii], true
			}
		}
	}
	return nil, false
}

// Option returns the option with the given label.
func (it *Item) Option(label string) (*Option, bool) {
	for i := range it.Options {
		if it.Options[i].Label == label {
			return &it.Options[i], true
		}
	}
	return nil, false
}

// LeastSevereOption returns the highest-scoring option. Used as the default
// answer when the clarify bound is exhausted.
func (it *Item) LeastSevereOption() *Option {
	best := &it.Options[0]
	for i := range it.Options {
		if it.Options[i].Score > best.Score {
			best = &it.Options[i]
		}
	}
	return best
}

// Validate checks catalog integrity: non-empty categories, unique item IDs
// and option labels, scores within [1,4].
func (c *Catalog) Validate() error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("catalog has no categories")
	}
	seen := make(map[string]bool)
	for _, cat := range c.Categories {
		if cat.Name == "" {
			return fmt.Errorf("category with empty name")
		}
		if len(cat.Items) == 0 {
			return fmt.Errorf("category %q has no items", cat.Name)
		}
		for _, it := range cat.Items {
			if it.ID == "" {
				return fmt.Errorf("item with empty id in category %q", cat.Name)
			}
			if seen[it.ID] {
				return fmt.Errorf("duplicate item id %q", it.ID)
			}
			seen[it.ID] = true
			if it.Category != cat.Name {
				return fmt.Errorf("item %q category %q does not match %q", it.ID, it.Category, cat.Name)
			}
			if len(it.Options) == 0 {
				return fmt.Errorf("item %q has no options", it.ID)
			}
			labels := make(map[string]bool)
			for _, opt := range it.Options {
				if opt.Label == "" {
					return fmt.Errorf("item %q has an option with empty label", it.ID)
				}
				if labels[opt.Label] {
					return fmt.Errorf("item %q has duplicate option label %q", it.ID, opt.Label)
				}
				labels[opt.Label] = true
				if opt.Score < 1 || opt.Score > 4 {
					return fmt.Errorf("item %q option %q score %d out of range [1,4]", it.ID, opt.Label, opt.Score)
				}
			}
		}
	}
	return nil
}
