package keybind

// DefaultCategory is the bucket for bindings that appear before any
// category header in the config file.
const DefaultCategory = "Uncategorized"

// Category is a named, ordered group of bindings. Grouping is purely
// presentational; it never affects conflict identity.
type Category struct {
	Name     string
	Bindings []*Binding
}

// Config is the aggregate root for a parsed keybinding configuration.
// All binding mutation must go through Add/Remove so the conflict index
// stays consistent with the category lists. The index is not
// synchronized; concurrent mutation requires external locking.
type Config struct {
	Categories map[string]*Category
	Variables  map[string]string
	FilePath   string

	index map[ConflictKey]*Binding
}

// NewConfig returns an empty configuration.
func NewConfig() *Config {
	return &Config{
		Categories: make(map[string]*Category),
		Variables:  make(map[string]string),
		index:      make(map[ConflictKey]*Binding),
	}
}

// Add inserts a binding into its category, creating the category if
// needed, and records it in the conflict index. A binding whose slot is
// already occupied overwrites the index entry (last write wins); callers
// wanting conflict-safe insertion must check FindConflict first.
func (c *Config) Add(b *Binding) {
	name := b.Category
	if name == "" {
		name = DefaultCategory
		b.Category = name
	}
	cat, ok := c.Categories[name]
	if !ok {
		cat = &Category{Name: name}
		c.Categories[name] = cat
	}
	cat.Bindings = append(cat.Bindings, b)
	c.index[b.ConflictKey()] = b
}

// Remove deletes a binding from its category list and clears its slot in
// the conflict index, whether or not the removed pointer is the current
// index occupant.
func (c *Config) Remove(b *Binding) {
	if cat, ok := c.Categories[b.Category]; ok {
		for i, existing := range cat.Bindings {
			if existing == b {
				cat.Bindings = append(cat.Bindings[:i], cat.Bindings[i+1:]...)
				break
			}
		}
	}
	delete(c.index, b.ConflictKey())
}

// FindConflict returns the binding currently occupying b's input slot,
// or nil when the slot is free. O(1) regardless of binding count.
func (c *Config) FindConflict(b *Binding) *Binding {
	return c.index[b.ConflictKey()]
}

// AllBindings returns a flat list of every binding across categories.
func (c *Config) AllBindings() []*Binding {
	var all []*Binding
	for _, cat := range c.Categories {
		all = append(all, cat.Bindings...)
	}
	return all
}

// RebuildIndex reconstructs the conflict index from the category lists.
// Use after bulk construction that bypassed Add/Remove.
func (c *Config) RebuildIndex() {
	c.index = make(map[ConflictKey]*Binding)
	for _, cat := range c.Categories {
		for _, b := range cat.Bindings {
			c.index[b.ConflictKey()] = b
		}
	}
}
