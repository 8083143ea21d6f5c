package keybind

// FindConflicts returns the bindings that occupy the same input slot as
// b. Backed by the Config's index, so the check stays O(1) even when a
// config holds hundreds of bindings.
func FindConflicts(b *Binding, cfg *Config) []*Binding {
	if existing := cfg.FindConflict(b); existing != nil {
		return []*Binding{existing}
	}
	return nil
}

// HasConflicts reports whether b's slot is already taken.
func HasConflicts(b *Binding, cfg *Config) bool {
	return cfg.FindConflict(b) != nil
}
