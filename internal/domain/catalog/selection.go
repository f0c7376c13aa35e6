package catalog

// Selection is the current module/MVP choice of an onboarding session. Both
// lists are duplicate-free and keep insertion order for display. The selection
// invariant holds after every mutation: each selected MVP's required modules
// are a subset of the selected modules.
//
// The toggle semantics are deliberately asymmetric. Deselecting a module
// cascades removal of every MVP that requires it, because an MVP cannot
// survive the loss of a prerequisite. Deselecting an MVP leaves its modules
// in place: modules auto-added for an MVP are indistinguishable from
// manually-added ones and may be shared by other MVPs.
type Selection struct {
	catalog *Catalog
	modules []ModuleID
	mvps    []MVPID
}

// NewSelection creates an empty selection against the given catalog.
func NewSelection(c *Catalog) *Selection {
	return &Selection{catalog: c}
}

// ReconstructSelection rebuilds a selection from stored id lists. Unknown ids
// are dropped and missing MVP prerequisites are auto-added so the invariant
// holds on the result regardless of what was persisted.
func ReconstructSelection(c *Catalog, modules []ModuleID, mvps []MVPID) *Selection {
	s := NewSelection(c)
	for _, m := range modules {
		if c.HasModule(m) && !s.HasModule(m) {
			s.modules = append(s.modules, m)
		}
	}
	for _, m := range mvps {
		if !c.HasMVP(m) || s.HasMVP(m) {
			continue
		}
		s.mvps = append(s.mvps, m)
		s.addRequiredModules(m)
	}
	return s
}

// Modules returns the selected module ids in insertion order.
func (s *Selection) Modules() []ModuleID {
	out := make([]ModuleID, len(s.modules))
	copy(out, s.modules)
	return out
}

// MVPs returns the selected MVP ids in insertion order.
func (s *Selection) MVPs() []MVPID {
	out := make([]MVPID, len(s.mvps))
	copy(out, s.mvps)
	return out
}

// ModuleCount returns the number of selected modules.
func (s *Selection) ModuleCount() int {
	return len(s.modules)
}

// MVPCount returns the number of selected MVPs.
func (s *Selection) MVPCount() int {
	return len(s.mvps)
}

// HasModule reports whether the module is currently selected.
func (s *Selection) HasModule(id ModuleID) bool {
	for _, m := range s.modules {
		if m == id {
			return true
		}
	}
	return false
}

// HasMVP reports whether the MVP is currently selected.
func (s *Selection) HasMVP(id MVPID) bool {
	for _, m := range s.mvps {
		if m == id {
			return true
		}
	}
	return false
}

// ToggleModule selects or deselects a module. Deselecting removes every
// selected MVP that requires it. An id unknown to the catalog is a no-op.
func (s *Selection) ToggleModule(id ModuleID) {
	if !s.catalog.HasModule(id) {
		return
	}

	if !s.HasModule(id) {
		s.modules = append(s.modules, id)
		return
	}

	kept := s.modules[:0]
	for _, m := range s.modules {
		if m != id {
			kept = append(kept, m)
		}
	}
	s.modules = kept

	// Cascade: an MVP cannot survive the loss of a prerequisite.
	keptMVPs := s.mvps[:0]
	for _, mvpID := range s.mvps {
		def, ok := s.catalog.MVP(mvpID)
		if ok && def.Requires(id) {
			continue
		}
		keptMVPs = append(keptMVPs, mvpID)
	}
	s.mvps = keptMVPs
}

// ToggleMVP selects or deselects an MVP. Selecting auto-adds any required
// modules not already present; deselecting removes only the MVP itself.
// An id unknown to the catalog is a no-op.
func (s *Selection) ToggleMVP(id MVPID) {
	if !s.catalog.HasMVP(id) {
		return
	}

	if s.HasMVP(id) {
		kept := s.mvps[:0]
		for _, m := range s.mvps {
			if m != id {
				kept = append(kept, m)
			}
		}
		s.mvps = kept
		return
	}

	s.mvps = append(s.mvps, id)
	s.addRequiredModules(id)
}

func (s *Selection) addRequiredModules(id MVPID) {
	def, ok := s.catalog.MVP(id)
	if !ok {
		return
	}
	for _, req := range def.RequiredModules {
		if !s.HasModule(req) {
			s.modules = append(s.modules, req)
		}
	}
}

// Satisfied reports whether every selected MVP has all required modules
// selected. It holds after every Toggle call; persisted selections are
// repaired on reconstruction.
func (s *Selection) Satisfied() bool {
	for _, mvpID := range s.mvps {
		def, ok := s.catalog.MVP(mvpID)
		if !ok {
			return false
		}
		for _, req := range def.RequiredModules {
			if !s.HasModule(req) {
				return false
			}
		}
	}
	return true
}
