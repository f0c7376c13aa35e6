package catalog

// ModuleDefinition is an immutable catalog entry describing a platform module.
type ModuleDefinition struct {
	ID          ModuleID
	Name        string
	Description string
	Icon        Icon
}

// MVPDefinition is an immutable catalog entry describing an MVP feature pack.
// RequiredModules carries the dependency invariant: an MVP is only satisfied
// when every required module is present in the tenant's selection.
type MVPDefinition struct {
	ID              MVPID
	Name            string
	Description     string
	RequiredModules []ModuleID
	DataVolume      DataVolume
}

// Requires reports whether the MVP depends on the given module.
func (d MVPDefinition) Requires(moduleID ModuleID) bool {
	for _, req := range d.RequiredModules {
		if req == moduleID {
			return true
		}
	}
	return false
}

// Catalog holds the module and MVP definitions with index maps for lookup.
type Catalog struct {
	modules   []ModuleDefinition
	mvps      []MVPDefinition
	moduleIdx map[ModuleID]int
	mvpIdx    map[MVPID]int
}

// NewCatalog builds a catalog from definition slices. The slices are copied;
// callers cannot mutate the catalog afterwards.
func NewCatalog(modules []ModuleDefinition, mvps []MVPDefinition) *Catalog {
	c := &Catalog{
		modules:   make([]ModuleDefinition, len(modules)),
		mvps:      make([]MVPDefinition, len(mvps)),
		moduleIdx: make(map[ModuleID]int, len(modules)),
		mvpIdx:    make(map[MVPID]int, len(mvps)),
	}
	copy(c.modules, modules)
	copy(c.mvps, mvps)
	for i, m := range c.modules {
		c.moduleIdx[m.ID] = i
	}
	for i, m := range c.mvps {
		c.mvpIdx[m.ID] = i
	}
	return c
}

// Modules returns the module definitions in catalog order.
func (c *Catalog) Modules() []ModuleDefinition {
	out := make([]ModuleDefinition, len(c.modules))
	copy(out, c.modules)
	return out
}

// MVPs returns the MVP definitions in catalog order.
func (c *Catalog) MVPs() []MVPDefinition {
	out := make([]MVPDefinition, len(c.mvps))
	copy(out, c.mvps)
	return out
}

// Module looks up a module definition by ID.
func (c *Catalog) Module(id ModuleID) (ModuleDefinition, bool) {
	i, ok := c.moduleIdx[id]
	if !ok {
		return ModuleDefinition{}, false
	}
	return c.modules[i], true
}

// MVP looks up an MVP definition by ID.
func (c *Catalog) MVP(id MVPID) (MVPDefinition, bool) {
	i, ok := c.mvpIdx[id]
	if !ok {
		return MVPDefinition{}, false
	}
	return c.mvps[i], true
}

// HasModule reports whether the catalog knows the module ID.
func (c *Catalog) HasModule(id ModuleID) bool {
	_, ok := c.moduleIdx[id]
	return ok
}

// HasMVP reports whether the catalog knows the MVP ID.
func (c *Catalog) HasMVP(id MVPID) bool {
	_, ok := c.mvpIdx[id]
	return ok
}
