package catalog

// Icon names the pictogram shown next to a module in admin UIs. Values are
// resolved through an explicit mapping table rather than dynamic lookup so an
// unknown id always falls back to a defined default.
type Icon string

const (
	IconCPU         Icon = "cpu"
	IconActivity    Icon = "activity"
	IconBrain       Icon = "brain"
	IconShieldCheck Icon = "shield-check"
	IconLeaf        Icon = "leaf"
	IconFactory     Icon = "factory"

	// IconFallback is rendered for any icon id not present in the table.
	IconFallback Icon = "box"
)

var knownIcons = map[Icon]struct{}{
	IconCPU:         {},
	IconActivity:    {},
	IconBrain:       {},
	IconShieldCheck: {},
	IconLeaf:        {},
	IconFactory:     {},
}

// Resolve returns the icon itself when known, or IconFallback otherwise.
func (i Icon) Resolve() Icon {
	if _, ok := knownIcons[i]; ok {
		return i
	}
	return IconFallback
}

// String returns the string representation of the icon
func (i Icon) String() string {
	return string(i)
}
