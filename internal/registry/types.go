package registry

import "sort"

// DiscoverOptions controls which files Discover returns.
type DiscoverOptions struct {
	Extension string   // e.g. ".proto"
	Skipped   []string // file names to ignore, e.g. "UsageProfile.proto"
}

// BaseNodes is the closed set of foundational node names (Solid, Slot, ...).
// No descriptor backs them.
type BaseNodes map[string]struct{}

// NewBaseNodes builds a set from names.
func NewBaseNodes(names ...string) BaseNodes {
	b := make(BaseNodes, len(names))
	for _, n := range names {
		b[n] = struct{}{}
	}
	return b
}

// Contains reports whether name is a foundational node.
func (b BaseNodes) Contains(name string) bool {
	_, ok := b[name]
	return ok
}

// Names returns the node names in sorted order.
func (b BaseNodes) Names() []string {
	names := make([]string, 0, len(b))
	for n := range b {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
