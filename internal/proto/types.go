package proto

// Descriptor holds the metadata extracted from one PROTO file together with
// the facts filled in later by the resolver passes.
type Descriptor struct {
	Name    string // file stem, e.g. "RoadSegment"
	Path    string // absolute path of the .proto file
	Content string // file contents with geometry data blocks removed

	// ProtoType is the node type instantiated by the body (e.g. "Road" for
	// RoadSegment). BaseType is the foundational node reached by following
	// ProtoType through other descriptors (e.g. "Solid").
	ProtoType string
	BaseType  string

	License          *string
	LicenseURL       *string
	DocumentationURL *string
	Description      string
	Tags             []string
	Parameters       []string

	// Only meaningful for Slot based descriptors.
	SlotType *string
	// Only meaningful for container based descriptors (Solid, Transform, Group).
	NeedsRobotAncestor bool
}

// Resolved reports whether the hierarchy pass assigned a base type.
func (d *Descriptor) Resolved() bool {
	return d.BaseType != ""
}
