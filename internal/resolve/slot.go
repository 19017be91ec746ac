package resolve

import (
	"regexp"

	"github.com/protolist-labs/protolist/internal/proto"
	"github.com/protolist-labs/protolist/internal/registry"
	"go.uber.org/zap"
)

// DefaultSlotType is the value of the type field of a bare Slot node.
const DefaultSlotType = ""

var slotTypeRe = regexp.MustCompile(`type\s+"([a-zA-Z0-9_\-+\s]+)"`)

// Slots assigns the connector type of Slot based descriptors.
type Slots struct {
	reg      *registry.Registry
	base     registry.BaseNodes
	slotNode string
	logger   *zap.Logger
}

// NewSlots returns the slot pass. slotNode is the base node name of
// connectors, "Slot" in the standard node set.
func NewSlots(reg *registry.Registry, base registry.BaseNodes, slotNode string, logger *zap.Logger) *Slots {
	return &Slots{reg: reg, base: base, slotNode: slotNode, logger: logger}
}

// Resolve sets SlotType on every descriptor whose base type is the slot node.
// It must run after the hierarchy pass.
func (s *Slots) Resolve() error {
	count := 0
	for _, d := range s.reg.All() {
		if d.BaseType != s.slotNode || d.SlotType != nil {
			continue
		}
		slotType, err := s.resolve(d)
		if err != nil {
			return err
		}
		d.SlotType = &slotType
		count++
	}
	s.logger.Debug("slot types resolved", zap.Int("slots", count))
	return nil
}

// resolve walks from d down its proto type chain and returns the first
// explicit type declaration found. Only the first declaration of a level
// counts.
func (s *Slots) resolve(d *proto.Descriptor) (string, error) {
	limit := s.reg.Len()
	chain := []*proto.Descriptor{d}
	current := d

	for steps := 0; ; steps++ {
		if m := slotTypeRe.FindStringSubmatch(current.Content); m != nil {
			return m[1], nil
		}

		if s.base.Contains(current.ProtoType) {
			if current.ProtoType == s.slotNode {
				return DefaultSlotType, nil
			}
			return "", &InconsistentHierarchyError{Name: d.Name, BaseNode: current.ProtoType}
		}
		if steps >= limit {
			return "", &CyclicHierarchyError{Name: d.Name, Chain: chainNames(chain)}
		}

		next, ok := s.reg.Get(current.ProtoType)
		if !ok {
			return "", &UnresolvedReferenceError{Name: d.Name, Reference: current.ProtoType}
		}
		chain = append(chain, next)
		current = next
	}
}
