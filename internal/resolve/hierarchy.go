package resolve

import (
	"github.com/protolist-labs/protolist/internal/proto"
	"github.com/protolist-labs/protolist/internal/registry"
	"go.uber.org/zap"
)

// Hierarchy assigns the base type of every descriptor in a registry.
type Hierarchy struct {
	reg    *registry.Registry
	base   registry.BaseNodes
	logger *zap.Logger
}

// NewHierarchy returns a hierarchy pass over reg.
func NewHierarchy(reg *registry.Registry, base registry.BaseNodes, logger *zap.Logger) *Hierarchy {
	return &Hierarchy{reg: reg, base: base, logger: logger}
}

// Resolve sets BaseType on every descriptor. Descriptors met along a chain
// are resolved in the same walk, so each chain is followed once.
func (h *Hierarchy) Resolve() error {
	for _, d := range h.reg.All() {
		if d.Resolved() {
			continue
		}
		if err := h.resolve(d); err != nil {
			return err
		}
	}
	h.logger.Debug("hierarchy resolved", zap.Int("protos", h.reg.Len()))
	return nil
}

func (h *Hierarchy) resolve(d *proto.Descriptor) error {
	limit := h.reg.Len()
	chain := []*proto.Descriptor{d}
	current := d.ProtoType

	var baseType string
	for steps := 0; ; steps++ {
		if h.base.Contains(current) {
			baseType = current
			break
		}
		if steps >= limit {
			return &CyclicHierarchyError{Name: d.Name, Chain: chainNames(chain)}
		}

		next, ok := h.reg.Get(current)
		if !ok {
			return &UnresolvedReferenceError{Name: d.Name, Reference: current}
		}
		if next.Resolved() {
			baseType = next.BaseType
			break
		}
		chain = append(chain, next)
		current = next.ProtoType
	}

	for _, link := range chain {
		if !link.Resolved() {
			link.BaseType = baseType
		}
	}
	return nil
}

func chainNames(chain []*proto.Descriptor) []string {
	names := make([]string, len(chain))
	for i, d := range chain {
		names[i] = d.Name
	}
	return names
}
