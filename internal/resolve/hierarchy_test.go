package resolve

import (
	"errors"
	"strings"
	"testing"

	"github.com/protolist-labs/protolist/internal/proto"
	"go.uber.org/zap"
)

func TestHierarchyResolveChain(t *testing.T) {
	reg := newRegistry(t,
		desc("A", "B", ""),
		desc("B", "C", ""),
		desc("C", "Solid", ""),
		desc("D", "Slot", ""),
	)

	if err := NewHierarchy(reg, testBaseNodes, zap.NewNop()).Resolve(); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	tests := map[string]string{"A": "Solid", "B": "Solid", "C": "Solid", "D": "Slot"}
	for name, want := range tests {
		d, _ := reg.Get(name)
		if d.BaseType != want {
			t.Errorf("%s.BaseType = %q, want %q", name, d.BaseType, want)
		}
	}
}

func TestHierarchyOrderIndependent(t *testing.T) {
	// Resolving the leaf first (memoized) or the root first must agree.
	build := func() []*proto.Descriptor {
		return []*proto.Descriptor{desc("Z", "Y", ""), desc("Y", "X", ""), desc("X", "Group", "")}
	}

	first := newRegistry(t, build()...)
	if err := NewHierarchy(first, testBaseNodes, zap.NewNop()).Resolve(); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	second := newRegistry(t, build()...)
	h := NewHierarchy(second, testBaseNodes, zap.NewNop())
	x, _ := second.Get("X")
	if err := h.resolve(x); err != nil {
		t.Fatalf("resolve(X): %v", err)
	}
	if err := h.Resolve(); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	for _, name := range []string{"X", "Y", "Z"} {
		a, _ := first.Get(name)
		b, _ := second.Get(name)
		if a.BaseType != b.BaseType || a.BaseType != "Group" {
			t.Errorf("%s: %q vs %q, want Group", name, a.BaseType, b.BaseType)
		}
	}
}

func TestHierarchyUnresolvedReference(t *testing.T) {
	reg := newRegistry(t, desc("A", "B", ""), desc("B", "Missing", ""))

	err := NewHierarchy(reg, testBaseNodes, zap.NewNop()).Resolve()
	var unresolved *UnresolvedReferenceError
	if !errors.As(err, &unresolved) {
		t.Fatalf("error = %v, want *UnresolvedReferenceError", err)
	}
	if unresolved.Reference != "Missing" {
		t.Errorf("Reference = %q, want %q", unresolved.Reference, "Missing")
	}
}

func TestHierarchyCycles(t *testing.T) {
	tests := []struct {
		name  string
		descs []*proto.Descriptor
	}{
		{"self", []*proto.Descriptor{desc("A", "A", "")}},
		{"pair", []*proto.Descriptor{desc("A", "B", ""), desc("B", "A", "")}},
		{"tail into loop", []*proto.Descriptor{desc("A", "B", ""), desc("B", "C", ""), desc("C", "B", ""), desc("D", "Solid", "")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := newRegistry(t, tt.descs...)
			err := NewHierarchy(reg, testBaseNodes, zap.NewNop()).Resolve()
			var cyclic *CyclicHierarchyError
			if !errors.As(err, &cyclic) {
				t.Fatalf("error = %v, want *CyclicHierarchyError", err)
			}
			if !strings.Contains(err.Error(), "A") {
				t.Errorf("error %q does not name the descriptor", err.Error())
			}
		})
	}
}

func TestHierarchyDirectBaseNode(t *testing.T) {
	reg := newRegistry(t, desc("Only", "Robot", ""))
	if err := NewHierarchy(reg, testBaseNodes, zap.NewNop()).Resolve(); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	d, _ := reg.Get("Only")
	if d.BaseType != "Robot" {
		t.Errorf("BaseType = %q, want %q", d.BaseType, "Robot")
	}
}
