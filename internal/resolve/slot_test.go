package resolve

import (
	"errors"
	"testing"

	"github.com/protolist-labs/protolist/internal/proto"
	"go.uber.org/zap"
)

func resolveAll(t *testing.T, descs ...*proto.Descriptor) error {
	t.Helper()
	reg := newRegistry(t, descs...)
	if err := NewHierarchy(reg, testBaseNodes, zap.NewNop()).Resolve(); err != nil {
		t.Fatalf("hierarchy: %v", err)
	}
	return NewSlots(reg, testBaseNodes, "Slot", zap.NewNop()).Resolve()
}

func TestSlotTypeDeclaredOnDescriptor(t *testing.T) {
	gripper := desc("GripperSlot", "Slot", `    type "gripper"`)
	if err := resolveAll(t, gripper); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if gripper.SlotType == nil || *gripper.SlotType != "gripper" {
		t.Errorf("SlotType = %v, want %q", gripper.SlotType, "gripper")
	}
}

func TestSlotTypeDefault(t *testing.T) {
	bare := desc("BareSlot", "Slot", "    endPoint Solid { }")
	if err := resolveAll(t, bare); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if bare.SlotType == nil {
		t.Fatal("SlotType = nil, want empty string")
	}
	if *bare.SlotType != DefaultSlotType {
		t.Errorf("SlotType = %q, want %q", *bare.SlotType, DefaultSlotType)
	}
}

func TestSlotTypeInheritedFromChain(t *testing.T) {
	base := desc("WheelSlot", "Slot", `    type "wheel mount"`)
	derived := desc("FrontWheelSlot", "WheelSlot", "    name \"front\"")
	if err := resolveAll(t, base, derived); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if derived.SlotType == nil || *derived.SlotType != "wheel mount" {
		t.Errorf("SlotType = %v, want %q", derived.SlotType, "wheel mount")
	}
}

func TestSlotTypeFirstMatchWins(t *testing.T) {
	d := desc("DoubleSlot", "Slot", "    type \"first\"\n    endPoint Slot { type \"second\" }")
	if err := resolveAll(t, d); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if *d.SlotType != "first" {
		t.Errorf("SlotType = %q, want %q", *d.SlotType, "first")
	}
}

func TestSlotTypeOnlyForSlots(t *testing.T) {
	solid := desc("Box", "Solid", `    type "ignored"`)
	if err := resolveAll(t, solid); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if solid.SlotType != nil {
		t.Errorf("SlotType = %q, want nil for Solid based descriptor", *solid.SlotType)
	}
}

func TestSlotTypeInconsistentHierarchy(t *testing.T) {
	// BaseType forced to Slot while the chain ends on Solid.
	d := desc("Fake", "Solid", "")
	d.BaseType = "Slot"
	reg := newRegistry(t, d)

	err := NewSlots(reg, testBaseNodes, "Slot", zap.NewNop()).Resolve()
	var inconsistent *InconsistentHierarchyError
	if !errors.As(err, &inconsistent) {
		t.Fatalf("error = %v, want *InconsistentHierarchyError", err)
	}
	if inconsistent.BaseNode != "Solid" {
		t.Errorf("BaseNode = %q, want %q", inconsistent.BaseNode, "Solid")
	}
}

func TestSlotTypeUnresolvedLink(t *testing.T) {
	d := desc("Orphan", "Gone", "")
	d.BaseType = "Slot"
	reg := newRegistry(t, d)

	err := NewSlots(reg, testBaseNodes, "Slot", zap.NewNop()).Resolve()
	var unresolved *UnresolvedReferenceError
	if !errors.As(err, &unresolved) {
		t.Fatalf("error = %v, want *UnresolvedReferenceError", err)
	}
}

func TestSlotTypeCycle(t *testing.T) {
	a := desc("A", "B", "")
	b := desc("B", "A", "")
	a.BaseType, b.BaseType = "Slot", "Slot"
	reg := newRegistry(t, a, b)

	err := NewSlots(reg, testBaseNodes, "Slot", zap.NewNop()).Resolve()
	var cyclic *CyclicHierarchyError
	if !errors.As(err, &cyclic) {
		t.Fatalf("error = %v, want *CyclicHierarchyError", err)
	}
}
