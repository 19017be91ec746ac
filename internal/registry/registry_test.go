package registry

import (
	"errors"
	"reflect"
	"testing"

	"github.com/protolist-labs/protolist/internal/proto"
)

func TestRegistryAddAndGet(t *testing.T) {
	reg := New()
	for _, name := range []string{"Road", "RoadSegment", "Crossroad"} {
		if err := reg.Add(&proto.Descriptor{Name: name, Path: name + ".proto"}); err != nil {
			t.Fatalf("Add(%s): %v", name, err)
		}
	}

	if reg.Len() != 3 {
		t.Errorf("Len = %d, want 3", reg.Len())
	}

	d, ok := reg.Get("RoadSegment")
	if !ok {
		t.Fatal("Get(RoadSegment) not found")
	}
	if d.Path != "RoadSegment.proto" {
		t.Errorf("Path = %q, want %q", d.Path, "RoadSegment.proto")
	}

	if _, ok := reg.Get("Missing"); ok {
		t.Error("Get(Missing) should not be found")
	}

	want := []string{"Crossroad", "Road", "RoadSegment"}
	if got := reg.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names = %v, want %v", got, want)
	}
	all := reg.All()
	for i, d := range all {
		if d.Name != want[i] {
			t.Errorf("All()[%d] = %q, want %q", i, d.Name, want[i])
		}
	}
}

func TestRegistryDuplicateName(t *testing.T) {
	reg := New()
	if err := reg.Add(&proto.Descriptor{Name: "Chair", Path: "a/Chair.proto"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	err := reg.Add(&proto.Descriptor{Name: "Chair", Path: "b/Chair.proto"})
	var dup *DuplicateNameError
	if !errors.As(err, &dup) {
		t.Fatalf("error = %v, want *DuplicateNameError", err)
	}
	if dup.Name != "Chair" || dup.ExistingPath != "a/Chair.proto" || dup.Path != "b/Chair.proto" {
		t.Errorf("DuplicateNameError = %+v", dup)
	}

	// The first registration is kept.
	d, _ := reg.Get("Chair")
	if d.Path != "a/Chair.proto" {
		t.Errorf("Path = %q, want first registration", d.Path)
	}
}

func TestBaseNodes(t *testing.T) {
	nodes := NewBaseNodes("Solid", "Slot", "Group")
	if !nodes.Contains("Slot") {
		t.Error("Contains(Slot) = false, want true")
	}
	if nodes.Contains("Road") {
		t.Error("Contains(Road) = true, want false")
	}
	if got, want := nodes.Names(), []string{"Group", "Slot", "Solid"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names = %v, want %v", got, want)
	}
}
