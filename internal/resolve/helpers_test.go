package resolve

import (
	"testing"

	"github.com/protolist-labs/protolist/internal/proto"
	"github.com/protolist-labs/protolist/internal/registry"
)

var testBaseNodes = registry.NewBaseNodes("Solid", "Transform", "Group", "Slot", "Robot", "Shape")

var testDevices = []string{"Brake", "Camera", "LED", "Lidar", "DistanceSensor"}

var testContainers = []string{"Solid", "Transform", "Group"}

// desc builds a descriptor whose content instantiates protoType with extra
// body text.
func desc(name, protoType, body string) *proto.Descriptor {
	return &proto.Descriptor{
		Name:      name,
		Path:      "/home/projects/" + name + ".proto",
		ProtoType: protoType,
		Content:   "PROTO " + name + " [\n]\n{\n  " + protoType + " {\n" + body + "\n  }\n}\n",
	}
}

func newRegistry(t *testing.T, descs ...*proto.Descriptor) *registry.Registry {
	t.Helper()
	reg := registry.New()
	for _, d := range descs {
		if err := reg.Add(d); err != nil {
			t.Fatalf("Add(%s): %v", d.Name, err)
		}
	}
	return reg
}
