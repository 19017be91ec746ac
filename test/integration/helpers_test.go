//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// baseNodes are the foundational node definitions of the synthetic tree.
var baseNodes = []string{"Solid", "Transform", "Group", "Slot", "Robot", "Shape", "Appearance"}

// setupHome creates an isolated WEBOTS_HOME with resources/nodes and a small
// descriptor tree, and points the environment at it. The env var is restored
// after the test.
func setupHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("WEBOTS_HOME", home)

	for _, node := range baseNodes {
		writeFile(t, filepath.Join(home, "resources", "nodes", node+".wrl"), "#VRML V2.0 utf8\n")
	}

	projects := filepath.Join(home, "projects")

	// --- Objects ---
	writeFile(t, filepath.Join(projects, "objects", "protos", "Table.proto"), `#VRML_SIM R2023b utf8
# license: Apache License 2.0
# license url: http://www.apache.org/licenses/LICENSE-2.0
# documentation url: https://webots.cloud/run?url=Table
# tags: static
# A wooden table.
# It has four legs.

PROTO Table [
  field SFVec3f    translation 0 0 0
  field SFString   name        "table"
]
{
  Solid {
    translation IS translation
    children [
      Shape {
        geometry IndexedFaceSet {
          coord Coordinate {
            point [
              0 0 0, 1 0 0, 1 1 0
            ]
          }
        }
      }
    ]
    name IS name
  }
}
`)
	writeFile(t, filepath.Join(projects, "objects", "protos", "DiningTable.proto"), `#VRML_SIM R2023b utf8
# A table for dining rooms.
PROTO DiningTable [
  field SFString name "dining table"
]
{
  Table {
    name IS name
  }
}
`)

	// --- Devices ---
	writeFile(t, filepath.Join(projects, "devices", "protos", "SmartLamp.proto"), `#VRML_SIM R2023b utf8
# tags: nonDeterministic
# A lamp with a controllable LED.
PROTO SmartLamp [
  field SFString name "smart lamp"
]
{
  Transform {
    children [
      LED {
        name IS name
      }
    ]
  }
}
`)

	// --- Tools ---
	writeFile(t, filepath.Join(projects, "tools", "protos", "ToolSlot.proto"), `#VRML_SIM R2023b utf8
# A connector for end effectors.
PROTO ToolSlot [
  field SFString name "tool slot"
]
{
  Slot {
    type "end-effector"
  }
}
`)
	writeFile(t, filepath.Join(projects, "tools", "protos", "QuickToolSlot.proto"), `#VRML_SIM R2023b utf8
# A tool slot with a quick release.
PROTO QuickToolSlot [
]
{
  ToolSlot {
  }
}
`)
	writeFile(t, filepath.Join(projects, "tools", "protos", "BareSlot.proto"), `#VRML_SIM R2023b utf8
PROTO BareSlot [
]
{
  Slot {
  }
}
`)

	// Skipped by the default settings.
	writeFile(t, filepath.Join(projects, "samples", "UsageProfile.proto"), "not a descriptor\n")

	return home
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
