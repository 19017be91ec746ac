package registry

import (
	"os"
	"path/filepath"
	"testing"
)

// protoSource returns a minimal descriptor whose body instantiates protoType.
func protoSource(name, protoType string) string {
	return "#VRML_SIM R2023b utf8\n# " + name + " for tests.\nPROTO " + name + " [\n  field SFString name \"" + name + "\"\n]\n{\n  " + protoType + " {\n  }\n}\n"
}

// writeFile writes content to path, creating parent directories.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
