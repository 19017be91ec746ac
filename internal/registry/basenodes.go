package registry

import (
	"fmt"
	"path/filepath"
	"strings"
)

// NodesDir is the resources directory holding one .wrl file per base node.
const NodesDir = "resources/nodes"

// LoadBaseNodes returns the foundational node set from the stems of the
// *.wrl files in dir.
func LoadBaseNodes(dir string) (BaseNodes, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.wrl"))
	if err != nil {
		return nil, fmt.Errorf("listing base nodes in %s: %w", dir, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no base node definitions found in %s", dir)
	}

	nodes := make(BaseNodes, len(matches))
	for _, m := range matches {
		base := filepath.Base(m)
		nodes[strings.TrimSuffix(base, filepath.Ext(base))] = struct{}{}
	}
	return nodes, nil
}
