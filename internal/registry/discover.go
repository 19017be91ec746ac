package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ProjectsDir is the subdirectory of the scan root that holds descriptors.
const ProjectsDir = "projects"

// Discover walks <root>/projects and returns the paths of all files with the
// configured extension, skipping the configured file names. Paths are sorted.
func Discover(root string, opts DiscoverOptions) ([]string, error) {
	dir := filepath.Join(root, ProjectsDir)
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	ext := strings.ToLower(opts.Extension)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	skipped := make(map[string]bool, len(opts.Skipped))
	for _, name := range opts.Skipped {
		skipped[name] = true
	}

	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // skip inaccessible entries
		}
		if d.IsDir() {
			return nil
		}

		name := d.Name()
		if ext != "" && strings.ToLower(filepath.Ext(name)) != ext {
			return nil
		}
		if skipped[name] {
			return nil
		}

		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, err)
	}

	sort.Strings(paths)
	return paths, nil
}
