package registry

import "fmt"

// DuplicateNameError is returned when two descriptor files share a name.
type DuplicateNameError struct {
	Name         string
	Path         string
	ExistingPath string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("PROTO names should be unique, but %s is not (%s and %s)", e.Name, e.ExistingPath, e.Path)
}
