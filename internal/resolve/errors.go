package resolve

import (
	"fmt"
	"strings"
)

// UnresolvedReferenceError is returned when a proto type names neither a base
// node nor a known descriptor.
type UnresolvedReferenceError struct {
	Name      string // descriptor being resolved
	Reference string // the unknown type
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("resolving %s: %q proto node does not exist", e.Name, e.Reference)
}

// CyclicHierarchyError is returned when a proto type chain does not reach a
// base node within the registry size.
type CyclicHierarchyError struct {
	Name  string
	Chain []string
}

func (e *CyclicHierarchyError) Error() string {
	return fmt.Sprintf("resolving %s: proto type chain does not reach a base node: %s",
		e.Name, strings.Join(e.Chain, " -> "))
}

// InconsistentHierarchyError is returned when the slot pass reaches a base
// node other than the slot node, which the hierarchy pass should have made
// impossible.
type InconsistentHierarchyError struct {
	Name     string
	BaseNode string
}

func (e *InconsistentHierarchyError) Error() string {
	return fmt.Sprintf("resolving slot type of %s: reached non-slot base node %q", e.Name, e.BaseNode)
}
