package proto

import (
	"errors"
	"fmt"
)

// IOError is returned when a descriptor file cannot be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("reading proto %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError is returned when a descriptor is malformed.
type ParseError struct {
	Path   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing proto %s: %s", e.Path, e.Reason)
}

var errNoBody = errors.New("cannot find the node type instantiated by the body")
