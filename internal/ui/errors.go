// Package ui formats terminal output for the CLI.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// ErrorOptions configures FormatError.
type ErrorOptions struct {
	Context     string // short uppercase header, e.g. "generation failed"
	Err         error
	Suggestions []string
	NoColor     bool
}

// FormatError renders an error as a red header, the error message indented
// below it and optional suggestions.
//
//	✖ GENERATION FAILED
//	   resolving RoadSegment: "Road" proto node does not exist
//
//	   → check that Road.proto is not skipped
func FormatError(opts ErrorOptions) string {
	var b strings.Builder

	headerColor := color.New(color.FgRed, color.Bold)
	bodyColor := color.New(color.FgRed)
	hintColor := color.New(color.FgCyan)
	if opts.NoColor {
		headerColor.DisableColor()
		bodyColor.DisableColor()
		hintColor.DisableColor()
	}

	header := "error"
	if opts.Context != "" {
		header = opts.Context
	}
	headerColor.Fprintf(&b, "✖ %s\n", strings.ToUpper(header))

	if opts.Err != nil {
		for _, line := range strings.Split(opts.Err.Error(), "\n") {
			bodyColor.Fprintf(&b, "   %s\n", line)
		}
	}

	if len(opts.Suggestions) > 0 {
		b.WriteString("\n")
		for _, s := range opts.Suggestions {
			hintColor.Fprintf(&b, "   → %s\n", s)
		}
	}

	return b.String()
}

// PrintError writes FormatError output to w.
func PrintError(w io.Writer, opts ErrorOptions) {
	fmt.Fprint(w, FormatError(opts))
}
