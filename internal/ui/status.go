package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// PrintSuccess writes a green check mark followed by msg.
func PrintSuccess(w io.Writer, msg string, noColor bool) {
	c := color.New(color.FgGreen)
	if noColor {
		c.DisableColor()
	}
	c.Fprint(w, "✓ ")
	fmt.Fprintln(w, msg)
}

// PrintWarning writes a yellow warning line.
func PrintWarning(w io.Writer, msg string, noColor bool) {
	c := color.New(color.FgYellow)
	if noColor {
		c.DisableColor()
	}
	c.Fprintf(w, "! %s\n", msg)
}
