package ui

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatErrorNoColor(t *testing.T) {
	out := FormatError(ErrorOptions{
		Context:     "generation failed",
		Err:         errors.New("first line\nsecond line"),
		Suggestions: []string{"set WEBOTS_HOME"},
		NoColor:     true,
	})

	want := "✖ GENERATION FAILED\n   first line\n   second line\n\n   → set WEBOTS_HOME\n"
	if out != want {
		t.Errorf("FormatError =\n%q\nwant\n%q", out, want)
	}
}

func TestFormatErrorDefaultHeader(t *testing.T) {
	out := FormatError(ErrorOptions{Err: errors.New("boom"), NoColor: true})
	if !strings.HasPrefix(out, "✖ ERROR\n") {
		t.Errorf("FormatError = %q, want default header", out)
	}
}

func TestPrintSuccessNoColor(t *testing.T) {
	var b strings.Builder
	PrintSuccess(&b, "42 protos resolved", true)
	if got := b.String(); got != "✓ 42 protos resolved\n" {
		t.Errorf("PrintSuccess = %q", got)
	}
}

func TestPrintWarningNoColor(t *testing.T) {
	var b strings.Builder
	PrintWarning(&b, "no settings file", true)
	if got := b.String(); got != "! no settings file\n" {
		t.Errorf("PrintWarning = %q", got)
	}
}
