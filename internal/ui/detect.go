package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/vvka-141/envscan/pkg/envscan"
)

// ColorMode selects when report output is colorized.
type ColorMode string

const (
	// ColorAuto colors output only when writing to a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways colors output even when piped.
	ColorAlways ColorMode = "always"
	// ColorNever disables color.
	ColorNever ColorMode = "never"
)

// ColorModes lists the accepted --color values.
var ColorModes = []string{string(ColorAuto), string(ColorAlways), string(ColorNever)}

// ParseColorMode validates a --color value.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case ColorAuto, ColorAlways, ColorNever:
		return ColorMode(s), nil
	}
	return "", fmt.Errorf("%w: unknown color mode %q (expected auto, always or never)", envscan.ErrInvalidConfig, s)
}

// UseColor decides whether output written to w should be colorized.
// In auto mode only an *os.File attached to a terminal qualifies.
func UseColor(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
