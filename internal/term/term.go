// Package term holds the shared color palette and the color mode switch.
//
// The palette is package-level because several packages (logging, display,
// check) format output with it. [Configure] resolves the color mode once
// during startup; in auto mode the library's own TTY, NO_COLOR and
// TERM=dumb detection stands.
package term

import (
	"github.com/fatih/color"

	"github.com/backmassage/splitscreen/internal/config"
)

// Palette for leveled log lines and diagnostics. Formatting through a
// disabled palette yields plain text, so callers never branch on color
// support themselves.
var (
	Red     = color.New(color.FgHiRed, color.Bold)
	Green   = color.New(color.FgHiGreen, color.Bold)
	Yellow  = color.New(color.FgHiYellow, color.Bold)
	Orange  = color.RGB(255, 135, 0).Add(color.Bold)
	Blue    = color.New(color.FgHiBlue, color.Bold)
	Cyan    = color.New(color.FgHiCyan, color.Bold)
	Magenta = color.New(color.FgHiMagenta, color.Bold)
)

// Configure forces the palette on or off; auto keeps the library's own
// verdict. Call once during startup, before the logger is built.
func Configure(mode config.ColorMode) {
	switch mode {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	}
}

// Enabled reports whether the palette is currently active.
func Enabled() bool { return !color.NoColor }
