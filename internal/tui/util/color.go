package util

import (
    "os"

    "github.com/charmbracelet/lipgloss"
)

// NoColor returns true if color output should be disabled, either by
// flag/config or by the NO_COLOR convention.
func NoColor(explicit bool) bool {
    if explicit {
        return true
    }
    return os.Getenv("NO_COLOR") != ""
}

// Palette defines the colors used for document chips and diff lines.
type Palette struct {
    Untitled lipgloss.Color
    Modified lipgloss.Color
    Saved    lipgloss.Color
    Counter  lipgloss.Color
    Removed  lipgloss.AdaptiveColor
    Added    lipgloss.AdaptiveColor
    Accent   lipgloss.AdaptiveColor
}

// DefaultPalette returns the default palette.
func DefaultPalette() Palette {
    return Palette{
        Untitled: lipgloss.Color("#6C757D"),
        Modified: lipgloss.Color("#F0AD4E"),
        Saved:    lipgloss.Color("#2AA876"),
        Counter:  lipgloss.Color("#5A5A5A"),
        Removed:  lipgloss.AdaptiveColor{Light: "160", Dark: "203"},
        Added:    lipgloss.AdaptiveColor{Light: "28", Dark: "114"},
        Accent:   lipgloss.AdaptiveColor{Light: "205", Dark: "213"},
    }
}
