package helpoverlay

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/bubbles/key"
    "statepad/internal/tui/state"
)

// Group is a titled set of key bindings.
type Group struct {
    Title string
    Keys  []key.Binding
}

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

// View returns grouped keys help with the current focus indicated.
// Disabled bindings are skipped.
func (HelpOverlay) View(s state.UIState, groups []Group) string {
    focus := "editor"
    if s.Focus == state.FILES {
        focus = "files"
    }
    var b strings.Builder
    fmt.Fprintf(&b, "Help (Focus: %s)\n", focus)
    for _, g := range groups {
        fmt.Fprintf(&b, "\n%s:\n", g.Title)
        for _, k := range g.Keys {
            if !k.Enabled() {
                continue
            }
            h := k.Help()
            fmt.Fprintf(&b, "  %s: %s\n", h.Key, h.Desc)
        }
    }
    b.WriteString("\nesc/f1: close help\n")
    return b.String()
}
