package files

import (
    "strings"

    "github.com/charmbracelet/lipgloss"
    "statepad/internal/tui/state"
)

var (
    titleStyle = lipgloss.NewStyle().Bold(true)
    selStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"}).Bold(true)
)

// Render draws the stored document names. The cursor row is highlighted
// only while the list has focus; the open document is marked with "*".
func Render(s state.UIState, names []string, current string, noColor bool) string {
    var b strings.Builder
    b.WriteString(paint(titleStyle, "Documents", noColor) + "\n")
    if len(names) == 0 {
        b.WriteString("  (none)\n")
        return b.String()
    }
    for i, name := range names {
        mark := " "
        if name == current {
            mark = "*"
        }
        line := "  " + mark + name
        if s.Focus == state.FILES && i == s.Cursor {
            line = paint(selStyle, "> "+mark+name, noColor)
        }
        b.WriteString(line + "\n")
    }
    return b.String()
}

func paint(st lipgloss.Style, s string, noColor bool) string {
    if noColor {
        return s
    }
    return st.Render(s)
}
