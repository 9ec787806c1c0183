package tagchips

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/lipgloss"
    "statepad/internal/tui/state"
    "statepad/internal/tui/util"
)

// View renders document chips in a stable order using colored chips when
// possible and ASCII fallbacks when color is disabled or not desired.
func View(tags []state.Tag, noColor bool) string {
    if len(tags) == 0 {
        return ""
    }
    noColor = util.NoColor(noColor)

    parts := make([]string, 0, len(tags))
    for _, t := range tags {
        parts = append(parts, renderChip(t, noColor))
    }
    return strings.Join(parts, " ")
}

func renderChip(t state.Tag, noColor bool) string {
    label := chipLabel(t)
    if noColor {
        return fmt.Sprintf("[%s]", label)
    }
    return chipStyle(t).Render(label)
}

func chipLabel(t state.Tag) string {
    switch t.Kind {
    case state.UNTITLED:
        return "Untitled"
    case state.MODIFIED:
        return "Modified"
    case state.SAVED:
        return "Saved"
    case state.LINES:
        return fmt.Sprintf("Ln %d", t.Value)
    case state.CHARS:
        return fmt.Sprintf("Ch %d", t.Value)
    default:
        return "Tag"
    }
}

func chipStyle(t state.Tag) lipgloss.Style {
    p := util.DefaultPalette()
    base := lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
    switch t.Kind {
    case state.UNTITLED:
        return base.Background(p.Untitled)
    case state.MODIFIED:
        return base.Background(p.Modified).Foreground(lipgloss.Color("#111111"))
    case state.SAVED:
        return base.Background(p.Saved)
    case state.LINES, state.CHARS:
        return base.Background(p.Counter)
    default:
        return base
    }
}
