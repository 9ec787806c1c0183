package statusbar

import (
    "strings"

    "statepad/internal/tui/state"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line: document label, focus/mode, chips
// and the current notice.
func (StatusBar) View(s state.UIState, label, chips string) string {
    parts := []string{label, modeTag(s)}
    if chips != "" {
        parts = append(parts, chips)
    }
    if s.Notice != "" {
        parts = append(parts, s.Notice)
    }
    return strings.Join(parts, "  ")
}

func modeTag(s state.UIState) string {
    switch s.Mode {
    case state.PROMPT:
        return "[SAVE AS]"
    case state.CONFIRM:
        return "[CONFIRM]"
    case state.DIFF:
        if s.View == state.SideBySide {
            return "[DIFF side-by-side]"
        }
        return "[DIFF unified]"
    case state.HELP:
        return "[HELP]"
    }
    if s.Focus == state.FILES {
        return "[FILES]"
    }
    return "[EDIT]"
}
