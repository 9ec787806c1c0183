package editor

import (
    "fmt"
    "strings"

    "statepad/internal/tui/state"
)

type Editor struct{}

func NewEditor() Editor { return Editor{} }

// View renders the edit surface under a header carrying the document
// label. The marker shows whether the editor has keyboard focus.
func (Editor) View(s state.UIState, label, body string) string {
    marker := " "
    if s.Focus == state.EDITOR && s.Mode == state.EDIT {
        marker = ">"
    }
    var b strings.Builder
    fmt.Fprintf(&b, "%s %s\n", marker, label)
    fmt.Fprintf(&b, "%s\n", body)
    return b.String()
}
