package diff

import (
    "strings"
    "testing"

    "github.com/charmbracelet/lipgloss"

    "statepad/internal/tui/state"
)

func TestUnifiedSnapshot(t *testing.T) {
    v := NewDiffView(true)
    s := state.UIState{View: state.Unified}
    out := v.View(s, "a\nb", "a\nc")
    want := "STORED vs BUFFER (Unified)\n  a\n- b\n+ c\n"
    if out != want {
        t.Fatalf("unexpected unified output:\n%q\nwant\n%q", out, want)
    }
}

func TestUnifiedNoChanges(t *testing.T) {
    out := NewDiffView(true).View(state.UIState{}, "same", "same")
    if !strings.Contains(out, "No changes") {
        t.Fatalf("expected no-changes marker: %q", out)
    }
}

func TestUnifiedInsertOnly(t *testing.T) {
    out := NewDiffView(true).View(state.UIState{}, "a\n", "a\nb\n")
    if !strings.Contains(out, "+ b\n") || strings.Contains(out, "- ") {
        t.Fatalf("expected a single insertion: %q", out)
    }
}

func TestSideBySideSnapshot(t *testing.T) {
    v := NewDiffView(true)
    s := state.UIState{View: state.SideBySide, Width: 60}
    out := v.View(s, "left", "right")
    if !strings.HasPrefix(out, "STORED │ BUFFER\n") {
        t.Fatalf("missing sbs header")
    }
    if !strings.Contains(out, " │ ") {
        t.Fatalf("missing separator")
    }
    if !strings.Contains(out, "- left") || !strings.Contains(out, "+ right") {
        t.Fatalf("expected paired change row: %q", out)
    }
}

func TestSideBySideAlignsWideRunes(t *testing.T) {
    s := state.UIState{View: state.SideBySide, Width: 30}
    out := NewDiffView(true).View(s, "同じ行\n日本語のテキストです\nab", "同じ行\nascii\nab")
    body := strings.Split(strings.TrimSuffix(out, "\n"), "\n")[1:]
    if len(body) != 3 {
        t.Fatalf("expected 3 rows: %q", out)
    }
    for _, line := range body {
        left, _, ok := strings.Cut(line, " │ ")
        if !ok {
            t.Fatalf("missing separator: %q", line)
        }
        if w := lipgloss.Width(left); w != 13 {
            t.Fatalf("left column is %d cells, want 13: %q", w, line)
        }
    }
}

func TestScrollKeepsHeader(t *testing.T) {
    out := NewDiffView(true).View(state.UIState{ScrollV: 1}, "a\nb", "a\nc")
    if !strings.HasPrefix(out, "STORED vs BUFFER (Unified)\n") {
        t.Fatalf("header scrolled away: %q", out)
    }
    if strings.Contains(out, "  a\n") {
        t.Fatalf("expected first body line skipped: %q", out)
    }
}
