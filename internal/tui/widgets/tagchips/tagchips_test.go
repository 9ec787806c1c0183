package tagchips

import (
    "strings"
    "testing"

    "statepad/internal/document"
    "statepad/internal/tui/util"
)

func TestViewNoColor(t *testing.T) {
    tags := util.ComputeTags(document.UnsavedDirty{}, "a\nb")
    out := View(tags, true)

    wants := []string{"[Untitled]", "[Modified]", "[Ln 2]", "[Ch 3]"}
    for _, w := range wants {
        if !strings.Contains(out, w) {
            t.Fatalf("expected %q in output: %s", w, out)
        }
    }
}

func TestViewEmpty(t *testing.T) {
    if View(nil, true) != "" {
        t.Fatalf("expected empty output for no tags")
    }
}
