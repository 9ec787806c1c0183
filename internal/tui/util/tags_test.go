package util

import (
    "testing"

    "statepad/internal/document"
    "statepad/internal/tui/state"
)

func findKind(tags []state.Tag, k state.TagKind) (idx int, ok bool) {
    for i, t := range tags {
        if t.Kind == k {
            return i, true
        }
    }
    return -1, false
}

func TestUntitledAndModified(t *testing.T) {
    tags := ComputeTags(document.UnsavedDirty{}, "x")
    if _, ok := findKind(tags, state.UNTITLED); !ok {
        t.Fatalf("expected UNTITLED tag present")
    }
    if _, ok := findKind(tags, state.MODIFIED); !ok {
        t.Fatalf("expected MODIFIED tag present")
    }
    if _, ok := findKind(tags, state.SAVED); ok {
        t.Fatalf("did not expect SAVED on an untitled document")
    }
}

func TestSavedVsModifiedExclusivity(t *testing.T) {
    tags := ComputeTags(document.SavedClean{Name: "a.txt"}, "")
    if _, ok := findKind(tags, state.SAVED); !ok {
        t.Fatalf("expected SAVED tag present")
    }
    if _, ok := findKind(tags, state.MODIFIED); ok {
        t.Fatalf("did not expect MODIFIED when clean")
    }

    tags = ComputeTags(document.SavedDirty{Name: "a.txt"}, "")
    if _, ok := findKind(tags, state.MODIFIED); !ok {
        t.Fatalf("expected MODIFIED tag present")
    }
    if _, ok := findKind(tags, state.SAVED); ok {
        t.Fatalf("did not expect SAVED when dirty")
    }
    if _, ok := findKind(tags, state.UNTITLED); ok {
        t.Fatalf("did not expect UNTITLED on a named document")
    }
}

func TestCounters(t *testing.T) {
    content := "héllo\nworld\n"
    tags := ComputeTags(document.UnsavedClean{}, content)

    if idx, ok := findKind(tags, state.LINES); !ok || tags[idx].Value != 3 {
        t.Fatalf("expected LINES=3")
    }
    if idx, ok := findKind(tags, state.CHARS); !ok || tags[idx].Value != len([]rune(content)) {
        t.Fatalf("expected CHARS counted in runes")
    }
}

func TestStableOrder(t *testing.T) {
    tags := ComputeTags(document.UnsavedDirty{}, "abc")
    order := []state.TagKind{state.UNTITLED, state.MODIFIED, state.LINES, state.CHARS}
    if len(tags) != len(order) {
        t.Fatalf("expected %d tags, got %d", len(order), len(tags))
    }
    for i, k := range order {
        if tags[i].Kind != k {
            t.Fatalf("tag %d: got %v want %v", i, tags[i].Kind, k)
        }
    }
}
