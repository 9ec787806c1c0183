package util

import (
    "strings"
    "unicode/utf8"

    "statepad/internal/document"
    "statepad/internal/tui/state"
)

// ComputeTags calculates the status chips for the open document given its
// lifecycle state and current content.
//
// The returned slice preserves a stable order:
//   Untitled, Modified, Saved, Lines, Chars
//
// Rules:
// - Untitled is present iff the document has no storage key.
// - Modified and Saved are mutually exclusive; Saved only appears for a
//   named, clean document.
// - Lines and Chars are always included (counters). An empty document has
//   one line.
func ComputeTags(s document.State, content string) []state.Tag {
    tags := make([]state.Tag, 0, 4)

    named := document.Named(s)
    dirty := document.Dirty(s)

    if !named {
        tags = append(tags, state.Tag{Kind: state.UNTITLED})
    }
    if dirty {
        tags = append(tags, state.Tag{Kind: state.MODIFIED})
    } else if named {
        tags = append(tags, state.Tag{Kind: state.SAVED})
    }

    tags = append(tags, state.Tag{Kind: state.LINES, Value: lineCount(content)})
    tags = append(tags, state.Tag{Kind: state.CHARS, Value: utf8.RuneCountInString(content)})

    return tags
}

func lineCount(s string) int {
    return strings.Count(s, "\n") + 1
}
