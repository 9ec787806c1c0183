package state

// TagKind enumerates the status chips shown next to the document label.
type TagKind int

const (
    // Stable ordering for display: Untitled, Modified, Saved, Lines, Chars
    UNTITLED TagKind = iota
    MODIFIED
    SAVED
    LINES
    CHARS
)

// Tag represents a single status chip. Value is used for numeric counters
// (line and character counts). Non-numeric tags use Value = 0.
type Tag struct {
    Kind  TagKind
    Value int
}
