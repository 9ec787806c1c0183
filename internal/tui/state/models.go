package state

// Mode is what the shell is currently showing on top of the editor.
type Mode int

const (
    EDIT Mode = iota
    PROMPT  // collecting a name for save-as
    CONFIRM // asking before unsaved changes are dropped
    DIFF    // stored copy vs buffer
    HELP
)

// Focus selects which pane receives keys in EDIT mode.
type Focus int

const (
    EDITOR Focus = iota
    FILES
)

// DiffMode controls how the diff is rendered.
type DiffMode int

const (
    Unified DiffMode = iota
    SideBySide
)

// UIState holds cross-widget UI state used by status bar, diff, file list and editor.
type UIState struct {
    // Mode & focus
    Mode  Mode
    Focus Focus
    View  DiffMode

    // Layout & scrolling
    Width   int
    Height  int
    MinCol  int
    ScrollV int

    // File list
    Cursor int
    Files  int

    // Notices and ephemeral messages
    Notice string
}
