package state

// ToggleFocus switches keyboard focus between the editor and the file list.
func ToggleFocus(s UIState) UIState {
    if s.Focus == EDITOR {
        s.Focus = FILES
    } else {
        s.Focus = EDITOR
    }
    return s
}

// ToggleView switches between Unified and SideBySide diff views.
func ToggleView(s UIState) UIState {
    if s.View == Unified {
        s.View = SideBySide
        if s.Width > 0 && s.Width < 2*s.MinCol+3 {
            s.View = Unified
            s.Notice = "Narrow width: using unified view"
        }
    } else {
        s.View = Unified
    }
    return s
}

// Resize updates dimensions and sets a fallback notice if too narrow for side-by-side.
// Threshold heuristic: need at least 2*MinCol plus 3 chars for separator/gutters.
func Resize(s UIState, width, height int) UIState {
    s.Width = width
    s.Height = height
    threshold := 2*s.MinCol + 3
    if s.View == SideBySide && s.Width < threshold {
        s.View = Unified
        s.Notice = "Narrow width: using unified view"
    }
    return s
}

// Enter switches to mode m, resetting diff scroll.
func Enter(s UIState, m Mode) UIState {
    s.Mode = m
    s.ScrollV = 0
    return s
}

// Back returns to EDIT mode.
func Back(s UIState) UIState {
    return Enter(s, EDIT)
}

// ToggleHelp opens or closes the help overlay.
func ToggleHelp(s UIState) UIState {
    if s.Mode == HELP {
        return Back(s)
    }
    return Enter(s, HELP)
}

// SetFiles records the list length and keeps the cursor inside it.
func SetFiles(s UIState, n int) UIState {
    s.Files = n
    if s.Cursor >= n {
        s.Cursor = n - 1
    }
    if s.Cursor < 0 {
        s.Cursor = 0
    }
    return s
}

// CursorUp moves the file list cursor up.
func CursorUp(s UIState) UIState {
    if s.Cursor > 0 {
        s.Cursor--
    }
    return s
}

// CursorDown moves the file list cursor down.
func CursorDown(s UIState) UIState {
    if s.Cursor < s.Files-1 {
        s.Cursor++
    }
    return s
}

// ScrollDiff moves the diff viewport; it never goes above the top.
func ScrollDiff(s UIState, delta int) UIState {
    s.ScrollV += delta
    if s.ScrollV < 0 {
        s.ScrollV = 0
    }
    return s
}

// Notify sets the ephemeral notice.
func Notify(s UIState, msg string) UIState {
    s.Notice = msg
    return s
}
