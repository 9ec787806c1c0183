package diff

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/lipgloss"
    "github.com/charmbracelet/x/ansi"
    dmp "github.com/sergi/go-diff/diffmatchpatch"

    "statepad/internal/tui/state"
    "statepad/internal/tui/util"
)

type DiffView struct {
    noColor bool
    del     lipgloss.Style
    add     lipgloss.Style
    delChar lipgloss.Style
    addChar lipgloss.Style
    faint   lipgloss.Style
}

func NewDiffView(noColor bool) DiffView {
    p := util.DefaultPalette()
    return DiffView{
        noColor: util.NoColor(noColor),
        del:     lipgloss.NewStyle().Foreground(p.Removed),
        add:     lipgloss.NewStyle().Foreground(p.Added),
        delChar: lipgloss.NewStyle().Foreground(p.Removed).Underline(true),
        addChar: lipgloss.NewStyle().Foreground(p.Added).Underline(true),
        faint:   lipgloss.NewStyle().Faint(true),
    }
}

// View renders the stored copy against the buffer. For SideBySide it aligns
// two columns with a vertical separator. For Unified it prefixes lines with
// +/- markers. s.ScrollV skips that many body lines.
func (d DiffView) View(s state.UIState, stored, current string) string {
    var out string
    if s.View == state.SideBySide {
        out = d.sideBySide(stored, current, s)
    } else {
        out = d.unified(stored, current)
    }
    return scroll(out, s.ScrollV)
}

type lineOp struct {
    op   dmp.Operation
    text string
}

// lineDiff diffs a and b line by line.
func lineDiff(a, b string) []lineOp {
    d := dmp.New()
    ca, cb, lines := d.DiffLinesToChars(a, b)
    diffs := d.DiffCharsToLines(d.DiffMain(ca, cb, false), lines)
    var ops []lineOp
    for _, df := range diffs {
        text := strings.TrimSuffix(df.Text, "\n")
        for _, l := range strings.Split(text, "\n") {
            ops = append(ops, lineOp{op: df.Type, text: l})
        }
    }
    return ops
}

// runs splits ops at each equal line so that a delete run is followed by
// the insert run replacing it.
func runs(ops []lineOp, i int) (dels, ins []string, next int) {
    for i < len(ops) && ops[i].op == dmp.DiffDelete {
        dels = append(dels, ops[i].text)
        i++
    }
    for i < len(ops) && ops[i].op == dmp.DiffInsert {
        ins = append(ins, ops[i].text)
        i++
    }
    return dels, ins, i
}

func (d DiffView) unified(stored, current string) string {
    var b strings.Builder
    b.WriteString("STORED vs BUFFER (Unified)\n")
    if stored == current {
        b.WriteString("No changes\n")
        return b.String()
    }
    ops := lineDiff(stored, current)
    for i := 0; i < len(ops); {
        if ops[i].op == dmp.DiffEqual {
            fmt.Fprintf(&b, "  %s\n", d.paint(d.faint, ops[i].text))
            i++
            continue
        }
        var dels, ins []string
        dels, ins, i = runs(ops, i)
        if !d.noColor && len(dels) == len(ins) {
            // char-level on pairs
            for k := range dels {
                left, right := d.charSpans(dels[k], ins[k])
                b.WriteString(d.del.Render("- ") + left + "\n")
                b.WriteString(d.add.Render("+ ") + right + "\n")
            }
            continue
        }
        for _, l := range dels {
            fmt.Fprintf(&b, "%s\n", d.paint(d.del, "- "+l))
        }
        for _, l := range ins {
            fmt.Fprintf(&b, "%s\n", d.paint(d.add, "+ "+l))
        }
    }
    return b.String()
}

func (d DiffView) sideBySide(stored, current string, s state.UIState) string {
    const sep = " │ "
    var b strings.Builder
    b.WriteString("STORED │ BUFFER\n")
    colWidth := 40
    if s.Width > 0 {
        colWidth = (s.Width - lipgloss.Width(sep)) / 2
        if colWidth < 10 {
            colWidth = 10
        }
    }
    row := func(l, r string, ls, rs lipgloss.Style) {
        l = pad(clip(l, colWidth), colWidth)
        r = clip(r, colWidth)
        fmt.Fprintf(&b, "%s%s%s\n", d.paint(ls, l), sep, d.paint(rs, r))
    }
    ops := lineDiff(stored, current)
    for i := 0; i < len(ops); {
        if ops[i].op == dmp.DiffEqual {
            row("  "+ops[i].text, "  "+ops[i].text, d.faint, d.faint)
            i++
            continue
        }
        var dels, ins []string
        dels, ins, i = runs(ops, i)
        n := len(dels)
        if len(ins) > n {
            n = len(ins)
        }
        for k := 0; k < n; k++ {
            var l, r string
            if k < len(dels) {
                l = "- " + dels[k]
            }
            if k < len(ins) {
                r = "+ " + ins[k]
            }
            row(l, r, d.del, d.add)
        }
    }
    return b.String()
}

// charSpans highlights the changed characters within a replaced line.
func (d DiffView) charSpans(before, after string) (string, string) {
    m := dmp.New()
    diffs := m.DiffCleanupSemantic(m.DiffMain(before, after, false))
    var l, r strings.Builder
    for _, df := range diffs {
        switch df.Type {
        case dmp.DiffDelete:
            l.WriteString(d.delChar.Render(df.Text))
        case dmp.DiffInsert:
            r.WriteString(d.addChar.Render(df.Text))
        case dmp.DiffEqual:
            l.WriteString(d.del.Render(df.Text))
            r.WriteString(d.add.Render(df.Text))
        }
    }
    return l.String(), r.String()
}

func (d DiffView) paint(st lipgloss.Style, s string) string {
    if d.noColor {
        return s
    }
    return st.Render(s)
}

func scroll(out string, offset int) string {
    if offset <= 0 {
        return out
    }
    lines := strings.SplitAfter(out, "\n")
    header, body := lines[0], lines[1:]
    if offset > len(body) {
        offset = len(body)
    }
    return header + strings.Join(body[offset:], "")
}

// clip and pad measure terminal cells, so wide runes count twice.
func clip(s string, width int) string {
    return ansi.Truncate(s, width, "")
}

func pad(s string, width int) string {
    if w := lipgloss.Width(s); w < width {
        return s + strings.Repeat(" ", width-w)
    }
    return s
}
