package tui

import (
	"github.com/charmbracelet/bubbles/key"

	help "statepad/internal/tui/widgets/helpoverlay"
)

// keyMap holds every binding the shell reacts to. Plain runes are never
// bound here so they always reach the text area.
type keyMap struct {
	Save     key.Binding
	SaveAs   key.Binding
	New      key.Binding
	Focus    key.Binding
	Open     key.Binding
	Up       key.Binding
	Down     key.Binding
	Diff     key.Binding
	DiffView key.Binding
	Copy     key.Binding
	Help     key.Binding
	Back     key.Binding
	Yes      key.Binding
	No       key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		SaveAs:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "save as")),
		New:      key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new document")),
		Focus:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch editor/files")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open selected (files)")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up (files, diff)")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down (files, diff)")),
		Diff:     key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "diff against stored copy")),
		DiffView: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "unified/side-by-side")),
		Copy:     key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy buffer to clipboard")),
		Help:     key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back / cancel")),
		Yes:      key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "confirm")),
		No:       key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "keep changes")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+q", "ctrl+c"), key.WithHelp("ctrl+q", "quit")),
	}
}

func (k keyMap) groups() []help.Group {
	return []help.Group{
		{Title: "Document", Keys: []key.Binding{k.Save, k.SaveAs, k.New, k.Copy}},
		{Title: "Navigation", Keys: []key.Binding{k.Focus, k.Open, k.Up, k.Down}},
		{Title: "View", Keys: []key.Binding{k.Diff, k.DiffView, k.Help, k.Back}},
		{Title: "Session", Keys: []key.Binding{k.Quit}},
	}
}
