package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"statepad/internal/document"
	"statepad/internal/logger"
	"statepad/internal/tui/state"
	"statepad/internal/tui/util"
	"statepad/internal/tui/views/files"
	"statepad/internal/tui/widgets/diff"
	"statepad/internal/tui/widgets/editor"
	help "statepad/internal/tui/widgets/helpoverlay"
	"statepad/internal/tui/widgets/statusbar"
	"statepad/internal/tui/widgets/tagchips"
)

// Options tunes the editor shell.
type Options struct {
	ConfirmDiscard bool   // ask before new/open/quit drops unsaved edits
	NoColor        bool
	DiffView       string // "unified" or "side-by-side"
	Suffix         string // used to match typed names against stored ones

	// Watch, when set, signals that the store changed underneath us.
	Watch <-chan struct{}

	// Clipboard receives the buffer on ctrl+y. Defaults to the system clipboard.
	Clipboard func(string) error

	// SaveDiffView, when set, persists the diff view chosen with ctrl+t.
	SaveDiffView func(view string) error
}

// Run shows the editor over sess until the user quits.
func Run(ctx context.Context, sess *document.Session, opts Options) error {
	m := newModel(ctx, sess, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

// ===== Model =====

// pending is the intent waiting on a discard confirmation.
type pending int

const (
	pendingNone pending = iota
	pendingNew
	pendingOpen
	pendingQuit
	pendingConvert // first edit of a document the text area had to rewrite
)

const (
	listWidth = 28
	minCol    = 20
)

type storeChangedMsg struct{}

func waitChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}

type model struct {
	ctx     context.Context
	sess    *document.Session
	opts    Options
	keys    keyMap
	noColor bool

	ui      state.UIState
	area    textarea.Model
	input   textinput.Model
	names   []string
	suggest []string

	pending     pending
	pendingName string
	held        tea.KeyMsg

	// lossy is set while the text area shows a rewritten form of the
	// stored content (tabs as spaces, CRLF as LF) that no edit has
	// committed yet.
	lossy bool

	// stored is the durable copy shown by the diff view.
	stored string
	// synced is the text area value as of the last load or edit. The area
	// rewrites tabs on input, so edits are detected against this rather
	// than against the session content.
	synced string
}

func newModel(ctx context.Context, sess *document.Session, opts Options) model {
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}

	area := textarea.New()
	area.ShowLineNumbers = false
	area.Prompt = ""
	area.CharLimit = 0
	area.MaxHeight = 0
	area.Focus()

	input := textinput.New()
	input.Prompt = "Save as: "
	input.Placeholder = "name"
	input.CharLimit = 255

	ui := state.UIState{MinCol: minCol}
	if opts.DiffView == "side-by-side" {
		ui.View = state.SideBySide
	}

	m := model{
		ctx:     ctx,
		sess:    sess,
		opts:    opts,
		keys:    defaultKeyMap(),
		noColor: util.NoColor(opts.NoColor),
		ui:      ui,
		area:    area,
		input:   input,
	}
	m.load(sess.CurrentContent())
	m.refresh()
	return m
}

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink}
	if m.opts.Watch != nil {
		cmds = append(cmds, waitChange(m.opts.Watch))
	}
	return tea.Batch(cmds...)
}

// Update handles all editor interactions.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui = state.Resize(m.ui, msg.Width, msg.Height)
		w := msg.Width - listWidth - 3
		if w < minCol {
			w = minCol
		}
		m.area.SetWidth(w)
		if h := msg.Height - 4; h > 0 {
			m.area.SetHeight(h)
		}
		return m, nil

	case storeChangedMsg:
		m.refresh()
		return m, waitChange(m.opts.Watch)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m.request(pendingQuit, "")
		}
		switch m.ui.Mode {
		case state.PROMPT:
			return m.updatePrompt(msg)
		case state.CONFIRM:
			return m.updateConfirm(msg)
		case state.DIFF:
			return m.updateDiff(msg), nil
		case state.HELP:
			if key.Matches(msg, m.keys.Help, m.keys.Back) {
				m.ui = state.Back(m.ui)
			}
			return m, nil
		}
		return m.updateEdit(msg)
	}

	if m.ui.Mode == state.EDIT && m.ui.Focus == state.EDITOR {
		var cmd tea.Cmd
		m.area, cmd = m.area.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.ui.Notice = ""
	switch {
	case key.Matches(msg, m.keys.Save):
		return m.save(), nil
	case key.Matches(msg, m.keys.SaveAs):
		return m.startPrompt()
	case key.Matches(msg, m.keys.New):
		return m.request(pendingNew, "")
	case key.Matches(msg, m.keys.Diff):
		return m.showDiff(), nil
	case key.Matches(msg, m.keys.Copy):
		return m.copyBuffer(), nil
	case key.Matches(msg, m.keys.Help):
		m.ui = state.ToggleHelp(m.ui)
		return m, nil
	case key.Matches(msg, m.keys.Focus):
		m.ui = state.ToggleFocus(m.ui)
		if m.ui.Focus == state.EDITOR {
			m.area.Focus()
		} else {
			m.area.Blur()
		}
		return m, nil
	}

	if m.ui.Focus == state.FILES {
		switch {
		case key.Matches(msg, m.keys.Up):
			m.ui = state.CursorUp(m.ui)
		case key.Matches(msg, m.keys.Down):
			m.ui = state.CursorDown(m.ui)
		case key.Matches(msg, m.keys.Open):
			if len(m.names) == 0 {
				return m, nil
			}
			return m.request(pendingOpen, m.names[m.ui.Cursor])
		case key.Matches(msg, m.keys.Back):
			m.ui = state.ToggleFocus(m.ui)
			m.area.Focus()
		}
		return m, nil
	}

	if m.lossy && m.isEditKey(msg) {
		m.held = msg
		m.pending = pendingConvert
		m.ui = state.Enter(m.ui, state.CONFIRM)
		return m, nil
	}
	return m.typeKey(msg)
}

// typeKey feeds msg to the text area and records the edit, if any.
func (m model) typeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	if v := m.area.Value(); v != m.synced {
		m.synced = v
		m.lossy = false
		m.sess.HandleEdit(v)
	}
	return m, cmd
}

// isEditKey reports whether msg may change the text area's value.
func (m model) isEditKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		return true
	}
	km := m.area.KeyMap
	return key.Matches(msg,
		km.InsertNewline, km.Paste,
		km.DeleteCharacterBackward, km.DeleteCharacterForward,
		km.DeleteWordBackward, km.DeleteWordForward,
		km.DeleteAfterCursor, km.DeleteBeforeCursor,
		km.TransposeCharacterBackward,
		km.UppercaseWordForward, km.LowercaseWordForward, km.CapitalizeWordForward,
	)
}

func (m model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab:
		if len(m.suggest) > 0 {
			m.input.SetValue(m.suggest[0])
			m.input.CursorEnd()
			m.suggest = nameSuggestions(m.input.Value(), m.names, m.opts.Suffix)
		}
		return m, nil
	case tea.KeyEnter:
		answer := m.input.Value()
		m.input.Blur()
		m.suggest = nil
		m.ui = state.Back(m.ui)
		out, err := m.sess.SaveAsWith(m.ctx, m.sess.CurrentContent(), document.Answer(answer))
		return m.afterSave(out, err), nil
	case tea.KeyEsc:
		m.input.Blur()
		m.suggest = nil
		m.ui = state.Notify(state.Back(m.ui), "Save as cancelled")
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.suggest = nameSuggestions(m.input.Value(), m.names, m.opts.Suffix)
	return m, cmd
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		m.ui = state.Back(m.ui)
		return m.perform(m.pending, m.pendingName)
	case key.Matches(msg, m.keys.No):
		notice := "Kept unsaved changes"
		if m.pending == pendingConvert {
			notice = "Left " + m.sess.CurrentLabel() + " unchanged"
		}
		m.pending, m.pendingName, m.held = pendingNone, "", tea.KeyMsg{}
		m.ui = state.Notify(state.Back(m.ui), notice)
	}
	return m, nil
}

func (m model) updateDiff(msg tea.KeyMsg) model {
	switch {
	case key.Matches(msg, m.keys.Back, m.keys.Diff):
		m.ui = state.Back(m.ui)
	case key.Matches(msg, m.keys.DiffView):
		before := m.ui.View
		m.ui = state.ToggleView(m.ui)
		if m.ui.View != before && m.opts.SaveDiffView != nil {
			if err := m.opts.SaveDiffView(diffViewName(m.ui.View)); err != nil {
				logger.Warn("tui: %v", err)
				m.ui = state.Notify(m.ui, "Could not save diff view: "+err.Error())
			}
		}
	case key.Matches(msg, m.keys.Up):
		m.ui = state.ScrollDiff(m.ui, -1)
	case key.Matches(msg, m.keys.Down):
		m.ui = state.ScrollDiff(m.ui, 1)
	}
	return m
}

// request runs intent now, or asks first when it would drop unsaved edits.
func (m model) request(intent pending, name string) (tea.Model, tea.Cmd) {
	if m.opts.ConfirmDiscard && document.Dirty(m.sess.State()) {
		if m.ui.Mode == state.PROMPT {
			m.input.Blur()
			m.suggest = nil
		}
		m.pending, m.pendingName = intent, name
		m.ui = state.Enter(m.ui, state.CONFIRM)
		return m, nil
	}
	return m.perform(intent, name)
}

func (m model) perform(intent pending, name string) (tea.Model, tea.Cmd) {
	m.pending, m.pendingName = pendingNone, ""
	switch intent {
	case pendingQuit:
		return m, tea.Quit
	case pendingConvert:
		held := m.held
		m.held = tea.KeyMsg{}
		m.lossy = false
		return m.typeKey(held)
	case pendingNew:
		m.sess.HandleNew()
		m.load("")
		m.ui = state.Notify(m.ui, "New document")
	case pendingOpen:
		if err := m.sess.OpenNamed(m.ctx, name); err != nil {
			if errors.Is(err, document.ErrNotFound) {
				m.ui = state.Notify(m.ui, fmt.Sprintf("No document named %q", name))
			} else {
				m.ui = state.Notify(m.ui, "Open failed: "+err.Error())
			}
			m.refresh()
			return m, nil
		}
		m.load(m.sess.CurrentContent())
		if !m.lossy {
			m.ui = state.Notify(m.ui, "Opened "+name)
		}
		if m.ui.Focus == state.FILES {
			m.ui = state.ToggleFocus(m.ui)
			m.area.Focus()
		}
	}
	return m, nil
}

func (m model) save() model {
	if _, named := m.sess.CurrentFilename(); !named {
		next, _ := m.startPrompt()
		return next.(model)
	}
	out, err := m.sess.HandleSave(m.ctx, m.sess.CurrentContent())
	return m.afterSave(out, err)
}

func (m model) startPrompt() (tea.Model, tea.Cmd) {
	current, _ := m.sess.CurrentFilename()
	m.input.SetValue(current)
	m.input.CursorEnd()
	m.ui = state.Enter(m.ui, state.PROMPT)
	cmd := m.input.Focus()
	return m, cmd
}

func (m model) afterSave(out document.Outcome, err error) model {
	switch {
	case err != nil:
		logger.Warn("tui: %v", err)
		m.ui = state.Notify(m.ui, "Save failed: "+err.Error())
	case out == document.Cancelled:
		m.ui = state.Notify(m.ui, "Save as cancelled")
	case out == document.Saved:
		name, _ := m.sess.CurrentFilename()
		m.ui = state.Notify(m.ui, "Saved "+name)
		m.refresh()
	}
	return m
}

func (m model) showDiff() model {
	stored, _, err := m.sess.StoredContent(m.ctx)
	if err != nil {
		m.ui = state.Notify(m.ui, "Diff unavailable: "+err.Error())
		return m
	}
	m.stored = stored
	m.ui = state.Enter(m.ui, state.DIFF)
	return m
}

func (m model) copyBuffer() model {
	content := m.sess.CurrentContent()
	if err := m.opts.Clipboard(content); err != nil {
		m.ui = state.Notify(m.ui, "Clipboard unavailable: "+err.Error())
		return m
	}
	m.ui = state.Notify(m.ui, fmt.Sprintf("Copied %d chars", len([]rune(content))))
	return m
}

// load replaces the text area value without recording an edit. The area
// rewrites tabs and CRLF on input; when that changed anything the first
// edit asks before the rewrite reaches the session.
func (m *model) load(content string) {
	m.area.SetValue(content)
	for m.area.Line() > 0 {
		m.area.CursorUp()
	}
	m.area.CursorStart()
	m.synced = m.area.Value()
	m.lossy = m.synced != content
	if m.lossy {
		m.ui = state.Notify(m.ui, "Tabs/CRLF shown as spaces/LF; editing will save them that way")
	}
}

func diffViewName(v state.DiffMode) string {
	if v == state.SideBySide {
		return "side-by-side"
	}
	return "unified"
}

func (m *model) refresh() {
	names, err := m.sess.ListNames(m.ctx)
	if err != nil {
		logger.Warn("tui: %v", err)
		m.ui = state.Notify(m.ui, "List failed: "+err.Error())
		return
	}
	m.names = names
	m.ui = state.SetFiles(m.ui, len(names))
}

// ===== View =====

func (m model) View() string {
	switch m.ui.Mode {
	case state.HELP:
		return help.NewHelpOverlay().View(m.ui, m.keys.groups())
	case state.DIFF:
		return diff.NewDiffView(m.noColor).View(m.ui, m.stored, m.sess.CurrentContent()) + "\n" + m.status()
	}

	current, _ := m.sess.CurrentFilename()
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		editor.NewEditor().View(m.ui, m.sess.CurrentLabel(), m.area.View()),
		"   ",
		lipgloss.NewStyle().Width(listWidth).Render(files.Render(m.ui, m.names, current, m.noColor)),
	)

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	switch m.ui.Mode {
	case state.PROMPT:
		b.WriteString(m.input.View() + "\n")
		b.WriteString(m.suggestionsView())
	case state.CONFIRM:
		if m.pending == pendingConvert {
			fmt.Fprintf(&b, "Editing rewrites tabs as spaces and CRLF as LF in %s. Continue? (y/n)\n", m.sess.CurrentLabel())
		} else {
			fmt.Fprintf(&b, "Discard unsaved changes to %s? (y/n)\n", m.sess.CurrentLabel())
		}
	}
	b.WriteString(m.status())
	return b.String()
}

func (m model) status() string {
	chips := tagchips.View(util.ComputeTags(m.sess.State(), m.sess.CurrentContent()), m.noColor)
	return statusbar.NewStatusBar().View(m.ui, m.sess.CurrentLabel(), chips)
}
