package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statepad/internal/document"
	"statepad/internal/store/memory"
	"statepad/internal/tui/state"
)

func typed(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func keyOf(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func press(m model, msgs ...tea.Msg) model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func newTestModel(t *testing.T, store document.Store, opts Options) (model, *document.Session) {
	t.Helper()
	if opts.Clipboard == nil {
		opts.Clipboard = func(string) error { return nil }
	}
	opts.NoColor = true
	sess := document.NewSession(store, nil)
	return newModel(context.Background(), sess, opts), sess
}

type failingStore struct{ *memory.Store }

func (failingStore) Set(context.Context, string, string) error { return errors.New("disk full") }

func TestTyping_MarksDirty(t *testing.T) {
	m, sess := newTestModel(t, memory.NewStore(nil), Options{})

	m = press(m, typed("hi"))

	assert.Equal(t, document.UnsavedDirty{}, sess.State())
	assert.Equal(t, "hi", sess.CurrentContent())
	assert.Contains(t, m.View(), "untitled *")
}

func TestSaveAs_PromptWritesNormalizedName(t *testing.T) {
	store := memory.NewStore(nil)
	m, sess := newTestModel(t, store, Options{})

	m = press(m, typed("draft"), keyOf(tea.KeyCtrlR))
	require.Equal(t, state.PROMPT, m.ui.Mode)
	m = press(m, typed("notes"), keyOf(tea.KeyEnter))

	assert.Equal(t, state.EDIT, m.ui.Mode)
	assert.Equal(t, document.SavedClean{Name: "notes.txt"}, sess.State())
	got, err := store.Get(context.Background(), "notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "draft", got)
	assert.Equal(t, []string{"notes.txt"}, m.names)
	assert.Equal(t, "Saved notes.txt", m.ui.Notice)
}

func TestSave_UnnamedPromptEscIsNoop(t *testing.T) {
	store := memory.NewStore(nil)
	m, sess := newTestModel(t, store, Options{})

	m = press(m, typed("x"), keyOf(tea.KeyCtrlS))
	require.Equal(t, state.PROMPT, m.ui.Mode)
	m = press(m, keyOf(tea.KeyEsc))

	assert.Equal(t, state.EDIT, m.ui.Mode)
	assert.Equal(t, "Save as cancelled", m.ui.Notice)
	assert.Equal(t, document.UnsavedDirty{}, sess.State())
	assert.Equal(t, 0, store.Len())
}

func TestSaveAs_BlankNameIsNoop(t *testing.T) {
	store := memory.NewStore(nil)
	m, sess := newTestModel(t, store, Options{})

	m = press(m, typed("x"), keyOf(tea.KeyCtrlR), typed("   "), keyOf(tea.KeyEnter))

	assert.Equal(t, "Save as cancelled", m.ui.Notice)
	assert.Equal(t, document.UnsavedDirty{}, sess.State())
	assert.Equal(t, 0, store.Len())
}

func TestOpenFromFilesThenSave(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(map[string]string{"a.txt": "alpha", "b.txt": "beta"})
	m, sess := newTestModel(t, store, Options{ConfirmDiscard: true})
	require.Equal(t, []string{"a.txt", "b.txt"}, m.names)

	m = press(m, keyOf(tea.KeyTab), keyOf(tea.KeyDown), keyOf(tea.KeyEnter))

	assert.Equal(t, document.SavedClean{Name: "b.txt"}, sess.State())
	assert.Equal(t, "beta", m.area.Value())
	assert.Equal(t, state.EDITOR, m.ui.Focus)

	m = press(m, typed("!"))
	assert.Equal(t, document.SavedDirty{Name: "b.txt"}, sess.State())
	m = press(m, keyOf(tea.KeyCtrlS))

	assert.Equal(t, document.SavedClean{Name: "b.txt"}, sess.State())
	got, err := store.Get(ctx, "b.txt")
	require.NoError(t, err)
	assert.Equal(t, sess.CurrentContent(), got)
	assert.Contains(t, got, "!")
}

func TestSaveAs_PrefilledWithCurrentName(t *testing.T) {
	store := memory.NewStore(map[string]string{"a.txt": "alpha"})
	m, _ := newTestModel(t, store, Options{})

	m = press(m, keyOf(tea.KeyTab), keyOf(tea.KeyEnter), keyOf(tea.KeyCtrlR))

	assert.Equal(t, "a.txt", m.input.Value())
}

func TestNew_DirtyAsksFirst(t *testing.T) {
	m, sess := newTestModel(t, memory.NewStore(nil), Options{ConfirmDiscard: true})

	m = press(m, typed("work"), keyOf(tea.KeyCtrlN))
	require.Equal(t, state.CONFIRM, m.ui.Mode)
	assert.Contains(t, m.View(), "Discard unsaved changes to untitled *?")

	m = press(m, typed("n"))
	assert.Equal(t, state.EDIT, m.ui.Mode)
	assert.Equal(t, document.UnsavedDirty{}, sess.State())
	assert.Equal(t, "work", sess.CurrentContent())

	m = press(m, keyOf(tea.KeyCtrlN), typed("y"))
	assert.Equal(t, document.UnsavedClean{}, sess.State())
	assert.Equal(t, "", sess.CurrentContent())
	assert.Equal(t, "", m.area.Value())
}

func TestNew_NoConfirmWhenDisabled(t *testing.T) {
	m, sess := newTestModel(t, memory.NewStore(nil), Options{ConfirmDiscard: false})

	m = press(m, typed("work"), keyOf(tea.KeyCtrlN))

	assert.Equal(t, state.EDIT, m.ui.Mode)
	assert.Equal(t, document.UnsavedClean{}, sess.State())
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, memory.NewStore(nil), Options{ConfirmDiscard: true})

	_, cmd := m.Update(keyOf(tea.KeyCtrlQ))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	m = press(m, typed("x"))
	next, cmd := m.Update(keyOf(tea.KeyCtrlC))
	assert.Nil(t, cmd)
	assert.Equal(t, state.CONFIRM, next.(model).ui.Mode)
}

func TestOpen_MissingNameReportsNotFound(t *testing.T) {
	m, sess := newTestModel(t, memory.NewStore(nil), Options{})
	m.names = []string{"ghost.txt"}
	m.ui = state.SetFiles(m.ui, 1)

	m = press(m, keyOf(tea.KeyTab), keyOf(tea.KeyEnter))

	assert.Equal(t, `No document named "ghost.txt"`, m.ui.Notice)
	assert.Equal(t, document.UnsavedClean{}, sess.State())
	assert.Empty(t, m.names)
}

func TestDiffAgainstStoredCopy(t *testing.T) {
	store := memory.NewStore(map[string]string{"a.txt": "alpha"})
	m, _ := newTestModel(t, store, Options{})
	m = press(m, keyOf(tea.KeyTab), keyOf(tea.KeyEnter), typed(">"))

	m = press(m, keyOf(tea.KeyCtrlD))

	require.Equal(t, state.DIFF, m.ui.Mode)
	assert.Equal(t, "alpha", m.stored)
	view := m.View()
	assert.Contains(t, view, "- alpha")
	assert.Contains(t, view, "+ >alpha")

	m = press(m, keyOf(tea.KeyCtrlT))
	assert.Equal(t, state.SideBySide, m.ui.View)
	m = press(m, keyOf(tea.KeyEsc))
	assert.Equal(t, state.EDIT, m.ui.Mode)
}

func TestCopyBuffer(t *testing.T) {
	var got string
	m, _ := newTestModel(t, memory.NewStore(nil), Options{Clipboard: func(s string) error {
		got = s
		return nil
	}})

	m = press(m, typed("héllo"), keyOf(tea.KeyCtrlY))

	assert.Equal(t, "héllo", got)
	assert.Equal(t, "Copied 5 chars", m.ui.Notice)
}

func TestWriteFailureKeepsDirty(t *testing.T) {
	store := failingStore{memory.NewStore(map[string]string{"a.txt": "alpha"})}
	m, sess := newTestModel(t, store, Options{})
	m = press(m, keyOf(tea.KeyTab), keyOf(tea.KeyEnter), typed("x"))

	m = press(m, keyOf(tea.KeyCtrlS))

	assert.Contains(t, m.ui.Notice, "Save failed")
	assert.Contains(t, m.ui.Notice, "disk full")
	assert.Equal(t, document.SavedDirty{Name: "a.txt"}, sess.State())
}

func TestStoreChangeRefreshesList(t *testing.T) {
	store := memory.NewStore(nil)
	watch := make(chan struct{}, 1)
	m, _ := newTestModel(t, store, Options{Watch: watch})
	require.Empty(t, m.names)
	require.NoError(t, store.Set(context.Background(), "new.txt", ""))

	next, cmd := m.Update(storeChangedMsg{})

	assert.Equal(t, []string{"new.txt"}, next.(model).names)
	assert.NotNil(t, cmd)
}

func TestHelpOverlay(t *testing.T) {
	m, _ := newTestModel(t, memory.NewStore(nil), Options{})

	m = press(m, keyOf(tea.KeyF1))
	require.Equal(t, state.HELP, m.ui.Mode)
	assert.Contains(t, m.View(), "save as")

	m = press(m, keyOf(tea.KeyEsc))
	assert.Equal(t, state.EDIT, m.ui.Mode)
}

func TestLoad_CursorStartsAtTop(t *testing.T) {
	store := memory.NewStore(map[string]string{"m.txt": "one\ntwo\nthree"})
	m, sess := newTestModel(t, store, Options{})

	m = press(m, keyOf(tea.KeyTab), keyOf(tea.KeyEnter), typed(">"))

	assert.Equal(t, ">one\ntwo\nthree", sess.CurrentContent())
}

func TestTabIndentedDocument_AsksBeforeRewriting(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(map[string]string{"a.txt": "a\n\tb\n"})
	m, sess := newTestModel(t, store, Options{})

	m = press(m, keyOf(tea.KeyTab), keyOf(tea.KeyEnter))
	assert.Contains(t, m.ui.Notice, "Tabs/CRLF shown as spaces/LF")

	m = press(m, typed("x"))
	require.Equal(t, state.CONFIRM, m.ui.Mode)
	assert.Contains(t, m.View(), "Editing rewrites tabs as spaces")
	assert.Equal(t, document.SavedClean{Name: "a.txt"}, sess.State())
	assert.Equal(t, "a\n\tb\n", sess.CurrentContent())

	m = press(m, typed("n"))
	assert.Equal(t, state.EDIT, m.ui.Mode)
	assert.Equal(t, "Left a.txt unchanged", m.ui.Notice)
	assert.Equal(t, document.SavedClean{Name: "a.txt"}, sess.State())

	// Saving without an edit keeps the stored bytes.
	m = press(m, keyOf(tea.KeyCtrlS))
	got, err := store.Get(ctx, "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "a\n\tb\n", got)

	m = press(m, typed("x"), typed("y"), keyOf(tea.KeyCtrlS))
	assert.Equal(t, document.SavedClean{Name: "a.txt"}, sess.State())
	got, err = store.Get(ctx, "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "xa\n    b\n", got)

	// Once rewritten, later edits go straight through.
	m = press(m, typed("z"))
	assert.Equal(t, state.EDIT, m.ui.Mode)
	assert.Equal(t, document.SavedDirty{Name: "a.txt"}, sess.State())
}

func TestTabIndentedDocument_CursorKeysDoNotAsk(t *testing.T) {
	store := memory.NewStore(map[string]string{"a.txt": "a\n\tb\n"})
	m, sess := newTestModel(t, store, Options{})

	m = press(m, keyOf(tea.KeyTab), keyOf(tea.KeyEnter), keyOf(tea.KeyDown), keyOf(tea.KeyRight))

	assert.Equal(t, state.EDIT, m.ui.Mode)
	assert.Equal(t, document.SavedClean{Name: "a.txt"}, sess.State())
}

func TestDiffViewToggleIsPersisted(t *testing.T) {
	var saved []string
	m, _ := newTestModel(t, memory.NewStore(nil), Options{SaveDiffView: func(v string) error {
		saved = append(saved, v)
		return nil
	}})

	m = press(m, keyOf(tea.KeyCtrlD), keyOf(tea.KeyCtrlT), keyOf(tea.KeyCtrlT))

	assert.Equal(t, []string{"side-by-side", "unified"}, saved)

	m.opts.SaveDiffView = func(string) error { return errors.New("read-only") }
	m = press(m, keyOf(tea.KeyCtrlT))
	assert.Equal(t, "Could not save diff view: read-only", m.ui.Notice)
}

func TestQuitFromPromptLeavesInputUnfocused(t *testing.T) {
	m, sess := newTestModel(t, memory.NewStore(nil), Options{ConfirmDiscard: true})

	m = press(m, typed("work"), keyOf(tea.KeyCtrlR), typed("na"))
	require.True(t, m.input.Focused())
	m = press(m, keyOf(tea.KeyCtrlQ))

	require.Equal(t, state.CONFIRM, m.ui.Mode)
	assert.False(t, m.input.Focused())
	assert.Empty(t, m.suggest)

	m = press(m, typed("n"), typed("!"))
	assert.Equal(t, state.EDIT, m.ui.Mode)
	assert.False(t, m.input.Focused())
	assert.Equal(t, "work!", sess.CurrentContent())
}
