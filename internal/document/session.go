package document

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"statepad/internal/logger"
)

// Session is one editing session over a single document: the current
// State, the in-memory content, and the collaborators the transitions
// consult. A Session is owned by one shell and is not safe for
// concurrent use.
type Session struct {
	id      string
	state   State
	content string
	store   Store
	prompt  Prompt
	suffix  string
}

// Option configures a Session.
type Option func(*Session)

// WithSuffix overrides the suffix appended to prompted names.
// An empty suffix disables the rule.
func WithSuffix(suffix string) Option {
	return func(s *Session) { s.suffix = suffix }
}

// NewSession starts an UnsavedClean session with empty content. A nil
// prompt behaves like Cancel.
func NewSession(store Store, prompt Prompt, opts ...Option) *Session {
	if prompt == nil {
		prompt = Cancel
	}
	s := &Session{
		id:     uuid.New().String(),
		state:  Reset(),
		store:  store,
		prompt: prompt,
		suffix: DefaultSuffix,
	}
	for _, opt := range opts {
		opt(s)
	}
	logger.Debug("session %s: started (store=%T)", s.id, store)
	return s
}

// ID identifies the session in logs.
func (s *Session) ID() string { return s.id }

// State returns the current state variant.
func (s *Session) State() State { return s.state }

// CurrentLabel is the status-line text for the current state.
func (s *Session) CurrentLabel() string { return Label(s.state) }

// CurrentFilename is the storage key of the document, if it has one.
func (s *Session) CurrentFilename() (string, bool) { return Filename(s.state) }

// CurrentContent is the in-memory text.
func (s *Session) CurrentContent() string { return s.content }

// HandleEdit records the live content of the edit surface and marks the
// document dirty.
func (s *Session) HandleEdit(content string) {
	s.content = content
	s.transition("edit", Edit(s.state))
}

// HandleSave writes content under the current name. Unnamed documents
// are delegated to HandleSaveAs. A named document is written even when
// clean so external changes under the same key are overwritten.
func (s *Session) HandleSave(ctx context.Context, content string) (Outcome, error) {
	name, ok := Filename(s.state)
	if !ok {
		return s.saveAs(ctx, content, s.prompt)
	}
	return s.write(ctx, "save", name, content)
}

// HandleSaveAs prompts for a name, pre-filled with the current one, and
// writes content under it. A dismissed or blank prompt changes nothing.
func (s *Session) HandleSaveAs(ctx context.Context, content string) (Outcome, error) {
	return s.saveAs(ctx, content, s.prompt)
}

// SaveAsWith is HandleSaveAs with a one-off prompt, for shells that
// collect the name before invoking the transition.
func (s *Session) SaveAsWith(ctx context.Context, content string, p Prompt) (Outcome, error) {
	if p == nil {
		p = Cancel
	}
	return s.saveAs(ctx, content, p)
}

// HandleNew discards the document and starts an empty unnamed one.
func (s *Session) HandleNew() {
	s.content = ""
	s.transition("new", Reset())
}

// HandleOpen replaces the document with content stored under name,
// regardless of unsaved changes.
func (s *Session) HandleOpen(name, content string) {
	s.content = content
	s.transition("open", Open(name))
}

// OpenNamed loads name from the store and opens it. A missing name
// yields ErrNotFound and leaves the session untouched.
func (s *Session) OpenNamed(ctx context.Context, name string) error {
	content, err := s.store.Get(ctx, name)
	if err != nil {
		return fmt.Errorf("open %q: %w", name, err)
	}
	s.HandleOpen(name, content)
	return nil
}

// StoredContent returns the durable copy of the current document. ok is
// false for an unnamed document.
func (s *Session) StoredContent(ctx context.Context) (content string, ok bool, err error) {
	name, named := Filename(s.state)
	if !named {
		return "", false, nil
	}
	content, err = s.store.Get(ctx, name)
	if errors.Is(err, ErrNotFound) {
		return "", true, nil
	}
	if err != nil {
		return "", true, fmt.Errorf("read %q: %w", name, err)
	}
	return content, true, nil
}

// ListNames returns the stored document names, sorted.
func (s *Session) ListNames(ctx context.Context) ([]string, error) {
	names, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

func (s *Session) saveAs(ctx context.Context, content string, p Prompt) (Outcome, error) {
	current, _ := Filename(s.state)
	raw, ok := p.Ask(current)
	if !ok {
		logger.Debug("session %s: save-as cancelled", s.id)
		return Cancelled, nil
	}
	name, ok := NormalizeName(raw, s.suffix)
	if !ok {
		logger.Debug("session %s: save-as cancelled (blank name)", s.id)
		return Cancelled, nil
	}
	return s.write(ctx, "save-as", name, content)
}

func (s *Session) write(ctx context.Context, intent, name, content string) (Outcome, error) {
	if err := s.store.Set(ctx, name, content); err != nil {
		logger.Warn("session %s: %s %q failed: %v", s.id, intent, name, err)
		if errors.Is(err, ErrStoreWrite) {
			return Unchanged, fmt.Errorf("%s %q: %w", intent, name, err)
		}
		return Unchanged, fmt.Errorf("%s %q: %w: %w", intent, name, ErrStoreWrite, err)
	}
	s.content = content
	s.transition(intent, Save(name))
	return Saved, nil
}

func (s *Session) transition(intent string, next State) {
	logger.Debug("session %s: %s %s -> %s", s.id, intent, s.state.Kind(), next.Kind())
	s.state = next
}
