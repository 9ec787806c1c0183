// Package dir stores each document as a plain file in one directory.
package dir

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"statepad/internal/document"
	"statepad/internal/logger"
)

// Ensure Store implements the interface.
var _ document.Store = (*Store)(nil)

const tempPattern = ".statepad-*"

// Store is a document.Store backed by a directory. The document name is
// the file name; names that would leave the directory are rejected.
type Store struct {
	root string
}

// NewStore creates the directory if needed and returns a store over it.
func NewStore(root string) (*Store, error) {
	if root == "" {
		return nil, errors.New("dir store: empty root")
	}
	if err := os.MkdirAll(root, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &Store{root: root}, nil
}

// Root returns the backing directory.
func (s *Store) Root() string { return s.root }

// Get reads the file for name.
func (s *Store) Get(_ context.Context, name string) (string, error) {
	path, err := s.path(name)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", document.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	return string(data), nil
}

// Set writes content through a temp file and rename, so a failed write
// leaves the previous version intact.
func (s *Store) Set(_ context.Context, name, content string) error {
	path, err := s.path(name)
	if err != nil {
		return fmt.Errorf("%w: %w", document.ErrStoreWrite, err)
	}
	tmp, err := os.CreateTemp(s.root, tempPattern)
	if err != nil {
		return fmt.Errorf("%w: %w", document.ErrStoreWrite, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: writing %s: %w", document.ErrStoreWrite, name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: writing %s: %w", document.ErrStoreWrite, name, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replacing %s: %w", document.ErrStoreWrite, name, err)
	}
	return nil
}

// List returns the names of the regular, non-hidden files in the directory.
func (s *Store) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("reading data directory: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() || hidden(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// Watch reports changes to the directory made by anyone, including this
// process. The channel carries at most one pending signal and is closed
// when ctx is done.
func (s *Store) Watch(ctx context.Context) (<-chan struct{}, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := w.Add(s.root); err != nil {
		w.Close()
		return nil, fmt.Errorf("watching %s: %w", s.root, err)
	}
	ch := make(chan struct{}, 1)
	go func() {
		defer close(ch)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if hidden(filepath.Base(ev.Name)) || ev.Op == fsnotify.Chmod {
					continue
				}
				select {
				case ch <- struct{}{}:
				default:
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("dir store: watch %s: %v", s.root, err)
			}
		}
	}()
	return ch, nil
}

func (s *Store) path(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return filepath.Join(s.root, name), nil
}

// ValidateName rejects names that are not a single visible file name.
func ValidateName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return fmt.Errorf("%w: %q", document.ErrInvalidName, name)
	case strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0):
		return fmt.Errorf("%w: %q contains a path separator", document.ErrInvalidName, name)
	case hidden(name):
		return fmt.Errorf("%w: %q is hidden", document.ErrInvalidName, name)
	}
	return nil
}

func hidden(name string) bool { return strings.HasPrefix(name, ".") }
