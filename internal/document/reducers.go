package document

import "fmt"

const (
	// UntitledLabel is shown for a document that has never been saved.
	UntitledLabel = "untitled"
	// ModifiedMarker is appended to the label of a dirty document.
	ModifiedMarker = " *"
)

// Edit marks the document dirty, keeping its name.
func Edit(s State) State {
	switch v := s.(type) {
	case UnsavedClean, UnsavedDirty:
		return UnsavedDirty{}
	case SavedClean:
		return SavedDirty{Name: v.Name}
	case SavedDirty:
		return v
	default:
		panic(fmt.Sprintf("document: unknown state %T", s))
	}
}

// Reset is the state of a brand-new document.
func Reset() State {
	return UnsavedClean{}
}

// Open is the state right after loading name from the store.
func Open(name string) State {
	return SavedClean{Name: name}
}

// Save is the state after a successful write under name.
func Save(name string) State {
	return SavedClean{Name: name}
}

// Named reports whether the document has a storage key.
func Named(s State) bool {
	_, ok := Filename(s)
	return ok
}

// Dirty reports whether the in-memory content may differ from the store.
func Dirty(s State) bool {
	switch s.(type) {
	case UnsavedDirty, SavedDirty:
		return true
	default:
		return false
	}
}

// Filename returns the storage key, if any.
func Filename(s State) (string, bool) {
	switch v := s.(type) {
	case SavedClean:
		return v.Name, true
	case SavedDirty:
		return v.Name, true
	default:
		return "", false
	}
}

// Label renders the status-line text for s.
func Label(s State) string {
	switch v := s.(type) {
	case UnsavedClean:
		return UntitledLabel
	case UnsavedDirty:
		return UntitledLabel + ModifiedMarker
	case SavedClean:
		return v.Name
	case SavedDirty:
		return v.Name + ModifiedMarker
	default:
		panic(fmt.Sprintf("document: unknown state %T", s))
	}
}
