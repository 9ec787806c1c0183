package document

// State is the save/dirty lifecycle of the open document. Exactly four
// variants exist: UnsavedClean, UnsavedDirty, SavedClean and SavedDirty.
// Values are never mutated; every transition returns a new State.
type State interface {
	Kind() Kind
	isState()
}

// Kind tags a State variant.
type Kind int

const (
	KindUnsavedClean Kind = iota
	KindUnsavedDirty
	KindSavedClean
	KindSavedDirty
)

func (k Kind) String() string {
	switch k {
	case KindUnsavedClean:
		return "unsaved-clean"
	case KindUnsavedDirty:
		return "unsaved-dirty"
	case KindSavedClean:
		return "saved-clean"
	case KindSavedDirty:
		return "saved-dirty"
	default:
		return "unknown"
	}
}

// UnsavedClean is a never-saved document with no edits since creation.
type UnsavedClean struct{}

// UnsavedDirty is a never-saved document that has been edited.
type UnsavedDirty struct{}

// SavedClean is a named document whose content matches the store.
type SavedClean struct {
	Name string
}

// SavedDirty is a named document edited since its last save or open.
type SavedDirty struct {
	Name string
}

func (UnsavedClean) Kind() Kind { return KindUnsavedClean }
func (UnsavedDirty) Kind() Kind { return KindUnsavedDirty }
func (SavedClean) Kind() Kind   { return KindSavedClean }
func (SavedDirty) Kind() Kind   { return KindSavedDirty }

func (UnsavedClean) isState() {}
func (UnsavedDirty) isState() {}
func (SavedClean) isState()   {}
func (SavedDirty) isState()   {}

// Outcome reports what a save intent actually did.
type Outcome int

const (
	// Unchanged accompanies a non-nil error: the write did not happen.
	Unchanged Outcome = iota
	// Saved means the content was written to the store.
	Saved
	// Cancelled means the name prompt was dismissed; nothing changed.
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case Saved:
		return "saved"
	case Cancelled:
		return "cancelled"
	default:
		return "unchanged"
	}
}
