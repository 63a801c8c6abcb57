package domain

import "fmt"

type ChangeKind string

const (
	ChangeInsert ChangeKind = "insert"
	ChangeDelete ChangeKind = "delete"
)

func (k ChangeKind) Valid() bool {
	switch k {
	case ChangeInsert, ChangeDelete:
		return true
	default:
		return false
	}
}

// ChangeRecord is one committed insertion or deletion. Records are immutable
// once appended to a ChangeLog.
type ChangeRecord struct {
	Kind ChangeKind
	Text string
	// ContextBefore and ContextAfter hold the text surrounding the change in
	// the reference document when it was captured. Either may be empty.
	ContextBefore string
	ContextAfter  string
}

func (r ChangeRecord) Validate() error {
	if !r.Kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownChangeKind, r.Kind)
	}
	if r.Text == "" {
		return ErrEmptyChange
	}

	return nil
}

func (r ChangeRecord) Anchored() bool {
	return r.ContextBefore != "" || r.ContextAfter != ""
}

func (r ChangeRecord) String() string {
	return fmt.Sprintf("%s: %s", r.Kind, r.Text)
}
