package menu

import (
	"errors"
	"fmt"
)

// ErrEmptyMenu marks a document whose menu list is empty or absent.
var ErrEmptyMenu = errors.New("launcher menu is empty")

// MissingFieldError reports a mandatory key absent from a menu item.
// The whole build aborts: the launcher refuses to show a menu it cannot
// fully validate.
type MissingFieldError struct {
	Ref      string
	ItemType string
	Field    string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("in document %q: parameter %q is mandatory in configuration %q",
		e.Ref, e.Field, e.ItemType)
}

// CycleError reports a document that transitively includes itself.
type CycleError struct {
	Ref   string
	Stack []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("cyclic menu reference: document %q is already being built (stack: %v)",
		e.Ref, e.Stack)
}
