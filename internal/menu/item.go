// Package menu builds the in-memory menu model from a tree of JSON menu
// documents and computes item visibility for an incremental text filter.
package menu

// Kind discriminates the menu item variants.
type Kind int

const (
	// KindTitle is a passive grouping header.
	KindTitle Kind = iota
	// KindSeparator is a visual divider with no text and no action.
	KindSeparator
	// KindCommand carries a fully expanded shell command line.
	KindCommand
	// KindSubMenu owns a nested child model, built eagerly at parse time.
	KindSubMenu
	// KindFileChoice switches the displayed tree to a new root document.
	KindFileChoice
)

func (k Kind) String() string {
	switch k {
	case KindTitle:
		return "title"
	case KindSeparator:
		return "separator"
	case KindCommand:
		return "command"
	case KindSubMenu:
		return "menu"
	case KindFileChoice:
		return "file-choice"
	}
	return "unknown"
}

// Item is one row of a menu. The Kind field selects which payload
// fields are meaningful; the common attributes are populated for every
// kind that carries them in the source document.
type Item struct {
	Kind     Kind
	Text     string
	Style    string
	Tip      string
	Theme    string
	HelpLink string

	// Command is the expanded, quoted command line. Immutable after
	// construction; never contains placeholder syntax.
	Command string

	// Target is the new root document reference for file-choice items.
	Target string

	// Sub is the owned child model for submenu items.
	Sub *Model

	// Trace lists the texts of the ancestor submenu items from the root
	// down to this item. Empty for items directly under the root. Built
	// during construction; there are no parent back-references.
	Trace []string
}

// Model is the ordered menu defined by one document.
type Model struct {
	Title string
	Level int

	// Items preserves source document order.
	Items []*Item

	// FileChoices are the root-switch entries of the document, in source
	// order. They are surfaced outside the item list and are not subject
	// to filtering.
	FileChoices []*Item
}

// HasCommand reports whether the model or any descendant contains a
// command item.
func (m *Model) HasCommand() bool {
	for _, item := range m.Items {
		switch item.Kind {
		case KindCommand:
			return true
		case KindSubMenu:
			if item.Sub.HasCommand() {
				return true
			}
		}
	}
	return false
}

// Walk visits every item of the model and its descendants in document
// order.
func (m *Model) Walk(fn func(*Item)) {
	for _, item := range m.Items {
		fn(item)
		if item.Kind == KindSubMenu {
			item.Sub.Walk(fn)
		}
	}
}
