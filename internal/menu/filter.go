package menu

import "strings"

// Visibility holds the transient per-item filter annotations. It is
// view state layered over the model: the model itself is never mutated
// by filtering.
type Visibility map[*Item]bool

// Visible reports whether an item is shown under the current
// annotations. Items never annotated are visible.
func (v Visibility) Visible(item *Item) bool {
	if v == nil {
		return true
	}
	shown, ok := v[item]
	return !ok || shown
}

// Filter recomputes visibility for the model tree under term and
// reports whether any command remains reachable. Matching is a
// case-sensitive substring test on item text. Repeated application
// with the same term is idempotent.
//
// A title is shown only while at least one item between it and the next
// title (or the end of the menu) stays visible. Submenus are shown only
// when the recursive walk finds a visible descendant. Separators hide
// under any non-empty term.
func Filter(m *Model, term string, vis Visibility) bool {
	if term == "" {
		m.Walk(func(item *Item) {
			vis[item] = true
		})
		return m.HasCommand()
	}

	hasVisible := false
	visibleCount := 0
	var lastTitle *Item

	for _, item := range m.Items {
		switch item.Kind {
		case KindTitle:
			// Visible items below the previous title decide its fate.
			if lastTitle != nil {
				vis[lastTitle] = visibleCount != 0
			}
			visibleCount = 0
			lastTitle = item

		case KindSubMenu:
			subVisible := Filter(item.Sub, term, vis)
			vis[item] = subVisible
			if subVisible {
				visibleCount++
				hasVisible = true
			}

		case KindSeparator:
			vis[item] = false

		default:
			matched := strings.Contains(item.Text, term)
			vis[item] = matched
			if matched {
				visibleCount++
				hasVisible = true
			}
		}
	}
	if lastTitle != nil {
		vis[lastTitle] = visibleCount != 0
	}
	return hasVisible
}
