// Package state holds per-level presentation state: the filter term,
// cursor position, viewport offset, and the rows left visible by the
// filter engine.
package state

import (
	"strings"

	"github.com/atomicstack/popup-launcher/internal/menu"
)

// Level presents one menu model as a navigable list. Rows are the
// top-level items currently visible under the filter; submenu contents
// appear on deeper levels when entered.
type Level struct {
	Title          string
	Model          *menu.Model
	Rows           []*menu.Item
	Filter         string
	Cursor         int
	LastCursor     int
	ViewportOffset int
	HasVisible     bool

	vis menu.Visibility
}

// NewLevel constructs a Level for the given model with no filter
// applied.
func NewLevel(model *menu.Model) *Level {
	l := &Level{
		Title:      model.Title,
		Model:      model,
		Cursor:     0,
		LastCursor: -1,
		vis:        make(menu.Visibility),
	}
	l.applyFilter()
	return l
}

// Visibility exposes the level's current filter annotations.
func (l *Level) Visibility() menu.Visibility {
	return l.vis
}

// SetFilter updates the filter term, recomputes visibility for the
// level's subtree, and adjusts the cursor: entering a filter remembers
// the cursor for restoration when the filter clears, and the best
// fuzzy match is selected while a term is active.
func (l *Level) SetFilter(query string) {
	trimmed := strings.TrimSpace(query)
	prevTrimmed := strings.TrimSpace(l.Filter)
	restore := -1
	l.Filter = query
	if trimmed != "" {
		if prevTrimmed == "" {
			l.LastCursor = l.Cursor
		}
		l.Cursor = 0
	} else if prevTrimmed != "" {
		restore = l.LastCursor
	}
	l.applyFilter()
	if trimmed != "" && len(l.Rows) > 0 {
		if idx := BestMatchIndex(l.Rows, trimmed); idx >= 0 {
			l.Cursor = idx
		}
	}
	if trimmed == "" && prevTrimmed != "" {
		if restore >= 0 && restore < len(l.Rows) {
			l.Cursor = restore
		} else if len(l.Rows) > 0 {
			l.Cursor = len(l.Rows) - 1
		}
		l.LastCursor = -1
	}
}

func (l *Level) applyFilter() {
	l.HasVisible = menu.Filter(l.Model, strings.TrimSpace(l.Filter), l.vis)
	l.Rows = l.Rows[:0]
	for _, item := range l.Model.Items {
		if l.vis.Visible(item) {
			l.Rows = append(l.Rows, item)
		}
	}
	// Root-switch entries are control rows: always shown, never filtered.
	l.Rows = append(l.Rows, l.Model.FileChoices...)
	if len(l.Rows) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = len(l.Rows) - 1
		return
	}
	if l.Cursor >= len(l.Rows) {
		l.Cursor = len(l.Rows) - 1
	}
	if l.ViewportOffset > len(l.Rows)-1 {
		l.ViewportOffset = 0
	}
}

// Selected returns the row under the cursor, or nil when the level has
// no visible rows.
func (l *Level) Selected() *menu.Item {
	if l.Cursor < 0 || l.Cursor >= len(l.Rows) {
		return nil
	}
	return l.Rows[l.Cursor]
}
