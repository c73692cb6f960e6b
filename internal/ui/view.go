package ui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/popup-launcher/internal/format/crumb"
	"github.com/atomicstack/popup-launcher/internal/menu"
)

const (
	cursorIndicator = "> "
	indentBlank     = "  "
	separatorRune   = "─"
)

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	if header := m.header(); header != "" {
		b.WriteString(styles.Header.Render(header))
		b.WriteString("\n")
	}
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	level := m.currentLevel()
	if level == nil {
		return b.String()
	}

	rows := level.Rows
	start := 0
	if maxRows := m.maxVisibleRows(); maxRows > 0 && len(rows) > maxRows {
		level.EnsureCursorVisible(maxRows)
		start = level.ViewportOffset
		if start+maxRows > len(rows) {
			start = len(rows) - maxRows
		}
		rows = rows[start : start+maxRows]
	}

	if len(rows) == 0 {
		msg := "(no entries)"
		if strings.TrimSpace(level.Filter) != "" {
			msg = fmt.Sprintf("No matches for %q", level.Filter)
		}
		b.WriteString(styles.Info.Render(msg))
		b.WriteString("\n")
	}
	for i, item := range rows {
		b.WriteString(m.renderRow(item, start+i == level.Cursor))
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString(styles.Error.Render(m.errMsg))
		b.WriteString("\n")
	} else if m.infoMsg != "" {
		b.WriteString(styles.Info.Render(m.infoMsg))
		b.WriteString("\n")
	}
	if m.showFooter {
		b.WriteString(styles.Footer.Render("enter: run  esc: back  ctrl+c: quit"))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) header() string {
	width := m.width
	if width > 0 {
		width -= 1
	}
	return crumb.Join(m.breadcrumb(), width)
}

func (m *Model) renderRow(item *menu.Item, selected bool) string {
	switch item.Kind {
	case menu.KindSeparator:
		return indentBlank + styles.Separator.Render(strings.Repeat(separatorRune, m.separatorWidth()))
	case menu.KindTitle:
		return indentBlank + styles.Title.Render(item.Text)
	}

	label := item.Text
	if item.Kind == menu.KindSubMenu {
		label += " →"
	}
	if item.Kind == menu.KindFileChoice {
		label += " ⇆"
	}
	if maxWidth := m.rowTextWidth(); maxWidth > 0 {
		label = truncate.StringWithTail(label, uint(maxWidth), "…")
	}

	if selected {
		return styles.SelectedItemIndicator.Render(cursorIndicator) + styles.SelectedItem.Render(label)
	}
	indicator := styles.ItemIndicator.Render(indentBlank)
	switch item.Kind {
	case menu.KindSubMenu:
		return indicator + styles.SubMenuHint.Render(label)
	case menu.KindFileChoice:
		return indicator + styles.FileChoice.Render(label)
	}
	return indicator + styles.Item.Render(label)
}

func (m *Model) rowTextWidth() int {
	if m.width <= 0 {
		return 0
	}
	width := m.width - len(cursorIndicator) - 1
	if width < 1 {
		width = 1
	}
	return width
}

func (m *Model) separatorWidth() int {
	width := m.rowTextWidth()
	if width <= 0 || width > 24 {
		return 24
	}
	return width
}
