package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/popup-launcher/internal/menu"
)

// BestMatchIndex returns the row the cursor should jump to for the
// query. Exact matches win over prefix matches over substring matches;
// fuzzy ranking breaks the remaining ties. Only actionable rows
// (commands and submenus) are considered.
func BestMatchIndex(rows []*menu.Item, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(rows) == 0 {
		return firstActionable(rows)
	}
	lower := strings.ToLower(trimmed)
	for i, row := range rows {
		if actionable(row) && strings.EqualFold(row.Text, trimmed) {
			return i
		}
	}
	for i, row := range rows {
		if actionable(row) && strings.HasPrefix(strings.ToLower(row.Text), lower) {
			return i
		}
	}
	for i, row := range rows {
		if actionable(row) && strings.Contains(strings.ToLower(row.Text), lower) {
			return i
		}
	}

	labels := make([]string, len(rows))
	for i, row := range rows {
		if actionable(row) {
			labels[i] = row.Text
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return firstActionable(rows)
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(rows) {
		return firstActionable(rows)
	}
	return best.OriginalIndex
}

func actionable(item *menu.Item) bool {
	switch item.Kind {
	case menu.KindCommand, menu.KindSubMenu, menu.KindFileChoice:
		return true
	}
	return false
}

func firstActionable(rows []*menu.Item) int {
	for i, row := range rows {
		if actionable(row) {
			return i
		}
	}
	if len(rows) == 0 {
		return -1
	}
	return 0
}
