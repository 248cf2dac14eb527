package storage

import (
	"sort"
	"strings"

	"github.com/mcoot/volleydraft-go/internal/model"
)

// ApplyPlayerFilter filters, orders, and truncates a player list in
// memory. Backends without a native query engine share it so that every
// backend returns identical listings for the same filter.
func ApplyPlayerFilter(players []*model.Player, filter model.PlayerFilter) []*model.Player {
	out := make([]*model.Player, 0, len(players))
	search := strings.ToLower(filter.Search)
	for _, p := range players {
		if filter.Position != "" && p.Position != filter.Position {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		out = append(out, p)
	}

	if filter.SortBy == model.SortByCreditCost {
		sort.Slice(out, func(i, j int) bool { return out[i].CreditCost < out[j].CreditCost })
	} else {
		sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	}

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out
}
