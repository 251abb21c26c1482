package dashboard

import (
	"sort"

	"ResearchCatalog/internal/domain"
)

// Direction of a table sort.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// SortState is the column and direction of a table.
type SortState struct {
	Key string    `json:"key"`
	Dir Direction `json:"dir"`
}

// Toggle selects key. Selecting the current key again flips the direction;
// a new key starts ascending.
func (s SortState) Toggle(key string) SortState {
	if s.Key != key {
		return SortState{Key: key, Dir: Asc}
	}
	if s.Dir == Asc {
		return SortState{Key: key, Dir: Desc}
	}
	return SortState{Key: key, Dir: Asc}
}

// SortRecords returns a sorted copy. Values compare case-insensitively as
// strings and absent values compare as "". Unknown keys keep input order.
func SortRecords[R any](records []R, state SortState, fields map[string]func(R) string) []R {
	out := append([]R(nil), records...)
	get, ok := fields[state.Key]
	if !ok {
		return out
	}

	keys := make([]string, len(out))
	for i, r := range out {
		keys[i] = fold(get(r))
	}
	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ka, kb := keys[idx[a]], keys[idx[b]]
		if state.Dir == Desc {
			return ka > kb
		}
		return ka < kb
	})

	sorted := make([]R, len(out))
	for i, j := range idx {
		sorted[i] = out[j]
	}
	return sorted
}

// SortByStart orders congresses by start date ascending. Congresses without
// a usable start date go last in their original order.
func SortByStart(records []domain.EnrichedCongress) []domain.EnrichedCongress {
	out := append([]domain.EnrichedCongress(nil), records...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch {
		case !a.HasStart():
			return false
		case !b.HasStart():
			return true
		default:
			return a.StartDate.Before(b.StartDate)
		}
	})
	return out
}

// MonthGroup is one month section of the timeline.
type MonthGroup struct {
	Month      string                    `json:"month"`
	Congresses []domain.EnrichedCongress `json:"congresses"`
}

// Timeline sorts congresses by start date and groups them by month label.
// Groups follow the calendar and the pending group is always last.
func Timeline(records []domain.EnrichedCongress) []MonthGroup {
	sorted := SortByStart(records)

	index := make(map[string]int)
	groups := make([]MonthGroup, 0)
	for _, r := range sorted {
		label := r.Month
		if label == "" {
			label = domain.MonthPending
		}
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, MonthGroup{Month: label})
		}
		groups[i].Congresses = append(groups[i].Congresses, r)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return lessMonth(groups[i].Month, groups[j].Month)
	})
	return groups
}
