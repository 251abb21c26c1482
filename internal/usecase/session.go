package usecase

import (
	"errors"
	"fmt"
	"strings"

	"ResearchCatalog/internal/dashboard"
	"ResearchCatalog/internal/domain"
	"ResearchCatalog/internal/ports"
)

// Module names used in telemetry and metrics.
const (
	ModuleCongresses = "congresos"
	ModuleJournals   = "revistas"
)

// ErrUnknownSortKey is returned when a table sort names a column the module lacks.
var ErrUnknownSortKey = errors.New("unknown sort key")

type nopTracker struct{}

func (nopTracker) Track(string, map[string]any) {}

func trackerOrNop(t ports.Tracker) ports.Tracker {
	if t == nil {
		return nopTracker{}
	}
	return t
}

// trackFilterChange emits the event the dashboard sends for one field write.
func trackFilterChange(t ports.Tracker, module string, field domain.FilterField, value string) {
	if field == domain.FieldSearch {
		q := strings.TrimSpace(value)
		if q == "" {
			t.Track(domain.EventSearchClear, map[string]any{"module": module})
			return
		}
		t.Track(domain.EventSearch, map[string]any{"module": module, "query_length": len([]rune(q))})
		return
	}
	t.Track(domain.EventFilterChange, map[string]any{"module": module, "key": string(field), "value": value})
}

func toggleSort(p interface{ HasSortKey(string) bool }, state dashboard.SortState, key string) (dashboard.SortState, error) {
	if !p.HasSortKey(key) {
		return state, fmt.Errorf("%w: %s", ErrUnknownSortKey, key)
	}
	return state.Toggle(key), nil
}
