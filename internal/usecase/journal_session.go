package usecase

import (
	"ResearchCatalog/internal/catalog"
	"ResearchCatalog/internal/dashboard"
	"ResearchCatalog/internal/domain"
	"ResearchCatalog/internal/ports"
)

// JournalSession is one user's journal module state.
type JournalSession struct {
	snapshot *catalog.Snapshot
	pipeline *dashboard.Pipeline[domain.Journal, domain.JournalFilter]
	tracker  ports.Tracker

	filter domain.JournalFilter
	sort   dashboard.SortState
}

// JournalView is everything the journal module renders for one state.
type JournalView struct {
	Filter domain.JournalFilter    `json:"filter"`
	Chips  []domain.Chip           `json:"chips"`
	Sort   dashboard.SortState     `json:"sort"`
	Total  int                     `json:"total"`
	Cards  []dashboard.JournalCard `json:"cards"`
	Table  []dashboard.JournalCard `json:"table"`
	Facets domain.JournalFacets    `json:"facets"`
	Stats  dashboard.JournalStats  `json:"stats"`
	Charts dashboard.JournalCharts `json:"charts"`
}

// NewJournalSession starts with an empty filter over snap. tracker may be nil.
func NewJournalSession(snap *catalog.Snapshot, tracker ports.Tracker) *JournalSession {
	if snap == nil {
		snap = &catalog.Snapshot{}
	}
	return &JournalSession{
		snapshot: snap,
		pipeline: dashboard.JournalPipeline(),
		tracker:  trackerOrNop(tracker),
		sort:     dashboard.DefaultJournalSort,
	}
}

// Filter returns the current filter value.
func (s *JournalSession) Filter() domain.JournalFilter {
	return s.filter
}

// Apply replaces the whole filter without emitting telemetry.
func (s *JournalSession) Apply(filter domain.JournalFilter) {
	s.filter = filter
}

// Set writes one filter field.
func (s *JournalSession) Set(field domain.FilterField, value string) error {
	next, err := s.filter.Set(field, value)
	if err != nil {
		return err
	}
	s.filter = next
	trackFilterChange(s.tracker, ModuleJournals, field, value)
	return nil
}

// Remove clears one field.
func (s *JournalSession) Remove(field domain.FilterField) error {
	next, err := s.filter.Remove(field)
	if err != nil {
		return err
	}
	s.filter = next
	s.tracker.Track(domain.EventFilterChipRemove, map[string]any{"module": ModuleJournals, "key": string(field)})
	return nil
}

// Reset clears every filter field.
func (s *JournalSession) Reset() {
	s.filter = s.filter.Reset()
	s.tracker.Track(domain.EventFiltersReset, map[string]any{"module": ModuleJournals})
}

// SortBy toggles the table sort on key.
func (s *JournalSession) SortBy(key string) error {
	next, err := toggleSort(s.pipeline, s.sort, key)
	if err != nil {
		return err
	}
	s.sort = next
	s.tracker.Track(domain.EventSortChange, map[string]any{"module": ModuleJournals, "key": next.Key, "dir": string(next.Dir)})
	return nil
}

// Sort returns the current table sort.
func (s *JournalSession) Sort() dashboard.SortState {
	return s.sort
}

// SetSort replaces the table sort without toggling.
func (s *JournalSession) SetSort(state dashboard.SortState) {
	s.sort = state
}

// View recomputes the full view model from the snapshot and current filter.
func (s *JournalSession) View() JournalView {
	all := s.snapshot.Journals
	visible := s.pipeline.Filter(all, s.filter)

	chips := s.filter.Chips()
	if chips == nil {
		chips = []domain.Chip{}
	}

	return JournalView{
		Filter: s.filter,
		Chips:  chips,
		Sort:   s.sort,
		Total:  len(all),
		Cards:  dashboard.NewJournalCards(visible),
		Table:  dashboard.NewJournalCards(s.pipeline.Sort(visible, s.sort)),
		Facets: s.snapshot.JournalFacets,
		Stats:  dashboard.JournalStatsOf(visible),
		Charts: dashboard.JournalChartsOf(visible),
	}
}
