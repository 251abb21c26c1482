package usecase

import (
	"ResearchCatalog/internal/catalog"
	"ResearchCatalog/internal/dashboard"
	"ResearchCatalog/internal/domain"
	"ResearchCatalog/internal/ports"
)

// CongressSession is one user's congress module state: a captured catalog
// snapshot and the current filter. It is not safe for concurrent use.
type CongressSession struct {
	snapshot *catalog.Snapshot
	pipeline *dashboard.Pipeline[domain.EnrichedCongress, domain.CongressFilter]
	tracker  ports.Tracker

	filter domain.CongressFilter
	sort   dashboard.SortState
}

// CongressView is everything the congress module renders for one state.
type CongressView struct {
	Filter   domain.CongressFilter    `json:"filter"`
	Chips    []domain.Chip            `json:"chips"`
	Sort     dashboard.SortState      `json:"sort"`
	Total    int                      `json:"total"`
	Cards    []dashboard.CongressCard `json:"cards"`
	Table    []dashboard.CongressCard `json:"table"`
	Timeline []dashboard.MonthGroup   `json:"timeline"`
	Facets   dashboard.CongressFacets `json:"facets"`
	Stats    dashboard.CongressStats  `json:"stats"`
	Charts   dashboard.CongressCharts `json:"charts"`
}

// NewCongressSession starts with an empty filter over snap. tracker may be nil.
func NewCongressSession(snap *catalog.Snapshot, tracker ports.Tracker) *CongressSession {
	if snap == nil {
		snap = &catalog.Snapshot{}
	}
	return &CongressSession{
		snapshot: snap,
		pipeline: dashboard.CongressPipeline(),
		tracker:  trackerOrNop(tracker),
		sort:     dashboard.DefaultCongressSort,
	}
}

// Filter returns the current filter value.
func (s *CongressSession) Filter() domain.CongressFilter {
	return s.filter
}

// Apply replaces the whole filter without emitting telemetry.
func (s *CongressSession) Apply(filter domain.CongressFilter) {
	s.filter = filter
}

// Set writes one filter field, applying the category/line cascade.
func (s *CongressSession) Set(field domain.FilterField, value string) error {
	next, err := s.filter.Set(field, value)
	if err != nil {
		return err
	}
	s.filter = next
	trackFilterChange(s.tracker, ModuleCongresses, field, value)
	return nil
}

// SetCategories replaces the category selection.
func (s *CongressSession) SetCategories(categories []string) {
	s.filter = s.filter.SetCategories(categories)
	for _, c := range s.filter.Categorias {
		s.tracker.Track(domain.EventFilterChange, map[string]any{"module": ModuleCongresses, "key": string(domain.FieldCategoria), "value": c})
	}
}

// ToggleCategory adds or removes one category.
func (s *CongressSession) ToggleCategory(category string) {
	s.filter = s.filter.ToggleCategory(category)
	s.tracker.Track(domain.EventFilterChange, map[string]any{"module": ModuleCongresses, "key": string(domain.FieldCategoria), "value": category})
}

// ToggleCareer adds or removes one career shortcut.
func (s *CongressSession) ToggleCareer(id string) {
	s.filter = s.filter.ToggleCareer(id)
	s.tracker.Track(domain.EventFilterChange, map[string]any{"module": ModuleCongresses, "key": string(domain.FieldCareer), "value": id})
}

// Remove drops one active chip.
func (s *CongressSession) Remove(field domain.FilterField, value string) error {
	next, err := s.filter.Remove(field, value)
	if err != nil {
		return err
	}
	s.filter = next
	s.tracker.Track(domain.EventFilterChipRemove, map[string]any{"module": ModuleCongresses, "key": string(field)})
	return nil
}

// Reset clears every filter field.
func (s *CongressSession) Reset() {
	s.filter = s.filter.Reset()
	s.tracker.Track(domain.EventFiltersReset, map[string]any{"module": ModuleCongresses})
}

// SortBy toggles the table sort on key.
func (s *CongressSession) SortBy(key string) error {
	next, err := toggleSort(s.pipeline, s.sort, key)
	if err != nil {
		return err
	}
	s.sort = next
	s.tracker.Track(domain.EventSortChange, map[string]any{"module": ModuleCongresses, "key": next.Key, "dir": string(next.Dir)})
	return nil
}

// Sort returns the current table sort.
func (s *CongressSession) Sort() dashboard.SortState {
	return s.sort
}

// SetSort replaces the table sort without toggling. Unknown keys keep the
// table in catalog order.
func (s *CongressSession) SetSort(state dashboard.SortState) {
	s.sort = state
}

// Open records an outbound click on a congress link and returns the URL.
func (s *CongressSession) Open(card dashboard.CongressCard) string {
	if card.URL != "" {
		s.tracker.Track(domain.EventOutboundClick, map[string]any{"event_id": card.ID, "url": card.URL})
	}
	return card.URL
}

// View recomputes the full view model from the snapshot and current filter.
func (s *CongressSession) View() CongressView {
	all := s.snapshot.Congresses
	visible := s.pipeline.Filter(all, s.filter)
	cards := dashboard.NewCongressCards(dashboard.SortByStart(visible))

	chips := s.filter.Chips()
	if chips == nil {
		chips = []domain.Chip{}
	}

	return CongressView{
		Filter:   s.filter,
		Chips:    chips,
		Sort:     s.sort,
		Total:    len(all),
		Cards:    cards,
		Table:    dashboard.NewCongressCards(s.pipeline.Sort(visible, s.sort)),
		Timeline: dashboard.Timeline(visible),
		Facets:   dashboard.ResolveCongressFacets(s.snapshot.Taxonomy, all, s.filter),
		Stats:    dashboard.CongressStatsOf(visible),
		Charts:   dashboard.CongressChartsOf(visible),
	}
}
