package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ResearchCatalog/internal/dashboard"
	"ResearchCatalog/internal/domain"
)

func TestCongressSession_EmptyFilterShowsEverything(t *testing.T) {
	t.Parallel()

	s := NewCongressSession(loadedStore(t).Current(), nil)
	view := s.View()

	assert.Equal(t, 3, view.Total)
	assert.Len(t, view.Cards, 3)
	assert.Len(t, view.Table, 3)
	assert.Equal(t, 3, view.Stats.Total)
	assert.Equal(t, 2, view.Stats.Urgent)
	assert.Equal(t, 2, view.Stats.Countries)
	assert.NotNil(t, view.Chips)
	assert.Empty(t, view.Facets.Lineas)
	assert.Equal(t, dashboard.DefaultCongressSort, view.Sort)
}

func TestCongressSession_CascadeAndFacets(t *testing.T) {
	t.Parallel()

	s := NewCongressSession(loadedStore(t).Current(), nil)

	s.ToggleCategory("INNOVACIÓN Y TECNOLOGÍA DIGITAL")
	require.NoError(t, s.Set(domain.FieldLinea, "Transformación digital"))
	require.NoError(t, s.Set(domain.FieldSublinea, "Ciberseguridad y privacidad"))

	view := s.View()
	assert.Equal(t, []string{"Transformación digital"}, view.Facets.Lineas)
	assert.Equal(t, []string{"Ciberseguridad y privacidad"}, view.Facets.Sublineas)
	require.Len(t, view.Cards, 1)
	assert.Equal(t, "CLEI", view.Cards[0].Evento)

	s.ToggleCategory("GESTIÓN Y ECONOMÍA DEL CONOCIMIENTO")
	f := s.Filter()
	assert.Empty(t, f.Linea)
	assert.Empty(t, f.Sublinea)

	view = s.View()
	assert.Len(t, view.Cards, 2)
	assert.Equal(t, []string{"Economía digital", "Transformación digital"}, view.Facets.Lineas)
	assert.Empty(t, view.Facets.Sublineas)
}

func TestCongressSession_TrackerReceivesInteractions(t *testing.T) {
	t.Parallel()

	tracker := &recordingTracker{}
	s := NewCongressSession(loadedStore(t).Current(), tracker)

	require.NoError(t, s.Set(domain.FieldSearch, "  clei "))
	require.NoError(t, s.Set(domain.FieldSearch, ""))
	require.NoError(t, s.Set(domain.FieldCountry, "PE"))
	require.NoError(t, s.Remove(domain.FieldCountry, "PE"))
	require.NoError(t, s.SortBy("pais"))
	s.Reset()

	assert.Equal(t, []string{
		domain.EventSearch,
		domain.EventSearchClear,
		domain.EventFilterChange,
		domain.EventFilterChipRemove,
		domain.EventSortChange,
		domain.EventFiltersReset,
	}, tracker.names())
	assert.Equal(t, 4, tracker.events[0].props["query_length"])
	assert.Equal(t, "country", tracker.events[2].props["key"])
}

func TestCongressSession_SortBy(t *testing.T) {
	t.Parallel()

	s := NewCongressSession(loadedStore(t).Current(), nil)

	require.NoError(t, s.SortBy("evento"))
	view := s.View()
	assert.Equal(t, []string{"AI_SUMMIT", "CLEI", "FINTECH"}, eventos(view.Table))

	require.NoError(t, s.SortBy("evento"))
	view = s.View()
	assert.Equal(t, []string{"FINTECH", "CLEI", "AI_SUMMIT"}, eventos(view.Table))

	err := s.SortBy("publicacion")
	require.ErrorIs(t, err, ErrUnknownSortKey)
	assert.Equal(t, dashboard.SortState{Key: "evento", Dir: dashboard.Desc}, s.View().Sort)
}

func TestCongressSession_TimelineAndCardsFollowStartDate(t *testing.T) {
	t.Parallel()

	view := NewCongressSession(loadedStore(t).Current(), nil).View()

	assert.Equal(t, []string{"FINTECH", "CLEI", "AI_SUMMIT"}, eventos(view.Cards))
	require.Len(t, view.Timeline, 3)
	assert.Equal(t, "enero de 2025", view.Timeline[0].Month)
	assert.Equal(t, domain.MonthPending, view.Timeline[2].Month)
}

func TestCongressSession_UnknownFieldLeavesState(t *testing.T) {
	t.Parallel()

	tracker := &recordingTracker{}
	s := NewCongressSession(loadedStore(t).Current(), tracker)

	err := s.Set(domain.FieldPublisher, "Nature")
	require.ErrorIs(t, err, domain.ErrUnknownField)
	assert.True(t, s.Filter().IsEmpty())
	assert.Empty(t, tracker.names())
}

func TestCongressSession_Open(t *testing.T) {
	t.Parallel()

	tracker := &recordingTracker{}
	s := NewCongressSession(loadedStore(t).Current(), tracker)
	view := s.View()

	var clei dashboard.CongressCard
	for _, c := range view.Cards {
		if c.Evento == "CLEI" {
			clei = c
		}
	}

	assert.Equal(t, "https://clei.org", s.Open(clei))
	assert.Equal(t, []string{domain.EventOutboundClick}, tracker.names())
}

func TestCongressSession_NilSnapshot(t *testing.T) {
	t.Parallel()

	view := NewCongressSession(nil, nil).View()
	assert.Zero(t, view.Total)
	assert.Empty(t, view.Cards)
	assert.Empty(t, view.Timeline)
}

func TestJournalSession(t *testing.T) {
	t.Parallel()

	tracker := &recordingTracker{}
	s := NewJournalSession(loadedStore(t).Current(), tracker)

	view := s.View()
	assert.Equal(t, 2, view.Total)
	assert.Equal(t, []string{"Data in Brief", "Scientific Data"}, journalNames(view.Table))
	assert.Equal(t, []string{"Elsevier", "Nature"}, view.Facets.Publishers)

	require.NoError(t, s.Set(domain.FieldPublisher, "Nature"))
	view = s.View()
	assert.Equal(t, []string{"Scientific Data"}, journalNames(view.Cards))
	assert.Equal(t, dashboard.JournalStats{Total: 1, Publishers: 1, Disciplinas: 1}, view.Stats)
	assert.Len(t, view.Chips, 1)

	require.NoError(t, s.Remove(domain.FieldPublisher))
	require.NoError(t, s.SortBy("journal"))
	view = s.View()
	assert.Equal(t, []string{"Scientific Data", "Data in Brief"}, journalNames(view.Table))

	s.Reset()
	assert.Equal(t, []string{
		domain.EventFilterChange,
		domain.EventFilterChipRemove,
		domain.EventSortChange,
		domain.EventFiltersReset,
	}, tracker.names())
}

func eventos(cards []dashboard.CongressCard) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Evento
	}
	return out
}

func journalNames(cards []dashboard.JournalCard) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Journal.Journal
	}
	return out
}
