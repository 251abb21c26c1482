package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ResearchCatalog/internal/domain"
)

func congressesIn(countries ...string) []domain.EnrichedCongress {
	out := make([]domain.EnrichedCongress, len(countries))
	for i, c := range countries {
		out[i].Pais = c
	}
	return out
}

func TestGroupCount_TiesKeepFirstSeenOrder(t *testing.T) {
	t.Parallel()

	records := congressesIn("PE", "CO", "PE", "MX", "CO", "PE")
	got := GroupCount(records, func(r domain.EnrichedCongress) string { return r.Pais }, TopCountries)

	assert.Equal(t, []Bucket{
		{Label: "PE", Count: 3},
		{Label: "CO", Count: 2},
		{Label: "MX", Count: 1},
	}, got)
}

func TestGroupCount_TopN(t *testing.T) {
	t.Parallel()

	records := congressesIn("A", "B", "B", "C", "C", "C", "")
	key := func(r domain.EnrichedCongress) string { return r.Pais }

	assert.Equal(t, []Bucket{{Label: "C", Count: 3}, {Label: "B", Count: 2}}, GroupCount(records, key, 2))
	assert.Len(t, GroupCount(records, key, 0), 3, "empty keys are skipped")
	assert.Empty(t, GroupCount([]domain.EnrichedCongress{}, key, 5))
}

func TestGroupCountMulti(t *testing.T) {
	t.Parallel()

	records := []domain.Journal{
		{Disciplinas: []string{"Biología", "Química"}},
		{Disciplinas: []string{"Química"}},
		{},
	}
	got := GroupCountMulti(records, func(r domain.Journal) []string { return r.Disciplinas }, TopDisciplinas)

	assert.Equal(t, []Bucket{{Label: "Química", Count: 2}, {Label: "Biología", Count: 1}}, got)
}

func TestGroupCountMulti_RepeatedKeyCountsOncePerRecord(t *testing.T) {
	t.Parallel()

	records := []domain.Journal{
		{Disciplinas: []string{"Biología", "Biología", "Química"}},
		{Disciplinas: []string{"Biología"}},
	}
	got := GroupCountMulti(records, func(r domain.Journal) []string { return r.Disciplinas }, TopDisciplinas)

	assert.Equal(t, []Bucket{{Label: "Biología", Count: 2}, {Label: "Química", Count: 1}}, got)
}

func TestMonthSeries_CalendarOrderSentinelLast(t *testing.T) {
	t.Parallel()

	records := []domain.EnrichedCongress{
		{Month: "marzo de 2025"},
		{Month: domain.MonthPending},
		{Month: "enero de 2025"},
		{Month: "marzo de 2025"},
		{Month: "diciembre de 2024"},
	}

	assert.Equal(t, []Bucket{
		{Label: "Diciembre de 2024", Count: 1},
		{Label: "Enero de 2025", Count: 1},
		{Label: "Marzo de 2025", Count: 2},
		{Label: domain.MonthPending, Count: 1},
	}, MonthSeries(records))
}

func TestSortMonthBuckets(t *testing.T) {
	t.Parallel()

	buckets := []Bucket{
		{Label: "Marzo de 2025"},
		{Label: "Fecha por confirmar"},
		{Label: "Enero de 2025"},
	}
	SortMonthBuckets(buckets)

	assert.Equal(t, "Enero de 2025", buckets[0].Label)
	assert.Equal(t, "Marzo de 2025", buckets[1].Label)
	assert.Equal(t, "Fecha por confirmar", buckets[2].Label)
}

func TestSortMonthBuckets_UnknownLabelsBeforeSentinel(t *testing.T) {
	t.Parallel()

	buckets := []Bucket{
		{Label: domain.MonthPending},
		{Label: "Q3"},
		{Label: "Febrero de 2026"},
	}
	SortMonthBuckets(buckets)

	assert.Equal(t, []string{"Febrero de 2026", "Q3", domain.MonthPending},
		[]string{buckets[0].Label, buckets[1].Label, buckets[2].Label})
}

func TestCongressStatsOf(t *testing.T) {
	t.Parallel()

	stats := CongressStatsOf([]domain.EnrichedCongress{
		{Congress: domain.Congress{Pais: "PE"}, DeadlineDays: days(2), IsScopus: true},
		{Congress: domain.Congress{Pais: "PE"}, DeadlineDays: days(30), IsIEEE: true, IsScopus: true},
		{Congress: domain.Congress{Pais: "CO"}, DeadlineDays: days(31), IsWoS: true},
		{Congress: domain.Congress{Pais: ""}, DeadlineDays: days(-1)},
		{},
	})

	assert.Equal(t, CongressStats{Total: 5, Urgent: 2, Countries: 2, Scopus: 2, IEEE: 1, WoS: 1}, stats)
}

func TestJournalStatsOf(t *testing.T) {
	t.Parallel()

	stats := JournalStatsOf([]domain.Journal{
		{Publisher: "Nature", Disciplinas: []string{"Biología"}},
		{Publisher: "Nature", Disciplinas: []string{"Biología", "Física"}},
		{Publisher: "Elsevier"},
	})

	assert.Equal(t, JournalStats{Total: 3, Publishers: 2, Disciplinas: 2}, stats)
}

func TestCongressChartsOf(t *testing.T) {
	t.Parallel()

	charts := CongressChartsOf(sampleCongresses())

	assert.Len(t, charts.Countries, 3)
	assert.Len(t, charts.Modalities, 3)
	assert.Equal(t, []Bucket{
		{Label: "Enero de 2025", Count: 1},
		{Label: "Marzo de 2025", Count: 1},
		{Label: domain.MonthPending, Count: 1},
	}, charts.Months)
}

func TestJournalChartsOf_TopPublishers(t *testing.T) {
	t.Parallel()

	var records []domain.Journal
	for _, p := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"} {
		records = append(records, domain.Journal{Publisher: p})
	}

	charts := JournalChartsOf(records)
	assert.Len(t, charts.Publishers, TopPublishers)
	assert.Equal(t, "A", charts.Publishers[0].Label)
	assert.Empty(t, charts.Disciplinas)
}

func TestGroupCount_EqualCountsFollowEncounterOrder(t *testing.T) {
	t.Parallel()

	var countries []string
	for i := 0; i < 5; i++ {
		countries = append(countries, "PE", "CO")
	}
	countries = append(countries, "MX", "MX", "MX")

	got := GroupCount(congressesIn(countries...), func(r domain.EnrichedCongress) string { return r.Pais }, TopCountries)

	assert.Equal(t, []Bucket{
		{Label: "PE", Count: 5},
		{Label: "CO", Count: 5},
		{Label: "MX", Count: 3},
	}, got)
}
