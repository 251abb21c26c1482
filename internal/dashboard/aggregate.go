package dashboard

import (
	"sort"

	"ResearchCatalog/internal/domain"
)

// Chart sizes used by the dashboard.
const (
	TopCountries   = 10
	TopDisciplinas = 10
	TopPublishers  = 8
)

// Bucket is one labelled count of a chart.
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// GroupCount counts records per key, skipping empty keys, and returns the
// topN largest groups. Ties keep the order in which keys were first seen.
// topN <= 0 keeps every group.
func GroupCount[R any](records []R, key func(R) string, topN int) []Bucket {
	return GroupCountMulti(records, func(r R) []string { return []string{key(r)} }, topN)
}

// GroupCountMulti is GroupCount for list-valued keys; a record counts at
// most once per distinct key.
func GroupCountMulti[R any](records []R, keys func(R) []string, topN int) []Bucket {
	buckets := countInOrder(records, keys)
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Count > buckets[j].Count
	})
	if topN > 0 && len(buckets) > topN {
		buckets = buckets[:topN]
	}
	return buckets
}

// MonthSeries counts congresses per month label and orders the groups on the
// calendar. Labels without a known month follow, and the pending sentinel is last.
func MonthSeries(records []domain.EnrichedCongress) []Bucket {
	buckets := countInOrder(records, func(r domain.EnrichedCongress) []string {
		if r.Month == "" || r.Month == domain.MonthPending {
			return []string{domain.MonthPending}
		}
		return []string{capitalize(r.Month)}
	})
	SortMonthBuckets(buckets)
	return buckets
}

// SortMonthBuckets orders buckets by their month label in place.
func SortMonthBuckets(buckets []Bucket) {
	sort.SliceStable(buckets, func(i, j int) bool {
		return lessMonth(buckets[i].Label, buckets[j].Label)
	})
}

func countInOrder[R any](records []R, keys func(R) []string) []Bucket {
	index := make(map[string]int)
	buckets := make([]Bucket, 0)
	for _, r := range records {
		seen := make(map[string]struct{})
		for _, k := range keys(r) {
			if k == "" {
				continue
			}
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			i, ok := index[k]
			if !ok {
				i = len(buckets)
				index[k] = i
				buckets = append(buckets, Bucket{Label: k})
			}
			buckets[i].Count++
		}
	}
	return buckets
}

// CongressStats are the counters above the congress views.
type CongressStats struct {
	Total     int `json:"total"`
	Urgent    int `json:"urgent"`
	Countries int `json:"countries"`
	Scopus    int `json:"scopus"`
	IEEE      int `json:"ieee"`
	WoS       int `json:"wos"`
}

// CongressStatsOf summarises a congress collection. Urgent counts deadlines
// within 0..30 days, i.e. the high and medium tiers.
func CongressStatsOf(records []domain.EnrichedCongress) CongressStats {
	stats := CongressStats{Total: len(records)}
	countries := newStringSet()
	for _, r := range records {
		switch Classify(r.DeadlineDays) {
		case TierHigh, TierMedium:
			stats.Urgent++
		}
		countries.add(r.Pais)
		if r.IsScopus {
			stats.Scopus++
		}
		if r.IsIEEE {
			stats.IEEE++
		}
		if r.IsWoS {
			stats.WoS++
		}
	}
	stats.Countries = len(countries)
	return stats
}

// JournalStats are the counters above the journal views.
type JournalStats struct {
	Total       int `json:"total"`
	Publishers  int `json:"publishers"`
	Disciplinas int `json:"disciplinas"`
}

// JournalStatsOf summarises a journal collection.
func JournalStatsOf(records []domain.Journal) JournalStats {
	publishers, disciplinas := newStringSet(), newStringSet()
	for _, r := range records {
		publishers.add(r.Publisher)
		disciplinas.add(r.Disciplinas...)
	}
	return JournalStats{
		Total:       len(records),
		Publishers:  len(publishers),
		Disciplinas: len(disciplinas),
	}
}

// CongressCharts holds the chart sources of the congress statistics tab.
type CongressCharts struct {
	Countries  []Bucket `json:"countries"`
	Modalities []Bucket `json:"modalities"`
	Months     []Bucket `json:"months"`
}

// CongressChartsOf builds every congress chart.
func CongressChartsOf(records []domain.EnrichedCongress) CongressCharts {
	return CongressCharts{
		Countries:  GroupCount(records, func(r domain.EnrichedCongress) string { return r.Pais }, TopCountries),
		Modalities: GroupCount(records, func(r domain.EnrichedCongress) string { return string(r.Modalidad) }, 0),
		Months:     MonthSeries(records),
	}
}

// JournalCharts holds the chart sources of the journal statistics tab.
type JournalCharts struct {
	Disciplinas []Bucket `json:"disciplinas"`
	Publishers  []Bucket `json:"publishers"`
}

// JournalChartsOf builds every journal chart.
func JournalChartsOf(records []domain.Journal) JournalCharts {
	return JournalCharts{
		Disciplinas: GroupCountMulti(records, func(r domain.Journal) []string { return r.Disciplinas }, TopDisciplinas),
		Publishers:  GroupCount(records, func(r domain.Journal) string { return r.Publisher }, TopPublishers),
	}
}
