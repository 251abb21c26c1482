package dashboard

import (
	"sort"

	"ResearchCatalog/internal/domain"
)

// Pipeline is one module's filter and table configuration. The congress and
// journal modules are two instances of the same shape.
type Pipeline[R, F any] struct {
	predicates []Predicate[R, F]
	fields     map[string]func(R) string
}

// NewPipeline binds predicates and sortable table fields.
func NewPipeline[R, F any](predicates []Predicate[R, F], fields map[string]func(R) string) *Pipeline[R, F] {
	return &Pipeline[R, F]{predicates: predicates, fields: fields}
}

// Matches reports whether record passes every filter field.
func (p *Pipeline[R, F]) Matches(record R, filter F) bool {
	return Matches(record, filter, p.predicates)
}

// Filter returns the matching records in input order as a new slice.
func (p *Pipeline[R, F]) Filter(records []R, filter F) []R {
	out := make([]R, 0, len(records))
	for _, r := range records {
		if p.Matches(r, filter) {
			out = append(out, r)
		}
	}
	return out
}

// Sort orders records for the table view.
func (p *Pipeline[R, F]) Sort(records []R, state SortState) []R {
	return SortRecords(records, state, p.fields)
}

// SortKeys lists the sortable columns.
func (p *Pipeline[R, F]) SortKeys() []string {
	keys := make([]string, 0, len(p.fields))
	for k := range p.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// HasSortKey reports whether key is a sortable column.
func (p *Pipeline[R, F]) HasSortKey(key string) bool {
	_, ok := p.fields[key]
	return ok
}

// CongressPipeline filters and sorts enriched congresses.
func CongressPipeline() *Pipeline[domain.EnrichedCongress, domain.CongressFilter] {
	type rec = domain.EnrichedCongress
	return NewPipeline(CongressPredicates(), map[string]func(rec) string{
		"evento":         func(r rec) string { return r.Evento },
		"nombreCompleto": func(r rec) string { return r.NombreCompleto },
		"fechaInicio":    func(r rec) string { return r.FechaInicio },
		"deadline":       func(r rec) string { return r.Deadline },
		"ciudad":         func(r rec) string { return r.Ciudad },
		"pais":           func(r rec) string { return r.Pais },
		"modalidad":      func(r rec) string { return string(r.Modalidad) },
	})
}

// JournalPipeline filters and sorts journals.
func JournalPipeline() *Pipeline[domain.Journal, domain.JournalFilter] {
	type rec = domain.Journal
	return NewPipeline(JournalPredicates(), map[string]func(rec) string{
		"journal":   func(r rec) string { return r.Journal },
		"publisher": func(r rec) string { return r.Publisher },
		"issn":      func(r rec) string { return r.ISSN },
		"eissn":     func(r rec) string { return r.EISSN },
		"enfoque":   func(r rec) string { return r.Enfoque },
	})
}

// DefaultJournalSort is the initial journal table order.
var DefaultJournalSort = SortState{Key: "journal", Dir: Asc}

// DefaultCongressSort is the initial congress table order.
var DefaultCongressSort = SortState{Key: "fechaInicio", Dir: Asc}
