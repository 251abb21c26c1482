package dashboard

import (
	"strings"

	"ResearchCatalog/internal/domain"
)

// Predicate decides whether one record passes one filter field. A predicate
// whose filter field is empty must return true.
type Predicate[R, F any] func(record R, filter F) bool

// Matches is the conjunction of all predicates.
func Matches[R, F any](record R, filter F, predicates []Predicate[R, F]) bool {
	for _, p := range predicates {
		if !p(record, filter) {
			return false
		}
	}
	return true
}

// Search matches the trimmed query as a case-insensitive substring of any field.
func Search[R, F any](query func(F) string, fields ...func(R) string) Predicate[R, F] {
	return func(r R, f F) bool {
		q := fold(strings.TrimSpace(query(f)))
		if q == "" {
			return true
		}
		for _, field := range fields {
			if containsFold(field(r), q) {
				return true
			}
		}
		return false
	}
}

// Equals matches a single-valued field exactly.
func Equals[R, F any](selected func(F) string, value func(R) string) Predicate[R, F] {
	return func(r R, f F) bool {
		want := selected(f)
		return want == "" || value(r) == want
	}
}

// Contains matches when the record's list includes the selected value.
func Contains[R, F any](selected func(F) string, values func(R) []string) Predicate[R, F] {
	return func(r R, f F) bool {
		want := selected(f)
		if want == "" {
			return true
		}
		for _, v := range values(r) {
			if v == want {
				return true
			}
		}
		return false
	}
}

// Intersects matches when the record's list shares any value with the
// selection. An empty selection matches everything.
func Intersects[R, F any](selected func(F) []string, values func(R) []string) Predicate[R, F] {
	return func(r R, f F) bool {
		want := selected(f)
		if len(want) == 0 {
			return true
		}
		have := values(r)
		for _, w := range want {
			for _, v := range have {
				if v == w {
					return true
				}
			}
		}
		return false
	}
}

// Flag dispatches a selector value to exactly one precomputed boolean.
func Flag[R, F any](selector func(F) string, flag func(R, string) bool) Predicate[R, F] {
	return func(r R, f F) bool {
		sel := selector(f)
		return sel == "" || flag(r, sel)
	}
}

// CongressPredicates are the filter fields of the congress module.
func CongressPredicates() []Predicate[domain.EnrichedCongress, domain.CongressFilter] {
	type (
		rec = domain.EnrichedCongress
		flt = domain.CongressFilter
	)
	return []Predicate[rec, flt]{
		Search(func(f flt) string { return f.Search },
			func(r rec) string { return r.Evento },
			func(r rec) string { return r.NombreCompleto },
			func(r rec) string { return r.Disciplina },
		),
		Equals(func(f flt) string { return f.Country }, func(r rec) string { return r.Pais }),
		Intersects(func(f flt) []string { return f.Categorias }, func(r rec) []string { return r.Categoria }),
		Contains(func(f flt) string { return f.Linea }, func(r rec) []string { return r.Linea }),
		Contains(func(f flt) string { return f.Sublinea }, func(r rec) []string { return r.Sublinea }),
		Equals(func(f flt) string { return string(f.Modality) }, func(r rec) string { return string(r.Modalidad) }),
		Flag(func(f flt) string { return string(f.Indexation) }, func(r rec, sel string) bool {
			return r.Indexed(domain.Indexation(sel))
		}),
		Intersects(func(f flt) []string { return domain.CareerCategories(f.Careers) }, func(r rec) []string { return r.Categoria }),
	}
}

// JournalPredicates are the filter fields of the journals module.
func JournalPredicates() []Predicate[domain.Journal, domain.JournalFilter] {
	type (
		rec = domain.Journal
		flt = domain.JournalFilter
	)
	return []Predicate[rec, flt]{
		Search(func(f flt) string { return f.Search },
			func(r rec) string { return r.Journal },
			func(r rec) string { return r.Publisher },
			func(r rec) string { return r.ISSN },
			func(r rec) string { return r.EISSN },
			func(r rec) string { return r.Enfoque },
		),
		Equals(func(f flt) string { return f.Publisher }, func(r rec) string { return r.Publisher }),
		Equals(func(f flt) string { return f.Enfoque }, func(r rec) string { return r.Enfoque }),
		Contains(func(f flt) string { return f.Disciplina }, func(r rec) []string { return r.Disciplinas }),
	}
}
