package dashboard

import (
	"sort"

	"ResearchCatalog/internal/domain"
)

// CongressFacets are the option lists of the congress filter panel.
type CongressFacets struct {
	Countries  []string        `json:"countries"`
	Categorias []string        `json:"categorias"`
	Lineas     []string        `json:"lineas"`
	Sublineas  []string        `json:"sublineas"`
	Careers    []domain.Career `json:"careers"`
}

// ResolveCongressFacets computes the option lists from the taxonomy and the
// full record set. The filtered subset is never consulted, so narrowing one
// field does not hide options of another.
func ResolveCongressFacets(tax domain.Taxonomy, records []domain.EnrichedCongress, f domain.CongressFilter) CongressFacets {
	return CongressFacets{
		Countries:  CountryOptions(records),
		Categorias: CategoryOptions(tax),
		Lineas:     LineOptions(tax, f.Categorias),
		Sublineas:  SublineOptions(tax, f.Categorias, f.Linea),
		Careers:    domain.Careers(),
	}
}

// CategoryOptions lists every taxonomy category.
func CategoryOptions(tax domain.Taxonomy) []string {
	return tax.Categories()
}

// LineOptions is the union of the lines under the selected categories.
func LineOptions(tax domain.Taxonomy, categories []string) []string {
	if len(categories) == 0 {
		return []string{}
	}
	set := newStringSet()
	for _, cat := range categories {
		set.add(tax.Lines(cat)...)
	}
	return set.sorted()
}

// SublineOptions is the union of the sub-lines found under line in each
// selected category.
func SublineOptions(tax domain.Taxonomy, categories []string, line string) []string {
	if line == "" {
		return []string{}
	}
	set := newStringSet()
	for _, cat := range categories {
		set.add(tax.Sublines(cat, line)...)
	}
	return set.sorted()
}

// CountryOptions lists the distinct countries of the catalog.
func CountryOptions(records []domain.EnrichedCongress) []string {
	set := newStringSet()
	for _, r := range records {
		set.add(r.Pais)
	}
	return set.sorted()
}

// JournalFacetOptions returns the document facets, or derives them from the
// records when the document shipped none.
func JournalFacetOptions(shipped domain.JournalFacets, records []domain.Journal) domain.JournalFacets {
	if !shipped.Empty() {
		return domain.JournalFacets{
			Publishers:  nonNil(shipped.Publishers),
			Enfoques:    nonNil(shipped.Enfoques),
			Disciplinas: nonNil(shipped.Disciplinas),
		}
	}

	publishers, enfoques, disciplinas := newStringSet(), newStringSet(), newStringSet()
	for _, r := range records {
		publishers.add(r.Publisher)
		enfoques.add(r.Enfoque)
		disciplinas.add(r.Disciplinas...)
	}
	return domain.JournalFacets{
		Publishers:  publishers.sorted(),
		Enfoques:    enfoques.sorted(),
		Disciplinas: disciplinas.sorted(),
	}
}

type stringSet map[string]struct{}

func newStringSet() stringSet {
	return stringSet{}
}

func (s stringSet) add(values ...string) {
	for _, v := range values {
		if v != "" {
			s[v] = struct{}{}
		}
	}
}

func (s stringSet) sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
