package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ResearchCatalog/internal/domain"
)

func sampleCongresses() []domain.EnrichedCongress {
	raw := []domain.Congress{
		{
			ID: 1, Evento: "CLEI", NombreCompleto: "Conferencia Latinoamericana de Informática",
			Disciplina: "Computación", Pais: "PE", Modalidad: domain.ModalityInPerson,
			Categoria: domain.StringList{"INNOVACIÓN Y TECNOLOGÍA DIGITAL"},
			Linea:     domain.StringList{"Transformación digital"},
			Sublinea:  domain.StringList{"Ciberseguridad y privacidad"},
			Publicacion: "IEEE Xplore", FechaInicio: "2025-03-10", Deadline: "2025-03-03",
		},
		{
			ID: 2, Evento: "ICSD", NombreCompleto: "International Conference on Sustainable Development",
			Pais: "CO", Modalidad: domain.ModalityHybrid,
			Categoria: domain.StringList{"DESARROLLO SOSTENIBLE Y MEDIOAMBIENTE", "SOCIEDAD Y COMPORTAMIENTO HUMANO"},
			Linea:     domain.StringList{"Sostenibilidad y cambio climático"},
			Publicacion: "Scopus", FechaInicio: "2025-01-20",
		},
		{
			ID: 3, Evento: "FINTECH", NombreCompleto: "Fintech Summit",
			Pais: "MX", Modalidad: domain.ModalityVirtual,
			Categoria: domain.StringList{"GESTIÓN Y ECONOMÍA DEL CONOCIMIENTO"},
			Publicacion: "WoS; Scopus",
		},
	}
	return NormalizeCongresses(raw, fixedNow, time.UTC)
}

func ids(records []domain.EnrichedCongress) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestCongressPipeline_EmptyFilterMatchesEverything(t *testing.T) {
	t.Parallel()

	p := CongressPipeline()
	for _, r := range sampleCongresses() {
		assert.True(t, p.Matches(r, domain.CongressFilter{}), "record %d", r.ID)
	}
	assert.True(t, p.Matches(domain.EnrichedCongress{}, domain.CongressFilter{}))
}

func TestCongressPipeline_Fields(t *testing.T) {
	t.Parallel()

	records := sampleCongresses()
	p := CongressPipeline()

	tests := []struct {
		name   string
		filter domain.CongressFilter
		want   []int
	}{
		{name: "search is case-insensitive and trimmed", filter: domain.CongressFilter{Search: "  informática "}, want: []int{1}},
		{name: "search hits discipline", filter: domain.CongressFilter{Search: "COMPUTACIÓN"}, want: []int{1}},
		{name: "blank search is vacuous", filter: domain.CongressFilter{Search: "   "}, want: []int{1, 2, 3}},
		{name: "country", filter: domain.CongressFilter{Country: "CO"}, want: []int{2}},
		{name: "categories intersect", filter: domain.CongressFilter{Categorias: []string{"SOCIEDAD Y COMPORTAMIENTO HUMANO", "GESTIÓN Y ECONOMÍA DEL CONOCIMIENTO"}}, want: []int{2, 3}},
		{name: "empty category selection", filter: domain.CongressFilter{Categorias: []string{}}, want: []int{1, 2, 3}},
		{name: "line", filter: domain.CongressFilter{Linea: "Transformación digital"}, want: []int{1}},
		{name: "sub-line", filter: domain.CongressFilter{Sublinea: "Ciberseguridad y privacidad"}, want: []int{1}},
		{name: "modality", filter: domain.CongressFilter{Modality: domain.ModalityVirtual}, want: []int{3}},
		{name: "scopus", filter: domain.CongressFilter{Indexation: domain.IndexScopus}, want: []int{2, 3}},
		{name: "ieee", filter: domain.CongressFilter{Indexation: domain.IndexIEEE}, want: []int{1}},
		{name: "wos", filter: domain.CongressFilter{Indexation: domain.IndexWoS}, want: []int{3}},
		{name: "unknown indexation", filter: domain.CongressFilter{Indexation: "DBLP"}, want: []int{}},
		{name: "career maps to category", filter: domain.CongressFilter{Careers: []string{"economia"}}, want: []int{3}},
		{name: "careers or together", filter: domain.CongressFilter{Careers: []string{"economia", "ing-sistemas"}}, want: []int{1, 3}},
		{name: "fields and together", filter: domain.CongressFilter{Country: "PE", Indexation: domain.IndexScopus}, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(p.Filter(records, tt.filter)))
		})
	}
}

func TestCongressPipeline_Idempotent(t *testing.T) {
	t.Parallel()

	records := sampleCongresses()
	p := CongressPipeline()
	filter := domain.CongressFilter{Indexation: domain.IndexScopus}

	first := p.Filter(records, filter)
	second := p.Filter(records, filter)

	assert.Equal(t, first, second)
	assert.Len(t, records, 3, "input must not be modified")
}

func TestJournalPipeline(t *testing.T) {
	t.Parallel()

	records := []domain.Journal{
		{ID: 1, Journal: "Data in Brief", Publisher: "Elsevier", ISSN: "2352-3409", Enfoque: "Datos", Disciplinas: []string{"Multidisciplinar"}},
		{ID: 2, Journal: "Scientific Data", Publisher: "Nature", EISSN: "2052-4463", Enfoque: "Datos", Disciplinas: []string{"Biología", "Multidisciplinar"}},
		{ID: 3, Journal: "Database", Publisher: "Oxford", Enfoque: "Base de datos"},
	}
	p := JournalPipeline()

	jids := func(rs []domain.Journal) []int {
		out := make([]int, len(rs))
		for i, r := range rs {
			out[i] = r.ID
		}
		return out
	}

	assert.Equal(t, []int{1, 2, 3}, jids(p.Filter(records, domain.JournalFilter{})))
	assert.Equal(t, []int{2}, jids(p.Filter(records, domain.JournalFilter{Search: "2052"})))
	assert.Equal(t, []int{1}, jids(p.Filter(records, domain.JournalFilter{Search: "elsevier"})))
	assert.Equal(t, []int{3}, jids(p.Filter(records, domain.JournalFilter{Search: "base de"})))
	assert.Equal(t, []int{1, 2}, jids(p.Filter(records, domain.JournalFilter{Enfoque: "Datos"})))
	assert.Equal(t, []int{2}, jids(p.Filter(records, domain.JournalFilter{Disciplina: "Biología"})))
	assert.Equal(t, []int{3}, jids(p.Filter(records, domain.JournalFilter{Publisher: "Oxford"})))
}

func TestIntersects_EmptySelectionIsVacuous(t *testing.T) {
	t.Parallel()

	pred := Intersects(
		func(sel []string) []string { return sel },
		func(tags []string) []string { return tags },
	)

	require.True(t, pred(nil, nil))
	require.True(t, pred([]string{"a"}, []string{}))
	require.False(t, pred(nil, []string{"a"}))
	require.True(t, pred([]string{"a", "b"}, []string{"b"}))
}
