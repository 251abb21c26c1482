package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ResearchCatalog/internal/catalog"
	"ResearchCatalog/internal/domain"
)

var fixedNow = time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

type memorySource struct {
	congresses domain.CongressDocument
	journals   domain.JournalDocument
	err        error
}

func (m memorySource) FetchCongresses(context.Context) (domain.CongressDocument, error) {
	return m.congresses, m.err
}

func (m memorySource) FetchJournals(context.Context) (domain.JournalDocument, error) {
	return m.journals, m.err
}

func testSource() memorySource {
	return memorySource{
		congresses: domain.CongressDocument{
			Taxonomy: domain.Taxonomy{
				"INNOVACIÓN Y TECNOLOGÍA DIGITAL": {
					"Transformación digital": {"Ciberseguridad y privacidad"},
				},
				"GESTIÓN Y ECONOMÍA DEL CONOCIMIENTO": {
					"Economía digital": {"Fintech y servicios financieros"},
				},
			},
			Congresses: []domain.Congress{
				{
					ID: 1, Evento: "CLEI", NombreCompleto: "Conferencia Latinoamericana de Informática",
					Categoria: domain.StringList{"INNOVACIÓN Y TECNOLOGÍA DIGITAL"},
					Linea:     domain.StringList{"Transformación digital"},
					Sublinea:  domain.StringList{"Ciberseguridad y privacidad"},
					Pais:      "PE", Modalidad: domain.ModalityInPerson,
					FechaInicio: "2025-03-10", Deadline: "2025-03-03",
					Publicacion: "IEEE Xplore", Enlace: "clei.org",
				},
				{
					ID: 2, Evento: "FINTECH", NombreCompleto: "Fintech Summit",
					Categoria: domain.StringList{"GESTIÓN Y ECONOMÍA DEL CONOCIMIENTO"},
					Linea:     domain.StringList{"Economía digital"},
					Pais:      "CO", Modalidad: domain.ModalityVirtual,
					FechaInicio: "2025-01-20", Deadline: "2025-04-15", Publicacion: "Scopus",
				},
				{
					ID: 3, Evento: "AI_SUMMIT", Pais: "PE", Modalidad: domain.ModalityHybrid,
					Deadline: "2025-03-02",
				},
			},
		},
		journals: domain.JournalDocument{
			Revistas: []domain.Journal{
				{ID: 1, Journal: "Scientific Data", Publisher: "Nature", Enfoque: "Datos", Disciplinas: []string{"Biología"}},
				{ID: 2, Journal: "Data in Brief", Publisher: "Elsevier", Enfoque: "Datos", Disciplinas: []string{"Multidisciplinar"}},
			},
		},
	}
}

func loadedStore(t *testing.T) *catalog.Store {
	t.Helper()

	store := catalog.NewStore(testSource(), func() time.Time { return fixedNow }, time.UTC, nil)
	require.NoError(t, store.Load(context.Background()))
	return store
}

type trackedEvent struct {
	name  string
	props map[string]any
}

type recordingTracker struct {
	mu     sync.Mutex
	events []trackedEvent
}

func (r *recordingTracker) Track(name string, props map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, trackedEvent{name: name, props: props})
}

func (r *recordingTracker) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.name
	}
	return out
}
