package catalog

import (
	"time"

	"ResearchCatalog/internal/dashboard"
	"ResearchCatalog/internal/domain"
)

// Snapshot is one immutable, normalized view of both documents. It is
// replaced whole on reload and never modified after construction.
type Snapshot struct {
	CongressDoc domain.CongressDocument
	JournalDoc  domain.JournalDocument

	Congresses    []domain.EnrichedCongress
	Taxonomy      domain.Taxonomy
	Journals      []domain.Journal
	JournalFacets domain.JournalFacets

	LoadedAt time.Time
}

// NewSnapshot normalizes the raw documents against now.
func NewSnapshot(congresses domain.CongressDocument, journals domain.JournalDocument, now time.Time, loc *time.Location) *Snapshot {
	taxonomy := congresses.Taxonomy
	if taxonomy == nil {
		taxonomy = domain.Taxonomy{}
	}
	return &Snapshot{
		CongressDoc:   congresses,
		JournalDoc:    journals,
		Congresses:    dashboard.NormalizeCongresses(congresses.Congresses, now, loc),
		Taxonomy:      taxonomy,
		Journals:      journals.Revistas,
		JournalFacets: dashboard.JournalFacetOptions(journals.Facets, journals.Revistas),
		LoadedAt:      now,
	}
}
