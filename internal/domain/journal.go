package domain

// Journal is one entry of the journals catalog.
type Journal struct {
	ID          int      `json:"id"`
	Journal     string   `json:"journal"`
	ISSN        string   `json:"issn,omitempty"`
	EISSN       string   `json:"eissn,omitempty"`
	Publisher   string   `json:"publisher,omitempty"`
	Enfoque     string   `json:"enfoque,omitempty"`
	Disciplinas []string `json:"disciplinas"`
	SitioWeb    string   `json:"sitioWeb,omitempty"`
}

// JournalFacets are the option lists shipped with the journals document.
type JournalFacets struct {
	Publishers  []string `json:"publishers"`
	Enfoques    []string `json:"enfoques"`
	Disciplinas []string `json:"disciplinas"`
}

// Empty reports whether no facet list was provided.
func (f JournalFacets) Empty() bool {
	return len(f.Publishers) == 0 && len(f.Enfoques) == 0 && len(f.Disciplinas) == 0
}

// JournalDocument is the shape of revistas.json.
type JournalDocument struct {
	Metadata Metadata      `json:"metadata"`
	Revistas []Journal     `json:"revistas"`
	Facets   JournalFacets `json:"facets"`
}

// Len reports the number of journals in the document.
func (d JournalDocument) Len() int {
	return len(d.Revistas)
}
