package parser

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"ResearchCatalog/internal/domain"
	"ResearchCatalog/internal/source"
)

// JournalImporterName identifies the journal sheet importer.
const JournalImporterName = "revistas"

const journalDocumentVersion = "1.0"

const (
	colJournal     = "Journal"
	colISSN        = "ISSN (impreso)"
	colEISSN       = "eISSN"
	colPublisher   = "Publisher"
	colEnfoque     = "Enfoque principal (datos/base de datos)"
	colDisciplinas = "Disciplinas principales"
	colSitioWeb    = "Sitio web de la revista"
)

// JournalSheet imports the journal spreadsheet exported as an HTML table.
type JournalSheet struct {
	client *http.Client
	logger *slog.Logger
}

var _ source.Importer = (*JournalSheet)(nil)

// NewJournalSheet wires an HTTP client for remote sheets.
func NewJournalSheet(client *http.Client, logger *slog.Logger) *JournalSheet {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	return &JournalSheet{client: client, logger: logger}
}

// Name identifies the importer inside the registry.
func (j *JournalSheet) Name() string {
	return JournalImporterName
}

// Import reads the sheet and derives the publisher, focus and discipline facets.
func (j *JournalSheet) Import(ctx context.Context, req source.Request) (source.Document, error) {
	doc, err := fetchSheet(ctx, j.client, req.Location)
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", req.Name, err)
	}
	rows, err := readTable(doc, req.Options["table"])
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", req.Name, err)
	}

	var (
		journals    = make([]domain.Journal, 0, len(rows))
		publishers  = map[string]struct{}{}
		enfoques    = map[string]struct{}{}
		disciplinas = map[string]struct{}{}
	)
	for i, row := range rows {
		name := row.get(colJournal)
		if name == "" {
			continue
		}

		journal := domain.Journal{
			ID:          i + 1,
			Journal:     name,
			ISSN:        row.get(colISSN),
			EISSN:       row.get(colEISSN),
			Publisher:   row.get(colPublisher),
			Enfoque:     row.get(colEnfoque),
			Disciplinas: splitList(row.get(colDisciplinas), "|"),
			SitioWeb:    row.get(colSitioWeb),
		}
		journals = append(journals, journal)

		addKey(publishers, journal.Publisher)
		addKey(enfoques, journal.Enfoque)
		for _, d := range journal.Disciplinas {
			addKey(disciplinas, d)
		}
	}

	if j.logger != nil {
		j.logger.Debug("journal sheet parsed", "source", req.Name, "rows", len(rows), "journals", len(journals))
	}

	return domain.JournalDocument{
		Metadata: domain.Metadata{
			TotalRevistas: len(journals),
			Publishers:    len(publishers),
			Disciplinas:   len(disciplinas),
			LastUpdated:   req.Now.Format("2006-01-02 15:04:05"),
			Version:       journalDocumentVersion,
		},
		Revistas: journals,
		Facets: domain.JournalFacets{
			Publishers:  sortedKeys(publishers),
			Enfoques:    sortedKeys(enfoques),
			Disciplinas: sortedKeys(disciplinas),
		},
	}, nil
}

func addKey(set map[string]struct{}, key string) {
	if key != "" {
		set[key] = struct{}{}
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
