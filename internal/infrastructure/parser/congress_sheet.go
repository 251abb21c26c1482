package parser

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"ResearchCatalog/internal/domain"
	"ResearchCatalog/internal/source"
)

// CongressImporterName identifies the congress sheet importer.
const CongressImporterName = "congresos"

const congressDocumentVersion = "2.1"

// Column headers of the congress sheet.
const (
	colEvento      = "Evento"
	colNombre      = "Nombre Completo"
	colDisciplina  = "Disciplina"
	colCategoria   = "categoria_ulima"
	colLinea       = "linea_ulima"
	colSublinea    = "sublinea_ulima"
	colFechaInicio = "Fecha inicio"
	colFechaFin    = "Fecha fin"
	colLugar       = "Lugar"
	colCiudad      = "Ciudad"
	colPais        = "Pais"
	colModalidad   = "Modalidad"
	colDeadline    = "Deadline"
	colPublicacion = "Publicación"
	colEnlace      = "Enlace"
)

// CongressSheet imports the congress spreadsheet exported as an HTML table.
type CongressSheet struct {
	client *http.Client
	logger *slog.Logger
}

var _ source.Importer = (*CongressSheet)(nil)

// NewCongressSheet wires an HTTP client for remote sheets.
func NewCongressSheet(client *http.Client, logger *slog.Logger) *CongressSheet {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	return &CongressSheet{client: client, logger: logger}
}

// Name identifies the importer inside the registry.
func (c *CongressSheet) Name() string {
	return CongressImporterName
}

// Import reads the sheet at req.Location. Options: "table" selects the
// table (CSS selector), "taxonomy" points at a YAML taxonomy file.
func (c *CongressSheet) Import(ctx context.Context, req source.Request) (source.Document, error) {
	taxonomy, err := taxonomyFor(req.Options)
	if err != nil {
		return nil, err
	}

	doc, err := fetchSheet(ctx, c.client, req.Location)
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", req.Name, err)
	}
	rows, err := readTable(doc, req.Options["table"])
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", req.Name, err)
	}

	congresses := make([]domain.Congress, 0, len(rows))
	for i, row := range rows {
		congress, ok := parseCongressRow(row, i+1, req.Now)
		if !ok {
			continue
		}
		congresses = append(congresses, congress)
	}

	if c.logger != nil {
		c.logger.Debug("congress sheet parsed", "source", req.Name, "rows", len(rows), "congresses", len(congresses))
	}

	return domain.CongressDocument{
		Metadata: domain.Metadata{
			TotalCongresses: len(congresses),
			LastUpdated:     req.Now.Format("2006-01-02 15:04:05"),
			Version:         congressDocumentVersion,
		},
		Taxonomy:   taxonomy,
		Congresses: congresses,
	}, nil
}

func parseCongressRow(row sheetRow, id int, now time.Time) (domain.Congress, bool) {
	evento, nombre := row.get(colEvento), row.get(colNombre)
	if evento == "" && nombre == "" {
		return domain.Congress{}, false
	}

	deadline := normalizeSheetDate(row.get(colDeadline))
	return domain.Congress{
		ID:             id,
		Evento:         evento,
		NombreCompleto: nombre,
		Disciplina:     row.get(colDisciplina),
		Categoria:      splitSorted(row.get(colCategoria), ";"),
		Linea:          splitSorted(row.get(colLinea), ";"),
		Sublinea:       splitSorted(row.get(colSublinea), ";"),
		FechaInicio:    normalizeSheetDate(row.get(colFechaInicio)),
		FechaFin:       normalizeSheetDate(row.get(colFechaFin)),
		Lugar:          row.get(colLugar),
		Ciudad:         row.get(colCiudad),
		Pais:           row.get(colPais),
		Modalidad:      domain.Modality(row.get(colModalidad)),
		Deadline:       deadline,
		DeadlineStatus: deadlineStatus(deadline, now),
		Publicacion:    row.get(colPublicacion),
		Enlace:         row.get(colEnlace),
	}, true
}
