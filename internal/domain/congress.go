package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Modality enumerates how a congress is attended.
type Modality string

const (
	ModalityInPerson Modality = "Presencial"
	ModalityHybrid   Modality = "Híbrido"
	ModalityVirtual  Modality = "Virtual"
)

// Indexation selects one of the indexing services a congress publishes in.
type Indexation string

const (
	IndexScopus Indexation = "Scopus"
	IndexIEEE   Indexation = "IEEE"
	IndexWoS    Indexation = "WoS"
)

// MonthPending labels congresses whose start date is missing or unparseable.
const MonthPending = "Fecha por confirmar"

// StringList decodes either a JSON string or an array of strings.
type StringList []string

// UnmarshalJSON accepts null, "value" and ["a", "b"].
func (l *StringList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = nil
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*l = nil
		} else {
			*l = StringList{single}
		}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("string list: %w", err)
	}
	*l = many
	return nil
}

// Includes reports whether value is one of the list elements.
func (l StringList) Includes(value string) bool {
	for _, v := range l {
		if v == value {
			return true
		}
	}
	return false
}

// Congress is one raw catalog entry as produced by the sheet importer.
type Congress struct {
	ID             int        `json:"id"`
	Evento         string     `json:"evento"`
	NombreCompleto string     `json:"nombreCompleto"`
	Disciplina     string     `json:"disciplina,omitempty"`
	Categoria      StringList `json:"categoria"`
	Linea          StringList `json:"linea"`
	Sublinea       StringList `json:"sublinea"`
	FechaInicio    string     `json:"fechaInicio,omitempty"`
	FechaFin       string     `json:"fechaFin,omitempty"`
	Lugar          string     `json:"lugar,omitempty"`
	Ciudad         string     `json:"ciudad,omitempty"`
	Pais           string     `json:"pais,omitempty"`
	Modalidad      Modality   `json:"modalidad,omitempty"`
	Deadline       string     `json:"deadline,omitempty"`
	DeadlineStatus string     `json:"deadlineStatus,omitempty"`
	Publicacion    string     `json:"publicacion,omitempty"`
	Enlace         string     `json:"enlace,omitempty"`
}

// EnrichedCongress carries the fields derived once at load time.
type EnrichedCongress struct {
	Congress
	DeadlineDays *int   `json:"deadlineDays"`
	IsScopus     bool   `json:"isScopus"`
	IsIEEE       bool   `json:"isIEEE"`
	IsWoS        bool   `json:"isWoS"`
	Month        string `json:"month"`

	// StartDate is zero when fechaInicio is absent or unparseable.
	StartDate time.Time `json:"-"`
}

// HasStart reports whether the start date parsed.
func (c EnrichedCongress) HasStart() bool {
	return !c.StartDate.IsZero()
}

// Indexed returns the precomputed flag for one indexing service.
func (c EnrichedCongress) Indexed(service Indexation) bool {
	switch service {
	case IndexScopus:
		return c.IsScopus
	case IndexIEEE:
		return c.IsIEEE
	case IndexWoS:
		return c.IsWoS
	default:
		return false
	}
}

// Metadata describes a generated catalog document.
type Metadata struct {
	TotalCongresses int    `json:"totalCongresses,omitempty"`
	TotalRevistas   int    `json:"totalRevistas,omitempty"`
	Publishers      int    `json:"publishers,omitempty"`
	Disciplinas     int    `json:"disciplinas,omitempty"`
	LastUpdated     string `json:"lastUpdated,omitempty"`
	Version         string `json:"version,omitempty"`
}

// CongressDocument is the shape of congresses.json.
type CongressDocument struct {
	Metadata   Metadata   `json:"metadata"`
	Taxonomy   Taxonomy   `json:"taxonomy"`
	Congresses []Congress `json:"congresses"`
}

// Len reports the number of congresses in the document.
func (d CongressDocument) Len() int {
	return len(d.Congresses)
}
