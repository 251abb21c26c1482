package domain

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownField is returned when a filter mutation names a field the module lacks.
var ErrUnknownField = errors.New("unknown filter field")

// FilterField names one filterable dimension.
type FilterField string

const (
	FieldSearch     FilterField = "search"
	FieldCountry    FilterField = "country"
	FieldCategoria  FilterField = "categorias"
	FieldLinea      FilterField = "linea"
	FieldSublinea   FilterField = "sublinea"
	FieldModality   FilterField = "modality"
	FieldIndexation FilterField = "indexation"
	FieldCareer     FilterField = "careers"

	FieldPublisher  FilterField = "publisher"
	FieldEnfoque    FilterField = "enfoque"
	FieldDisciplina FilterField = "disciplina"
)

// Chip is one active, removable filter shown above the results.
type Chip struct {
	Field FilterField `json:"key"`
	Value string      `json:"value"`
	Label string      `json:"label"`
}

// CongressFilter is the filter state of the congress module.
// Values are replaced whole: every mutator returns a new value and the
// receiver is left untouched.
type CongressFilter struct {
	Search     string     `json:"search"`
	Country    string     `json:"country"`
	Categorias []string   `json:"categorias"`
	Linea      string     `json:"linea"`
	Sublinea   string     `json:"sublinea"`
	Modality   Modality   `json:"modality"`
	Indexation Indexation `json:"indexation"`
	Careers    []string   `json:"careers"`
}

// Reset returns the all-empty filter.
func (f CongressFilter) Reset() CongressFilter {
	return CongressFilter{}
}

// Set writes a single-valued field. Writing categorias replaces the
// selection with value (or clears it when value is empty).
func (f CongressFilter) Set(field FilterField, value string) (CongressFilter, error) {
	next := f.clone()
	switch field {
	case FieldSearch:
		next.Search = value
	case FieldCountry:
		next.Country = value
	case FieldCategoria:
		if value == "" {
			return f.SetCategories(nil), nil
		}
		return f.SetCategories([]string{value}), nil
	case FieldLinea:
		next.Linea = value
		next.Sublinea = ""
	case FieldSublinea:
		next.Sublinea = value
	case FieldModality:
		next.Modality = Modality(value)
	case FieldIndexation:
		next.Indexation = Indexation(value)
	case FieldCareer:
		if value == "" {
			next.Careers = nil
		} else {
			next.Careers = []string{value}
		}
	default:
		return f, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return next, nil
}

// SetCategories replaces the category selection and clears line and sub-line.
func (f CongressFilter) SetCategories(categories []string) CongressFilter {
	next := f.clone()
	next.Categorias = dedupe(categories)
	next.Linea = ""
	next.Sublinea = ""
	return next
}

// ToggleCategory adds or removes one category from the selection.
func (f CongressFilter) ToggleCategory(category string) CongressFilter {
	return f.SetCategories(toggle(f.Categorias, category))
}

// ToggleCareer adds or removes one career shortcut. An empty id clears them all.
func (f CongressFilter) ToggleCareer(id string) CongressFilter {
	next := f.clone()
	if id == "" {
		next.Careers = nil
		return next
	}
	next.Careers = toggle(f.Careers, id)
	return next
}

// Remove drops an active chip. For categorias a non-empty value removes only
// that category; the cascade applies the same way as on Set.
func (f CongressFilter) Remove(field FilterField, value string) (CongressFilter, error) {
	switch field {
	case FieldCategoria:
		if value == "" {
			return f.SetCategories(nil), nil
		}
		return f.SetCategories(without(f.Categorias, value)), nil
	case FieldCareer:
		next := f.clone()
		if value == "" {
			next.Careers = nil
		} else {
			next.Careers = without(f.Careers, value)
		}
		return next, nil
	default:
		return f.Set(field, "")
	}
}

// IsEmpty reports whether no field is set.
func (f CongressFilter) IsEmpty() bool {
	return strings.TrimSpace(f.Search) == "" && len(f.Chips()) == 0
}

// Chips lists the active filters other than the free-text search.
func (f CongressFilter) Chips() []Chip {
	var chips []Chip
	if f.Country != "" {
		chips = append(chips, Chip{Field: FieldCountry, Value: f.Country, Label: f.Country})
	}
	for _, c := range f.Categorias {
		chips = append(chips, Chip{Field: FieldCategoria, Value: c, Label: titleCase(c)})
	}
	if f.Linea != "" {
		chips = append(chips, Chip{Field: FieldLinea, Value: f.Linea, Label: f.Linea})
	}
	if f.Sublinea != "" {
		chips = append(chips, Chip{Field: FieldSublinea, Value: f.Sublinea, Label: f.Sublinea})
	}
	if f.Modality != "" {
		chips = append(chips, Chip{Field: FieldModality, Value: string(f.Modality), Label: string(f.Modality)})
	}
	if f.Indexation != "" {
		chips = append(chips, Chip{Field: FieldIndexation, Value: string(f.Indexation), Label: string(f.Indexation)})
	}
	for _, id := range f.Careers {
		chips = append(chips, Chip{Field: FieldCareer, Value: id, Label: id})
	}
	return chips
}

func (f CongressFilter) clone() CongressFilter {
	next := f
	next.Categorias = append([]string(nil), f.Categorias...)
	next.Careers = append([]string(nil), f.Careers...)
	return next
}

// JournalFilter is the filter state of the journals module.
type JournalFilter struct {
	Search     string `json:"search"`
	Publisher  string `json:"publisher"`
	Enfoque    string `json:"enfoque"`
	Disciplina string `json:"disciplina"`
}

// Reset returns the all-empty filter.
func (f JournalFilter) Reset() JournalFilter {
	return JournalFilter{}
}

// Set writes one field.
func (f JournalFilter) Set(field FilterField, value string) (JournalFilter, error) {
	next := f
	switch field {
	case FieldSearch:
		next.Search = value
	case FieldPublisher:
		next.Publisher = value
	case FieldEnfoque:
		next.Enfoque = value
	case FieldDisciplina:
		next.Disciplina = value
	default:
		return f, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return next, nil
}

// Remove clears one field.
func (f JournalFilter) Remove(field FilterField) (JournalFilter, error) {
	return f.Set(field, "")
}

// IsEmpty reports whether no field is set.
func (f JournalFilter) IsEmpty() bool {
	return strings.TrimSpace(f.Search) == "" && len(f.Chips()) == 0
}

// Chips lists the active filters other than the free-text search.
func (f JournalFilter) Chips() []Chip {
	var chips []Chip
	if f.Publisher != "" {
		chips = append(chips, Chip{Field: FieldPublisher, Value: f.Publisher, Label: f.Publisher})
	}
	if f.Enfoque != "" {
		chips = append(chips, Chip{Field: FieldEnfoque, Value: f.Enfoque, Label: f.Enfoque})
	}
	if f.Disciplina != "" {
		chips = append(chips, Chip{Field: FieldDisciplina, Value: f.Disciplina, Label: f.Disciplina})
	}
	return chips
}

func toggle(values []string, v string) []string {
	for _, existing := range values {
		if existing == v {
			return without(values, v)
		}
	}
	out := append([]string(nil), values...)
	return append(out, v)
}

func without(values []string, v string) []string {
	out := make([]string, 0, len(values))
	for _, existing := range values {
		if existing != v {
			out = append(out, existing)
		}
	}
	return out
}

func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// titleCase turns "GESTIÓN Y ECONOMÍA" into "Gestión Y Economía" for chips.
func titleCase(s string) string {
	return cases.Title(language.Spanish).String(strings.ToLower(s))
}
