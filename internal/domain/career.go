package domain

// Career maps a degree programme to the research category it browses.
type Career struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Categoria string `json:"categoria"`
}

const (
	categoryKnowledge   = "GESTIÓN Y ECONOMÍA DEL CONOCIMIENTO"
	categorySustainable = "DESARROLLO SOSTENIBLE Y MEDIOAMBIENTE"
	categorySociety     = "SOCIEDAD Y COMPORTAMIENTO HUMANO"
	categoryDigital     = "INNOVACIÓN Y TECNOLOGÍA DIGITAL"
)

// Careers returns the career shortcuts shown above the congress filters.
func Careers() []Career {
	return []Career{
		{ID: "administracion", Label: "Administración", Categoria: categoryKnowledge},
		{ID: "arquitectura", Label: "Arquitectura", Categoria: categorySustainable},
		{ID: "comunicacion", Label: "Comunicación", Categoria: categorySociety},
		{ID: "contabilidad", Label: "Contabilidad y Finanzas", Categoria: categoryKnowledge},
		{ID: "derecho", Label: "Derecho", Categoria: categorySociety},
		{ID: "economia", Label: "Economía", Categoria: categoryKnowledge},
		{ID: "ing-ambiental", Label: "Ing. Ambiental", Categoria: categorySustainable},
		{ID: "ing-civil", Label: "Ing. Civil", Categoria: categorySustainable},
		{ID: "ing-industrial", Label: "Ing. Industrial", Categoria: categoryDigital},
		{ID: "ing-sistemas", Label: "Ing. de Sistemas", Categoria: categoryDigital},
		{ID: "ing-mecatronica", Label: "Ing. Mecatrónica", Categoria: categoryDigital},
		{ID: "marketing", Label: "Marketing", Categoria: categoryKnowledge},
		{ID: "negocios-internac", Label: "Negocios Internacionales", Categoria: categoryKnowledge},
		{ID: "psicologia", Label: "Psicología", Categoria: categorySociety},
	}
}

// CareerCategories resolves career ids to their categories, skipping unknown ids.
func CareerCategories(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	byID := make(map[string]string)
	for _, c := range Careers() {
		byID[c.ID] = c.Categoria
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if cat, ok := byID[id]; ok {
			out = append(out, cat)
		}
	}
	return out
}
