package dashboard

import "ResearchCatalog/internal/domain"

// NoCategory labels congresses without category or discipline.
const NoCategory = "Sin categoría"

// CongressCard is a congress with everything the card, table and timeline
// views render for it.
type CongressCard struct {
	domain.EnrichedCongress
	Tier        Tier     `json:"tier"`
	TierClass   string   `json:"tierClass"`
	Urgency     string   `json:"urgency"`
	Status      Status   `json:"status"`
	StatusClass string   `json:"statusClass"`
	URL         string   `json:"url,omitempty"`
	Tags        []string `json:"tags"`
}

// NewCongressCard decorates one congress.
func NewCongressCard(c domain.EnrichedCongress) CongressCard {
	tier := Classify(c.DeadlineDays)
	status := StatusOf(c.DeadlineDays)
	return CongressCard{
		EnrichedCongress: c,
		Tier:             tier,
		TierClass:        tier.Class(),
		Urgency:          Label(c.DeadlineDays),
		Status:           status,
		StatusClass:      status.Class(),
		URL:              ExternalURL(c.Enlace),
		Tags:             CategoryTags(c.Congress),
	}
}

// NewCongressCards decorates a collection in order.
func NewCongressCards(records []domain.EnrichedCongress) []CongressCard {
	out := make([]CongressCard, len(records))
	for i, r := range records {
		out[i] = NewCongressCard(r)
	}
	return out
}

// CategoryTags lists each category once, falling back to the discipline.
func CategoryTags(c domain.Congress) []string {
	set := make(map[string]struct{}, len(c.Categoria))
	tags := make([]string, 0, len(c.Categoria))
	for _, cat := range c.Categoria {
		if cat == "" {
			continue
		}
		if _, dup := set[cat]; dup {
			continue
		}
		set[cat] = struct{}{}
		tags = append(tags, cat)
	}
	if len(tags) > 0 {
		return tags
	}
	if c.Disciplina != "" {
		return []string{c.Disciplina}
	}
	return []string{NoCategory}
}

// JournalCard is a journal with its normalized site link.
type JournalCard struct {
	domain.Journal
	URL string `json:"url,omitempty"`
}

// NewJournalCards decorates a collection in order.
func NewJournalCards(records []domain.Journal) []JournalCard {
	out := make([]JournalCard, len(records))
	for i, r := range records {
		out[i] = JournalCard{Journal: r, URL: ExternalURL(r.SitioWeb)}
	}
	return out
}
