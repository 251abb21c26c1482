package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"ResearchCatalog/internal/catalog"
	"ResearchCatalog/internal/dashboard"
	"ResearchCatalog/internal/domain"
	"ResearchCatalog/internal/ports"
)

// CatalogLoader exposes the current snapshot and refreshes it.
type CatalogLoader interface {
	Current() *catalog.Snapshot
	Load(ctx context.Context) error
}

// DigestDeps wires the driven adapters of the deadline digest.
type DigestDeps struct {
	Catalog  CatalogLoader
	Notifier ports.Notifier
	Logger   *slog.Logger
	// Reload refreshes the catalog before each run so day counts match the run date.
	Reload bool
}

// Digest publishes the congresses whose deadline falls in the high tier.
type Digest struct {
	catalog  CatalogLoader
	notifier ports.Notifier
	logger   *slog.Logger
	reload   bool
}

// NewDigest constructs the digest use case.
func NewDigest(deps DigestDeps) *Digest {
	return &Digest{
		catalog:  deps.Catalog,
		notifier: deps.Notifier,
		logger:   deps.Logger,
		reload:   deps.Reload,
	}
}

// ProcessDay refreshes the catalog if configured, collects urgent congresses
// and publishes them. Nothing is sent when no congress qualifies.
func (d *Digest) ProcessDay(ctx context.Context, day time.Time) error {
	message, count, err := d.Prepare(ctx, day)
	if err != nil {
		return err
	}
	if count == 0 {
		d.info("digest skipped, no urgent deadlines", "day", day.Format("2006-01-02"))
		return nil
	}

	if d.notifier == nil {
		return nil
	}
	if err := d.notifier.PublishDigest(ctx, message); err != nil {
		return fmt.Errorf("publish digest: %w", err)
	}

	d.info("digest published", "day", day.Format("2006-01-02"), "congresses", count)
	return nil
}

// Prepare builds the digest message without publishing it.
func (d *Digest) Prepare(ctx context.Context, day time.Time) (string, int, error) {
	if d.catalog == nil {
		return "", 0, nil
	}

	if d.reload || d.catalog.Current() == nil {
		if err := d.catalog.Load(ctx); err != nil {
			return "", 0, fmt.Errorf("load catalog: %w", err)
		}
	}

	cards := CollectUrgent(d.catalog.Current())
	if len(cards) == 0 {
		return "", 0, nil
	}
	return buildDigestMessage(day, cards), len(cards), nil
}

// CollectUrgent returns the high-tier congresses ordered by days remaining,
// then by event name.
func CollectUrgent(snap *catalog.Snapshot) []dashboard.CongressCard {
	if snap == nil {
		return nil
	}

	var urgent []domain.EnrichedCongress
	for _, c := range snap.Congresses {
		if dashboard.Classify(c.DeadlineDays) == dashboard.TierHigh {
			urgent = append(urgent, c)
		}
	}

	sort.SliceStable(urgent, func(i, j int) bool {
		a, b := *urgent[i].DeadlineDays, *urgent[j].DeadlineDays
		if a != b {
			return a < b
		}
		return urgent[i].Evento < urgent[j].Evento
	})

	return dashboard.NewCongressCards(urgent)
}

var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "[", "\\[", "`", "\\`")

func buildDigestMessage(day time.Time, cards []dashboard.CongressCard) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*Deadlines próximos* (%s)\n\n", day.Format("02/01/2006"))

	for _, card := range cards {
		name := card.Evento
		if card.NombreCompleto != "" {
			name += ": " + card.NombreCompleto
		}
		fmt.Fprintf(&b, "- %s\n", markdownEscaper.Replace(name))
		fmt.Fprintf(&b, "Deadline: %s (%s)", card.Deadline, card.Urgency)
		if card.Pais != "" {
			fmt.Fprintf(&b, " · %s", markdownEscaper.Replace(card.Pais))
		}
		b.WriteString("\n")
		if card.URL != "" {
			fmt.Fprintf(&b, "%s\n", card.URL)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (d *Digest) info(msg string, args ...any) {
	if d.logger != nil {
		d.logger.Info(msg, args...)
	}
}
