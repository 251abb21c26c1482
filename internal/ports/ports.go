package ports

import (
	"context"
	"time"

	"ResearchCatalog/internal/domain"
)

// CatalogSource fetches the two catalog documents.
type CatalogSource interface {
	FetchCongresses(ctx context.Context) (domain.CongressDocument, error)
	FetchJournals(ctx context.Context) (domain.JournalDocument, error)
}

// EventSink persists telemetry events received by the collector.
type EventSink interface {
	SaveEvent(ctx context.Context, event domain.Event) error
}

// Tracker emits interaction telemetry. Implementations must not block or fail
// the caller.
type Tracker interface {
	Track(name string, props map[string]any)
}

// Notifier streams deadline digests to Telegram or other channels.
type Notifier interface {
	PublishDigest(ctx context.Context, digest string) error
}

// Scheduler controls when recurring jobs execute.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
