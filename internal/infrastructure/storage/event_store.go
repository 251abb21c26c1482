package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"

	"ResearchCatalog/internal/domain"
	"ResearchCatalog/internal/ports"
)

const eventsTable = "analytics_events"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// EventStore persists telemetry events into Postgres.
type EventStore struct {
	db *sql.DB
}

var _ ports.EventSink = (*EventStore)(nil)

// NewEventStore wires a sql.DB implementation.
func NewEventStore(db *sql.DB) *EventStore {
	return &EventStore{db: db}
}

// SaveEvent inserts one event. Replays of the same id are ignored.
func (s *EventStore) SaveEvent(ctx context.Context, event domain.Event) error {
	if s.db == nil {
		return nil
	}

	query, args, err := insertEvent(event)
	if err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// CountByName aggregates interaction events received since the given time.
func (s *EventStore) CountByName(ctx context.Context, since time.Time) (map[string]int, error) {
	if s.db == nil {
		return map[string]int{}, nil
	}

	query, args, err := countByName(since)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query counts: %w", err)
	}

	result := make(map[string]int)
	for rows.Next() {
		var (
			name  string
			count int
		)
		if err := rows.Scan(&name, &count); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan count: %w", err)
		}
		result[name] = count
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("rows iteration: %w", rowsErr)
	}

	if closeErr := rows.Close(); closeErr != nil {
		return nil, fmt.Errorf("close rows: %w", closeErr)
	}

	return result, nil
}

func insertEvent(event domain.Event) (string, []any, error) {
	var props any
	if len(event.Props) > 0 {
		raw, err := json.Marshal(event.Props)
		if err != nil {
			return "", nil, fmt.Errorf("marshal props: %w", err)
		}
		props = string(raw)
	}

	received := event.ReceivedAt
	if received.IsZero() {
		received = time.Now().UTC()
	}

	query, args, err := psql.Insert(eventsTable).
		Columns(
			"id", "type", "name", "path", "title", "referrer", "session_id",
			"utm_source", "utm_medium", "utm_campaign", "utm_term", "utm_content",
			"props", "received_at",
		).
		Values(
			event.ID, string(event.Type), nullable(event.Name), nullable(event.Path),
			nullable(event.Title), nullable(event.Referrer), event.SessionID,
			nullable(event.UTMSource), nullable(event.UTMMedium), nullable(event.UTMCampaign),
			nullable(event.UTMTerm), nullable(event.UTMContent),
			props, received,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build insert: %w", err)
	}
	return query, args, nil
}

func countByName(since time.Time) (string, []any, error) {
	query, args, err := psql.Select("name", "COUNT(*)").
		From(eventsTable).
		Where(sq.Eq{"type": string(domain.EventAction)}).
		Where(sq.GtOrEq{"received_at": since}).
		GroupBy("name").
		OrderBy("name").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build count: %w", err)
	}
	return query, args, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// LogSink writes events to a logger when no database is configured.
type LogSink struct {
	logger *slog.Logger
}

var _ ports.EventSink = (*LogSink)(nil)

// NewLogSink wraps logger.
func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

// SaveEvent logs the event at info level.
func (s *LogSink) SaveEvent(ctx context.Context, event domain.Event) error {
	s.logger.InfoContext(ctx, "analytics event",
		"id", event.ID,
		"type", event.Type,
		"name", event.Name,
		"path", event.Path,
		"session_id", event.SessionID,
		"props", event.Props,
	)
	return nil
}
