// Package catalog loads the congress and journal documents and keeps the
// current normalized snapshot.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"ResearchCatalog/internal/domain"
	"ResearchCatalog/internal/ports"
)

// ErrLoadFailed reports that a catalog document could not be fetched or
// decoded. Loads are never retried and never produce a partial catalog.
var ErrLoadFailed = errors.New("catalog load failed")

// Loader fetches catalog documents from local paths or http(s) URLs.
type Loader struct {
	congresses string
	journals   string
	client     *http.Client
}

var _ ports.CatalogSource = (*Loader)(nil)

// NewLoader binds the two document locations. A nil client gets a default
// with a 15s timeout.
func NewLoader(congresses, journals string, client *http.Client) *Loader {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Loader{congresses: congresses, journals: journals, client: client}
}

// FetchCongresses loads congresses.json.
func (l *Loader) FetchCongresses(ctx context.Context) (domain.CongressDocument, error) {
	var doc domain.CongressDocument
	if err := l.fetch(ctx, l.congresses, &doc); err != nil {
		return domain.CongressDocument{}, err
	}
	return doc, nil
}

// FetchJournals loads revistas.json.
func (l *Loader) FetchJournals(ctx context.Context) (domain.JournalDocument, error) {
	var doc domain.JournalDocument
	if err := l.fetch(ctx, l.journals, &doc); err != nil {
		return domain.JournalDocument{}, err
	}
	return doc, nil
}

// Locations returns the configured document locations.
func (l *Loader) Locations() []string {
	return []string{l.congresses, l.journals}
}

func (l *Loader) fetch(ctx context.Context, location string, v any) error {
	if location == "" {
		return fmt.Errorf("%w: empty location", ErrLoadFailed)
	}

	body, err := l.open(ctx, location)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrLoadFailed, location, err)
	}
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrLoadFailed, location, err)
	}
	return nil
}

func (l *Loader) open(ctx context.Context, location string) (io.ReadCloser, error) {
	if !IsRemote(location) {
		return os.Open(location)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}

// IsRemote reports whether location is an http(s) URL rather than a path.
func IsRemote(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
