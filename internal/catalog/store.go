package catalog

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"ResearchCatalog/internal/ports"
)

// Clock returns the current time.
type Clock func() time.Time

// Store holds the current snapshot. Readers capture a pointer once and keep
// using it; Load swaps in a complete new snapshot.
type Store struct {
	source  ports.CatalogSource
	clock   Clock
	loc     *time.Location
	logger  *slog.Logger
	current atomic.Pointer[Snapshot]

	onSwap []func(*Snapshot)
}

// NewStore wires a catalog source. A nil clock uses time.Now and a nil
// location uses UTC.
func NewStore(source ports.CatalogSource, clock Clock, loc *time.Location, logger *slog.Logger) *Store {
	if clock == nil {
		clock = time.Now
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Store{source: source, clock: clock, loc: loc, logger: logger}
}

// OnSwap registers a hook called after every successful swap.
func (s *Store) OnSwap(fn func(*Snapshot)) {
	s.onSwap = append(s.onSwap, fn)
}

// Current returns the active snapshot or nil before the first load.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Load fetches both documents and swaps in a new snapshot. On failure the
// previous snapshot stays active and the error wraps ErrLoadFailed.
func (s *Store) Load(ctx context.Context) error {
	congresses, err := s.source.FetchCongresses(ctx)
	if err != nil {
		return err
	}
	journals, err := s.source.FetchJournals(ctx)
	if err != nil {
		return err
	}

	snap := NewSnapshot(congresses, journals, s.clock().In(s.loc), s.loc)
	s.Swap(snap)

	if s.logger != nil {
		s.logger.Info("catalog loaded",
			"congresses", len(snap.Congresses),
			"journals", len(snap.Journals),
			"categories", len(snap.Taxonomy),
		)
	}
	return nil
}

// Swap replaces the active snapshot.
func (s *Store) Swap(snap *Snapshot) {
	s.current.Store(snap)
	for _, fn := range s.onSwap {
		fn(snap)
	}
}
