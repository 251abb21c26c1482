// Package source defines the registry of sheet importers that produce the
// catalog documents.
package source

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"
)

// ErrNotRegistered is returned when no importer has the requested name.
var ErrNotRegistered = errors.New("importer is not registered")

// Request carries everything an importer needs for one run.
type Request struct {
	Name     string
	Location string
	Options  map[string]string
	Now      time.Time
}

// Document is a generated catalog document.
type Document interface {
	Len() int
}

// Importer turns one upstream sheet into a catalog document.
type Importer interface {
	Name() string
	Import(ctx context.Context, req Request) (Document, error)
}

// Registry keeps a mapping from importer names to their implementations.
type Registry struct {
	importers map[string]Importer
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{importers: map[string]Importer{}}
}

// Register adds or replaces an importer implementation.
func (r *Registry) Register(importer Importer) {
	if r.importers == nil {
		r.importers = map[string]Importer{}
	}
	r.importers[importer.Name()] = importer
}

// Resolve returns an importer by name.
func (r *Registry) Resolve(name string) (Importer, error) {
	if importer, ok := r.importers[name]; ok {
		return importer, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotRegistered, name)
}

// Names lists the registered importers.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.importers))
	for name := range r.importers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
