package parser

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"ResearchCatalog/internal/config"
	"ResearchCatalog/internal/logging"
	"ResearchCatalog/internal/source"
)

// BuildResult reports one generated document.
type BuildResult struct {
	Source  string
	Output  string
	Records int
}

// Builder runs the configured sources through their importers and writes
// the catalog documents.
type Builder struct {
	registry *source.Registry
	sources  []config.SourceConfig
	logger   *slog.Logger
}

// NewBuilder wires the importer registry with config-defined sources.
func NewBuilder(reg *source.Registry, sources []config.SourceConfig, log *slog.Logger) *Builder {
	return &Builder{
		registry: reg,
		sources:  sources,
		logger:   log,
	}
}

// NewDefaultRegistry registers the congress and journal sheet importers.
func NewDefaultRegistry(log *slog.Logger) *source.Registry {
	reg := source.NewRegistry()
	reg.Register(NewCongressSheet(nil, logging.Component(log, "importer.congresos")))
	reg.Register(NewJournalSheet(nil, logging.Component(log, "importer.revistas")))
	return reg
}

// Build imports every source and writes its document. The first failing
// source stops the build; documents already written stay on disk.
func (b *Builder) Build(ctx context.Context, now time.Time) ([]BuildResult, error) {
	if b.registry == nil {
		return nil, fmt.Errorf("importer registry is not configured")
	}

	b.debug("build catalog", "sources", len(b.sources))

	results := make([]BuildResult, 0, len(b.sources))
	for _, src := range b.sources {
		b.debug("process source", "source", src.Name, "importer", src.Importer, "location", src.Location)
		importer, err := b.registry.Resolve(src.Importer)
		if err != nil {
			return results, fmt.Errorf("source %s: %w", src.Name, err)
		}

		doc, err := importer.Import(ctx, source.Request{
			Name:     src.Name,
			Location: src.Location,
			Options:  src.Options,
			Now:      now,
		})
		if err != nil {
			return results, fmt.Errorf("import source %s: %w", src.Name, err)
		}

		if err := writeDocument(src.Output, doc); err != nil {
			return results, fmt.Errorf("write source %s: %w", src.Name, err)
		}

		b.debug("source written", "source", src.Name, "output", src.Output, "records", doc.Len())
		results = append(results, BuildResult{Source: src.Name, Output: src.Output, Records: doc.Len()})
	}

	return results, nil
}

// writeDocument stores doc as indented JSON with non-ASCII text kept verbatim.
func writeDocument(path string, doc any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace document: %w", err)
	}
	return nil
}

func (b *Builder) debug(msg string, args ...any) {
	if b.logger == nil {
		return
	}
	b.logger.Debug(msg, args...)
}
