package parser

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"ResearchCatalog/internal/domain"
)

//go:embed taxonomy.yaml
var defaultTaxonomy []byte

// DefaultTaxonomy returns the category -> line -> sub-line tree shipped with
// every congress document.
func DefaultTaxonomy() (domain.Taxonomy, error) {
	var tax domain.Taxonomy
	if err := yaml.Unmarshal(defaultTaxonomy, &tax); err != nil {
		return nil, fmt.Errorf("decode default taxonomy: %w", err)
	}
	return tax, nil
}

// ReadTaxonomy decodes a YAML taxonomy.
func ReadTaxonomy(r io.Reader) (domain.Taxonomy, error) {
	var tax domain.Taxonomy
	if err := yaml.NewDecoder(r).Decode(&tax); err != nil {
		return nil, fmt.Errorf("decode taxonomy: %w", err)
	}
	return tax, nil
}

func taxonomyFor(opts map[string]string) (domain.Taxonomy, error) {
	path := opts["taxonomy"]
	if path == "" {
		return DefaultTaxonomy()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open taxonomy %s: %w", path, err)
	}
	defer f.Close()
	return ReadTaxonomy(f)
}
