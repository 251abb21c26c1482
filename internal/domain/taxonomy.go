package domain

import "sort"

// Taxonomy maps category -> research line -> sub-lines.
type Taxonomy map[string]map[string][]string

// Categories returns the top-level keys sorted.
func (t Taxonomy) Categories() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Lines returns the line keys of one category in no particular order.
func (t Taxonomy) Lines(category string) []string {
	lines := t[category]
	keys := make([]string, 0, len(lines))
	for k := range lines {
		keys = append(keys, k)
	}
	return keys
}

// Sublines returns the sub-lines listed under category/line.
func (t Taxonomy) Sublines(category, line string) []string {
	return t[category][line]
}
