package labels

import (
	"maps"
	"slices"
)

// Mapping associates a target label with its corrected spelling.
// It never maps a label to itself.
type Mapping map[string]string

// Rename is a single mapping entry.
type Rename struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// Apply returns a new list where every mapped label is replaced, preserving
// order and length.
func (m Mapping) Apply(labels []string) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		if to, ok := m[l]; ok {
			out[i] = to
			continue
		}
		out[i] = l
	}
	return out
}

// Keys returns the mapped labels in sorted order.
func (m Mapping) Keys() []string {
	return slices.Sorted(maps.Keys(m))
}

// Entries returns the mapping as a list sorted by source label.
func (m Mapping) Entries() []Rename {
	entries := make([]Rename, 0, len(m))
	for _, k := range m.Keys() {
		entries = append(entries, Rename{From: k, To: m[k]})
	}
	return entries
}
