// Package tags resolves the opaque tag IDs on task records into display
// names. An index is built once per categorization pass from a full tag
// fetch and is read-only afterwards.
package tags

import "github.com/harrisonrobin/habitick/pkg/habitica"

type Index struct {
	names map[string]string
}

// NewIndex builds a lookup over the fetched tag list.
func NewIndex(tags []habitica.Tag) *Index {
	names := make(map[string]string, len(tags))
	for _, tag := range tags {
		names[tag.ID] = tag.Name
	}
	return &Index{names: names}
}

// Get returns the display name for a tag ID, or "" if unknown.
func (idx *Index) Get(id string) string {
	return idx.names[id]
}

// Resolve maps tag IDs to display names. IDs with no known tag are dropped
// rather than failing the pass.
func (idx *Index) Resolve(ids []string) []string {
	var names []string
	for _, id := range ids {
		if name, ok := idx.names[id]; ok && name != "" {
			names = append(names, name)
		}
	}
	return names
}
