package inventory

import (
	"strings"

	"github.com/de-tools/reliability-atlas/pkg/models/domain"
)

// Index is the id-keyed lookup table over the resource inventory. Ids are
// compared case-insensitively; duplicate ids keep the last record seen.
type Index struct {
	byID      map[string]domain.Resource
	resources []domain.Resource
}

func NewIndex(resources []domain.Resource) *Index {
	idx := &Index{
		byID:      make(map[string]domain.Resource, len(resources)),
		resources: resources,
	}
	for _, r := range resources {
		idx.byID[strings.ToLower(r.ID)] = r
	}
	return idx
}

func (i *Index) Lookup(id string) (domain.Resource, bool) {
	r, ok := i.byID[strings.ToLower(id)]
	return r, ok
}

// Resources returns the snapshot the index was built from, duplicates
// included.
func (i *Index) Resources() []domain.Resource {
	return i.resources
}

func (i *Index) Len() int {
	return len(i.byID)
}
