package assessment

import (
	"strings"

	"github.com/de-tools/reliability-atlas/pkg/models/domain"
)

// Scope and tag filters are pure membership predicates: they only remove
// records, never mutate them, and applying one twice equals applying it
// once. Records of the global resource type describe whole-subscription
// findings and bypass every filter.

func isGlobalType(resourceType string) bool {
	return strings.EqualFold(resourceType, domain.GlobalResourceType)
}

// FilterResourcesByScope keeps the inventory resources the scope covers.
func FilterResourcesByScope(resources []domain.Resource, scope domain.Scope) []domain.Resource {
	kept := make([]domain.Resource, 0, len(resources))
	for _, resource := range resources {
		if scope.Covers(resource.ID) {
			kept = append(kept, resource)
		}
	}
	return kept
}

// FilterRecordsByScope keeps the impacted and validation records the scope
// covers, plus every global record.
func FilterRecordsByScope(records []domain.ImpactedResource, scope domain.Scope) []domain.ImpactedResource {
	kept := make([]domain.ImpactedResource, 0, len(records))
	for _, rec := range records {
		if isGlobalType(rec.Type) || scope.Covers(rec.ID) {
			kept = append(kept, rec)
		}
	}
	return kept
}

// FilterAdvisoriesByScope keeps the advisor records the scope covers, plus
// every global record.
func FilterAdvisoriesByScope(records []domain.AdvisorRecommendation, scope domain.Scope) []domain.AdvisorRecommendation {
	kept := make([]domain.AdvisorRecommendation, 0, len(records))
	for _, rec := range records {
		if isGlobalType(rec.Type) || scope.Covers(rec.ID) {
			kept = append(kept, rec)
		}
	}
	return kept
}

// TagScope is the resource membership a set of tag filters resolves to: the
// ids of directly tagged resources and the resource groups carrying a
// matching tag.
type TagScope struct {
	resourceIDs map[string]struct{}
	groupIDs    []string
}

func NewTagScope(groupIDs, resourceIDs []string) *TagScope {
	ts := &TagScope{resourceIDs: make(map[string]struct{}, len(resourceIDs))}
	for _, id := range resourceIDs {
		ts.resourceIDs[strings.ToLower(id)] = struct{}{}
	}
	for _, id := range groupIDs {
		ts.groupIDs = append(ts.groupIDs, strings.ToLower(id))
	}
	return ts
}

func (t *TagScope) Covers(resourceID string) bool {
	id := strings.ToLower(resourceID)
	if _, ok := t.resourceIDs[id]; ok {
		return true
	}
	for _, group := range t.groupIDs {
		if id == group || strings.HasPrefix(id, group+"/") {
			return true
		}
	}
	return false
}

// TagMatchedResourceIDs returns the ids of inventory resources whose own
// tags satisfy any of the filters.
func TagMatchedResourceIDs(resources []domain.Resource, tags []domain.TagFilter) []string {
	var ids []string
	for _, resource := range resources {
		for _, tag := range tags {
			if tag.Matches(resource.Tags) {
				ids = append(ids, resource.ID)
				break
			}
		}
	}
	return ids
}

// FilterRecordsByTags keeps the records living inside the tag scope, plus
// every global record.
func FilterRecordsByTags(records []domain.ImpactedResource, tags *TagScope) []domain.ImpactedResource {
	kept := make([]domain.ImpactedResource, 0, len(records))
	for _, rec := range records {
		if isGlobalType(rec.Type) || tags.Covers(rec.ID) {
			kept = append(kept, rec)
		}
	}
	return kept
}

// FilterAdvisoriesByTags keeps the advisor records living inside the tag
// scope, plus every global record.
func FilterAdvisoriesByTags(records []domain.AdvisorRecommendation, tags *TagScope) []domain.AdvisorRecommendation {
	kept := make([]domain.AdvisorRecommendation, 0, len(records))
	for _, rec := range records {
		if isGlobalType(rec.Type) || tags.Covers(rec.ID) {
			kept = append(kept, rec)
		}
	}
	return kept
}
