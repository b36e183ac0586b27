package assessment

import (
	"github.com/de-tools/reliability-atlas/pkg/models/domain"
	"github.com/de-tools/reliability-atlas/pkg/services/catalog"
	"github.com/de-tools/reliability-atlas/pkg/services/inventory"
)

// BuildImpactedResources joins raw query matches against the inventory index
// and the catalog. One record per match; the resolution fallback chain never
// fails on malformed input.
func BuildImpactedResources(matches []domain.QueryMatch, resources *inventory.Index, cat catalog.Service) []domain.ImpactedResource {
	records := make([]domain.ImpactedResource, 0, len(matches))
	for _, match := range matches {
		records = append(records, buildImpactedResource(match, resources, cat))
	}
	return records
}

func buildImpactedResource(match domain.QueryMatch, resources *inventory.Index, cat catalog.Service) domain.ImpactedResource {
	resource, _ := resources.Lookup(match.ID)

	declaredType := ""
	if def, ok := cat.Lookup(match.RecommendationID); ok {
		declaredType = def.ResourceType
	}
	parsedSub, parsedGroup := domain.ParseResourceID(match.ID)

	selector := match.Selector
	if selector == "" {
		selector = domain.DefaultSelector
	}

	return domain.ImpactedResource{
		ValidationAction: domain.ValidationActionQueries,
		RecommendationID: match.RecommendationID,
		Name:             match.Name,
		ID:               match.ID,
		Type:             domain.FirstNonEmpty(declaredType, resource.Type),
		Location:         domain.FirstNonEmpty(resource.Location),
		SubscriptionID:   domain.FirstNonEmpty(resource.SubscriptionID, parsedSub),
		ResourceGroup:    domain.FirstNonEmpty(resource.ResourceGroup, parsedGroup),
		Param1:           match.Param1,
		Param2:           match.Param2,
		Param3:           match.Param3,
		Param4:           match.Param4,
		Param5:           match.Param5,
		CheckName:        match.CheckName,
		Selector:         selector,
	}
}

// EnrichAdvisories fills the inventory-derived fields of advisor records the
// advisory service cannot provide itself. Lookup misses degrade to Unknown.
func EnrichAdvisories(records []domain.AdvisorRecommendation, resources *inventory.Index) []domain.AdvisorRecommendation {
	enriched := make([]domain.AdvisorRecommendation, 0, len(records))
	for _, rec := range records {
		resource, _ := resources.Lookup(rec.ID)
		rec.Type = domain.FirstNonEmpty(rec.Type, resource.Type)
		rec.Name = domain.FirstNonEmpty(rec.Name, resource.Name)
		rec.Location = domain.FirstNonEmpty(resource.Location)
		enriched = append(enriched, rec)
	}
	return enriched
}
