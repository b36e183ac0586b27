package assessment

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/de-tools/reliability-atlas/pkg/models/domain"
	"github.com/de-tools/reliability-atlas/pkg/services/catalog"
	"github.com/de-tools/reliability-atlas/pkg/services/inventory"
)

// ValidationCandidates builds the deduplicated union of impacted resources
// and in-scope inventory resources. Each resource appears once regardless of
// how many recommendations matched it; impacted ids missing from the index
// are reconstructed from the record itself.
func ValidationCandidates(impacted []domain.ImpactedResource, inScope []domain.Resource, resources *inventory.Index) []domain.Resource {
	seen := make(map[string]struct{})
	var candidates []domain.Resource

	add := func(r domain.Resource) {
		key := strings.ToLower(r.ID)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		candidates = append(candidates, r)
	}

	for _, rec := range impacted {
		if resource, ok := resources.Lookup(rec.ID); ok {
			add(resource)
			continue
		}
		add(domain.Resource{
			ID:             rec.ID,
			Name:           rec.Name,
			Type:           rec.Type,
			Location:       rec.Location,
			SubscriptionID: rec.SubscriptionID,
			ResourceGroup:  rec.ResourceGroup,
		})
	}
	for _, resource := range inScope {
		add(resource)
	}
	return candidates
}

// BuildValidationResources classifies every candidate that needs a manual
// review. Manual placeholder entries apply to any candidate; the special-type
// and warning branches only apply to resources no automated query matched.
func BuildValidationResources(
	ctx context.Context,
	candidates []domain.Resource,
	impacted []domain.ImpactedResource,
	cat catalog.Service,
) []domain.ImpactedResource {
	log := zerolog.Ctx(ctx)

	impactedIDs := make(map[string]struct{}, len(impacted))
	for _, rec := range impacted {
		impactedIDs[strings.ToLower(rec.ID)] = struct{}{}
	}

	var records []domain.ImpactedResource
	for _, resource := range candidates {
		if entries := cat.ManualEntriesForType(resource.Type); len(entries) > 0 {
			for _, entry := range entries {
				records = append(records, manualValidationRecord(resource, entry))
			}
			continue
		}

		if _, ok := impactedIDs[strings.ToLower(resource.ID)]; ok {
			continue
		}

		if cat.IsSpecialType(resource.Type) {
			records = append(records, unsupportedTypeRecord(resource))
			continue
		}

		log.Warn().
			Str("type", resource.Type).
			Str("id", resource.ID).
			Msg("no recommendation found for resource type")
	}
	return records
}

// validationAction selects the manual-review tag from the placeholder
// entry's query text. The keyword order is a fixed precedence.
func validationAction(query string) string {
	text := strings.ToLower(query)
	switch {
	case strings.Contains(text, "development"):
		return domain.ValidationActionUnderDevelopment
	case strings.Contains(text, "cannot-be-validated-with-arg"):
		return domain.ValidationActionCannotValidate
	case strings.Contains(text, "azure resource graph"):
		return domain.ValidationActionNoAutomation
	default:
		return domain.ValidationActionNoQuery
	}
}

func manualValidationRecord(resource domain.Resource, entry domain.RecommendationDefinition) domain.ImpactedResource {
	record := validationRecord(resource)
	record.ValidationAction = validationAction(entry.Query)
	record.RecommendationID = entry.GUID
	return record
}

func unsupportedTypeRecord(resource domain.Resource) domain.ImpactedResource {
	record := validationRecord(resource)
	record.ValidationAction = domain.ValidationActionUnsupported
	return record
}

func validationRecord(resource domain.Resource) domain.ImpactedResource {
	parsedSub, parsedGroup := domain.ParseResourceID(resource.ID)
	return domain.ImpactedResource{
		Name:           resource.Name,
		ID:             resource.ID,
		Type:           domain.FirstNonEmpty(resource.Type),
		Location:       domain.FirstNonEmpty(resource.Location),
		SubscriptionID: domain.FirstNonEmpty(resource.SubscriptionID, parsedSub),
		ResourceGroup:  domain.FirstNonEmpty(resource.ResourceGroup, parsedGroup),
		Selector:       domain.DefaultSelector,
	}
}
