package advisor

import (
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/advisor/armadvisor"

	"github.com/de-tools/reliability-atlas/pkg/models/domain"
)

// NormalizeRecommendation flattens one Advisor recommendation into the
// pipeline record shape. Items without properties are dropped; every other
// missing field degrades to an empty or "Unknown" value.
func NormalizeRecommendation(item *armadvisor.ResourceRecommendationBase) (domain.AdvisorRecommendation, bool) {
	if item == nil || item.Properties == nil {
		return domain.AdvisorRecommendation{}, false
	}
	props := item.Properties

	resourceID := ""
	if props.ResourceMetadata != nil && props.ResourceMetadata.ResourceID != nil {
		resourceID = *props.ResourceMetadata.ResourceID
	}
	subscriptionID, resourceGroup := domain.ParseResourceID(resourceID)

	category := ""
	if props.Category != nil {
		category = string(*props.Category)
	}
	impact := ""
	if props.Impact != nil {
		impact = string(*props.Impact)
	}
	description := ""
	if props.ShortDescription != nil && props.ShortDescription.Problem != nil {
		description = *props.ShortDescription.Problem
	}

	return domain.AdvisorRecommendation{
		RecommendationID: deref(props.RecommendationTypeID),
		Type:             strings.ToLower(deref(props.ImpactedField)),
		Name:             deref(props.ImpactedValue),
		ID:               resourceID,
		SubscriptionID:   subscriptionID,
		ResourceGroup:    resourceGroup,
		Category:         category,
		Impact:           impact,
		Description:      description,
	}, true
}

// OtherRecommendations returns the catalog GUIDs whose linked advisor
// recommendation type is not classified under the high availability
// category. Entries without an advisor link are ignored.
func OtherRecommendations(defs []domain.RecommendationDefinition, meta []domain.AdvisorMetadata) []string {
	categories := make(map[string]string, len(meta))
	for _, m := range meta {
		categories[strings.ToLower(m.ID)] = m.Category
	}

	var guids []string
	for _, def := range defs {
		if def.RecommendationTypeID == "" {
			continue
		}
		category := categories[strings.ToLower(def.RecommendationTypeID)]
		if !strings.EqualFold(category, domain.AdvisorCategoryHighAvailability) {
			guids = append(guids, def.GUID)
		}
	}
	return guids
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
