package adapters

import (
	"strings"

	"github.com/de-tools/reliability-atlas/pkg/models/api"
	"github.com/de-tools/reliability-atlas/pkg/models/domain"
	"github.com/de-tools/reliability-atlas/pkg/models/store"
)

func MapStoreCatalogEntryToDomain(e store.CatalogEntry) domain.RecommendationDefinition {
	return domain.RecommendationDefinition{
		GUID:                 strings.TrimSpace(e.AprlGUID),
		RecommendationTypeID: strings.TrimSpace(e.RecommendationTypeID),
		ResourceType:         strings.TrimSpace(e.RecommendationResourceType),
		Category:             e.RecommendationControl,
		Impact:               e.RecommendationImpact,
		State:                domain.RecommendationState(e.RecommendationMetadataState),
		AutomationAvailable:  e.AutomationAvailable,
		Query:                e.Query,
		Description:          e.Description,
		LongDescription:      e.LongDescription,
		PotentialBenefits:    e.PotentialBenefits,
		PgVerified:           e.PgVerified,
	}
}

func MapStoreCatalogEntriesToDomain(entries []store.CatalogEntry) []domain.RecommendationDefinition {
	defs := make([]domain.RecommendationDefinition, 0, len(entries))
	for _, e := range entries {
		defs = append(defs, MapStoreCatalogEntryToDomain(e))
	}
	return defs
}

func MapStoreSpecialTypeEntryToDomain(e store.SpecialTypeEntry) domain.SpecialType {
	return domain.SpecialType{
		ResourceType: strings.TrimSpace(e.ResourceType),
		InScope:      e.InScope,
		Covered:      e.InAprlAndOrAdvisor,
	}
}

func MapStoreSpecialTypeEntriesToDomain(entries []store.SpecialTypeEntry) []domain.SpecialType {
	types := make([]domain.SpecialType, 0, len(entries))
	for _, e := range entries {
		types = append(types, MapStoreSpecialTypeEntryToDomain(e))
	}
	return types
}

func MapCatalogDefinitionDomainToApi(d domain.RecommendationDefinition) api.CatalogEntry {
	return api.CatalogEntry{
		GUID:                 d.GUID,
		RecommendationTypeID: d.RecommendationTypeID,
		ResourceType:         d.ResourceType,
		Category:             d.Category,
		Impact:               d.Impact,
		State:                string(d.State),
		AutomationAvailable:  d.AutomationAvailable,
		Description:          d.Description,
	}
}
