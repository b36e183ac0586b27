package adapters

import (
	"maps"

	"github.com/de-tools/reliability-atlas/pkg/models/domain"
	"github.com/de-tools/reliability-atlas/pkg/models/store"
)

func MapStoreResourceRowToDomain(row store.ResourceRow) domain.Resource {
	return domain.Resource{
		ID:             row.ID,
		Name:           row.Name,
		Type:           row.Type,
		Location:       row.Location,
		SubscriptionID: row.SubscriptionID,
		ResourceGroup:  row.ResourceGroup,
		Tags:           maps.Clone(row.Tags),
	}
}

func MapStoreResourceRowsToDomain(rows []store.ResourceRow) []domain.Resource {
	resources := make([]domain.Resource, 0, len(rows))
	for _, row := range rows {
		resources = append(resources, MapStoreResourceRowToDomain(row))
	}
	return resources
}

func MapStoreQueryMatchRowToDomain(row store.QueryMatchRow) domain.QueryMatch {
	return domain.QueryMatch{
		RecommendationID: row.RecommendationID,
		Name:             row.Name,
		ID:               row.ID,
		Param1:           row.Param1,
		Param2:           row.Param2,
		Param3:           row.Param3,
		Param4:           row.Param4,
		Param5:           row.Param5,
		CheckName:        row.CheckName,
		Selector:         row.Selector,
	}
}

func MapStoreRetirementRowToDomain(row store.RetirementRow) domain.ServiceRetirement {
	return domain.ServiceRetirement{
		TrackingID:      row.TrackingID,
		SubscriptionID:  row.SubscriptionID,
		Status:          row.Status,
		LastUpdate:      row.LastUpdateTime,
		StartTime:       row.StartTime,
		EndTime:         row.EndTime,
		Level:           row.Level,
		Title:           row.Title,
		Summary:         row.Summary,
		ImpactedService: row.ImpactedService,
	}
}

func MapStoreAlertRowToDomain(row store.AlertRow) domain.ServiceHealthAlert {
	return domain.ServiceHealthAlert{
		Name:           row.Name,
		SubscriptionID: row.SubscriptionID,
		Enabled:        row.Enabled,
		EventType:      row.EventType,
		Services:       row.Services,
		Regions:        row.Regions,
		ActionGroup:    row.ActionGroup,
	}
}

func MapTagFilterDomainToStore(tag domain.TagFilter) store.TagPair {
	return store.TagPair{Key: tag.Key, Value: tag.Value}
}

func MapTagFiltersDomainToStore(tags []domain.TagFilter) []store.TagPair {
	pairs := make([]store.TagPair, 0, len(tags))
	for _, tag := range tags {
		pairs = append(pairs, MapTagFilterDomainToStore(tag))
	}
	return pairs
}
