package arg

import (
	"context"
	"fmt"
	"strings"

	"github.com/de-tools/reliability-atlas/pkg/models/store"
)

const resourcesQuery = `resources
| project id, name, type, location, subscriptionId, resourceGroup, tags`

const retirementsQuery = `servicehealthresources
| where properties.EventSubType =~ 'Retirement'
| project subscriptionId,
    trackingId = tostring(properties.TrackingId),
    status = tostring(properties.Status),
    lastUpdateTime = todatetime(properties.LastUpdateTime),
    startTime = todatetime(properties.ImpactStartTime),
    endTime = todatetime(properties.ImpactMitigationTime),
    level = tostring(properties.Level),
    title = tostring(properties.Title),
    summary = tostring(properties.Summary),
    impactedService = tostring(properties.Impact[0].ImpactedService)`

const serviceHealthAlertsQuery = `resources
| where type =~ 'microsoft.insights/activitylogalerts'
| where properties.condition contains 'ServiceHealth'
| project name, subscriptionId,
    enabled = tostring(properties.enabled),
    eventType = tostring(properties.condition.allOf[1].anyOf[0].equals),
    services = properties.condition.allOf[2].containsAny,
    regions = properties.condition.allOf[3].containsAny,
    actionGroup = tostring(properties.actions.actionGroups[0].actionGroupId)`

func (s *argStore) QueryResources(ctx context.Context, subscriptionIDs []string) ([]store.ResourceRow, error) {
	rows, err := s.execute(ctx, resourcesQuery, subscriptionIDs)
	if err != nil {
		return nil, fmt.Errorf("query resource inventory: %w", err)
	}

	resources := make([]store.ResourceRow, 0, len(rows))
	for _, row := range rows {
		resources = append(resources, store.ResourceRow{
			ID:             stringField(row, "id"),
			Name:           stringField(row, "name"),
			Type:           stringField(row, "type"),
			Location:       stringField(row, "location"),
			SubscriptionID: stringField(row, "subscriptionId"),
			ResourceGroup:  stringField(row, "resourceGroup"),
			Tags:           tagsField(row, "tags"),
		})
	}
	return resources, nil
}

func (s *argStore) QueryRecommendationMatches(ctx context.Context, query string, subscriptionIDs []string) ([]store.QueryMatchRow, error) {
	rows, err := s.execute(ctx, query, subscriptionIDs)
	if err != nil {
		return nil, fmt.Errorf("query recommendation matches: %w", err)
	}

	matches := make([]store.QueryMatchRow, 0, len(rows))
	for _, row := range rows {
		matches = append(matches, store.QueryMatchRow{
			RecommendationID: stringField(row, "recommendationId"),
			Name:             stringField(row, "name"),
			ID:               stringField(row, "id"),
			Param1:           stringField(row, "param1"),
			Param2:           stringField(row, "param2"),
			Param3:           stringField(row, "param3"),
			Param4:           stringField(row, "param4"),
			Param5:           stringField(row, "param5"),
			CheckName:        stringField(row, "checkName"),
			Selector:         stringField(row, "selector"),
		})
	}
	return matches, nil
}

func (s *argStore) QueryRetirements(ctx context.Context, subscriptionIDs []string) ([]store.RetirementRow, error) {
	rows, err := s.execute(ctx, retirementsQuery, subscriptionIDs)
	if err != nil {
		return nil, fmt.Errorf("query service retirements: %w", err)
	}

	retirements := make([]store.RetirementRow, 0, len(rows))
	for _, row := range rows {
		retirements = append(retirements, store.RetirementRow{
			SubscriptionID:  stringField(row, "subscriptionId"),
			TrackingID:      stringField(row, "trackingId"),
			Status:          stringField(row, "status"),
			LastUpdateTime:  timeField(row, "lastUpdateTime"),
			StartTime:       timeField(row, "startTime"),
			EndTime:         timeField(row, "endTime"),
			Level:           stringField(row, "level"),
			Title:           stringField(row, "title"),
			Summary:         stringField(row, "summary"),
			ImpactedService: stringField(row, "impactedService"),
		})
	}
	return retirements, nil
}

func (s *argStore) QueryServiceHealthAlerts(ctx context.Context, subscriptionIDs []string) ([]store.AlertRow, error) {
	rows, err := s.execute(ctx, serviceHealthAlertsQuery, subscriptionIDs)
	if err != nil {
		return nil, fmt.Errorf("query service health alerts: %w", err)
	}

	alerts := make([]store.AlertRow, 0, len(rows))
	for _, row := range rows {
		alerts = append(alerts, store.AlertRow{
			Name:           stringField(row, "name"),
			SubscriptionID: stringField(row, "subscriptionId"),
			Enabled:        boolField(row, "enabled"),
			EventType:      stringField(row, "eventType"),
			Services:       stringSliceField(row, "services"),
			Regions:        stringSliceField(row, "regions"),
			ActionGroup:    stringField(row, "actionGroup"),
		})
	}
	return alerts, nil
}

func (s *argStore) QueryTaggedResourceGroupIDs(ctx context.Context, subscriptionIDs []string, tags []store.TagPair) ([]string, error) {
	query := fmt.Sprintf(`resourcecontainers
| where type =~ 'microsoft.resources/subscriptions/resourcegroups'
| where %s
| project id`, tagPredicate(tags))

	rows, err := s.execute(ctx, query, subscriptionIDs)
	if err != nil {
		return nil, fmt.Errorf("query tagged resource groups: %w", err)
	}
	return idColumn(rows), nil
}

func (s *argStore) QueryTaggedResourceIDs(ctx context.Context, subscriptionIDs []string, tags []store.TagPair) ([]string, error) {
	query := fmt.Sprintf(`resources
| where %s
| project id`, tagPredicate(tags))

	rows, err := s.execute(ctx, query, subscriptionIDs)
	if err != nil {
		return nil, fmt.Errorf("query tagged resources: %w", err)
	}
	return idColumn(rows), nil
}

// tagPredicate builds the where clause for a set of tag filters. Any filter
// matching is enough to keep a row.
func tagPredicate(tags []store.TagPair) string {
	clauses := make([]string, 0, len(tags))
	for _, tag := range tags {
		clauses = append(clauses, fmt.Sprintf("tags['%s'] =~ '%s'", escapeLiteral(tag.Key), escapeLiteral(tag.Value)))
	}
	return strings.Join(clauses, " or ")
}

func escapeLiteral(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	return strings.ReplaceAll(value, `'`, `\'`)
}

func idColumn(rows []map[string]any) []string {
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		if id := stringField(row, "id"); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
