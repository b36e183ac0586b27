package health

import (
	"context"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resourcehealth/armresourcehealth"

	"github.com/de-tools/reliability-atlas/pkg/adapters"
	"github.com/de-tools/reliability-atlas/pkg/models/domain"
	"github.com/de-tools/reliability-atlas/pkg/store/arg"
)

// lookbackMonths bounds how far back outage events are fetched.
const lookbackMonths = 3

// Service collects the service health sections of the report: recent
// outages, announced retirements and the configured service health alerts.
type Service interface {
	Outages(ctx context.Context, subscriptionIDs []string) ([]domain.ServiceOutage, error)
	Retirements(ctx context.Context, subscriptionIDs []string) ([]domain.ServiceRetirement, error)
	Alerts(ctx context.Context, subscriptionIDs []string) ([]domain.ServiceHealthAlert, error)
}

type eventLister interface {
	ListEvents(ctx context.Context, subscriptionID string, since time.Time) ([]*armresourcehealth.Event, error)
}

type service struct {
	events eventLister
	graph  arg.Store
}

func NewService(cred azcore.TokenCredential, graph arg.Store) Service {
	return &service{
		events: &azureEvents{cred: cred},
		graph:  graph,
	}
}

func (s *service) Outages(ctx context.Context, subscriptionIDs []string) ([]domain.ServiceOutage, error) {
	since := time.Now().UTC().AddDate(0, -lookbackMonths, 0)
	var outages []domain.ServiceOutage
	for _, subscriptionID := range subscriptionIDs {
		events, err := s.events.ListEvents(ctx, subscriptionID, since)
		if err != nil {
			return nil, fmt.Errorf("list health events for %s: %w", subscriptionID, err)
		}
		for _, event := range events {
			if outage, ok := normalizeOutage(subscriptionID, event); ok {
				outages = append(outages, outage)
			}
		}
	}
	return outages, nil
}

func (s *service) Retirements(ctx context.Context, subscriptionIDs []string) ([]domain.ServiceRetirement, error) {
	rows, err := s.graph.QueryRetirements(ctx, subscriptionIDs)
	if err != nil {
		return nil, fmt.Errorf("list retirements: %w", err)
	}
	retirements := make([]domain.ServiceRetirement, 0, len(rows))
	for _, row := range rows {
		retirements = append(retirements, adapters.MapStoreRetirementRowToDomain(row))
	}
	return retirements, nil
}

func (s *service) Alerts(ctx context.Context, subscriptionIDs []string) ([]domain.ServiceHealthAlert, error) {
	rows, err := s.graph.QueryServiceHealthAlerts(ctx, subscriptionIDs)
	if err != nil {
		return nil, fmt.Errorf("list service health alerts: %w", err)
	}
	alerts := make([]domain.ServiceHealthAlert, 0, len(rows))
	for _, row := range rows {
		alerts = append(alerts, adapters.MapStoreAlertRowToDomain(row))
	}
	return alerts, nil
}

// normalizeOutage flattens one resource health event. Only service issue
// events become outages; anything without properties is dropped.
func normalizeOutage(subscriptionID string, event *armresourcehealth.Event) (domain.ServiceOutage, bool) {
	if event == nil || event.Properties == nil {
		return domain.ServiceOutage{}, false
	}
	props := event.Properties
	if props.EventType == nil || *props.EventType != armresourcehealth.EventTypeValuesServiceIssue {
		return domain.ServiceOutage{}, false
	}

	outage := domain.ServiceOutage{
		SubscriptionID: subscriptionID,
	}
	if event.Name != nil {
		outage.TrackingID = *event.Name
	}
	if props.Title != nil {
		outage.Title = *props.Title
	}
	if props.Summary != nil {
		outage.Summary = *props.Summary
	}
	if props.Status != nil {
		outage.Status = string(*props.Status)
	}
	if props.EventLevel != nil {
		outage.Level = string(*props.EventLevel)
	}
	if props.ImpactStartTime != nil {
		outage.StartTime = *props.ImpactStartTime
	}
	if props.ImpactMitigationTime != nil {
		t := *props.ImpactMitigationTime
		outage.MitigationTime = &t
	}
	for _, impact := range props.Impact {
		if impact != nil && impact.ImpactedService != nil {
			outage.ImpactedServices = append(outage.ImpactedServices, *impact.ImpactedService)
		}
	}
	return outage, true
}

type azureEvents struct {
	cred azcore.TokenCredential
}

func (a *azureEvents) ListEvents(ctx context.Context, subscriptionID string, since time.Time) ([]*armresourcehealth.Event, error) {
	client, err := armresourcehealth.NewEventsClient(subscriptionID, a.cred, nil)
	if err != nil {
		return nil, fmt.Errorf("create resource health client: %w", err)
	}

	var events []*armresourcehealth.Event
	pager := client.NewListBySubscriptionIDPager(&armresourcehealth.EventsClientListBySubscriptionIDOptions{
		QueryStartTime: to.Ptr(since.Format(time.RFC3339)),
	})
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("page health events: %w", err)
		}
		events = append(events, page.Value...)
	}
	return events, nil
}
