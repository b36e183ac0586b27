package health

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resourcehealth/armresourcehealth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/reliability-atlas/pkg/models/store"
	"github.com/de-tools/reliability-atlas/pkg/store/arg"
)

type fakeEvents struct {
	events map[string][]*armresourcehealth.Event
	since  time.Time
	err    error
}

func (f *fakeEvents) ListEvents(_ context.Context, subscriptionID string, since time.Time) ([]*armresourcehealth.Event, error) {
	f.since = since
	if f.err != nil {
		return nil, f.err
	}
	return f.events[subscriptionID], nil
}

// fakeGraph stubs just the queries the health service issues.
type fakeGraph struct {
	arg.Store
	retirements []store.RetirementRow
	alerts      []store.AlertRow
	err         error
}

func (f *fakeGraph) QueryRetirements(_ context.Context, _ []string) ([]store.RetirementRow, error) {
	return f.retirements, f.err
}

func (f *fakeGraph) QueryServiceHealthAlerts(_ context.Context, _ []string) ([]store.AlertRow, error) {
	return f.alerts, f.err
}

func TestOutages_KeepsOnlyServiceIssues(t *testing.T) {
	started := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)
	mitigated := started.Add(4 * time.Hour)
	lister := &fakeEvents{events: map[string][]*armresourcehealth.Event{
		"s1": {
			{
				Name: to.Ptr("ABCD-123"),
				Properties: &armresourcehealth.EventProperties{
					EventType:            to.Ptr(armresourcehealth.EventTypeValuesServiceIssue),
					Status:               to.Ptr(armresourcehealth.EventStatusValuesResolved),
					Title:                to.Ptr("Storage outage"),
					Summary:              to.Ptr("Requests failed in West Europe"),
					EventLevel:           to.Ptr(armresourcehealth.EventLevelValuesCritical),
					ImpactStartTime:      &started,
					ImpactMitigationTime: &mitigated,
					Impact: []*armresourcehealth.Impact{
						{ImpactedService: to.Ptr("Storage")},
						nil,
					},
				},
			},
			{
				Name: to.Ptr("EFGH-456"),
				Properties: &armresourcehealth.EventProperties{
					EventType: to.Ptr(armresourcehealth.EventTypeValuesHealthAdvisory),
				},
			},
			{Name: to.Ptr("no-props")},
		},
	}}
	svc := &service{events: lister}

	outages, err := svc.Outages(context.Background(), []string{"s1"})
	require.NoError(t, err)
	require.Len(t, outages, 1)

	outage := outages[0]
	assert.Equal(t, "ABCD-123", outage.TrackingID)
	assert.Equal(t, "s1", outage.SubscriptionID)
	assert.Equal(t, "Storage outage", outage.Title)
	assert.Equal(t, "Resolved", outage.Status)
	assert.Equal(t, "Critical", outage.Level)
	assert.Equal(t, []string{"Storage"}, outage.ImpactedServices)
	assert.Equal(t, started, outage.StartTime)
	require.NotNil(t, outage.MitigationTime)
	assert.Equal(t, mitigated, *outage.MitigationTime)

	assert.WithinDuration(t, time.Now().UTC().AddDate(0, -lookbackMonths, 0), lister.since, time.Minute)
}

func TestOutages_PropagatesError(t *testing.T) {
	svc := &service{events: &fakeEvents{err: fmt.Errorf("throttled")}}

	_, err := svc.Outages(context.Background(), []string{"s1"})
	assert.ErrorContains(t, err, "list health events for s1")
}

func TestRetirements_MapsRows(t *testing.T) {
	start := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	svc := &service{graph: &fakeGraph{retirements: []store.RetirementRow{
		{
			SubscriptionID:  "s1",
			TrackingID:      "RET-1",
			Status:          "Active",
			Title:           "Classic VMs retirement",
			Level:           "Warning",
			StartTime:       start,
			ImpactedService: "Virtual Machines",
		},
	}}}

	retirements, err := svc.Retirements(context.Background(), []string{"s1"})
	require.NoError(t, err)
	require.Len(t, retirements, 1)
	assert.Equal(t, "RET-1", retirements[0].TrackingID)
	assert.Equal(t, "Virtual Machines", retirements[0].ImpactedService)
	assert.Equal(t, start, retirements[0].StartTime)
}

func TestAlerts_MapsRows(t *testing.T) {
	svc := &service{graph: &fakeGraph{alerts: []store.AlertRow{
		{
			Name:           "sh-alert",
			SubscriptionID: "s1",
			Enabled:        true,
			EventType:      "ServiceIssue",
			Services:       []string{"Storage"},
			Regions:        []string{"West Europe"},
			ActionGroup:    "/subscriptions/s1/resourceGroups/rg/providers/microsoft.insights/actionGroups/ag",
		},
	}}}

	alerts, err := svc.Alerts(context.Background(), []string{"s1"})
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.True(t, alerts[0].Enabled)
	assert.Equal(t, "ServiceIssue", alerts[0].EventType)
}

func TestRetirements_PropagatesError(t *testing.T) {
	svc := &service{graph: &fakeGraph{err: fmt.Errorf("bad query")}}

	_, err := svc.Retirements(context.Background(), []string{"s1"})
	assert.ErrorContains(t, err, "list retirements")
}
