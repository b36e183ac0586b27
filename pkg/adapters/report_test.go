package adapters

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/reliability-atlas/pkg/models/domain"
)

func TestMapResourceTypeSummaryDomainToApi(t *testing.T) {
	covered := MapResourceTypeSummaryDomainToApi(domain.ResourceTypeSummary{
		Type:             "microsoft.compute/virtualmachines",
		Count:            3,
		CoveredByCatalog: true,
	})
	assert.Equal(t, "Yes", covered.Available)
	assert.Equal(t, "APRL", covered.AssessmentOwner)
	assert.Equal(t, "Active", covered.Status)
	assert.Equal(t, 3, covered.Count)

	uncovered := MapResourceTypeSummaryDomainToApi(domain.ResourceTypeSummary{
		Type: "microsoft.network/dnszones",
	})
	assert.Equal(t, "No", uncovered.Available)
}

func TestMapReportDomainToApi_EmptySectionsStayNonNil(t *testing.T) {
	report := MapReportDomainToApi(&domain.Report{})

	// Consumers rely on [] rather than null in the serialized report.
	assert.NotNil(t, report.ImpactedResources)
	assert.NotNil(t, report.ResourceTypes)
	assert.NotNil(t, report.Advisories)
	assert.NotNil(t, report.Outages)
	assert.NotNil(t, report.Retirements)
	assert.NotNil(t, report.SupportTickets)
	assert.NotNil(t, report.ServiceHealth)
}

func TestMapReportDomainToApi_RunMetadata(t *testing.T) {
	started := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	report := MapReportDomainToApi(&domain.Report{
		Run: domain.RunMetadata{
			RunID:             "run-1",
			TenantID:          "tenant-1",
			StartedAt:         started,
			Duration:          90 * time.Second,
			SubscriptionCount: 2,
			ResourceCount:     41,
		},
		ImpactedResources: []domain.ImpactedResource{
			{ValidationAction: domain.ValidationActionQueries, ID: "/subscriptions/sub-1/x"},
		},
	})

	assert.Equal(t, "run-1", report.Run.RunID)
	assert.Equal(t, "tenant-1", report.Run.TenantID)
	assert.Equal(t, started, report.Run.StartedAt)
	assert.Equal(t, 90.0, report.Run.DurationSeconds)
	assert.Equal(t, 2, report.Run.SubscriptionCount)
	assert.Equal(t, 41, report.Run.ResourceCount)
	require.Len(t, report.ImpactedResources, 1)
	assert.Equal(t, domain.ValidationActionQueries, report.ImpactedResources[0].ValidationAction)
}

func TestMapAssessmentRunDomainToApi(t *testing.T) {
	finished := time.Date(2025, 8, 1, 10, 2, 0, 0, time.UTC)

	withReport := MapAssessmentRunDomainToApi(domain.AssessmentRun{
		RunID:      "run-1",
		Status:     domain.RunStatusSucceeded,
		FinishedAt: &finished,
		Report:     &domain.Report{Run: domain.RunMetadata{RunID: "run-1"}},
	})
	assert.Equal(t, "succeeded", withReport.Status)
	require.NotNil(t, withReport.FinishedAt)
	assert.Equal(t, finished, *withReport.FinishedAt)
	require.NotNil(t, withReport.Report)
	assert.Equal(t, "run-1", withReport.Report.Run.RunID)

	failed := MapAssessmentRunDomainToApi(domain.AssessmentRun{
		RunID:  "run-2",
		Status: domain.RunStatusFailed,
		Error:  "load inventory: boom",
	})
	assert.Equal(t, "failed", failed.Status)
	assert.Equal(t, "load inventory: boom", failed.Error)
	assert.Nil(t, failed.Report)
}
