package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/reliability-atlas/pkg/models/domain"
)

func sampleReport() *domain.Report {
	return &domain.Report{
		Run: domain.RunMetadata{
			RunID:             "run-1",
			TenantID:          "t1",
			StartedAt:         time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC),
			Duration:          90 * time.Second,
			SubscriptionCount: 2,
			ResourceCount:     14,
		},
		ImpactedResources: []domain.ImpactedResource{{ID: "/subscriptions/s/r1"}},
		ResourceTypes: []domain.ResourceTypeSummary{
			{Type: "microsoft.compute/virtualmachines", Count: 8, CoveredByCatalog: true},
			{Type: "microsoft.network/dnszones", Count: 1, CoveredByCatalog: false},
		},
	}
}

func TestReporter_RendersSummary(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	require.NoError(t, reporter.Handle(sampleReport()))
	out := buf.String()

	assert.Contains(t, out, "Reliability assessment run-1")
	assert.Contains(t, out, "Tenant: t1")
	assert.Contains(t, out, "took 90.0s")
	assert.Contains(t, out, "Subscriptions: 2, resources in scope: 14")
	assert.Contains(t, out, "Impacted resources: 1")
	assert.Contains(t, out, "microsoft.compute/virtualmachines")
	assert.Contains(t, out, "| Resource Type")
	assert.Contains(t, out, "Yes")
	assert.Contains(t, out, "No")
}

func TestReporter_EmptySections(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	require.NoError(t, reporter.Handle(&domain.Report{}))
	assert.Contains(t, buf.String(), "Impacted resources: 0")
}
