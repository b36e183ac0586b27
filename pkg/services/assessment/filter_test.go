package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/reliability-atlas/pkg/models/domain"
)

func TestFilterResourcesByScope_EmptyScopeKeepsEverything(t *testing.T) {
	resources := testInventory().Resources()

	kept := FilterResourcesByScope(resources, domain.Scope{TenantID: "t1"})
	assert.Equal(t, resources, kept)
}

func TestFilterResourcesByScope_SubscriptionAndGroupPredicates(t *testing.T) {
	resources := []domain.Resource{
		{ID: "/subscriptions/sub-1/resourceGroups/rg-1/providers/Microsoft.Compute/virtualMachines/vm1"},
		{ID: "/subscriptions/sub-2/resourceGroups/rg-9/providers/Microsoft.Compute/virtualMachines/vm2"},
	}

	bySub := FilterResourcesByScope(resources, domain.Scope{TenantID: "t1", SubscriptionIDs: []string{"sub-1"}})
	require.Len(t, bySub, 1)
	assert.Contains(t, bySub[0].ID, "vm1")

	byGroup := FilterResourcesByScope(resources, domain.Scope{
		TenantID:         "t1",
		ResourceGroupIDs: []string{"/subscriptions/sub-2/resourceGroups/rg-9"},
	})
	require.Len(t, byGroup, 1)
	assert.Contains(t, byGroup[0].ID, "vm2")
}

func TestFilterRecordsByScope_GlobalRecordsSurvive(t *testing.T) {
	records := []domain.ImpactedResource{
		{RecommendationID: "r1", ID: "/subscriptions/sub-1/resourceGroups/rg-1/providers/Microsoft.Compute/virtualMachines/vm1", Type: "microsoft.compute/virtualmachines"},
		{RecommendationID: "r2", ID: "/subscriptions/sub-2", Type: domain.GlobalResourceType},
		{RecommendationID: "r3", ID: "/subscriptions/sub-2/resourceGroups/rg-9/providers/Microsoft.Compute/virtualMachines/vm2", Type: "microsoft.compute/virtualmachines"},
	}
	scope := domain.Scope{TenantID: "t1", SubscriptionIDs: []string{"sub-1"}}

	kept := FilterRecordsByScope(records, scope)
	require.Len(t, kept, 2)
	assert.Equal(t, "r1", kept[0].RecommendationID)
	assert.Equal(t, "r2", kept[1].RecommendationID)
}

func TestFilterRecordsByScope_Idempotent(t *testing.T) {
	records := []domain.ImpactedResource{
		{RecommendationID: "r1", ID: "/subscriptions/sub-1/resourceGroups/rg-1/providers/Microsoft.Compute/virtualMachines/vm1", Type: "microsoft.compute/virtualmachines"},
		{RecommendationID: "r2", ID: "/subscriptions/sub-2", Type: domain.GlobalResourceType},
		{RecommendationID: "r3", ID: "/subscriptions/sub-3/resourceGroups/rg/providers/p/t/x", Type: "p/t"},
	}
	scope := domain.Scope{TenantID: "t1", SubscriptionIDs: []string{"sub-1"}}

	once := FilterRecordsByScope(records, scope)
	twice := FilterRecordsByScope(once, scope)
	assert.Equal(t, once, twice)
}

func TestFilterAdvisoriesByScope_GlobalRecordsSurvive(t *testing.T) {
	records := []domain.AdvisorRecommendation{
		{RecommendationID: "a1", ID: "/subscriptions/sub-2/resourceGroups/rg/providers/Microsoft.Web/sites/app", Type: "microsoft.web/sites"},
		{RecommendationID: "a2", ID: "/subscriptions/sub-2", Type: "Microsoft.Subscriptions/subscriptions"},
	}
	scope := domain.Scope{TenantID: "t1", SubscriptionIDs: []string{"sub-1"}}

	kept := FilterAdvisoriesByScope(records, scope)
	require.Len(t, kept, 1)
	assert.Equal(t, "a2", kept[0].RecommendationID)
}

func TestTagScope_CoversDirectAndGroupMembership(t *testing.T) {
	tags := NewTagScope(
		[]string{"/subscriptions/sub-1/resourceGroups/RG-1"},
		[]string{"/subscriptions/sub-2/resourceGroups/rg-2/providers/Microsoft.Web/sites/app"},
	)

	assert.True(t, tags.Covers("/subscriptions/sub-1/resourcegroups/rg-1/providers/Microsoft.Compute/virtualMachines/vm1"))
	assert.True(t, tags.Covers("/subscriptions/sub-2/resourceGroups/rg-2/providers/Microsoft.Web/sites/APP"))
	assert.False(t, tags.Covers("/subscriptions/sub-3/resourceGroups/rg-3/providers/Microsoft.Web/sites/other"))
}

func TestFilterRecordsByTags_GlobalRecordsSurvive(t *testing.T) {
	tags := NewTagScope([]string{"/subscriptions/sub-1/resourceGroups/rg-1"}, nil)
	records := []domain.ImpactedResource{
		{RecommendationID: "r1", ID: "/subscriptions/sub-1/resourceGroups/rg-1/providers/Microsoft.Compute/virtualMachines/vm1", Type: "microsoft.compute/virtualmachines"},
		{RecommendationID: "r2", ID: "/subscriptions/sub-1/resourceGroups/rg-2/providers/Microsoft.Compute/virtualMachines/vm2", Type: "microsoft.compute/virtualmachines"},
		{RecommendationID: "r3", ID: "/subscriptions/sub-1", Type: domain.GlobalResourceType},
	}

	kept := FilterRecordsByTags(records, tags)
	require.Len(t, kept, 2)
	assert.Equal(t, "r1", kept[0].RecommendationID)
	assert.Equal(t, "r3", kept[1].RecommendationID)
}

func TestTagMatchedResourceIDs_KeyFoldValueExact(t *testing.T) {
	resources := []domain.Resource{
		{ID: "/r1", Tags: map[string]string{"Env": "prod"}},
		{ID: "/r2", Tags: map[string]string{"env": "Prod"}},
		{ID: "/r3", Tags: map[string]string{"team": "data"}},
		{ID: "/r4"},
	}
	filters := []domain.TagFilter{{Key: "env", Value: "prod"}}

	ids := TagMatchedResourceIDs(resources, filters)
	assert.Equal(t, []string{"/r1"}, ids)
}
