package api

import "time"

// RunRequest is the body of POST /api/v1/runs.
type RunRequest struct {
	TenantID         string   `json:"tenantId"`
	SubscriptionIDs  []string `json:"subscriptionIds,omitempty"`
	ResourceGroupIDs []string `json:"resourceGroupIds,omitempty"`
	ResourceIDs      []string `json:"resourceIds,omitempty"`
	Tags             []string `json:"tags,omitempty"`
}

// RunStatus describes the lifecycle of a run started through the API.
type RunStatus struct {
	RunID      string     `json:"runId"`
	Status     string     `json:"status"`
	StartedAt  time.Time  `json:"startedAt"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
	Error      string     `json:"error,omitempty"`
	Report     *Report    `json:"report,omitempty"`
}

// CatalogEntry is the API projection of one loaded catalog definition.
type CatalogEntry struct {
	GUID                 string `json:"aprlGuid"`
	RecommendationTypeID string `json:"recommendationTypeId,omitempty"`
	ResourceType         string `json:"recommendationResourceType"`
	Category             string `json:"recommendationControl"`
	Impact               string `json:"recommendationImpact"`
	State                string `json:"recommendationMetadataState"`
	AutomationAvailable  bool   `json:"automationAvailable"`
	Description          string `json:"description"`
}
