package api

import "time"

type ImpactedResource struct {
	ValidationAction string `json:"validationAction"`
	RecommendationID string `json:"recommendationId"`
	Name             string `json:"name"`
	ID               string `json:"id"`
	Type             string `json:"type"`
	Location         string `json:"location"`
	SubscriptionID   string `json:"subscriptionId"`
	ResourceGroup    string `json:"resourceGroup"`
	Param1           string `json:"param1"`
	Param2           string `json:"param2"`
	Param3           string `json:"param3"`
	Param4           string `json:"param4"`
	Param5           string `json:"param5"`
	CheckName        string `json:"checkName"`
	Selector         string `json:"selector"`
}

type ResourceTypeSummary struct {
	Type            string `json:"resourceType"`
	Count           int    `json:"numberOfResources"`
	Available       string `json:"availableInAprlOrAdvisor"`
	AssessmentOwner string `json:"assessmentOwner"`
	Status          string `json:"status"`
}

type AdvisorRecommendation struct {
	RecommendationID string `json:"recommendationId"`
	Type             string `json:"type"`
	Name             string `json:"name"`
	ID               string `json:"id"`
	SubscriptionID   string `json:"subscriptionId"`
	ResourceGroup    string `json:"resourceGroup"`
	Location         string `json:"location"`
	Category         string `json:"category"`
	Impact           string `json:"impact"`
	Description      string `json:"description"`
}

type ServiceOutage struct {
	TrackingID       string     `json:"trackingId"`
	SubscriptionID   string     `json:"subscriptionId"`
	Title            string     `json:"title"`
	Summary          string     `json:"summary"`
	Status           string     `json:"status"`
	Level            string     `json:"level"`
	ImpactedServices []string   `json:"impactedServices"`
	StartTime        time.Time  `json:"startTime"`
	MitigationTime   *time.Time `json:"mitigationTime,omitempty"`
}

type ServiceRetirement struct {
	TrackingID      string    `json:"trackingId"`
	SubscriptionID  string    `json:"subscriptionId"`
	Status          string    `json:"status"`
	LastUpdate      time.Time `json:"lastUpdateTime"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	Level           string    `json:"level"`
	Title           string    `json:"title"`
	Summary         string    `json:"summary"`
	ImpactedService string    `json:"impactedService"`
}

type SupportTicket struct {
	TicketID        string    `json:"ticketId"`
	Severity        string    `json:"severity"`
	Status          string    `json:"status"`
	SupportPlan     string    `json:"supportPlanType"`
	CreatedDate     time.Time `json:"createdDate"`
	ModifiedDate    time.Time `json:"modifiedDate"`
	Title           string    `json:"title"`
	RelatedResource string    `json:"relatedResource"`
}

type ServiceHealthAlert struct {
	Name           string   `json:"name"`
	SubscriptionID string   `json:"subscriptionId"`
	Enabled        bool     `json:"enabled"`
	EventType      string   `json:"eventType"`
	Services       []string `json:"services"`
	Regions        []string `json:"regions"`
	ActionGroup    string   `json:"actionGroup"`
}

type RunMetadata struct {
	RunID             string    `json:"runId"`
	TenantID          string    `json:"tenantId"`
	StartedAt         time.Time `json:"startedAt"`
	DurationSeconds   float64   `json:"durationSeconds"`
	SubscriptionCount int       `json:"subscriptionCount"`
	ResourceCount     int       `json:"resourceCount"`
}

// Report is the combined assessment artifact. Section names are part of the
// output contract and must not change.
type Report struct {
	Run               RunMetadata             `json:"runMetadata"`
	ImpactedResources []ImpactedResource      `json:"impactedResources"`
	ResourceTypes     []ResourceTypeSummary   `json:"resourceType"`
	Advisories        []AdvisorRecommendation `json:"advisory"`
	Outages           []ServiceOutage         `json:"outages"`
	Retirements       []ServiceRetirement     `json:"retirements"`
	SupportTickets    []SupportTicket         `json:"supportTickets"`
	ServiceHealth     []ServiceHealthAlert    `json:"serviceHealth"`
}
