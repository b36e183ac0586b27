package domain

import "time"

// RunMetadata describes a single assessment run.
type RunMetadata struct {
	RunID             string
	TenantID          string
	StartedAt         time.Time
	Duration          time.Duration
	SubscriptionCount int
	ResourceCount     int
}

// Report is the combined output of one assessment run. All sections are
// transient; nothing survives the run that produced them.
type Report struct {
	Run               RunMetadata
	ImpactedResources []ImpactedResource
	ResourceTypes     []ResourceTypeSummary
	Advisories        []AdvisorRecommendation
	Outages           []ServiceOutage
	Retirements       []ServiceRetirement
	SupportTickets    []SupportTicket
	ServiceHealth     []ServiceHealthAlert
}
