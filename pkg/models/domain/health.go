package domain

import "time"

// ServiceOutage is one service issue event affecting a subscription.
type ServiceOutage struct {
	TrackingID       string
	SubscriptionID   string
	Title            string
	Summary          string
	Status           string
	Level            string
	ImpactedServices []string
	StartTime        time.Time
	MitigationTime   *time.Time
}

// ServiceRetirement is one announced retirement affecting a subscription.
type ServiceRetirement struct {
	TrackingID      string
	SubscriptionID  string
	Status          string
	LastUpdate      time.Time
	StartTime       time.Time
	EndTime         time.Time
	Level           string
	Title           string
	Summary         string
	ImpactedService string
}

// ServiceHealthAlert is one configured service-health activity log alert.
type ServiceHealthAlert struct {
	Name           string
	SubscriptionID string
	Enabled        bool
	EventType      string
	Services       []string
	Regions        []string
	ActionGroup    string
}
