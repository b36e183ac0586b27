package store

import "time"

// ResourceRow is one row of the Resource Graph inventory query.
type ResourceRow struct {
	ID             string
	Name           string
	Type           string
	Location       string
	SubscriptionID string
	ResourceGroup  string
	Tags           map[string]string
}

// QueryMatchRow is one row returned by an APRL recommendation query. Queries
// project a fixed column set; anything a query does not fill stays empty.
type QueryMatchRow struct {
	RecommendationID string
	Name             string
	ID               string
	Param1           string
	Param2           string
	Param3           string
	Param4           string
	Param5           string
	CheckName        string
	Selector         string
}

// TagPair is a tag name/value filter passed down to tag-scoping queries.
type TagPair struct {
	Key   string
	Value string
}

// RetirementRow is one service retirement event projected from the
// servicehealthresources table.
type RetirementRow struct {
	SubscriptionID  string
	TrackingID      string
	Status          string
	LastUpdateTime  time.Time
	StartTime       time.Time
	EndTime         time.Time
	Level           string
	Title           string
	Summary         string
	ImpactedService string
}

// AlertRow is one service-health activity log alert projected from the
// resources table.
type AlertRow struct {
	Name           string
	SubscriptionID string
	Enabled        bool
	EventType      string
	Services       []string
	Regions        []string
	ActionGroup    string
}
