package domain

// Resource is an immutable inventory snapshot of one Azure resource.
type Resource struct {
	ID             string
	Name           string
	Type           string
	Location       string
	SubscriptionID string
	ResourceGroup  string
	Tags           map[string]string
}

// Subscription identifies one subscription visible in the assessed tenant.
type Subscription struct {
	ID          string
	DisplayName string
}

// QueryMatch is one raw hit produced by executing a recommendation query.
type QueryMatch struct {
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
