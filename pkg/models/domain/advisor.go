package domain

// AdvisorCategoryHighAvailability is the Advisor category this assessment
// collects; every other category counts as "other recommendations".
const AdvisorCategoryHighAvailability = "HighAvailability"

// AdvisorRecommendation is one Advisor hit normalized into a flat record so
// it can join the combined set for scope filtering and summarization.
type AdvisorRecommendation struct {
	RecommendationID string
	Type             string
	Name             string
	ID               string
	SubscriptionID   string
	ResourceGroup    string
	Location         string
	Category         string
	Impact           string
	Description      string
}

// AdvisorMetadata classifies one Advisor recommendation type.
type AdvisorMetadata struct {
	ID       string
	Category string
}
