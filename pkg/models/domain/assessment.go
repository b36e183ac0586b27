package domain

// DefaultSelector is the catalog's literal default for query matches that do
// not set an explicit selector.
const DefaultSelector = "APRL"

// GlobalResourceType marks records that describe a whole-subscription impact
// rather than a concrete resource. Such records bypass every scope filter.
const GlobalResourceType = "microsoft.subscriptions/subscriptions"

// Validation actions attached to impacted and validation records. Impacted
// records always carry ValidationActionQueries; validation records carry one
// of the manual-review actions selected in the validation builder.
const (
	ValidationActionQueries          = "APRL - Queries"
	ValidationActionUnderDevelopment = "Validate manually - query under development"
	ValidationActionCannotValidate   = "Validate manually - cannot be validated with ARG"
	ValidationActionNoAutomation     = "Validate manually - automation unavailable"
	ValidationActionNoQuery          = "Validate manually - query does not exist"
	ValidationActionUnsupported      = "Validate manually or remove - type not covered by APRL/Advisor"
)

// ImpactedResource is one resource/recommendation pairing in the report.
// Validation records share the shape and differ only in ValidationAction.
type ImpactedResource struct {
	ValidationAction string
	RecommendationID string
	Name             string
	ID               string
	Type             string
	Location         string
	SubscriptionID   string
	ResourceGroup    string
	Param1           string
	Param2           string
	Param3           string
	Param4           string
	Param5           string
	CheckName        string
	Selector         string
}

// Output schema constants of the resource type summary. They are fixed
// literals, not computed values.
const (
	SummaryAssessmentOwner = "APRL"
	SummaryStatus          = "Active"
)

// ResourceTypeSummary aggregates the combined record set by resource type.
type ResourceTypeSummary struct {
	Type             string
	Count            int
	CoveredByCatalog bool
}
