package store

// CatalogEntry mirrors a single APRL recommendation definition as it appears
// in the published recommendations file (JSON or YAML). Field names follow
// the library's own schema.
type CatalogEntry struct {
	AprlGUID                    string `json:"aprlGuid" yaml:"aprlGuid"`
	RecommendationTypeID        string `json:"recommendationTypeId" yaml:"recommendationTypeId"`
	RecommendationControl       string `json:"recommendationControl" yaml:"recommendationControl"`
	RecommendationImpact        string `json:"recommendationImpact" yaml:"recommendationImpact"`
	RecommendationResourceType  string `json:"recommendationResourceType" yaml:"recommendationResourceType"`
	RecommendationMetadataState string `json:"recommendationMetadataState" yaml:"recommendationMetadataState"`
	Description                 string `json:"description" yaml:"description"`
	LongDescription             string `json:"longDescription" yaml:"longDescription"`
	PotentialBenefits           string `json:"potentialBenefits" yaml:"potentialBenefits"`
	PgVerified                  bool   `json:"pgVerified" yaml:"pgVerified"`
	AutomationAvailable         bool   `json:"automationAvailable" yaml:"automationAvailable"`
	Query                       string `json:"query" yaml:"query"`
}

// SpecialTypeEntry is one row of the in-scope resource types sheet. Types
// flagged as unavailable in both APRL and Advisor form the "special types"
// set consumed by the validation builder.
type SpecialTypeEntry struct {
	ResourceType       string
	InScope            bool
	InAprlAndOrAdvisor bool
}
