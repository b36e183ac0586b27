package domain

import "strings"

// RecommendationState is the lifecycle state of a catalog entry.
type RecommendationState string

const (
	StateActive   RecommendationState = "Active"
	StateRetired  RecommendationState = "Retired"
	StateDisabled RecommendationState = "Disabled"
)

// RecommendationDefinition is one APRL catalog entry, loaded once per run.
type RecommendationDefinition struct {
	GUID                 string
	RecommendationTypeID string
	ResourceType         string
	Category             string
	Impact               string
	State                RecommendationState
	AutomationAvailable  bool
	Query                string
	Description          string
	LongDescription      string
	PotentialBenefits    string
	PgVerified           bool
}

// IsActive reports whether the entry is in the Active state.
func (d RecommendationDefinition) IsActive() bool {
	return strings.EqualFold(string(d.State), string(StateActive))
}

// AppliesTo reports whether the entry targets the given resource type.
func (d RecommendationDefinition) AppliesTo(resourceType string) bool {
	return strings.EqualFold(d.ResourceType, resourceType)
}

// RequiresManualValidation reports whether the entry is a placeholder manual
// review item: no automation and no Advisor recommendation type attached.
func (d RecommendationDefinition) RequiresManualValidation() bool {
	return !d.AutomationAvailable && d.RecommendationTypeID == ""
}

// HasAutomationQuery reports whether the entry carries an executable query.
func (d RecommendationDefinition) HasAutomationQuery() bool {
	return d.AutomationAvailable && strings.TrimSpace(d.Query) != ""
}

// SpecialType is a resource type tracked on the in-scope sheet. In-scope
// types without APRL or Advisor coverage form the special-types set used by
// the validation builder and the summarizer.
type SpecialType struct {
	ResourceType string
	InScope      bool
	Covered      bool
}
