package catalog

import (
	"strings"

	"github.com/de-tools/reliability-atlas/pkg/models/domain"
)

// Service answers recommendation catalog lookups for the assessment pipeline.
// All indexes are built once at construction; lookups are read-only.
type Service interface {
	// Definitions returns every loaded catalog entry in load order.
	Definitions() []domain.RecommendationDefinition
	// Lookup finds an entry by its APRL GUID, case-insensitively.
	Lookup(guid string) (domain.RecommendationDefinition, bool)
	// AutomationQueries returns the active entries that carry an executable
	// resource graph query.
	AutomationQueries() []domain.RecommendationDefinition
	// ManualEntriesForType returns the active placeholder entries for the
	// given resource type that require a manual review.
	ManualEntriesForType(resourceType string) []domain.RecommendationDefinition
	// IsSpecialType reports whether the type is in assessment scope but has
	// no APRL or Advisor coverage.
	IsSpecialType(resourceType string) bool
	// CoveredByCatalog is the inverse of IsSpecialType, shaped for the
	// resource type summary.
	CoveredByCatalog(resourceType string) bool
}

type service struct {
	defs    []domain.RecommendationDefinition
	byGUID  map[string]domain.RecommendationDefinition
	byType  map[string][]domain.RecommendationDefinition
	special map[string]struct{}
}

// NewService indexes catalog entries by GUID and by resource type. Duplicate
// GUIDs keep the last entry seen, matching the upstream sheet behavior.
func NewService(defs []domain.RecommendationDefinition, specialTypes []domain.SpecialType) Service {
	svc := &service{
		defs:    defs,
		byGUID:  make(map[string]domain.RecommendationDefinition, len(defs)),
		byType:  make(map[string][]domain.RecommendationDefinition),
		special: make(map[string]struct{}),
	}
	for _, def := range defs {
		if def.GUID != "" {
			svc.byGUID[strings.ToLower(def.GUID)] = def
		}
		if def.ResourceType != "" {
			key := strings.ToLower(def.ResourceType)
			svc.byType[key] = append(svc.byType[key], def)
		}
	}
	for _, st := range specialTypes {
		if st.ResourceType != "" && st.InScope && !st.Covered {
			svc.special[strings.ToLower(st.ResourceType)] = struct{}{}
		}
	}
	return svc
}

func (s *service) Definitions() []domain.RecommendationDefinition {
	return s.defs
}

func (s *service) Lookup(guid string) (domain.RecommendationDefinition, bool) {
	def, ok := s.byGUID[strings.ToLower(guid)]
	return def, ok
}

func (s *service) AutomationQueries() []domain.RecommendationDefinition {
	var queries []domain.RecommendationDefinition
	for _, def := range s.defs {
		if def.IsActive() && def.HasAutomationQuery() {
			queries = append(queries, def)
		}
	}
	return queries
}

func (s *service) ManualEntriesForType(resourceType string) []domain.RecommendationDefinition {
	var entries []domain.RecommendationDefinition
	for _, def := range s.byType[strings.ToLower(resourceType)] {
		if def.IsActive() && def.RequiresManualValidation() {
			entries = append(entries, def)
		}
	}
	return entries
}

func (s *service) IsSpecialType(resourceType string) bool {
	_, ok := s.special[strings.ToLower(resourceType)]
	return ok
}

func (s *service) CoveredByCatalog(resourceType string) bool {
	return !s.IsSpecialType(resourceType)
}
