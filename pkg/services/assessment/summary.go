package assessment

import (
	"sort"
	"strings"

	"github.com/de-tools/reliability-atlas/pkg/models/domain"
	"github.com/de-tools/reliability-atlas/pkg/services/catalog"
)

// SummarizeResourceTypes groups the combined record set by resource type.
// The three inputs are disjoint record sets, so plain counting never double
// counts. Types are normalized to lower case and the output is sorted for a
// stable report.
func SummarizeResourceTypes(
	impacted []domain.ImpactedResource,
	validation []domain.ImpactedResource,
	advisories []domain.AdvisorRecommendation,
	cat catalog.Service,
) []domain.ResourceTypeSummary {
	counts := make(map[string]int)
	for _, rec := range impacted {
		counts[strings.ToLower(rec.Type)]++
	}
	for _, rec := range validation {
		counts[strings.ToLower(rec.Type)]++
	}
	for _, rec := range advisories {
		counts[strings.ToLower(rec.Type)]++
	}

	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Strings(types)

	summaries := make([]domain.ResourceTypeSummary, 0, len(types))
	for _, t := range types {
		summaries = append(summaries, domain.ResourceTypeSummary{
			Type:             t,
			Count:            counts[t],
			CoveredByCatalog: cat.CoveredByCatalog(t),
		})
	}
	return summaries
}
