package assessment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/de-tools/reliability-atlas/pkg/adapters"
	"github.com/de-tools/reliability-atlas/pkg/models/domain"
	"github.com/de-tools/reliability-atlas/pkg/services/advisor"
	"github.com/de-tools/reliability-atlas/pkg/services/catalog"
	"github.com/de-tools/reliability-atlas/pkg/services/health"
	"github.com/de-tools/reliability-atlas/pkg/services/inventory"
	"github.com/de-tools/reliability-atlas/pkg/services/support"
	"github.com/de-tools/reliability-atlas/pkg/store/arg"
)

// Service runs the whole assessment pipeline for one scope and assembles the
// combined report. The pipeline is a single-threaded batch: indexes first,
// then one pass per external source, pure in-memory transforms in between.
type Service interface {
	Run(ctx context.Context, scope domain.Scope) (*domain.Report, error)
}

type service struct {
	catalog  catalog.Service
	explorer inventory.Explorer
	graph    arg.Store
	advisor  advisor.Service
	health   health.Service
	support  support.Service
}

func NewService(
	cat catalog.Service,
	explorer inventory.Explorer,
	graph arg.Store,
	adv advisor.Service,
	hlth health.Service,
	sup support.Service,
) Service {
	return &service{
		catalog:  cat,
		explorer: explorer,
		graph:    graph,
		advisor:  adv,
		health:   hlth,
		support:  sup,
	}
}

func (s *service) Run(ctx context.Context, scope domain.Scope) (*domain.Report, error) {
	if scope.TenantID == "" {
		return nil, fmt.Errorf("tenant id is required")
	}

	log := zerolog.Ctx(ctx)
	started := time.Now().UTC()
	runID := uuid.NewString()
	log.Info().Str("run_id", runID).Str("tenant", scope.TenantID).Msg("assessment run started")

	subscriptions, err := s.explorer.ResolveSubscriptions(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("resolve subscriptions: %w", err)
	}
	if len(subscriptions) == 0 {
		return nil, fmt.Errorf("no subscriptions in scope for tenant %s", scope.TenantID)
	}
	subscriptionIDs := make([]string, 0, len(subscriptions))
	for _, sub := range subscriptions {
		subscriptionIDs = append(subscriptionIDs, sub.ID)
	}

	resources, err := s.explorer.ListResources(ctx, subscriptionIDs)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}
	index := inventory.NewIndex(resources)
	inScope := FilterResourcesByScope(resources, scope)
	log.Info().
		Int("subscriptions", len(subscriptions)).
		Int("resources", len(resources)).
		Int("in_scope", len(inScope)).
		Msg("inventory loaded")

	matches := s.collectMatches(ctx, subscriptionIDs)
	impacted := BuildImpactedResources(matches, index, s.catalog)
	impacted = FilterRecordsByScope(impacted, scope)

	advisories := s.collectAdvisories(ctx, subscriptionIDs, index)
	advisories = FilterAdvisoriesByScope(advisories, scope)

	if scope.HasTags() {
		tagScope, err := s.resolveTagScope(ctx, subscriptionIDs, scope, resources)
		if err != nil {
			return nil, err
		}
		impacted = FilterRecordsByTags(impacted, tagScope)
		advisories = FilterAdvisoriesByTags(advisories, tagScope)
	}

	candidates := ValidationCandidates(impacted, inScope, index)
	validation := BuildValidationResources(ctx, candidates, impacted, s.catalog)
	summaries := SummarizeResourceTypes(impacted, validation, advisories, s.catalog)

	report := &domain.Report{
		Run: domain.RunMetadata{
			RunID:             runID,
			TenantID:          scope.TenantID,
			StartedAt:         started,
			SubscriptionCount: len(subscriptions),
			ResourceCount:     len(inScope),
		},
		ImpactedResources: append(impacted, validation...),
		ResourceTypes:     summaries,
		Advisories:        advisories,
	}
	s.collectHealthSections(ctx, subscriptionIDs, report)

	report.Run.Duration = time.Since(started)
	log.Info().
		Str("run_id", runID).
		Int("impacted", len(report.ImpactedResources)).
		Int("advisories", len(report.Advisories)).
		Dur("duration", report.Run.Duration).
		Msg("assessment run finished")
	return report, nil
}

// collectMatches executes every active automation query. A failing query is
// logged and skipped; one bad catalog entry must not sink the run.
func (s *service) collectMatches(ctx context.Context, subscriptionIDs []string) []domain.QueryMatch {
	log := zerolog.Ctx(ctx)
	var matches []domain.QueryMatch
	for _, def := range s.catalog.AutomationQueries() {
		rows, err := s.graph.QueryRecommendationMatches(ctx, def.Query, subscriptionIDs)
		if err != nil {
			log.Warn().Err(err).Str("recommendation", def.GUID).Msg("recommendation query failed")
			continue
		}
		for _, row := range rows {
			match := adapters.MapStoreQueryMatchRowToDomain(row)
			if match.RecommendationID == "" {
				match.RecommendationID = def.GUID
			}
			matches = append(matches, match)
		}
	}
	return matches
}

// collectAdvisories fetches and enriches the Advisor section. Advisor being
// unreachable degrades to an empty section, not a failed run.
func (s *service) collectAdvisories(ctx context.Context, subscriptionIDs []string, index *inventory.Index) []domain.AdvisorRecommendation {
	log := zerolog.Ctx(ctx)

	advisories, err := s.advisor.HighAvailability(ctx, subscriptionIDs)
	if err != nil {
		log.Warn().Err(err).Msg("advisor fetch failed, advisory section left empty")
		return nil
	}
	advisories = EnrichAdvisories(advisories, index)

	meta, err := s.advisor.Metadata(ctx, subscriptionIDs)
	if err != nil {
		log.Warn().Err(err).Msg("advisor metadata fetch failed")
		return advisories
	}
	if others := advisor.OtherRecommendations(s.catalog.Definitions(), meta); len(others) > 0 {
		log.Info().Int("count", len(others)).Msg("catalog recommendations outside the high availability category")
		log.Debug().Strs("recommendations", others).Msg("other recommendations")
	}
	return advisories
}

func (s *service) resolveTagScope(ctx context.Context, subscriptionIDs []string, scope domain.Scope, resources []domain.Resource) (*TagScope, error) {
	groupIDs, err := s.explorer.TaggedResourceGroupIDs(ctx, subscriptionIDs, scope.Tags)
	if err != nil {
		return nil, fmt.Errorf("resolve tagged resource groups: %w", err)
	}
	resourceIDs, err := s.explorer.TaggedResourceIDs(ctx, subscriptionIDs, scope.Tags)
	if err != nil {
		return nil, fmt.Errorf("resolve tagged resources: %w", err)
	}
	resourceIDs = append(resourceIDs, TagMatchedResourceIDs(resources, scope.Tags)...)
	return NewTagScope(groupIDs, resourceIDs), nil
}

// collectHealthSections fills the outage, retirement, service health and
// support ticket sections. Each section degrades to empty on failure.
func (s *service) collectHealthSections(ctx context.Context, subscriptionIDs []string, report *domain.Report) {
	log := zerolog.Ctx(ctx)

	outages, err := s.health.Outages(ctx, subscriptionIDs)
	if err != nil {
		log.Warn().Err(err).Msg("outage fetch failed, section left empty")
	}
	report.Outages = outages

	retirements, err := s.health.Retirements(ctx, subscriptionIDs)
	if err != nil {
		log.Warn().Err(err).Msg("retirement fetch failed, section left empty")
	}
	report.Retirements = retirements

	alerts, err := s.health.Alerts(ctx, subscriptionIDs)
	if err != nil {
		log.Warn().Err(err).Msg("service health alert fetch failed, section left empty")
	}
	report.ServiceHealth = alerts

	tickets, err := s.support.Tickets(ctx, subscriptionIDs)
	if err != nil {
		log.Warn().Err(err).Msg("support ticket fetch failed, section left empty")
	}
	report.SupportTickets = tickets
}
