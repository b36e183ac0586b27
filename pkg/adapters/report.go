package adapters

import (
	"github.com/de-tools/reliability-atlas/pkg/models/api"
	"github.com/de-tools/reliability-atlas/pkg/models/domain"
)

func MapImpactedResourceDomainToApi(r domain.ImpactedResource) api.ImpactedResource {
	return api.ImpactedResource{
		ValidationAction: r.ValidationAction,
		RecommendationID: r.RecommendationID,
		Name:             r.Name,
		ID:               r.ID,
		Type:             r.Type,
		Location:         r.Location,
		SubscriptionID:   r.SubscriptionID,
		ResourceGroup:    r.ResourceGroup,
		Param1:           r.Param1,
		Param2:           r.Param2,
		Param3:           r.Param3,
		Param4:           r.Param4,
		Param5:           r.Param5,
		CheckName:        r.CheckName,
		Selector:         r.Selector,
	}
}

func MapResourceTypeSummaryDomainToApi(s domain.ResourceTypeSummary) api.ResourceTypeSummary {
	available := "No"
	if s.CoveredByCatalog {
		available = "Yes"
	}
	return api.ResourceTypeSummary{
		Type:            s.Type,
		Count:           s.Count,
		Available:       available,
		AssessmentOwner: domain.SummaryAssessmentOwner,
		Status:          domain.SummaryStatus,
	}
}

func MapAdvisorRecommendationDomainToApi(r domain.AdvisorRecommendation) api.AdvisorRecommendation {
	return api.AdvisorRecommendation{
		RecommendationID: r.RecommendationID,
		Type:             r.Type,
		Name:             r.Name,
		ID:               r.ID,
		SubscriptionID:   r.SubscriptionID,
		ResourceGroup:    r.ResourceGroup,
		Location:         r.Location,
		Category:         r.Category,
		Impact:           r.Impact,
		Description:      r.Description,
	}
}

func MapServiceOutageDomainToApi(o domain.ServiceOutage) api.ServiceOutage {
	return api.ServiceOutage{
		TrackingID:       o.TrackingID,
		SubscriptionID:   o.SubscriptionID,
		Title:            o.Title,
		Summary:          o.Summary,
		Status:           o.Status,
		Level:            o.Level,
		ImpactedServices: o.ImpactedServices,
		StartTime:        o.StartTime,
		MitigationTime:   o.MitigationTime,
	}
}

func MapServiceRetirementDomainToApi(r domain.ServiceRetirement) api.ServiceRetirement {
	return api.ServiceRetirement{
		TrackingID:      r.TrackingID,
		SubscriptionID:  r.SubscriptionID,
		Status:          r.Status,
		LastUpdate:      r.LastUpdate,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		Level:           r.Level,
		Title:           r.Title,
		Summary:         r.Summary,
		ImpactedService: r.ImpactedService,
	}
}

func MapSupportTicketDomainToApi(t domain.SupportTicket) api.SupportTicket {
	return api.SupportTicket{
		TicketID:        t.TicketID,
		Severity:        t.Severity,
		Status:          t.Status,
		SupportPlan:     t.SupportPlan,
		CreatedDate:     t.CreatedDate,
		ModifiedDate:    t.ModifiedDate,
		Title:           t.Title,
		RelatedResource: t.RelatedResource,
	}
}

func MapServiceHealthAlertDomainToApi(a domain.ServiceHealthAlert) api.ServiceHealthAlert {
	return api.ServiceHealthAlert{
		Name:           a.Name,
		SubscriptionID: a.SubscriptionID,
		Enabled:        a.Enabled,
		EventType:      a.EventType,
		Services:       a.Services,
		Regions:        a.Regions,
		ActionGroup:    a.ActionGroup,
	}
}

func MapReportDomainToApi(r *domain.Report) *api.Report {
	out := &api.Report{
		Run: api.RunMetadata{
			RunID:             r.Run.RunID,
			TenantID:          r.Run.TenantID,
			StartedAt:         r.Run.StartedAt,
			DurationSeconds:   r.Run.Duration.Seconds(),
			SubscriptionCount: r.Run.SubscriptionCount,
			ResourceCount:     r.Run.ResourceCount,
		},
		ImpactedResources: make([]api.ImpactedResource, 0, len(r.ImpactedResources)),
		ResourceTypes:     make([]api.ResourceTypeSummary, 0, len(r.ResourceTypes)),
		Advisories:        make([]api.AdvisorRecommendation, 0, len(r.Advisories)),
		Outages:           make([]api.ServiceOutage, 0, len(r.Outages)),
		Retirements:       make([]api.ServiceRetirement, 0, len(r.Retirements)),
		SupportTickets:    make([]api.SupportTicket, 0, len(r.SupportTickets)),
		ServiceHealth:     make([]api.ServiceHealthAlert, 0, len(r.ServiceHealth)),
	}

	for _, rec := range r.ImpactedResources {
		out.ImpactedResources = append(out.ImpactedResources, MapImpactedResourceDomainToApi(rec))
	}
	for _, s := range r.ResourceTypes {
		out.ResourceTypes = append(out.ResourceTypes, MapResourceTypeSummaryDomainToApi(s))
	}
	for _, a := range r.Advisories {
		out.Advisories = append(out.Advisories, MapAdvisorRecommendationDomainToApi(a))
	}
	for _, o := range r.Outages {
		out.Outages = append(out.Outages, MapServiceOutageDomainToApi(o))
	}
	for _, ret := range r.Retirements {
		out.Retirements = append(out.Retirements, MapServiceRetirementDomainToApi(ret))
	}
	for _, t := range r.SupportTickets {
		out.SupportTickets = append(out.SupportTickets, MapSupportTicketDomainToApi(t))
	}
	for _, a := range r.ServiceHealth {
		out.ServiceHealth = append(out.ServiceHealth, MapServiceHealthAlertDomainToApi(a))
	}
	return out
}

func MapAssessmentRunDomainToApi(run domain.AssessmentRun) api.RunStatus {
	out := api.RunStatus{
		RunID:      run.RunID,
		Status:     string(run.Status),
		StartedAt:  run.StartedAt,
		FinishedAt: run.FinishedAt,
		Error:      run.Error,
	}
	if run.Report != nil {
		out.Report = MapReportDomainToApi(run.Report)
	}
	return out
}
