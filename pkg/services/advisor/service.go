package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/advisor/armadvisor"

	"github.com/de-tools/reliability-atlas/pkg/models/domain"
)

// Service fetches Azure Advisor recommendations for the assessed
// subscriptions.
type Service interface {
	// HighAvailability returns the normalized recommendations classified
	// under the high availability category.
	HighAvailability(ctx context.Context, subscriptionIDs []string) ([]domain.AdvisorRecommendation, error)
	// Metadata returns the {recommendation type id, category} pairs observed
	// across all categories, deduplicated by id.
	Metadata(ctx context.Context, subscriptionIDs []string) ([]domain.AdvisorMetadata, error)
}

type recommendationLister interface {
	ListRecommendations(ctx context.Context, subscriptionID string) ([]*armadvisor.ResourceRecommendationBase, error)
}

type service struct {
	lister recommendationLister
}

func NewService(cred azcore.TokenCredential) Service {
	return &service{lister: &azureRecommendations{cred: cred}}
}

func (s *service) HighAvailability(ctx context.Context, subscriptionIDs []string) ([]domain.AdvisorRecommendation, error) {
	var out []domain.AdvisorRecommendation
	for _, subscriptionID := range subscriptionIDs {
		items, err := s.lister.ListRecommendations(ctx, subscriptionID)
		if err != nil {
			return nil, fmt.Errorf("list advisor recommendations for %s: %w", subscriptionID, err)
		}
		for _, item := range items {
			rec, ok := NormalizeRecommendation(item)
			if !ok {
				continue
			}
			if !strings.EqualFold(rec.Category, domain.AdvisorCategoryHighAvailability) {
				continue
			}
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *service) Metadata(ctx context.Context, subscriptionIDs []string) ([]domain.AdvisorMetadata, error) {
	seen := make(map[string]struct{})
	var out []domain.AdvisorMetadata
	for _, subscriptionID := range subscriptionIDs {
		items, err := s.lister.ListRecommendations(ctx, subscriptionID)
		if err != nil {
			return nil, fmt.Errorf("list advisor metadata for %s: %w", subscriptionID, err)
		}
		for _, item := range items {
			if item == nil || item.Properties == nil || item.Properties.RecommendationTypeID == nil {
				continue
			}
			id := *item.Properties.RecommendationTypeID
			if id == "" {
				continue
			}
			key := strings.ToLower(id)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}

			category := ""
			if item.Properties.Category != nil {
				category = string(*item.Properties.Category)
			}
			out = append(out, domain.AdvisorMetadata{ID: id, Category: category})
		}
	}
	return out, nil
}

type azureRecommendations struct {
	cred azcore.TokenCredential
}

func (a *azureRecommendations) ListRecommendations(ctx context.Context, subscriptionID string) ([]*armadvisor.ResourceRecommendationBase, error) {
	client, err := armadvisor.NewRecommendationsClient(subscriptionID, a.cred, nil)
	if err != nil {
		return nil, fmt.Errorf("create advisor client: %w", err)
	}

	var items []*armadvisor.ResourceRecommendationBase
	pager := client.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("page advisor recommendations: %w", err)
		}
		items = append(items, page.Value...)
	}
	return items, nil
}
