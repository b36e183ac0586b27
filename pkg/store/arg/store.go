package arg

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resourcegraph/armresourcegraph"

	"github.com/de-tools/reliability-atlas/pkg/models/store"
)

const defaultPageSize = 1000

// Store executes Resource Graph queries and decodes the result rows into
// typed records. Query texts live here next to the decoding, the same way a
// SQL store keeps its statements.
type Store interface {
	QueryResources(ctx context.Context, subscriptionIDs []string) ([]store.ResourceRow, error)
	QueryRecommendationMatches(ctx context.Context, query string, subscriptionIDs []string) ([]store.QueryMatchRow, error)
	QueryRetirements(ctx context.Context, subscriptionIDs []string) ([]store.RetirementRow, error)
	QueryServiceHealthAlerts(ctx context.Context, subscriptionIDs []string) ([]store.AlertRow, error)
	QueryTaggedResourceGroupIDs(ctx context.Context, subscriptionIDs []string, tags []store.TagPair) ([]string, error)
	QueryTaggedResourceIDs(ctx context.Context, subscriptionIDs []string, tags []store.TagPair) ([]string, error)
}

// querier is the slice of the generated Resource Graph client the store uses.
type querier interface {
	Resources(ctx context.Context, query armresourcegraph.QueryRequest, options *armresourcegraph.ClientResourcesOptions) (armresourcegraph.ClientResourcesResponse, error)
}

type argStore struct {
	client   querier
	pageSize int32
}

func NewStore(cred azcore.TokenCredential) (Store, error) {
	client, err := armresourcegraph.NewClient(cred, nil)
	if err != nil {
		return nil, fmt.Errorf("create resource graph client: %w", err)
	}
	return &argStore{client: client, pageSize: defaultPageSize}, nil
}

// execute runs one query across the given subscriptions, following skip
// tokens until the result set is exhausted.
func (s *argStore) execute(ctx context.Context, query string, subscriptionIDs []string) ([]map[string]any, error) {
	subs := make([]*string, len(subscriptionIDs))
	for i := range subscriptionIDs {
		subs[i] = &subscriptionIDs[i]
	}

	format := armresourcegraph.ResultFormatObjectArray
	var rows []map[string]any
	var skipToken *string
	for {
		request := armresourcegraph.QueryRequest{
			Query:         to.Ptr(query),
			Subscriptions: subs,
			Options: &armresourcegraph.QueryRequestOptions{
				ResultFormat: &format,
				Top:          to.Ptr(s.pageSize),
				SkipToken:    skipToken,
			},
		}

		resp, err := s.client.Resources(ctx, request, nil)
		if err != nil {
			return nil, fmt.Errorf("execute resource graph query: %w", err)
		}

		rows = append(rows, objectRows(resp.Data)...)
		if resp.SkipToken == nil || *resp.SkipToken == "" {
			return rows, nil
		}
		skipToken = resp.SkipToken
	}
}
