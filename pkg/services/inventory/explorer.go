package inventory

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/rs/zerolog"

	"github.com/de-tools/reliability-atlas/pkg/adapters"
	"github.com/de-tools/reliability-atlas/pkg/models/domain"
	"github.com/de-tools/reliability-atlas/pkg/store/arg"
)

// Explorer resolves the subscriptions a run covers and loads their resource
// inventory from Resource Graph.
type Explorer interface {
	ResolveSubscriptions(ctx context.Context, scope domain.Scope) ([]domain.Subscription, error)
	ListResources(ctx context.Context, subscriptionIDs []string) ([]domain.Resource, error)
	TaggedResourceGroupIDs(ctx context.Context, subscriptionIDs []string, tags []domain.TagFilter) ([]string, error)
	TaggedResourceIDs(ctx context.Context, subscriptionIDs []string, tags []domain.TagFilter) ([]string, error)
}

type subscriptionLister interface {
	ListSubscriptions(ctx context.Context) ([]domain.Subscription, error)
}

type explorer struct {
	subscriptions subscriptionLister
	graph         arg.Store
}

func NewExplorer(cred azcore.TokenCredential, graph arg.Store) (Explorer, error) {
	client, err := armsubscriptions.NewClient(cred, nil)
	if err != nil {
		return nil, fmt.Errorf("create subscriptions client: %w", err)
	}
	return &explorer{
		subscriptions: &azureSubscriptions{client: client},
		graph:         graph,
	}, nil
}

// ResolveSubscriptions turns the scope into the concrete subscription set of
// a run. An explicit subscription scope wins; otherwise every subscription
// visible to the credential is assessed.
func (e *explorer) ResolveSubscriptions(ctx context.Context, scope domain.Scope) ([]domain.Subscription, error) {
	scoped := scope.Subscriptions()
	if len(scoped) == 0 {
		subs, err := e.subscriptions.ListSubscriptions(ctx)
		if err != nil {
			return nil, fmt.Errorf("list tenant subscriptions: %w", err)
		}
		return subs, nil
	}

	names := make(map[string]string)
	visible, err := e.subscriptions.ListSubscriptions(ctx)
	if err != nil {
		// The scope already names the subscriptions; display names are
		// cosmetic here.
		zerolog.Ctx(ctx).Warn().Err(err).Msg("could not resolve subscription display names")
	}
	for _, sub := range visible {
		names[sub.ID] = sub.DisplayName
	}

	subs := make([]domain.Subscription, 0, len(scoped))
	for _, id := range scoped {
		subs = append(subs, domain.Subscription{ID: id, DisplayName: names[id]})
	}
	return subs, nil
}

func (e *explorer) ListResources(ctx context.Context, subscriptionIDs []string) ([]domain.Resource, error) {
	rows, err := e.graph.QueryResources(ctx, subscriptionIDs)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	return adapters.MapStoreResourceRowsToDomain(rows), nil
}

func (e *explorer) TaggedResourceGroupIDs(ctx context.Context, subscriptionIDs []string, tags []domain.TagFilter) ([]string, error) {
	ids, err := e.graph.QueryTaggedResourceGroupIDs(ctx, subscriptionIDs, adapters.MapTagFiltersDomainToStore(tags))
	if err != nil {
		return nil, fmt.Errorf("list tagged resource groups: %w", err)
	}
	return ids, nil
}

func (e *explorer) TaggedResourceIDs(ctx context.Context, subscriptionIDs []string, tags []domain.TagFilter) ([]string, error) {
	ids, err := e.graph.QueryTaggedResourceIDs(ctx, subscriptionIDs, adapters.MapTagFiltersDomainToStore(tags))
	if err != nil {
		return nil, fmt.Errorf("list tagged resources: %w", err)
	}
	return ids, nil
}

type azureSubscriptions struct {
	client *armsubscriptions.Client
}

func (a *azureSubscriptions) ListSubscriptions(ctx context.Context) ([]domain.Subscription, error) {
	var subs []domain.Subscription
	pager := a.client.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list subscriptions: %w", err)
		}
		for _, sub := range page.Value {
			if sub == nil || sub.SubscriptionID == nil {
				continue
			}
			item := domain.Subscription{ID: *sub.SubscriptionID}
			if sub.DisplayName != nil {
				item.DisplayName = *sub.DisplayName
			}
			subs = append(subs, item)
		}
	}
	return subs, nil
}
