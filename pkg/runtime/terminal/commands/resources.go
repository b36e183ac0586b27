package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/reliability-atlas/pkg/models/domain"
	"github.com/de-tools/reliability-atlas/pkg/services/azure"
	"github.com/de-tools/reliability-atlas/pkg/services/inventory"
	"github.com/de-tools/reliability-atlas/pkg/store/arg"
)

type ResourcesCmd struct {
	profile       string
	tenantID      string
	subscriptions []string
}

func NewResourcesCmd() *cobra.Command {
	rc := &ResourcesCmd{}
	cmd := &cobra.Command{
		Use:   "resources",
		Short: "List resources visible in the assessment scope",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.profile, "profile", "", "Azure config profile to authenticate with")
	cmd.Flags().StringVar(&rc.tenantID, "tenant", "", "Tenant id (defaults to the profile tenant)")
	cmd.Flags().StringSliceVar(&rc.subscriptions, "subscription", nil, "Subscription id to list (repeatable)")

	return cmd
}

func (rc *ResourcesCmd) run(cmd *cobra.Command, _ []string) error {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	azureCfg, err := azure.LoadConfig(rc.profile)
	if err != nil {
		return fmt.Errorf("load azure profile: %w", err)
	}
	tenant := rc.tenantID
	if tenant == "" {
		tenant = azureCfg.TenantID
	}

	graph, err := arg.NewStore(azureCfg.Credentials)
	if err != nil {
		return fmt.Errorf("create resource graph store: %w", err)
	}
	explorer, err := inventory.NewExplorer(azureCfg.Credentials, graph)
	if err != nil {
		return fmt.Errorf("create inventory explorer: %w", err)
	}

	scope := domain.Scope{TenantID: tenant, SubscriptionIDs: rc.subscriptions}
	subscriptions, err := explorer.ResolveSubscriptions(ctx, scope)
	if err != nil {
		return fmt.Errorf("resolve subscriptions: %w", err)
	}
	ids := make([]string, 0, len(subscriptions))
	for _, sub := range subscriptions {
		ids = append(ids, sub.ID)
	}

	resources, err := explorer.ListResources(ctx, ids)
	if err != nil {
		return fmt.Errorf("list resources: %w", err)
	}
	if len(resources) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No resources found in scope")
		return nil
	}

	for _, r := range resources {
		fmt.Fprintf(cmd.OutOrStdout(), "%-50s %-16s %s\n", r.Type, r.Location, r.ID)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d resources across %d subscriptions\n", len(resources), len(subscriptions))
	return nil
}
