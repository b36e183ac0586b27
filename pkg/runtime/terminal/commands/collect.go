package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/reliability-atlas/pkg/adapters"
	"github.com/de-tools/reliability-atlas/pkg/models/domain"
	"github.com/de-tools/reliability-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/reliability-atlas/pkg/services/advisor"
	"github.com/de-tools/reliability-atlas/pkg/services/assessment"
	"github.com/de-tools/reliability-atlas/pkg/services/azure"
	catalogsvc "github.com/de-tools/reliability-atlas/pkg/services/catalog"
	"github.com/de-tools/reliability-atlas/pkg/services/health"
	"github.com/de-tools/reliability-atlas/pkg/services/inventory"
	"github.com/de-tools/reliability-atlas/pkg/services/support"
	"github.com/de-tools/reliability-atlas/pkg/store/arg"
	catalogstore "github.com/de-tools/reliability-atlas/pkg/store/catalog"
)

type CollectCmd struct {
	configPath      string
	profile         string
	tenantID        string
	subscriptions   []string
	resourceGroups  []string
	tags            []string
	recommendations string
	specialTypes    string
	outputDir       string
	reporter        *export.Reporter
}

func NewCollectCmd(reporter *export.Reporter) *cobra.Command {
	cc := &CollectCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Run the reliability assessment and export the report",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.configPath, "config", "", "Path to the run configuration YAML")
	cmd.Flags().StringVar(&cc.profile, "profile", "", "Azure config profile to authenticate with")
	cmd.Flags().StringVar(&cc.tenantID, "tenant", "", "Tenant id (overrides the configuration file)")
	cmd.Flags().StringSliceVar(&cc.subscriptions, "subscription", nil, "Subscription id to assess (repeatable)")
	cmd.Flags().StringSliceVar(&cc.resourceGroups, "resource-group", nil, "Resource group id to assess (repeatable)")
	cmd.Flags().StringSliceVar(&cc.tags, "tag", nil, "Tag filter in key=value form (repeatable)")
	cmd.Flags().StringVar(&cc.recommendations, "recommendations", "", "Recommendations catalog path or URL")
	cmd.Flags().StringVar(&cc.specialTypes, "special-types", "", "In-scope resource types path or URL")
	cmd.Flags().StringVar(&cc.outputDir, "output", ".", "Directory for the JSON report artifact")

	return cmd
}

func (cc *CollectCmd) run(cmd *cobra.Command, _ []string) error {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	azureCfg, err := azure.LoadConfig(cc.profile)
	if err != nil {
		return fmt.Errorf("load azure profile: %w", err)
	}
	scope, err := cc.resolveScope(azureCfg.TenantID)
	if err != nil {
		return err
	}

	cat, err := loadCatalog(ctx, cc.recommendations, cc.specialTypes)
	if err != nil {
		return err
	}

	graph, err := arg.NewStore(azureCfg.Credentials)
	if err != nil {
		return fmt.Errorf("create resource graph store: %w", err)
	}
	explorer, err := inventory.NewExplorer(azureCfg.Credentials, graph)
	if err != nil {
		return fmt.Errorf("create inventory explorer: %w", err)
	}

	svc := assessment.NewService(
		cat,
		explorer,
		graph,
		advisor.NewService(azureCfg.Credentials),
		health.NewService(azureCfg.Credentials, graph),
		support.NewService(azureCfg.Credentials),
	)

	report, err := svc.Run(ctx, scope)
	if err != nil {
		return fmt.Errorf("assessment run: %w", err)
	}

	path, err := export.WriteJSON(cc.outputDir, adapters.MapReportDomainToApi(report))
	if err != nil {
		return err
	}

	if err := cc.reporter.Handle(report); err != nil {
		return fmt.Errorf("render summary: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nReport written to %s\n", path)
	return nil
}

// resolveScope layers flags over the config file over the profile tenant.
func (cc *CollectCmd) resolveScope(profileTenant string) (domain.Scope, error) {
	runCfg := &assessment.RunConfig{}
	if cc.configPath != "" {
		loaded, err := assessment.LoadConfig(cc.configPath)
		if err != nil {
			return domain.Scope{}, err
		}
		runCfg = loaded
	}
	if cc.tenantID != "" {
		runCfg.TenantID = cc.tenantID
	}
	if runCfg.TenantID == "" {
		runCfg.TenantID = profileTenant
	}
	if len(cc.subscriptions) > 0 {
		runCfg.Subscriptions = cc.subscriptions
	}
	if len(cc.resourceGroups) > 0 {
		runCfg.ResourceGroups = cc.resourceGroups
	}
	if len(cc.tags) > 0 {
		runCfg.Tags = cc.tags
	}
	return runCfg.Scope()
}

func loadCatalog(ctx context.Context, recommendationsSource, specialTypesSource string) (catalogsvc.Service, error) {
	store := catalogstore.NewStore(nil)
	entries, err := store.Recommendations(ctx, recommendationsSource)
	if err != nil {
		return nil, err
	}
	specials, err := store.SpecialTypes(ctx, specialTypesSource)
	if err != nil {
		return nil, err
	}
	return catalogsvc.NewService(
		adapters.MapStoreCatalogEntriesToDomain(entries),
		adapters.MapStoreSpecialTypeEntriesToDomain(specials),
	), nil
}
