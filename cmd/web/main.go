package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/reliability-atlas/pkg/adapters"
	"github.com/de-tools/reliability-atlas/pkg/server"
	"github.com/de-tools/reliability-atlas/pkg/services/advisor"
	"github.com/de-tools/reliability-atlas/pkg/services/assessment"
	"github.com/de-tools/reliability-atlas/pkg/services/azure"
	catalogsvc "github.com/de-tools/reliability-atlas/pkg/services/catalog"
	"github.com/de-tools/reliability-atlas/pkg/services/health"
	"github.com/de-tools/reliability-atlas/pkg/services/inventory"
	"github.com/de-tools/reliability-atlas/pkg/services/runs"
	"github.com/de-tools/reliability-atlas/pkg/services/support"
	"github.com/de-tools/reliability-atlas/pkg/store/arg"
	catalogstore "github.com/de-tools/reliability-atlas/pkg/store/catalog"
)

var (
	profile         string
	recommendations string
	specialTypes    string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for the reliability assessment API",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&profile, "profile", "p", "", "Azure config profile to authenticate with")
	rootCmd.Flags().StringVar(&recommendations, "recommendations", "",
		"Recommendation catalog path or URL (default is the published APRL build)")
	rootCmd.Flags().StringVar(&specialTypes, "special-types", "",
		"In-scope resource type list path or URL")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	azureCfg, err := azure.LoadConfig(profile)
	if err != nil {
		return fmt.Errorf("failed to load azure profile: %w", err)
	}

	catalogStore := catalogstore.NewStore(nil)
	entries, err := catalogStore.Recommendations(ctx, recommendations)
	if err != nil {
		return fmt.Errorf("failed to load recommendation catalog: %w", err)
	}
	specials, err := catalogStore.SpecialTypes(ctx, specialTypes)
	if err != nil {
		return fmt.Errorf("failed to load special resource types: %w", err)
	}
	cat := catalogsvc.NewService(
		adapters.MapStoreCatalogEntriesToDomain(entries),
		adapters.MapStoreSpecialTypeEntriesToDomain(specials),
	)

	logger.Info().Msgf("Catalog loaded: %d recommendations, %d special resource types.",
		len(entries), len(specials))

	graph, err := arg.NewStore(azureCfg.Credentials)
	if err != nil {
		return fmt.Errorf("failed to create resource graph store: %w", err)
	}
	explorer, err := inventory.NewExplorer(azureCfg.Credentials, graph)
	if err != nil {
		return fmt.Errorf("failed to create inventory explorer: %w", err)
	}

	assessmentSvc := assessment.NewService(
		cat,
		explorer,
		graph,
		advisor.NewService(azureCfg.Credentials),
		health.NewService(azureCfg.Credentials, graph),
		support.NewService(azureCfg.Credentials),
	)

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Runs:    runs.NewController(assessmentSvc),
			Catalog: cat,
		},
	})

	return api.Start()
}
