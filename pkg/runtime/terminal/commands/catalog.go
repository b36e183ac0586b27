package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
)

type CatalogCmd struct {
	recommendations string
	specialTypes    string
}

func NewCatalogCmd() *cobra.Command {
	cc := &CatalogCmd{}
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the loaded recommendation catalog",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.recommendations, "recommendations", "", "Recommendations catalog path or URL")
	cmd.Flags().StringVar(&cc.specialTypes, "special-types", "", "In-scope resource types path or URL")

	return cmd
}

func (cc *CatalogCmd) run(cmd *cobra.Command, _ []string) error {
	cat, err := loadCatalog(cmd.Context(), cc.recommendations, cc.specialTypes)
	if err != nil {
		return err
	}

	defs := cat.Definitions()
	fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d recommendations, %d with automation queries\n\n",
		len(defs), len(cat.AutomationQueries()))

	counts := make(map[string]int)
	for _, def := range defs {
		counts[strings.ToLower(def.ResourceType)]++
	}
	types := maps.Keys(counts)
	sort.Strings(types)

	for _, t := range types {
		covered := "covered"
		if cat.IsSpecialType(t) {
			covered = "not covered"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-58s %4d  (%s)\n", t, counts[t], covered)
	}
	return nil
}
