package commands

import (
	"fmt"

	"github.com/catherinevee/gcpmigrate/internal/translate/catalog"
	"github.com/spf13/cobra"
)

// CatalogCmd prints every registered service mapping.
var CatalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the registered AWS/Azure to GCP service mappings",
	RunE:  runCatalog,
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cat := catalog.New()
	for _, m := range cat.All() {
		fmt.Fprintf(cmd.OutOrStdout(), "%-8s %-28s -> %s\n", m.SourceProvider, m.SourceService, m.TargetService)
	}
	return nil
}
