package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/furcode/macfetch/internal/config"
	"github.com/furcode/macfetch/internal/fetch"
	"github.com/furcode/macfetch/internal/swupdate"
)

// listCmd prints product ids without downloading anything. It reads its
// flags directly so it does not disturb the viper keys bound to the root
// command.
var listCmd = &cobra.Command{
	Use:          "list",
	Short:        "List installer products in a catalog",
	SilenceUsage: true,
	RunE:         runList,
}

func init() {
	listCmd.Flags().StringP(config.KeyCatalogID, "c", config.DefaultCatalogID, "Catalog to list")
	listCmd.Flags().Bool("all", false, "List every product, not just installers")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	catalogID, _ := cmd.Flags().GetString(config.KeyCatalogID)
	all, _ := cmd.Flags().GetBool("all")

	orch := fetch.NewOrchestrator(swupdate.NewClient(nil), nil)
	index, err := orch.LoadIndex(cmd.Context(), catalogID)
	if err != nil {
		return err
	}

	if date := index.IndexDate(); date != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Catalog index date: %s\n", date)
	}

	ids := index.ListInstallerProducts()
	if all {
		ids = index.Products()
	}
	for _, id := range ids {
		fmt.Fprintln(cmd.OutOrStdout(), id)
	}
	return nil
}
