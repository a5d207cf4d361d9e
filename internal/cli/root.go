package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/furcode/macfetch/internal/catalog"
	"github.com/furcode/macfetch/internal/config"
	"github.com/furcode/macfetch/internal/download"
	"github.com/furcode/macfetch/internal/fetch"
	"github.com/furcode/macfetch/internal/swupdate"
)

// version is injected by Execute before the command tree runs.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "macfetch",
	Short: "Fetch macOS installer packages from the SoftwareUpdate catalogs",
	Long: `macfetch resolves a SoftwareUpdate catalog, picks a macOS installer
product and downloads the recovery base-system image (or, with --fetch-esd,
the full installer ESD) into the output directory.

A product is selected either explicitly with --product-id or by asking for
the latest installer in the catalog with --latest.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runFetch,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringP(config.KeyOutputDir, "o", config.DefaultOutputDir, "Target directory for downloaded packages")
	flags.StringP(config.KeyCatalogID, "c", config.DefaultCatalogID,
		"Catalog to fetch from ("+strings.Join(swupdate.CatalogIDs(), ", ")+")")
	flags.BoolP(config.KeyFetchESD, "e", false, "Fetch the full installer ESD instead of the recovery base system")
	flags.StringP(config.KeyProductID, "p", "", "Product ID of the installer to fetch")
	flags.BoolP(config.KeyLatest, "l", false, "Fetch the latest installer product in the catalog")
	flags.BoolP(config.KeyURLsOnly, "u", false, "Dump package URLs only, skip downloads")
	flags.Int(config.KeyMaxParallel, config.DefaultMaxParallel, "Number of packages to download in parallel")
	flags.BoolP(config.KeyVerbose, "v", false, "Verbose output")
	viper.BindPFlag(config.KeyOutputDir, flags.Lookup(config.KeyOutputDir))
	viper.BindPFlag(config.KeyCatalogID, flags.Lookup(config.KeyCatalogID))
	viper.BindPFlag(config.KeyFetchESD, flags.Lookup(config.KeyFetchESD))
	viper.BindPFlag(config.KeyProductID, flags.Lookup(config.KeyProductID))
	viper.BindPFlag(config.KeyLatest, flags.Lookup(config.KeyLatest))
	viper.BindPFlag(config.KeyURLsOnly, flags.Lookup(config.KeyURLsOnly))
	viper.BindPFlag(config.KeyMaxParallel, flags.Lookup(config.KeyMaxParallel))
	viper.BindPFlag(config.KeyVerbose, flags.Lookup(config.KeyVerbose))

	viper.SetEnvPrefix("macfetch")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func runFetch(cmd *cobra.Command, args []string) error {
	settings := config.FromViper(viper.GetViper())
	if settings.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	transport := swupdate.NewClient(nil)
	downloader := download.NewService(nil, swupdate.OSInstallUserAgent, settings.MaxParallel, !settings.URLsOnly)
	orch := fetch.NewOrchestrator(transport, downloader)

	if settings.URLsOnly {
		_, selected, err := orch.Resolve(cmd.Context(), settings)
		if err != nil {
			return err
		}
		for _, pkg := range selected {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", pkg.URL, humanize.Bytes(uint64(pkg.Size)))
		}
		return nil
	}

	return orch.Run(cmd.Context(), settings)
}

// Execute runs the command tree and maps failures to the process exit code.
func Execute(v string) int {
	version = v

	if err := rootCmd.Execute(); err != nil {
		switch {
		case errors.Is(err, fetch.ErrMissingProductID):
			fmt.Fprintln(os.Stderr, "You must provide a Product ID (or pass the -l flag) to continue.")
		case errors.Is(err, catalog.ErrProductNotFound):
			fmt.Fprintf(os.Stderr, "Product ID %s could not be found.\n", viper.GetString(config.KeyProductID))
		default:
			log.Error(err.Error())
		}
		return 1
	}
	return 0
}
