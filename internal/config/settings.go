package config

import (
	"github.com/spf13/viper"
)

// Settings keys bound to flags and MACFETCH_* environment variables
const (
	KeyOutputDir   = "output-dir"
	KeyCatalogID   = "catalog-id"
	KeyFetchESD    = "fetch-esd"
	KeyProductID   = "product-id"
	KeyLatest      = "latest"
	KeyURLsOnly    = "urls"
	KeyMaxParallel = "max-parallel"
	KeyVerbose     = "verbose"
)

// Default values
const (
	DefaultOutputDir   = "BaseSystem/"
	DefaultCatalogID   = "PublicRelease"
	DefaultMaxParallel = 1
)

// Settings carries the configuration for one fetch run. It is assembled once
// at startup and handed to the orchestrator; nothing mutates it afterwards.
type Settings struct {
	OutputDir   string
	CatalogID   string
	ProductID   string
	FetchESD    bool
	Latest      bool
	URLsOnly    bool
	MaxParallel int
	Verbose     bool
}

// FromViper collects the bound flag and environment values into a Settings
// snapshot, applying defaults for anything left empty.
func FromViper(v *viper.Viper) Settings {
	s := Settings{
		OutputDir:   v.GetString(KeyOutputDir),
		CatalogID:   v.GetString(KeyCatalogID),
		ProductID:   v.GetString(KeyProductID),
		FetchESD:    v.GetBool(KeyFetchESD),
		Latest:      v.GetBool(KeyLatest),
		URLsOnly:    v.GetBool(KeyURLsOnly),
		MaxParallel: v.GetInt(KeyMaxParallel),
		Verbose:     v.GetBool(KeyVerbose),
	}

	if s.OutputDir == "" {
		s.OutputDir = DefaultOutputDir
	}
	if s.CatalogID == "" {
		s.CatalogID = DefaultCatalogID
	}
	if s.MaxParallel < 1 {
		s.MaxParallel = DefaultMaxParallel
	}
	return s
}
