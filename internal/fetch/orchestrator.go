package fetch

import (
	"context"

	"github.com/apex/log"
	"github.com/pkg/errors"

	"github.com/furcode/macfetch/internal/catalog"
	"github.com/furcode/macfetch/internal/config"
	"github.com/furcode/macfetch/internal/download"
	"github.com/furcode/macfetch/internal/model"
	"github.com/furcode/macfetch/internal/swupdate"
)

// Keyword filters per fetch variant. Package URLs are matched against these
// as literal substrings.
const (
	// KeywordBaseSystem selects the recovery base-system image and its
	// sidecar files.
	KeywordBaseSystem = "BaseSystem"

	// KeywordInstallESD selects the full installer disk image.
	KeywordInstallESD = "InstallESDDmg.pkg"
)

// Sentinel errors for product resolution failures
var (
	// ErrMissingProductID means neither an explicit product id nor the
	// latest flag was supplied. Raised before any network access.
	ErrMissingProductID = errors.New("no product id provided")

	// ErrNoInstallerProducts means the latest flag was requested but no
	// product in the catalog carries the installer marker.
	ErrNoInstallerProducts = errors.New("no installer products in catalog")
)

// Transport fetches raw catalog bytes from the distribution service.
type Transport interface {
	FetchCatalog(ctx context.Context, url string) ([]byte, error)
}

// Orchestrator wires the catalog transport and the download collaborator
// into the fetch flow. It holds no state across runs.
type Orchestrator struct {
	transport  Transport
	downloader download.Downloader
}

// NewOrchestrator creates an orchestrator over the given collaborators.
func NewOrchestrator(transport Transport, downloader download.Downloader) *Orchestrator {
	return &Orchestrator{
		transport:  transport,
		downloader: downloader,
	}
}

// Keyword returns the package selection keyword for the requested variant.
func Keyword(fetchESD bool) string {
	if fetchESD {
		return KeywordInstallESD
	}
	return KeywordBaseSystem
}

// LoadIndex resolves the catalog id to its location, fetches the document
// and parses it into a product index. Unknown catalog ids fall back to the
// default catalog.
func (o *Orchestrator) LoadIndex(ctx context.Context, catalogID string) (*catalog.Index, error) {
	url, known := swupdate.ResolveCatalog(catalogID)
	if !known {
		log.WithField("catalog", catalogID).
			Warnf("unknown catalog id, falling back to %s", swupdate.DefaultCatalogID)
	}

	data, err := o.transport.FetchCatalog(ctx, url)
	if err != nil {
		return nil, err
	}
	return catalog.Parse(data)
}

// Resolve runs the selection half of the flow: validate the settings, load
// the catalog, resolve the target product and return the package subset for
// the requested variant. No download is attempted.
func (o *Orchestrator) Resolve(ctx context.Context, s config.Settings) (model.Product, []model.Package, error) {
	// Validated before any network access.
	if !s.Latest && s.ProductID == "" {
		return model.Product{}, nil, ErrMissingProductID
	}

	index, err := o.LoadIndex(ctx, s.CatalogID)
	if err != nil {
		return model.Product{}, nil, err
	}

	productID := s.ProductID
	if s.Latest {
		installers := index.ListInstallerProducts()
		if len(installers) == 0 {
			return model.Product{}, nil, ErrNoInstallerProducts
		}
		productID = installers[len(installers)-1]
	}

	product, err := index.Product(productID)
	if err != nil {
		return model.Product{}, nil, err
	}

	if date := index.IndexDate(); date != "" {
		log.WithField("index-date", date).Debug("catalog freshness")
	}
	log.WithField("product", productID).Info("selected macOS product")

	selected := catalog.SelectPackages(product.Packages, Keyword(s.FetchESD))
	return product, selected, nil
}

// Run executes the full flow and drives every selected package through the
// download collaborator in selection order. Zero matching packages is a
// successful no-op; the first download failure aborts the remainder.
func (o *Orchestrator) Run(ctx context.Context, s config.Settings) error {
	product, selected, err := o.Resolve(ctx, s)
	if err != nil {
		return err
	}

	if len(selected) == 0 {
		log.WithField("product", product.ID).Info("no packages matched the requested variant")
		return nil
	}

	_, err = o.downloader.FetchAll(ctx, selected, s.OutputDir)
	return err
}
