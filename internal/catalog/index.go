package catalog

import (
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/furcode/macfetch/internal/model"
)

// OSInstallIdentifier marks a product as a full OS installer, as opposed to
// an incremental software update.
const OSInstallIdentifier = "com.apple.mpkg.OSInstall"

// Top-level and per-product keys of the sucatalog document
const (
	keyProducts         = "Products"
	keyIndexDate        = "IndexDate"
	keyPostDate         = "PostDate"
	keyExtendedMetaInfo = "ExtendedMetaInfo"
	keyInstallAssistant = "InstallAssistantPackageIdentifiers"
	keyOSInstall        = "OSInstall"
	keyPackages         = "Packages"
	keyPackageURL       = "URL"
	keyPackageSize      = "Size"
)

// Index wraps a parsed catalog document and answers product queries against
// it. It holds no state beyond the decoded document.
type Index struct {
	root Dict
}

func (x *Index) products() Dict {
	return x.root.Dict(keyProducts)
}

// sortedProductIDs returns every product id ordered by PostDate, ties and
// missing dates broken by lexicographic id. Property-list decoding does not
// preserve document order, so this deterministic chronological ordering
// replaces the catalog's declared order; "latest" remains the last element.
func (x *Index) sortedProductIDs() []string {
	products := x.products()
	ids := make([]string, 0, len(products))
	for id := range products {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		di := products.Dict(ids[i]).Date(keyPostDate)
		dj := products.Dict(ids[j]).Date(keyPostDate)
		if di.Equal(dj) {
			return ids[i] < ids[j]
		}
		return di.Before(dj)
	})
	return ids
}

// Products returns every product id in the catalog in deterministic order.
func (x *Index) Products() []string {
	return x.sortedProductIDs()
}

// ListInstallerProducts returns the ids of products whose extended metadata
// carries the OSInstall package-identifier marker. Products missing any
// intermediate metadata level are simply not installers; that is expected for
// older catalog entries and is never an error.
func (x *Index) ListInstallerProducts() []string {
	products := x.products()

	var installers []string
	for _, id := range x.sortedProductIDs() {
		marker := products.Dict(id).
			Dict(keyExtendedMetaInfo).
			Dict(keyInstallAssistant).
			String(keyOSInstall)
		if marker == OSInstallIdentifier {
			installers = append(installers, id)
		}
	}
	return installers
}

// Product looks up a single product by id and extracts its package list.
// Package entries without a URL are dropped; a missing or zero Size is kept
// as zero and never blocks the download.
func (x *Index) Product(id string) (model.Product, error) {
	products := x.products()
	if _, ok := products[id]; !ok {
		return model.Product{}, errors.Wrapf(ErrProductNotFound, "product %s", id)
	}

	entry := products.Dict(id)
	product := model.Product{
		ID:       id,
		PostDate: entry.Date(keyPostDate),
	}

	for _, item := range entry.Array(keyPackages) {
		raw, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		pkg := Dict(raw)
		url := pkg.String(keyPackageURL)
		if url == "" {
			continue
		}
		product.Packages = append(product.Packages, model.Package{
			URL:  url,
			Size: pkg.Int(keyPackageSize),
		})
	}
	return product, nil
}

// IndexDate returns the catalog's freshness date as a string, or "" when the
// document omits it. Purely informational.
func (x *Index) IndexDate() string {
	switch v := x.root[keyIndexDate].(type) {
	case string:
		return v
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	}
	return ""
}
