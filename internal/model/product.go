package model

import (
	"time"

	"github.com/furcode/macfetch/internal/platform"
)

// Package is a single downloadable file belonging to a product.
type Package struct {
	URL  string
	Size int64 // expected byte length; used for progress estimation only
}

// Product is one installable software offering within a catalog, identified
// by an opaque id. It is a read-only snapshot taken from the parsed catalog.
type Product struct {
	ID       string
	PostDate time.Time
	Packages []Package
}

// Filename returns the final path segment of the package URL, which is the
// local name the download is written under. The same rule the download
// service applies, so both always agree on the name.
func (p Package) Filename() string {
	return platform.FilenameFromURL(p.URL)
}

// TotalSize returns the summed expected size of all packages in bytes.
// Packages with an unknown size contribute zero.
func (p *Product) TotalSize() int64 {
	var total int64
	for _, pkg := range p.Packages {
		if pkg.Size > 0 {
			total += pkg.Size
		}
	}
	return total
}
