package catalog

import (
	"strings"

	"github.com/furcode/macfetch/internal/model"
)

// SelectPackages returns the subsequence of pkgs whose URL contains keyword
// as a literal case-sensitive substring, preserving input order. An empty
// keyword selects every package. Zero matches is a valid outcome, not an
// error.
func SelectPackages(pkgs []model.Package, keyword string) []model.Package {
	if keyword == "" {
		return pkgs
	}

	var selected []model.Package
	for _, pkg := range pkgs {
		if strings.Contains(pkg.URL, keyword) {
			selected = append(selected, pkg)
		}
	}
	return selected
}
