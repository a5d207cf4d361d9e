package swupdate

import "sort"

// DefaultCatalogID is used when the requested catalog id is not recognized.
const DefaultCatalogID = "PublicRelease"

// catalogs maps catalog identifiers to their sucatalog locations. macOS 10.15
// is published through four different catalogs; the numbered entries cover
// the older releases still served by SoftwareScan.
var catalogs = map[string]string{
	"CustomerSeed":    "https://swscan.apple.com/content/catalogs/others/index-10.15customerseed-10.15-10.14-10.13-10.12-10.11-10.10-10.9-mountainlion-lion-snowleopard-leopard.merged-1.sucatalog",
	"DeveloperSeed":   "https://swscan.apple.com/content/catalogs/others/index-10.15seed-10.15-10.14-10.13-10.12-10.11-10.10-10.9-mountainlion-lion-snowleopard-leopard.merged-1.sucatalog",
	"PublicSeed":      "https://swscan.apple.com/content/catalogs/others/index-10.15beta-10.15-10.14-10.13-10.12-10.11-10.10-10.9-mountainlion-lion-snowleopard-leopard.merged-1.sucatalog",
	"PublicRelease":   "https://swscan.apple.com/content/catalogs/others/index-10.15-10.14-10.13-10.12-10.11-10.10-10.9-mountainlion-lion-snowleopard-leopard.merged-1.sucatalog",
	"PublicRelease14": "https://swscan.apple.com/content/catalogs/others/index-10.14-10.13-10.12-10.11-10.10-10.9-mountainlion-lion-snowleopard-leopard.merged-1.sucatalog",
	"PublicRelease13": "https://swscan.apple.com/content/catalogs/others/index-10.13-10.12-10.11-10.10-10.9-mountainlion-lion-snowleopard-leopard.merged-1.sucatalog",
	"PublicRelease12": "https://swscan.apple.com/content/catalogs/others/index-10.12-10.11-10.10-10.9-mountainlion-lion-snowleopard-leopard.merged-1.sucatalog",
}

// ResolveCatalog returns the sucatalog URL for the given catalog id. Unknown
// ids fall back to the PublicRelease catalog; the second return value reports
// whether the id was recognized so callers can surface the fallback.
func ResolveCatalog(id string) (string, bool) {
	if url, ok := catalogs[id]; ok {
		return url, true
	}
	return catalogs[DefaultCatalogID], false
}

// CatalogIDs returns every recognized catalog identifier in sorted order.
func CatalogIDs() []string {
	ids := make([]string, 0, len(catalogs))
	for id := range catalogs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
