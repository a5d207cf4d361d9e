package catalog

import (
	"bytes"
	"time"

	"github.com/pkg/errors"
	"howett.net/plist"
)

// Sentinel errors for catalog resolution failures
var (
	// ErrMalformedCatalog means the catalog bytes do not decode as a
	// well-formed property list. No partial document is ever produced.
	ErrMalformedCatalog = errors.New("malformed catalog")

	// ErrProductNotFound means a product id is absent from the Products
	// dictionary. Distinct from ErrMalformedCatalog so callers can name
	// the missing id to the user.
	ErrProductNotFound = errors.New("product not found")
)

// Dict is a loosely typed view over a decoded property-list dictionary.
// Accessors return zero values for missing or mistyped keys, so chained
// navigation through optional nesting levels never panics.
type Dict map[string]interface{}

// Dict returns the nested dictionary under key, or nil if the key is absent
// or holds a different type. Lookups on a nil Dict are safe.
func (d Dict) Dict(key string) Dict {
	switch v := d[key].(type) {
	case map[string]interface{}:
		return Dict(v)
	case Dict:
		return v
	}
	return nil
}

// String returns the string under key, or "" if absent or not a string.
func (d Dict) String(key string) string {
	s, _ := d[key].(string)
	return s
}

// Array returns the sequence under key, or nil if absent or not a sequence.
func (d Dict) Array(key string) []interface{} {
	a, _ := d[key].([]interface{})
	return a
}

// Int returns the integer under key, or 0 if absent. Property-list decoders
// surface integers as uint64 and occasionally as float64.
func (d Dict) Int(key string) int64 {
	switch v := d[key].(type) {
	case uint64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}

// Date returns the date under key, or the zero time if absent.
func (d Dict) Date(key string) time.Time {
	t, _ := d[key].(time.Time)
	return t
}

// Parse decodes raw catalog bytes into an Index. Any decode failure is
// reported as ErrMalformedCatalog; a partially decoded document is never
// returned.
func Parse(data []byte) (*Index, error) {
	// The decoder accepts an empty stream as an empty document; a truncated
	// response must not pass as a catalog with no products.
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.Wrap(ErrMalformedCatalog, "empty catalog document")
	}

	var root map[string]interface{}
	if _, err := plist.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrapf(ErrMalformedCatalog, "decode property list: %v", err)
	}
	return &Index{root: Dict(root)}, nil
}
