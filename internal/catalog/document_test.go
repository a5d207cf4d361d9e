package catalog

import (
	"errors"
	"testing"
	"time"
)

func TestParse_MalformedInput(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty input", []byte("")},
		{"whitespace only", []byte(" \n\t ")},
		{"not a plist", []byte("this is not a property list")},
		{"truncated xml", []byte(`<?xml version="1.0"?><plist version="1.0"><dict><key>Products`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, err := Parse(tt.data)
			if err == nil {
				t.Fatal("expected error for malformed input, got nil")
			}
			if !errors.Is(err, ErrMalformedCatalog) {
				t.Errorf("expected ErrMalformedCatalog, got %v", err)
			}
			if index != nil {
				t.Error("expected nil index on parse failure, got partial document")
			}
		})
	}
}

func TestParse_WellFormedDocument(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>CatalogVersion</key>
	<integer>2</integer>
	<key>Products</key>
	<dict/>
</dict>
</plist>`)

	index, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() returned error for well-formed document: %v", err)
	}
	if index == nil {
		t.Fatal("Parse() returned nil index without error")
	}
}

func TestDict_SafeNavigation(t *testing.T) {
	d := Dict{
		"Outer": map[string]interface{}{
			"Inner": map[string]interface{}{
				"Value": "marker",
			},
		},
		"Name":  "catalog",
		"Count": uint64(42),
		"Ratio": float64(3),
		"When":  time.Date(2019, 10, 8, 0, 0, 0, 0, time.UTC),
		"Items": []interface{}{"a", "b"},
	}

	if got := d.Dict("Outer").Dict("Inner").String("Value"); got != "marker" {
		t.Errorf("nested String() = %q, expected %q", got, "marker")
	}

	// Missing intermediate keys must resolve to absence, not panic.
	if got := d.Dict("Missing").Dict("AlsoMissing").String("Value"); got != "" {
		t.Errorf("navigation through missing keys = %q, expected empty", got)
	}

	// Mistyped intermediate values degrade the same way.
	if got := d.Dict("Name").String("Value"); got != "" {
		t.Errorf("navigation through mistyped key = %q, expected empty", got)
	}

	if got := d.Int("Count"); got != 42 {
		t.Errorf("Int() on uint64 = %d, expected 42", got)
	}
	if got := d.Int("Ratio"); got != 3 {
		t.Errorf("Int() on float64 = %d, expected 3", got)
	}
	if got := d.Int("Name"); got != 0 {
		t.Errorf("Int() on string = %d, expected 0", got)
	}

	if got := d.Date("When"); got.IsZero() {
		t.Error("Date() on date value returned zero time")
	}
	if got := d.Date("Name"); !got.IsZero() {
		t.Errorf("Date() on string = %v, expected zero time", got)
	}

	if got := len(d.Array("Items")); got != 2 {
		t.Errorf("Array() length = %d, expected 2", got)
	}
	if got := d.Array("Name"); got != nil {
		t.Errorf("Array() on string = %v, expected nil", got)
	}
}

func TestDict_NilReceiver(t *testing.T) {
	var d Dict

	if got := d.Dict("a").Dict("b").String("c"); got != "" {
		t.Errorf("navigation on nil Dict = %q, expected empty", got)
	}
	if got := d.Int("a"); got != 0 {
		t.Errorf("Int() on nil Dict = %d, expected 0", got)
	}
}
