package catalog

// Package catalog implements the core catalog resolution logic: decoding a
// SoftwareUpdate property-list document, indexing its products, recognizing
// installer-capable products by their package-identifier marker, and selecting
// package subsets by URL keyword. The document format is externally defined
// and loosely typed; lookups degrade to absence instead of failing so that
// older catalog entries with missing metadata never abort a run.
