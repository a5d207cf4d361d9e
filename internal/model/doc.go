package model

// Package model defines domain data structures used across the app: catalog
// products with their packages, download tasks, and status enums. Products
// are read-only views extracted from a parsed catalog document and carry no
// ownership beyond the run that produced them.
