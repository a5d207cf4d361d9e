package platform

// Package platform holds thin filesystem helpers shared by the download
// pipeline: idempotent directory creation and local filename derivation.
