package cli

// Package cli defines the macfetch command tree. Flags are bound through
// viper so every option can also come from a MACFETCH_* environment
// variable; the assembled settings are handed to the fetch orchestrator.
