package swupdate

// Package swupdate talks to Apple's SoftwareUpdate distribution service. It
// maps catalog identifiers to sucatalog locations and fetches raw catalog
// bytes with the fixed SoftwareUpdate client identity. Single attempt per
// request; retry policy is deliberately out of scope.
