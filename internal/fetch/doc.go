package fetch

// Package fetch drives the end-to-end flow: resolve the catalog id, obtain
// and parse the catalog, pick the target product (explicit id or latest
// installer), select the package subset for the requested variant, and hand
// the result to the download collaborator. The flow is linear and makes a
// single attempt per network operation.
