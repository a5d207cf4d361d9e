package swupdate

import (
	"context"
	"io"
	"net/http"

	"github.com/apex/log"
	"github.com/pkg/errors"
)

// Fixed client identities expected by the distribution service. The catalog
// service and the package CDN are addressed as two different simulated
// clients.
const (
	// SoftwareUpdateUserAgent identifies the catalog client.
	SoftwareUpdateUserAgent = "Software%20Update (unknown version) CFNetwork/807.0.1 Darwin/16.0.0 (x86_64)"

	// OSInstallUserAgent identifies the package download client.
	OSInstallUserAgent = "osinstallersetupplaind (unknown version) CFNetwork/720.5.7 Darwin/14.5.0 (x86_64)"
)

// Client fetches catalog documents from the SoftwareUpdate service.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a catalog client backed by the given http.Client, or
// http.DefaultClient when nil.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{httpClient: httpClient}
}

// FetchCatalog retrieves the full catalog document at url. One attempt, no
// retries; the entire response body is returned.
func (c *Client) FetchCatalog(ctx context.Context, url string) ([]byte, error) {
	log.WithField("url", url).Info("fetching catalog")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build catalog request")
	}
	req.Header.Set("User-Agent", SoftwareUpdateUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch catalog")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Errorf("fetch catalog: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read catalog body")
	}
	return data, nil
}
