package download

import (
	"context"

	"github.com/furcode/macfetch/internal/model"
)

// Downloader defines the interface for the download collaborator.
type Downloader interface {
	// Download streams a single package into destDir and returns the local
	// file path.
	Download(ctx context.Context, pkg model.Package, destDir string) (string, error)

	// FetchAll downloads the given packages in order. The first failure
	// aborts the remaining queue.
	FetchAll(ctx context.Context, pkgs []model.Package, destDir string) ([]string, error)
}
