package platform

import (
	"net/url"
	"os"
	"path"
	"strings"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// FilenameFromURL returns the final path segment of rawURL, the name the
// download is written under locally. Falls back to a raw string split when
// the URL does not parse.
func FilenameFromURL(rawURL string) string {
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		if name := path.Base(u.Path); name != "." && name != "/" {
			return name
		}
	}
	if idx := strings.LastIndex(rawURL, "/"); idx >= 0 && idx < len(rawURL)-1 {
		return rawURL[idx+1:]
	}
	return rawURL
}
