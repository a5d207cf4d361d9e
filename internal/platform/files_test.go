package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "BaseSystem", "nested")

	if err := CreateDirectoryIfNotExists(target); err != nil {
		t.Fatalf("CreateDirectoryIfNotExists() returned error: %v", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("expected directory to exist: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}

	// Second call on an existing directory is a no-op.
	if err := CreateDirectoryIfNotExists(target); err != nil {
		t.Errorf("CreateDirectoryIfNotExists() on existing dir returned error: %v", err)
	}
}

func TestFilenameFromURL(t *testing.T) {
	tests := []struct {
		rawURL   string
		expected string
	}{
		{"http://swcdn.apple.com/content/downloads/16/39/061-26578/BaseSystem.dmg", "BaseSystem.dmg"},
		{"http://swcdn.apple.com/InstallESDDmg.pkg?x=1", "InstallESDDmg.pkg"},
		{"relative/path/RecoveryHDMetaDmg.pkg", "RecoveryHDMetaDmg.pkg"},
		{"bare-name.pkg", "bare-name.pkg"},
	}

	for _, test := range tests {
		if got := FilenameFromURL(test.rawURL); got != test.expected {
			t.Errorf("FilenameFromURL(%q) = %q, expected %q", test.rawURL, got, test.expected)
		}
	}
}
