package model

import (
	"strings"
	"time"
)

// DownloadTask represents a single package download
type DownloadTask struct {
	ID         string
	URL        string
	Status     TaskStatus
	Progress   float64   // 0.0 to 1.0
	Size       int64     // expected size in bytes, 0 if unknown
	Written    int64     // bytes written to disk so far
	LastError  string    // last error message if any
	OutputPath string    // path to downloaded file
	StartedAt  time.Time // when download started
	FinishedAt time.Time // when download finished
}

// GetDisplayName returns the filename portion of the output path or URL,
// whichever is available, for log and summary lines.
func (dt *DownloadTask) GetDisplayName() string {
	if dt.OutputPath != "" {
		parts := strings.FieldsFunc(dt.OutputPath, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			return parts[len(parts)-1]
		}
	}

	if idx := strings.LastIndex(dt.URL, "/"); idx >= 0 && idx < len(dt.URL)-1 {
		return dt.URL[idx+1:]
	}
	return dt.URL
}

// Elapsed returns how long the task has been running, or the total run time
// once it is finished.
func (dt *DownloadTask) Elapsed() time.Duration {
	if dt.StartedAt.IsZero() {
		return 0
	}
	if dt.FinishedAt.IsZero() {
		return time.Since(dt.StartedAt)
	}
	return dt.FinishedAt.Sub(dt.StartedAt)
}
