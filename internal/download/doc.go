package download

// Package download implements the package download pipeline: streaming HTTP
// fetches written straight to disk with progress rendering via
// github.com/vbauerster/mpb. It manages task lifecycle and the sequential
// (optionally bounded-parallel) download queue; one failure aborts whatever
// remains queued.
