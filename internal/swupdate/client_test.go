package swupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_FetchCatalog(t *testing.T) {
	const body = "catalog-bytes"
	var gotUserAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write([]byte(body))
	}))
	defer server.Close()

	client := NewClient(server.Client())
	data, err := client.FetchCatalog(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchCatalog() returned error: %v", err)
	}

	if string(data) != body {
		t.Errorf("FetchCatalog() body = %q, expected %q", data, body)
	}
	if gotUserAgent != SoftwareUpdateUserAgent {
		t.Errorf("catalog request User-Agent = %q, expected the SoftwareUpdate identity", gotUserAgent)
	}
}

func TestClient_FetchCatalog_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.Client())
	if _, err := client.FetchCatalog(context.Background(), server.URL); err == nil {
		t.Fatal("expected error for 404 response, got nil")
	}
}

func TestClient_FetchCatalog_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("late"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.Client())
	if _, err := client.FetchCatalog(ctx, server.URL); err == nil {
		t.Fatal("expected error for cancelled context, got nil")
	}
}
