package seed

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"moviedb/internal/storage"
)

// Mirror copies remote poster images into object storage.
type Mirror struct {
	client *http.Client
	store  storage.Storage
	log    *slog.Logger
}

// NewMirror returns a Mirror downloading through a traced HTTP client. A nil
// client gets a default one with a 30s timeout.
func NewMirror(store storage.Storage, client *http.Client, log *slog.Logger) *Mirror {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	traced := *client
	traced.Transport = otelhttp.NewTransport(client.Transport)
	return &Mirror{client: &traced, store: store, log: log}
}

// Fetch downloads one image and stores it under a new poster key.
func (m *Mirror) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse poster url: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := m.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", rawURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download %s: unexpected status %d", rawURL, resp.StatusCode)
	}

	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}
	key := storage.NewPosterKey(path.Base(u.Path))
	if _, err := m.store.Put(ctx, key, resp.Body, storage.PutObjectOptions{
		Size:        resp.ContentLength,
		ContentType: ct,
		Metadata:    map[string]string{"source-url": rawURL},
	}); err != nil {
		return "", fmt.Errorf("upload to storage: %w", err)
	}
	return key, nil
}

// MirrorAll fetches each distinct URL once and returns the stored keys in
// input order. Keys already written are removed again if a later fetch fails.
func (m *Mirror) MirrorAll(ctx context.Context, urls []string) ([]string, error) {
	seen := make(map[string]string, len(urls))
	keys := make([]string, 0, len(urls))
	for _, u := range urls {
		if key, ok := seen[u]; ok {
			keys = append(keys, key)
			continue
		}
		key, err := m.Fetch(ctx, u)
		if err != nil {
			m.Cleanup(context.WithoutCancel(ctx), keys)
			return nil, err
		}
		m.log.Info("poster_mirrored", "url", u, "key", key)
		seen[u] = key
		keys = append(keys, key)
	}
	return keys, nil
}

// Cleanup deletes mirrored objects, logging failures.
func (m *Mirror) Cleanup(ctx context.Context, keys []string) {
	done := make(map[string]bool, len(keys))
	for _, k := range keys {
		if done[k] {
			continue
		}
		done[k] = true
		if err := m.store.Delete(ctx, k); err != nil {
			m.log.Warn("poster_cleanup_failed", "key", k, "error", err.Error())
		}
	}
}
