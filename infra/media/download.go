package media

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Downloader fetches images into a local cache directory, one file per
// URL. Already-cached images are never re-fetched.
type Downloader struct {
	cacheDir string
	http     *http.Client
	log      *slog.Logger
}

// NewDownloader creates a Downloader writing into cacheDir.
func NewDownloader(cacheDir string, log *slog.Logger) *Downloader {
	return &Downloader{
		cacheDir: cacheDir,
		http:     &http.Client{Timeout: 30 * time.Second},
		log:      log,
	}
}

// Download fetches an image URL into the cache and returns the local
// path. Non-image URLs report domain.ErrUnsupportedImage.
func (d *Downloader) Download(ctx context.Context, rawURL string) (string, error) {
	name, err := FileName(rawURL)
	if err != nil {
		return "", err
	}

	local := filepath.Join(d.cacheDir, name)
	if _, err := os.Stat(local); err == nil {
		d.log.Debug("image cache hit", "file", local)
		return local, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := d.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("downloading %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("downloading %s: status %d", rawURL, resp.StatusCode)
	}

	if err := os.MkdirAll(d.cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("creating cache dir: %w", err)
	}

	out, err := os.Create(local)
	if err != nil {
		return "", fmt.Errorf("creating cache file: %w", err)
	}
	n, err := io.Copy(out, resp.Body)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(local)
		return "", fmt.Errorf("writing cache file: %w", err)
	}

	d.log.Info("image downloaded", "url", rawURL, "file", local, "bytes", n)
	return local, nil
}
