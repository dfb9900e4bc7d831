package media

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/threadiverse/temi/domain"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestDownloader(dir string, rt roundTripperFunc) *Downloader {
	return &Downloader{
		cacheDir: dir,
		http:     &http.Client{Transport: rt},
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestDownloader_Download_WritesAndReusesCache(t *testing.T) {
	hits := 0
	rt := func(r *http.Request) (*http.Response, error) {
		hits++
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("PNGDATA")),
			Request:    r,
		}, nil
	}

	dir := filepath.Join(t.TempDir(), "cache")
	d := newTestDownloader(dir, rt)

	local, err := d.Download(context.Background(), "https://lemmy.ml/pictrs/image/abc.png")
	if err != nil {
		t.Fatalf("download failed: %v", err)
	}
	if filepath.Base(local) != "abc.png" {
		t.Fatalf("unexpected cache path: %s", local)
	}
	data, err := os.ReadFile(local)
	if err != nil || string(data) != "PNGDATA" {
		t.Fatalf("unexpected cache content: %q (err %v)", data, err)
	}

	if _, err := d.Download(context.Background(), "https://lemmy.ml/pictrs/image/abc.png"); err != nil {
		t.Fatalf("cached download failed: %v", err)
	}
	if hits != 1 {
		t.Fatalf("expected one request, got %d", hits)
	}
}

func TestDownloader_Download_RejectsNonImage(t *testing.T) {
	hits := 0
	rt := func(r *http.Request) (*http.Response, error) {
		hits++
		return nil, errors.New("should not be reached")
	}

	d := newTestDownloader(t.TempDir(), rt)
	_, err := d.Download(context.Background(), "https://example.com/video.mp4")
	if !errors.Is(err, domain.ErrUnsupportedImage) {
		t.Fatalf("expected ErrUnsupportedImage, got %v", err)
	}
	if hits != 0 {
		t.Fatalf("expected no requests, got %d", hits)
	}
}

func TestDownloader_Download_ReportsBadStatus(t *testing.T) {
	rt := func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusNotFound,
			Body:       io.NopCloser(strings.NewReader("gone")),
			Request:    r,
		}, nil
	}

	d := newTestDownloader(t.TempDir(), rt)
	_, err := d.Download(context.Background(), "https://lemmy.ml/pictrs/image/gone.png")
	if err == nil || !strings.Contains(err.Error(), "status 404") {
		t.Fatalf("expected status in error, got %v", err)
	}
}
