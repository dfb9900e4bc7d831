package lemmy

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// userAgent identifies us to instances; some reject Go's default agent.
const userAgent = "temi (+https://github.com/threadiverse/temi)"

// Client is a thin HTTP wrapper for the Lemmy API.
// It handles base URL construction, request logging and optional
// response dumps for offline replay.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
	dumpDir string
}

// NewClient creates a Lemmy API client. When dumpDir is non-empty,
// every response body is also written there as a JSON file.
func NewClient(baseURL string, log *slog.Logger, dumpDir string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log,
		dumpDir: dumpDir,
	}
}

// Get performs a GET request against the instance API.
func (c *Client) Get(ctx context.Context, path string) ([]byte, error) {
	reqID := uuid.NewString()[:8]
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	c.log.Info("api request",
		"id", reqID,
		"path", path,
		"status", resp.StatusCode,
		"bytes", len(data),
		"elapsed", time.Since(start).Round(time.Millisecond).String(),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("API GET %s returned %d: %s", path, resp.StatusCode, string(data))
	}

	if c.dumpDir != "" {
		c.dump(path, reqID, data)
	}

	return data, nil
}

// dump writes a response body under the dump directory. Failures are
// logged, never returned.
func (c *Client) dump(path, reqID string, data []byte) {
	name := strings.Trim(path, "/")
	if i := strings.IndexByte(name, '?'); i >= 0 {
		name = name[:i]
	}
	name = strings.ReplaceAll(name, "/", "-")

	if err := os.MkdirAll(c.dumpDir, 0o755); err != nil {
		c.log.Warn("creating dump dir", "dir", c.dumpDir, "error", err)
		return
	}
	file := filepath.Join(c.dumpDir, fmt.Sprintf("%s-%s.json", name, reqID))
	if err := os.WriteFile(file, data, 0o600); err != nil {
		c.log.Warn("writing dump", "file", file, "error", err)
	}
}
