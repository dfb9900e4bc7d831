package lemmy

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/threadiverse/temi/domain"
)

func writeReplayFile(t *testing.T, dir, name string, payload any) {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshaling fixture: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
}

func TestFileSource_ListPosts_ReadsDump(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "posts.json"), []byte(postListJSON), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	src := NewFileSource(dir)

	posts, err := src.ListPosts(context.Background(), 1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(posts) != 2 || posts[0].Title != "Rust in the kernel" {
		t.Fatalf("unexpected replayed posts: %+v", posts)
	}

	// A dump is a single page.
	_, err = src.ListPosts(context.Background(), 2)
	if !errors.Is(err, domain.ErrNoPosts) {
		t.Fatalf("expected ErrNoPosts past the dump, got %v", err)
	}
}

func TestFileSource_FetchAll_FiltersByPost(t *testing.T) {
	dir := t.TempDir()
	writeReplayFile(t, dir, "comments.json", map[string]any{
		"comments": []map[string]any{
			commentViewJSON(11, 7, "0.11"),
			commentViewJSON(12, 8, "0.12"),
			commentViewJSON(13, 0, "0.13"),
		},
	})

	src := NewFileSource(dir)

	got, err := src.FetchAll(context.Background(), 7, 0)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(got) != 2 || got[0].ID != 11 || got[1].ID != 13 {
		t.Fatalf("expected post 7 comments plus unowned entries, got %+v", got)
	}
}

func TestFileSource_MissingDumpsReportFile(t *testing.T) {
	src := NewFileSource(t.TempDir())

	if _, err := src.ListPosts(context.Background(), 1); err == nil || !strings.Contains(err.Error(), "posts dump") {
		t.Fatalf("expected posts dump error, got %v", err)
	}
	if _, err := src.FetchAll(context.Background(), 1, 0); err == nil || !strings.Contains(err.Error(), "comments dump") {
		t.Fatalf("expected comments dump error, got %v", err)
	}
}
