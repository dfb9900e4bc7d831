package lemmy

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/threadiverse/temi/domain"
)

// FileSource serves posts and comments from JSON dumps on disk instead
// of a live instance. It implements both app.PostService and
// app.CommentService, reading the posts.json and comments.json files
// of a replay directory.
type FileSource struct {
	dir string
}

// NewFileSource creates a replay source rooted at dir.
func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

// ListPosts returns the dumped post listing. A dump holds a single
// page, so any later page reports domain.ErrNoPosts.
func (f *FileSource) ListPosts(_ context.Context, page uint64) ([]domain.Post, error) {
	if page > 1 {
		return nil, domain.ErrNoPosts
	}

	data, err := os.ReadFile(filepath.Join(f.dir, "posts.json"))
	if err != nil {
		return nil, fmt.Errorf("reading posts dump: %w", err)
	}
	posts, err := decodePostList(data)
	if err != nil {
		return nil, fmt.Errorf("parsing posts dump: %w", err)
	}
	return posts, nil
}

// FetchAll returns the dumped comments that belong to postID. Entries
// without a post id are kept for any post.
func (f *FileSource) FetchAll(_ context.Context, postID, _ uint64) ([]domain.Comment, error) {
	data, err := os.ReadFile(filepath.Join(f.dir, "comments.json"))
	if err != nil {
		return nil, fmt.Errorf("reading comments dump: %w", err)
	}
	comments, err := decodeCommentList(data)
	if err != nil {
		return nil, fmt.Errorf("parsing comments dump: %w", err)
	}

	kept := comments[:0]
	for _, c := range comments {
		if c.PostID == 0 || c.PostID == postID {
			kept = append(kept, c)
		}
	}
	return kept, nil
}
