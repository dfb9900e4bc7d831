package app

import (
	"context"

	"github.com/threadiverse/temi/domain"
)

// PostService lists posts from an instance, one page at a time.
type PostService interface {
	// ListPosts returns one listing page. Pages start at 1; a page past
	// the end of the feed reports domain.ErrNoPosts.
	ListPosts(ctx context.Context, page uint64) ([]domain.Post, error)
}
