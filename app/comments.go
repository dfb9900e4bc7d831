package app

import (
	"context"

	"github.com/threadiverse/temi/domain"
)

// CommentService retrieves the comment collection of a single post.
type CommentService interface {
	// FetchAll retrieves every comment page for the post, sized from
	// the post's reported comment count, and returns them concatenated
	// in page order. The result is unordered beyond that; threading is
	// the caller's concern.
	FetchAll(ctx context.Context, postID, commentCount uint64) ([]domain.Comment, error)
}
