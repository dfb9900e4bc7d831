package lemmy

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/threadiverse/temi/domain"
	"github.com/threadiverse/temi/thread"
)

// commentService implements app.CommentService using the Lemmy API.
type commentService struct {
	client *Client
}

// NewCommentService creates a CommentService backed by a Lemmy instance.
func NewCommentService(client *Client) *commentService {
	return &commentService{client: client}
}

// lemmyComment is the subset of Lemmy's Comment entity we care about.
type lemmyComment struct {
	ID        uint64 `json:"id"`
	PostID    uint64 `json:"post_id"`
	Content   string `json:"content"`
	Path      string `json:"path"`
	Published string `json:"published"`
}

type lemmyCommentView struct {
	Comment lemmyComment `json:"comment"`
	Creator lemmyPerson  `json:"creator"`
	Counts  lemmyCounts  `json:"counts"`
}

type commentListResponse struct {
	Comments []lemmyCommentView `json:"comments"`
}

// FetchAll retrieves every comment page for a post. Pages are fetched
// concurrently but the result always holds page 1 first, then page 2,
// and so on. commentCount decides how many pages exist.
func (s *commentService) FetchAll(ctx context.Context, postID, commentCount uint64) ([]domain.Comment, error) {
	pages := thread.NumPages(commentCount)
	if pages == 0 {
		return nil, nil
	}

	results := make([][]domain.Comment, pages)
	errs := make([]error, pages)

	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = s.fetchPage(ctx, postID, uint64(i)+1)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("fetching comments page %d: %w", i+1, err)
		}
	}

	merged := make([]domain.Comment, 0, commentCount)
	for _, page := range results {
		merged = append(merged, page...)
	}
	return merged, nil
}

func (s *commentService) fetchPage(ctx context.Context, postID, page uint64) ([]domain.Comment, error) {
	path := fmt.Sprintf("/api/v3/comment/list?post_id=%d&page=%d&limit=%d", postID, page, thread.PageSize)

	data, err := s.client.Get(ctx, path)
	if err != nil {
		return nil, err
	}

	comments, err := decodeCommentList(data)
	if err != nil {
		return nil, fmt.Errorf("parsing comments: %w", err)
	}
	return comments, nil
}

func decodeCommentList(data []byte) ([]domain.Comment, error) {
	var res commentListResponse
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, err
	}

	comments := make([]domain.Comment, 0, len(res.Comments))
	for _, cv := range res.Comments {
		author := cv.Creator.DisplayName
		if author == "" {
			author = cv.Creator.Name
		}

		comments = append(comments, domain.Comment{
			ID:         cv.Comment.ID,
			PostID:     cv.Comment.PostID,
			Path:       cv.Comment.Path,
			Content:    cv.Comment.Content,
			Author:     author,
			Published:  cv.Comment.Published,
			ChildCount: cv.Counts.ChildCount,
		})
	}
	return comments, nil
}
