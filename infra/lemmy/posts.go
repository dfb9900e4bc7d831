package lemmy

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/threadiverse/temi/domain"
)

// postService implements app.PostService using the Lemmy API.
type postService struct {
	client *Client
	sort   string
	limit  uint64
}

// NewPostService creates a PostService backed by a Lemmy instance.
// sort is a Lemmy sort name ("Hot", "New", ...), limit the page size.
func NewPostService(client *Client, sort string, limit uint64) *postService {
	return &postService{client: client, sort: sort, limit: limit}
}

// lemmyPost is the subset of Lemmy's Post entity we care about.
type lemmyPost struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Body      string `json:"body"`
	URL       string `json:"url"`
	Published string `json:"published"`
}

type lemmyPerson struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

type lemmyCommunity struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

// lemmyCounts covers both post and comment aggregate rows; fields
// absent from a payload decode to zero.
type lemmyCounts struct {
	Comments   uint64 `json:"comments"`
	Score      int64  `json:"score"`
	ChildCount uint64 `json:"child_count"`
}

type lemmyPostView struct {
	Post      lemmyPost      `json:"post"`
	Creator   lemmyPerson    `json:"creator"`
	Community lemmyCommunity `json:"community"`
	Counts    lemmyCounts    `json:"counts"`
}

type postListResponse struct {
	Posts []lemmyPostView `json:"posts"`
}

// ListPosts fetches one page of the instance post listing. Lemmy pages
// start at 1, so page zero is served as the first page.
func (s *postService) ListPosts(ctx context.Context, page uint64) ([]domain.Post, error) {
	if page == 0 {
		page = 1
	}
	path := fmt.Sprintf("/api/v3/post/list?sort=%s&page=%d&limit=%d", s.sort, page, s.limit)

	data, err := s.client.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("fetching posts: %w", err)
	}

	posts, err := decodePostList(data)
	if err != nil {
		return nil, fmt.Errorf("parsing posts: %w", err)
	}
	if len(posts) == 0 && page > 1 {
		return nil, domain.ErrNoPosts
	}
	return posts, nil
}

func decodePostList(data []byte) ([]domain.Post, error) {
	var res postListResponse
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, err
	}

	posts := make([]domain.Post, 0, len(res.Posts))
	for _, pv := range res.Posts {
		creator := pv.Creator.DisplayName
		if creator == "" {
			creator = pv.Creator.Name
		}
		community := pv.Community.Title
		if community == "" {
			community = pv.Community.Name
		}

		posts = append(posts, domain.Post{
			ID:           pv.Post.ID,
			Title:        pv.Post.Name,
			Body:         pv.Post.Body,
			URL:          pv.Post.URL,
			Creator:      creator,
			Community:    community,
			Published:    pv.Post.Published,
			CommentCount: pv.Counts.Comments,
			Score:        pv.Counts.Score,
		})
	}
	return posts, nil
}
