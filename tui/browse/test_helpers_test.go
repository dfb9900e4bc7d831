package browse

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/threadiverse/temi/domain"
	"github.com/threadiverse/temi/infra/media"
)

type stubListing struct{}

func (stubListing) ListPosts(context.Context, uint64) ([]domain.Post, error) { return nil, nil }

type stubComments struct{}

func (stubComments) FetchAll(context.Context, uint64, uint64) ([]domain.Comment, error) {
	return nil, nil
}

func newTestModel() Model {
	return New(stubListing{}, stubComments{}, nil, media.NewEnvOpener("true"), "https://lemmy.example", "Hot", 1)
}

func makePost(id, commentCount uint64) domain.Post {
	return domain.Post{
		ID:           id,
		Title:        fmt.Sprintf("Post %d", id),
		Body:         fmt.Sprintf("body of post %d", id),
		Creator:      fmt.Sprintf("user%d", id),
		Community:    "golang",
		Published:    "2024-06-01T10:00:00Z",
		CommentCount: commentCount,
	}
}

func makeComment(id uint64, path string) domain.Comment {
	return domain.Comment{
		ID:         id,
		PostID:     1,
		Path:       path,
		Content:    fmt.Sprintf("comment %d", id),
		Author:     fmt.Sprintf("user%d", id),
		Published:  "2024-06-01T11:00:00Z",
		ChildCount: 0,
	}
}

func press(m Model, k string) (Model, tea.Cmd) {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	return m.Update(msg)
}
