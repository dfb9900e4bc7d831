package browse

import (
	"context"
	"net/url"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/threadiverse/temi/domain"
	"github.com/threadiverse/temi/infra/media"
)

func (m Model) fetchPosts(reqSeq int, page uint64) tea.Cmd {
	listing := m.listing
	return func() tea.Msg {
		posts, err := listing.ListPosts(context.Background(), page)
		if err != nil {
			return PostsErrorMsg{Err: err, Page: page, ReqSeq: reqSeq}
		}
		return PostsLoadedMsg{Posts: posts, Page: page, ReqSeq: reqSeq}
	}
}

func (m Model) fetchComments(reqSeq int, post domain.Post) tea.Cmd {
	comments := m.comments
	return func() tea.Msg {
		all, err := comments.FetchAll(context.Background(), post.ID, post.CommentCount)
		if err != nil {
			return CommentsErrorMsg{PostID: post.ID, Err: err, ReqSeq: reqSeq}
		}
		return CommentsLoadedMsg{PostID: post.ID, Comments: all, ReqSeq: reqSeq}
	}
}

// openTarget hands a post link to the external opener. Image links are
// downloaded into the cache first so the viewer gets a local file;
// everything else is passed through as a URL.
func (m Model) openTarget(rawURL string) tea.Cmd {
	downloader := m.downloader
	opener := m.opener
	return func() tea.Msg {
		target := rawURL
		if media.IsImage(rawURL) && downloader != nil {
			local, err := downloader.Download(context.Background(), rawURL)
			if err != nil {
				return OpenResultMsg{Target: rawURL, Err: err}
			}
			target = local
		} else if !isSafeExternalURL(rawURL) {
			return nil
		}
		cmd, err := opener.Cmd(target)
		if err != nil {
			return OpenResultMsg{Target: target, Err: err}
		}
		if err := cmd.Start(); err != nil {
			return OpenResultMsg{Target: target, Err: err}
		}
		return OpenResultMsg{Target: target}
	}
}

func yank(text string) tea.Cmd {
	return func() tea.Msg {
		err := clipboard.WriteAll(text)
		return YankResultMsg{Text: text, Err: err}
	}
}

func isSafeExternalURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if parsed.Host == "" {
		return false
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		return true
	default:
		return false
	}
}

// permalink builds the canonical instance URL for a post or a selected
// comment, whichever the cursor is on.
func (m Model) permalink() string {
	base := strings.TrimRight(m.instance, "/")
	if m.showDetail {
		if c, ok := m.threadView.Current(); ok {
			return base + "/comment/" + formatID(c.ID)
		}
		return base + "/post/" + formatID(m.post.ID)
	}
	if m.cursor >= 0 && m.cursor < len(m.posts) {
		return base + "/post/" + formatID(m.posts[m.cursor].ID)
	}
	return ""
}
