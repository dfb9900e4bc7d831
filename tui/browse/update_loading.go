package browse

import (
	"errors"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/threadiverse/temi/domain"
)

func (m Model) handleListingMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PostsLoadedMsg:
		if msg.ReqSeq != m.postsReqSeq {
			return m, nil
		}
		if msg.Page != m.page {
			return m, nil
		}
		m.posts = msg.Posts
		m.loading = false
		m.refreshing = false
		m.err = nil
		m.notice = ""
		if len(m.posts) == 0 {
			m.cursor = -1
		} else if m.cursor < 0 || m.cursor >= len(m.posts) {
			m.cursor = 0
		}
		m.ensureCursorVisible()
		return m, m.ensurePreviewCmd()

	case PostsErrorMsg:
		if msg.ReqSeq != m.postsReqSeq {
			return m, nil
		}
		if msg.Page != m.page {
			return m, nil
		}
		m.loading = false
		m.refreshing = false
		if errors.Is(msg.Err, domain.ErrNoPosts) && msg.Page > 1 {
			// Walked past the end; stay on the last page that had posts.
			m.page = msg.Page - 1
			m.notice = "No further pages."
			return m, nil
		}
		m.err = msg.Err
		return m, nil
	}
	return m, nil
}

func (m Model) handleThreadMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case CommentsLoadedMsg:
		if msg.ReqSeq != m.commentsReqSeq {
			return m, nil
		}
		if !m.showDetail || msg.PostID != m.post.ID {
			return m, nil
		}
		m.commentsByPost[msg.PostID] = msg.Comments
		m.loadingComments = false
		m.commentsErr = nil
		m.threadView.Load(msg.Comments)
		m.threadView.EnsureSorted()
		m.scrollLine = 0
		return m, m.ensurePreviewCmd()

	case CommentsErrorMsg:
		if msg.ReqSeq != m.commentsReqSeq {
			return m, nil
		}
		if !m.showDetail || msg.PostID != m.post.ID {
			return m, nil
		}
		m.loadingComments = false
		m.commentsErr = msg.Err
		return m, nil
	}
	return m, nil
}

func (m Model) handleActionResultMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PreviewLoadedMsg:
		delete(m.previewLoading, msg.URL)
		if msg.Err != nil {
			// Cache the miss so the spinner tick does not refetch forever.
			m.previews[msg.URL] = ""
			return m, nil
		}
		m.previews[msg.URL] = msg.Preview
		return m, nil

	case OpenResultMsg:
		if msg.Err != nil {
			m.notice = "Open failed: " + msg.Err.Error()
			return m, nil
		}
		m.notice = "Opened " + filepath.Base(msg.Target)
		return m, nil

	case YankResultMsg:
		if msg.Err != nil {
			m.notice = "Copy failed: " + msg.Err.Error()
			return m, nil
		}
		m.notice = "Copied " + msg.Text
		return m, nil
	}
	return m, nil
}
