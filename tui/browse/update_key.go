package browse

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleKeyMsg(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.showDetail {
		return m.handleDetailKeys(keyMsg)
	}
	return m.handleListKeys(keyMsg)
}

func (m Model) handleListKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down), key.Matches(msg, m.keys.Next):
		if len(m.posts) == 0 {
			return m, nil
		}
		if m.cursor < 0 {
			m.cursor = 0
		} else {
			m.cursor = (m.cursor + 1) % len(m.posts)
		}
		m.ensureCursorVisible()
		return m, m.ensurePreviewCmd()

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Prev):
		if len(m.posts) == 0 {
			return m, nil
		}
		if m.cursor <= 0 {
			m.cursor = len(m.posts) - 1
		} else {
			m.cursor--
		}
		m.ensureCursorVisible()
		return m, m.ensurePreviewCmd()

	case key.Matches(msg, m.keys.Enter):
		return m.openDetail(m.cursor)

	case key.Matches(msg, m.keys.NextPage):
		return m.switchPage(m.page + 1)

	case key.Matches(msg, m.keys.PrevPage):
		if m.page <= 1 {
			m.notice = "Already on the first page."
			return m, nil
		}
		return m.switchPage(m.page - 1)

	case key.Matches(msg, m.keys.Refresh):
		m.refreshing = true
		m.err = nil
		m.notice = ""
		m.postsReqSeq++
		return m, m.fetchPosts(m.postsReqSeq, m.page)

	case key.Matches(msg, m.keys.Preview):
		m.showPreview = !m.showPreview
		if m.showPreview {
			return m, m.ensurePreviewCmd()
		}
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if p, ok := m.selectedPost(); ok && p.URL != "" {
			return m, m.openTarget(p.URL)
		}
		m.notice = "No link to open."
		return m, nil

	case key.Matches(msg, m.keys.Yank):
		if link := m.permalink(); link != "" {
			return m, yank(link)
		}
		return m, nil

	case key.Matches(msg, m.keys.Back):
		m.cursor = -1
		return m, nil
	}
	return m, nil
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Next):
		m.threadView.SelectNext()
		m.ensureSelectionVisible()
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.threadView.SelectPrevious()
		m.ensureSelectionVisible()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.scrollLine++
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.scrollLine > 0 {
			m.scrollLine--
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		m.threadView.EnterChild()
		m.ensureSelectionVisible()
		return m, nil

	case key.Matches(msg, m.keys.Parent):
		m.threadView.ExitToParent()
		m.ensureSelectionVisible()
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		if len(m.posts) == 0 {
			return m, nil
		}
		return m.openDetail((m.cursor + 1) % len(m.posts))

	case key.Matches(msg, m.keys.PrevPage):
		if len(m.posts) == 0 {
			return m, nil
		}
		next := m.cursor - 1
		if next < 0 {
			next = len(m.posts) - 1
		}
		return m.openDetail(next)

	case key.Matches(msg, m.keys.Refresh):
		delete(m.commentsByPost, m.post.ID)
		m.threadView.Load(nil)
		m.loadingComments = true
		m.commentsErr = nil
		m.commentsReqSeq++
		return m, m.fetchComments(m.commentsReqSeq, m.post)

	case key.Matches(msg, m.keys.Preview):
		m.showPreview = !m.showPreview
		if m.showPreview {
			return m, m.ensurePreviewCmd()
		}
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if m.post.URL != "" {
			return m, m.openTarget(m.post.URL)
		}
		m.notice = "No link to open."
		return m, nil

	case key.Matches(msg, m.keys.Yank):
		if link := m.permalink(); link != "" {
			return m, yank(link)
		}
		return m, nil

	case key.Matches(msg, m.keys.Back), msg.String() == "q":
		m.showDetail = false
		m.loadingComments = false
		m.commentsErr = nil
		m.scrollLine = 0
		m.notice = ""
		return m, m.ensurePreviewCmd()
	}
	return m, nil
}

// openDetail focuses the post at index i and shows its thread, from
// cache when this session already fetched it.
func (m Model) openDetail(i int) (Model, tea.Cmd) {
	if i < 0 || i >= len(m.posts) {
		return m, nil
	}
	m.cursor = i
	m.post = m.posts[i]
	m.showDetail = true
	m.scrollLine = 0
	m.notice = ""
	m.commentsErr = nil
	if cached, ok := m.commentsByPost[m.post.ID]; ok {
		m.threadView.Load(cached)
		m.threadView.EnsureSorted()
		m.loadingComments = false
		return m, m.ensurePreviewCmd()
	}
	m.threadView.Load(nil)
	m.loadingComments = true
	m.commentsReqSeq++
	return m, tea.Batch(m.fetchComments(m.commentsReqSeq, m.post), m.ensurePreviewCmd())
}

// switchPage jumps the listing to another page, keeping the stale posts
// on screen until the new page arrives.
func (m Model) switchPage(page uint64) (Model, tea.Cmd) {
	m.page = page
	m.cursor = 0
	m.startIndex = 0
	m.loading = true
	m.err = nil
	m.notice = ""
	m.postsReqSeq++
	return m, m.fetchPosts(m.postsReqSeq, page)
}
