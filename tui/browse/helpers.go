package browse

import (
	"net/url"
	"strconv"

	"github.com/threadiverse/temi/domain"
)

const (
	// A listing card renders five content lines inside its border,
	// plus a blank line between cards.
	postCardStride    = 8
	listReservedLines = 9
)

func formatID(id uint64) string {
	return strconv.FormatUint(id, 10)
}

func instanceHost(instance string) string {
	if u, err := url.Parse(instance); err == nil && u.Host != "" {
		return u.Host
	}
	return instance
}

func (m Model) postCardWidth() int {
	width := m.width - 10
	if m.showPreview {
		width -= previewCols*2 + 4
	}
	if m.width <= 0 || width > 76 {
		width = 76
	}
	if width < 40 {
		width = 40
	}
	return width
}

func (m Model) selectedPost() (domain.Post, bool) {
	if m.cursor < 0 || m.cursor >= len(m.posts) {
		return domain.Post{}, false
	}
	return m.posts[m.cursor], true
}

func (m Model) listVisibleCount() int {
	if m.height <= 0 {
		return 3
	}
	count := (m.height - listReservedLines) / postCardStride
	if count < 1 {
		count = 1
	}
	return count
}

func (m *Model) ensureCursorVisible() {
	if m.showDetail || m.cursor < 0 {
		return
	}
	count := m.listVisibleCount()
	if m.cursor < m.startIndex {
		m.startIndex = m.cursor
	}
	if m.cursor >= m.startIndex+count {
		m.startIndex = m.cursor - count + 1
	}
	if m.startIndex < 0 {
		m.startIndex = 0
	}
}

func (m Model) detailViewHeight() int {
	return max(m.height-2, 8)
}

// ensureSelectionVisible scrolls the detail viewport just far enough to
// bring the selected comment into view. Arrow scrolling is free-form;
// this only corrects after the selection itself moves.
func (m *Model) ensureSelectionVisible() {
	if _, ok := m.threadView.Current(); !ok {
		return
	}
	_, selStart, selEnd := m.buildDetailLines()
	if selStart < 0 {
		return
	}
	viewHeight := m.detailViewHeight()
	if selStart < m.scrollLine {
		m.scrollLine = selStart
	}
	if selEnd >= m.scrollLine+viewHeight {
		m.scrollLine = selEnd - viewHeight + 1
	}
	if m.scrollLine < 0 {
		m.scrollLine = 0
	}
}
