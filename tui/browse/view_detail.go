package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/threadiverse/temi/domain"
	"github.com/threadiverse/temi/tui/common"
)

func (m Model) renderDetailView() string {
	lines, _, _ := m.buildDetailLines()
	return m.renderDetailViewport(lines) + "\n" + m.helpView()
}

// buildDetailLines assembles the full detail body, one terminal line
// per element, and reports which lines the selected comment occupies.
// ensureSelectionVisible scrolls against the same layout, so the two
// can never disagree about where a comment sits.
func (m Model) buildDetailLines() (lines []string, selStart, selEnd int) {
	selStart, selEnd = -1, -1
	contentWidth := m.detailContentWidth()

	lines = append(lines, m.breadcrumb())
	lines = append(lines, "")
	lines = append(lines, strings.Split(m.renderDetailPost(contentWidth), "\n")...)
	lines = append(lines, "")

	switch {
	case m.loadingComments:
		lines = append(lines, fmt.Sprintf("  %s Loading comments...", m.spinner.View()))
		return lines, selStart, selEnd
	case m.commentsErr != nil:
		lines = append(lines, common.ErrorStyle.Render(fmt.Sprintf("  Error: %v", m.commentsErr)))
		lines = append(lines, "  Press r to retry.")
		return lines, selStart, selEnd
	}

	items := m.threadView.Items()
	lines = append(lines, common.CommunityStyle.Render(fmt.Sprintf("  Comments (%d)", len(items))))
	lines = append(lines, "")
	if len(items) == 0 {
		lines = append(lines, "  No comments yet.")
		return lines, selStart, selEnd
	}

	cursor, hasSelection := m.threadView.Cursor()
	level := m.threadView.Level()
	focal := m.threadView.FocalParentID()

	for i, c := range items {
		inFocus := domain.AncestorAt(c.Path, level-1) == focal
		selected := hasSelection && i == cursor
		block := renderCommentBlock(c, contentWidth, selected, inFocus)
		if selected {
			selStart = len(lines)
			selEnd = selStart + len(block) - 1
		}
		lines = append(lines, block...)
		lines = append(lines, "")
	}
	return lines, selStart, selEnd
}

func (m Model) breadcrumb() string {
	loc := "top level"
	if lvl := m.threadView.Level(); lvl > 0 {
		loc = fmt.Sprintf("depth %d · inside #%s", lvl, formatID(m.threadView.FocalParentID()))
	}
	return common.MetadataStyle.Render("  " + instanceHost(m.instance) + " › !" + m.post.Community + " › " + loc)
}

func (m Model) renderDetailPost(contentWidth int) string {
	p := m.post
	bodyWidth := contentWidth - 4

	title := common.ContentStyle.Bold(true).Render(common.Truncate(p.Title, bodyWidth))
	when := p.Published
	if t, ok := common.ParseWhen(p.Published); ok {
		when = humanize.Time(t)
	}
	meta := common.CommunityStyle.Render("!"+p.Community) + "  " +
		common.AuthorStyle.Render("@"+p.Creator) + "  " +
		common.TimestampStyle.Render(when)

	parts := []string{title, meta}
	if body := strings.TrimSpace(p.Body); body != "" {
		parts = append(parts, common.ContentStyle.Width(bodyWidth).Render(body))
	}
	if p.URL != "" {
		parts = append(parts, common.TimestampStyle.Render("🔗 "+common.Truncate(p.URL, bodyWidth)))
	}
	parts = append(parts, common.MetadataStyle.Render(fmt.Sprintf("▲ %s · 💬 %s",
		humanize.Comma(p.Score), humanize.Comma(int64(p.CommentCount)))))

	card := common.SelectedStyle.Width(contentWidth).Render(strings.Join(parts, "\n"))
	if panel := m.previewPanel(); panel != "" {
		card = lipgloss.JoinHorizontal(lipgloss.Top, card,
			lipgloss.NewStyle().MarginLeft(2).Render(panel))
	}
	return card
}

// renderCommentBlock renders one comment at its absolute depth. The
// selected comment gets a highlighted byline; comments outside the
// focused subtree are dimmed rather than hidden, so the surrounding
// conversation stays readable.
func renderCommentBlock(c domain.Comment, contentWidth int, selected, inFocus bool) []string {
	indent := strings.Repeat("  ", c.Depth())
	prefix := "  " + indent

	when := c.Published
	if t, ok := common.ParseWhen(c.Published); ok {
		when = humanize.Time(t)
	}
	replies := ""
	if c.ChildCount > 0 {
		replies = fmt.Sprintf(" · ↳ %d", c.ChildCount)
	}

	var info string
	switch {
	case selected:
		info = common.HighlightStyle.Render(fmt.Sprintf("%s@%s · %s%s", prefix, c.Author, when, replies))
	case inFocus:
		info = prefix + common.AuthorStyle.Render("@"+c.Author) +
			" " + common.TimestampStyle.Render(when) +
			common.MetadataStyle.Render(replies)
	default:
		info = common.DimmedStyle.Render(fmt.Sprintf("%s@%s · %s%s", prefix, c.Author, when, replies))
	}
	block := []string{info}

	bodyWidth := contentWidth - lipgloss.Width(prefix)
	if bodyWidth < 20 {
		bodyWidth = 20
	}
	if content := strings.TrimSpace(c.Content); content != "" {
		for _, line := range strings.Split(lipgloss.NewStyle().Width(bodyWidth).Render(content), "\n") {
			if inFocus {
				block = append(block, prefix+common.ContentStyle.Render(line))
			} else {
				block = append(block, common.DimmedStyle.Render(prefix+line))
			}
		}
	}
	return block
}

func (m Model) detailContentWidth() int {
	width := m.width - 6
	if m.showPreview {
		width -= previewCols*2 + 4
	}
	if m.width <= 0 || width > 90 {
		width = 90
	}
	if width < 40 {
		width = 40
	}
	return width
}

func (m Model) renderDetailViewport(lines []string) string {
	if m.height <= 0 {
		return strings.Join(lines, "\n")
	}
	viewHeight := m.detailViewHeight()
	maxScroll := max(len(lines)-viewHeight, 0)
	scroll := min(max(m.scrollLine, 0), maxScroll)
	end := min(scroll+viewHeight, len(lines))
	// Copy before placing markers; lines aliases the caller's slice.
	visible := append([]string{}, lines[scroll:end]...)
	for len(visible) < viewHeight {
		visible = append(visible, "")
	}
	markerTop := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB454")).Bold(true).Render("▲ more above")
	markerBottom := lipgloss.NewStyle().Foreground(lipgloss.Color("#8BD5CA")).Bold(true).Render("▼ more below")
	if scroll > 0 && len(visible) > 0 {
		visible[0] = markerTop
	}
	if end < len(lines) && len(visible) > 0 {
		visible[len(visible)-1] = markerBottom
	}
	return strings.Join(visible, "\n")
}
