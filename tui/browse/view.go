package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/threadiverse/temi/domain"
	"github.com/threadiverse/temi/tui/common"
)

// View renders the browse view as a string.
func (m Model) View() string {
	if m.showDetail {
		return m.renderDetailView()
	}

	var b strings.Builder

	title := common.AppTitleStyle.Padding(1, 0, 0, 1).Render("🌐 temi")
	tagline := common.TaglineStyle.Render("<the threadiverse, without leaving the terminal>")
	badge := common.CommunityStyle.Margin(0, 0, 1, 2).
		Render(fmt.Sprintf("%s · %s · page %d", instanceHost(m.instance), m.sortLabel, m.page))

	b.WriteString(title + tagline + "\n")
	b.WriteString(badge + "\n")

	switch {
	case m.loading && len(m.posts) == 0:
		b.WriteString(fmt.Sprintf("  %s Loading posts...\n", m.spinner.View()))
	case m.err != nil:
		b.WriteString(common.ErrorStyle.Render(fmt.Sprintf("  Error: %v", m.err)))
		b.WriteString("\n\n  Press r to retry.\n")
	case len(m.posts) == 0:
		b.WriteString("  Nothing on this page. Try p for the previous one.\n")
	default:
		b.WriteString(m.renderPostList())
	}

	b.WriteString("\n")
	if (m.loading || m.refreshing) && len(m.posts) > 0 {
		b.WriteString(fmt.Sprintf("  %s Refreshing...\n", m.spinner.View()))
	}
	if m.notice != "" {
		b.WriteString(common.NoticeStyle.Render("  "+m.notice) + "\n")
	}
	b.WriteString(m.helpView())

	return b.String()
}

func (m Model) renderPostList() string {
	visibleCount := m.listVisibleCount()

	start := m.startIndex
	if start < 0 {
		start = 0
	}
	if start >= len(m.posts) {
		start = len(m.posts) - 1
	}
	end := start + visibleCount
	if end > len(m.posts) {
		end = len(m.posts)
	}

	cardWidth := m.postCardWidth()

	var listBuilder strings.Builder
	for i := start; i < end; i++ {
		listBuilder.WriteString(m.renderPostCard(m.posts[i], i == m.cursor, cardWidth))
		listBuilder.WriteString("\n")
	}
	listString := strings.TrimSuffix(listBuilder.String(), "\n")

	if len(m.posts) > visibleCount {
		listHeight := lipgloss.Height(listString)
		thumbHeight := int(float64(visibleCount) / float64(len(m.posts)) * float64(listHeight))
		if thumbHeight < 1 {
			thumbHeight = 1
		}
		thumbStart := int(float64(start) / float64(len(m.posts)) * float64(listHeight))
		if thumbStart+thumbHeight > listHeight {
			thumbStart = listHeight - thumbHeight
		}

		var sb strings.Builder
		for j := 0; j < listHeight; j++ {
			if j >= thumbStart && j < thumbStart+thumbHeight {
				sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8700")).Render("┃"))
			} else {
				sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#333333")).Render("┃"))
			}
			if j < listHeight-1 {
				sb.WriteString("\n")
			}
		}
		listString = lipgloss.JoinHorizontal(lipgloss.Top,
			listString,
			lipgloss.NewStyle().MarginLeft(1).Render(sb.String()))
	}

	if panel := m.previewPanel(); panel != "" {
		listString = lipgloss.JoinHorizontal(lipgloss.Top,
			listString,
			lipgloss.NewStyle().MarginLeft(2).Render(panel))
	}
	return listString
}

func (m Model) renderPostCard(p domain.Post, selected bool, cardWidth int) string {
	bodyWidth := cardWidth - 4

	title := common.ContentStyle.Bold(true).Render(common.Truncate(p.Title, bodyWidth))

	when := p.Published
	if t, ok := common.ParseWhen(p.Published); ok {
		when = humanize.Time(t)
	}
	meta := common.CommunityStyle.Render("!"+p.Community) +
		"  " + common.AuthorStyle.Render("@"+p.Creator) +
		"  " + common.TimestampStyle.Render(when)

	bodyText := strings.TrimSpace(p.Body)
	if bodyText == "" && p.URL != "" {
		bodyText = "🔗 " + p.URL
	}
	bodyLines := strings.Split(truncateToTwoLines(bodyText, bodyWidth), "\n")
	for len(bodyLines) < 2 {
		bodyLines = append(bodyLines, "")
	}
	body := common.ContentStyle.Render(bodyLines[0]) + "\n" + common.ContentStyle.Render(bodyLines[1])

	counts := common.MetadataStyle.Render(fmt.Sprintf("▲ %s · 💬 %s",
		humanize.Comma(p.Score), humanize.Comma(int64(p.CommentCount))))

	itemContent := title + "\n" + meta + "\n" + body + "\n" + counts
	if selected {
		return common.SelectedStyle.Width(cardWidth).Render(itemContent)
	}
	return common.UnselectedStyle.Width(cardWidth).Render(itemContent)
}

func (m Model) previewPanel() string {
	if !m.showPreview {
		return ""
	}
	rawURL := m.previewURL()
	if rawURL == "" {
		return ""
	}
	if preview, ok := m.previews[rawURL]; ok && preview != "" {
		return preview
	}
	if m.previewLoading[rawURL] {
		return common.TimestampStyle.Render("loading preview...")
	}
	return ""
}

// truncateToTwoLines wraps and truncates text to at most 2 lines.
func truncateToTwoLines(text string, width int) string {
	wrapped := lipgloss.NewStyle().Width(width).Render(text)
	lines := strings.Split(wrapped, "\n")
	if len(lines) <= 2 {
		return wrapped
	}
	return strings.Join(lines[:2], "\n") + "..."
}

func (m Model) helpView() string {
	var items []string

	if m.showDetail {
		items = []string{
			"j/k: comment",
			"enter: zoom in",
			"↑/↓: scroll",
			"n/p: post",
			"r: refresh",
			"o: open",
			"y: copy",
			"esc: back",
		}
		if m.threadView.Level() > 0 {
			items = append(items[:2], append([]string{"u: zoom out"}, items[2:]...)...)
		}
	} else if len(m.posts) > 0 {
		items = []string{
			"j/k: select",
			"enter: thread",
			"n/p: page",
			"r: refresh",
			"i: preview",
			"o: open",
			"y: copy",
			"q: quit",
		}
	} else {
		items = []string{
			"n/p: page",
			"r: refresh",
			"q: quit",
		}
	}

	return common.StatusBarStyle.Render("  " + strings.Join(items, " • "))
}
