package browse

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorVisible()
		return m, nil

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		return m, tea.Batch(cmd, m.ensurePreviewCmd())
	}

	switch msg.(type) {
	case PostsLoadedMsg, PostsErrorMsg:
		return m.handleListingMsg(msg)
	case CommentsLoadedMsg, CommentsErrorMsg:
		return m.handleThreadMsg(msg)
	case PreviewLoadedMsg, OpenResultMsg, YankResultMsg:
		return m.handleActionResultMsg(msg)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}
