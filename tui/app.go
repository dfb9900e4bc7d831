package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/threadiverse/temi/app"
	"github.com/threadiverse/temi/infra/media"
	"github.com/threadiverse/temi/tui/browse"
	"github.com/threadiverse/temi/tui/common"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Posts      app.PostService
	Comments   app.CommentService
	Downloader *media.Downloader
	Opener     *media.EnvOpener
	Instance   string
	SortLabel  string
	StartPage  uint64
}

// App is the root Bubble Tea model. Browsing is the only view; the
// root just owns global quit handling around it.
type App struct {
	browse browse.Model
	keys   common.KeyMap
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	return App{
		browse: browse.New(deps.Posts, deps.Comments, deps.Downloader, deps.Opener,
			deps.Instance, deps.SortLabel, deps.StartPage),
		keys: common.DefaultKeyMap(),
	}
}

// Init delegates to the browse model.
func (a App) Init() tea.Cmd {
	return a.browse.Init()
}

// Update handles global keys and routes everything else to browse.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		// In the detail view q backs out instead of quitting.
		if key.Matches(msg, a.keys.Quit) && !a.browse.InDetail() {
			return a, tea.Quit
		}
	}

	updated, cmd := a.browse.Update(msg)
	a.browse = updated
	return a, cmd
}

// View renders the browse model.
func (a App) View() string {
	return a.browse.View()
}

// Page is the listing page on exit, for state persistence.
func (a App) Page() uint64 {
	return a.browse.Page()
}
