package browse

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/threadiverse/temi/app"
	"github.com/threadiverse/temi/domain"
	"github.com/threadiverse/temi/infra/media"
	"github.com/threadiverse/temi/thread"
	"github.com/threadiverse/temi/tui/common"
)

// PostsLoadedMsg is sent when a post listing page arrives.
type PostsLoadedMsg struct {
	Posts  []domain.Post
	Page   uint64
	ReqSeq int
}

// PostsErrorMsg is sent when a post listing fetch fails.
type PostsErrorMsg struct {
	Err    error
	Page   uint64
	ReqSeq int
}

// CommentsLoadedMsg is sent once every comment page of a post has been
// fetched and merged.
type CommentsLoadedMsg struct {
	PostID   uint64
	Comments []domain.Comment
	ReqSeq   int
}

// CommentsErrorMsg is sent when fetching a post's comments fails.
type CommentsErrorMsg struct {
	PostID uint64
	Err    error
	ReqSeq int
}

// PreviewLoadedMsg carries a rendered ANSI thumbnail for an image URL.
type PreviewLoadedMsg struct {
	URL     string
	Preview string
	Err     error
}

// OpenResultMsg reports handing a file or URL to the external opener.
type OpenResultMsg struct {
	Target string
	Err    error
}

// YankResultMsg reports a clipboard copy.
type YankResultMsg struct {
	Text string
	Err  error
}

type modelServices struct {
	listing    app.PostService
	comments   app.CommentService
	downloader *media.Downloader
	opener     *media.EnvOpener
	instance   string // base URL, for permalinks
	sortLabel  string // shown in the header badge
}

type listState struct {
	posts       []domain.Post
	page        uint64
	cursor      int // -1 = no selection
	loading     bool
	refreshing  bool
	err         error
	notice      string
	postsReqSeq int
}

type detailState struct {
	showDetail      bool
	post            domain.Post
	threadView      thread.View
	commentsByPost  map[uint64][]domain.Comment
	loadingComments bool
	commentsErr     error
	commentsReqSeq  int
	scrollLine      int
}

type uiState struct {
	keys        common.KeyMap
	spinner     spinner.Model
	width       int
	height      int
	startIndex  int // first visible post card
	showPreview bool
}

type mediaState struct {
	previews       map[string]string
	previewLoading map[string]bool
}

// Model holds the state for the browse view: the post listing and the
// post detail with its comment thread.
type Model struct {
	modelServices
	listState
	detailState
	uiState
	mediaState
}

// New creates a browse model with injected dependencies. startPage
// resumes the listing at a persisted page; zero means the first page.
func New(posts app.PostService, comments app.CommentService, downloader *media.Downloader, opener *media.EnvOpener, instance, sortLabel string, startPage uint64) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6600"))
	if startPage == 0 {
		startPage = 1
	}

	return Model{
		modelServices: modelServices{
			listing:    posts,
			comments:   comments,
			downloader: downloader,
			opener:     opener,
			instance:   instance,
			sortLabel:  sortLabel,
		},
		listState: listState{
			page:    startPage,
			loading: true,
		},
		detailState: detailState{
			commentsByPost: make(map[uint64][]domain.Comment),
		},
		uiState: uiState{
			keys:        common.DefaultKeyMap(),
			spinner:     s,
			showPreview: true,
		},
		mediaState: mediaState{
			previews:       make(map[string]string),
			previewLoading: make(map[string]bool),
		},
	}
}

// Init starts the initial listing fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchPosts(m.postsReqSeq, m.page),
		m.spinner.Tick,
	)
}

// Update handles messages for the browse view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m.update(msg)
}

// InDetail reports whether the post detail view is open.
func (m Model) InDetail() bool {
	return m.showDetail
}

// Page is the listing page currently shown, for state persistence.
func (m Model) Page() uint64 {
	return m.page
}

// Posts returns the current listing for external access.
func (m Model) Posts() []domain.Post {
	return m.posts
}
