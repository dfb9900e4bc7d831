package browse

import (
	"strings"
	"testing"

	"github.com/threadiverse/temi/domain"
)

func TestView_ListShowsPostsAndHelp(t *testing.T) {
	m := newTestModel()
	m.loading = false
	m.width = 110
	m.height = 40
	m.posts = []domain.Post{makePost(1, 2), makePost(2, 0)}
	m.cursor = 0

	out := m.View()
	mustContain := []string{"temi", "lemmy.example", "Post 1", "!golang", "@user1", "enter: thread"}
	for _, needle := range mustContain {
		if !strings.Contains(out, needle) {
			t.Fatalf("list view missing %q", needle)
		}
	}
}

func TestView_ListStates(t *testing.T) {
	m := newTestModel()
	m.width = 80
	m.height = 24

	if out := m.View(); !strings.Contains(out, "Loading posts") {
		t.Fatalf("initial view should show the loading state")
	}

	m.loading = false
	if out := m.View(); !strings.Contains(out, "Nothing on this page") {
		t.Fatalf("empty listing should say so")
	}

	m.err = domain.ErrNoPosts
	out := m.View()
	if !strings.Contains(out, "Error:") || !strings.Contains(out, "Press r to retry") {
		t.Fatalf("error state should offer a retry hint")
	}
}

func TestView_DetailShowsThread(t *testing.T) {
	m := newTestModel()
	m.width = 120
	m.height = 50
	m.showDetail = true
	m.post = makePost(1, 3)
	m.threadView.Load([]domain.Comment{
		makeComment(5, "0.5"),
		makeComment(12, "0.5.12"),
		makeComment(10, "0.10"),
	})
	m.threadView.EnsureSorted()

	out := m.View()
	mustContain := []string{"Post 1", "Comments (3)", "@user5", "@user12", "top level"}
	for _, needle := range mustContain {
		if !strings.Contains(out, needle) {
			t.Fatalf("detail view missing %q", needle)
		}
	}
}

func TestView_DetailBreadcrumbTracksZoom(t *testing.T) {
	m := newTestModel()
	m.width = 120
	m.height = 50
	m.showDetail = true
	m.post = makePost(1, 2)
	m.threadView.Load([]domain.Comment{
		makeComment(5, "0.5"),
		makeComment(12, "0.5.12"),
	})
	m.threadView.EnsureSorted()
	m.threadView.SelectNext()
	m.threadView.EnterChild()

	out := m.View()
	if !strings.Contains(out, "depth 1") || !strings.Contains(out, "#5") {
		t.Fatalf("breadcrumb should report the zoomed subtree")
	}
	if !strings.Contains(out, "u: zoom out") {
		t.Fatalf("zoomed view should hint at u")
	}
}

func TestView_DetailLoadingAndError(t *testing.T) {
	m := newTestModel()
	m.width = 100
	m.height = 30
	m.showDetail = true
	m.post = makePost(1, 4)
	m.loadingComments = true

	if out := m.View(); !strings.Contains(out, "Loading comments") {
		t.Fatalf("detail should show comment loading state")
	}

	m.loadingComments = false
	m.commentsErr = domain.ErrNoPosts
	if out := m.View(); !strings.Contains(out, "Press r to retry") {
		t.Fatalf("comment errors should offer a retry hint")
	}
}

func TestBuildDetailLines_ReportsSelectionRange(t *testing.T) {
	m := newTestModel()
	m.width = 100
	m.height = 30
	m.showDetail = true
	m.post = makePost(1, 2)
	m.threadView.Load([]domain.Comment{
		makeComment(5, "0.5"),
		makeComment(12, "0.5.12"),
	})
	m.threadView.EnsureSorted()

	lines, selStart, selEnd := m.buildDetailLines()
	if selStart != -1 || selEnd != -1 {
		t.Fatalf("no selection should report -1, got %d..%d", selStart, selEnd)
	}

	m.threadView.SelectNext()
	lines, selStart, selEnd = m.buildDetailLines()
	if selStart < 0 || selEnd < selStart || selEnd >= len(lines) {
		t.Fatalf("selection range %d..%d out of bounds for %d lines", selStart, selEnd, len(lines))
	}
	if !strings.Contains(lines[selStart], "@user5") {
		t.Fatalf("selection range should start at the selected byline")
	}
}

func TestEnsureSelectionVisible_ScrollsDown(t *testing.T) {
	m := newTestModel()
	m.width = 100
	m.height = 20
	m.showDetail = true
	m.post = makePost(1, 40)

	comments := make([]domain.Comment, 0, 40)
	for i := uint64(1); i <= 40; i++ {
		comments = append(comments, makeComment(i, "0."+formatID(i)))
	}
	m.threadView.Load(comments)
	m.threadView.EnsureSorted()

	for i := 0; i < 30; i++ {
		m.threadView.SelectNext()
	}
	m.ensureSelectionVisible()

	_, selStart, selEnd := m.buildDetailLines()
	viewHeight := m.detailViewHeight()
	if selStart < m.scrollLine || selEnd >= m.scrollLine+viewHeight {
		t.Fatalf("selection %d..%d not within viewport starting at %d (height %d)",
			selStart, selEnd, m.scrollLine, viewHeight)
	}
}
