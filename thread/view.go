package thread

import "github.com/threadiverse/temi/domain"

// View holds one post's flat comment collection together with the
// navigation state over it: the level being browsed, the focal parent
// whose children that level shows, and the selection cursor.
//
// A View belongs to exactly one post-viewing session. Switching posts
// or refreshing replaces the collection wholesale through Load; nothing
// mutates it from the side. Every operation is total: malformed paths,
// missing ancestors, and empty collections degrade to the 0 sentinel or
// a no-op instead of failing.
type View struct {
	items  []domain.Comment
	level  int
	focal  uint64
	cursor int
	sorted bool
}

// NewView creates a View over items. Call EnsureSorted before reading
// Items back for display.
func NewView(items []domain.Comment) *View {
	v := &View{}
	v.Load(items)
	return v
}

// Load replaces the collection and resets navigation: level and focal
// parent return to the root, the selection clears, and the next
// EnsureSorted call sorts again.
func (v *View) Load(items []domain.Comment) {
	v.items = items
	v.level = 0
	v.focal = 0
	v.cursor = -1
	v.sorted = false
}

// EnsureSorted applies the thread order exactly once per Load.
func (v *View) EnsureSorted() {
	if v.sorted {
		return
	}
	Sort(v.items)
	v.sorted = true
}

// Items is the flat collection, in presentation order once EnsureSorted
// has run. Callers read it; they do not reorder it.
func (v *View) Items() []domain.Comment { return v.items }

// Len reports the collection size.
func (v *View) Len() int { return len(v.items) }

// Level is the depth currently being browsed; 0 is the top-level
// listing. Distinct from any one comment's structural depth.
func (v *View) Level() int { return v.level }

// FocalParentID identifies the comment whose children are currently
// being browsed; 0 at the root level.
func (v *View) FocalParentID() uint64 { return v.focal }

// Cursor returns the selection index, false when nothing is selected.
func (v *View) Cursor() (int, bool) {
	if v.cursor < 0 || v.cursor >= len(v.items) {
		return 0, false
	}
	return v.cursor, true
}

// Current returns the selected comment, false when nothing is selected.
func (v *View) Current() (domain.Comment, bool) {
	if i, ok := v.Cursor(); ok {
		return v.items[i], true
	}
	return domain.Comment{}, false
}

// Deselect clears the selection. The only way back to "nothing
// selected"; plain cursor movement always lands on an item.
func (v *View) Deselect() { v.cursor = -1 }

// SelectNext moves the selection forward over the full collection,
// wrapping past the end; with no selection it selects the first
// comment. No-op on an empty collection.
func (v *View) SelectNext() {
	if len(v.items) == 0 {
		return
	}
	if v.cursor < 0 {
		v.cursor = 0
		return
	}
	v.cursor = (v.cursor + 1) % len(v.items)
}

// SelectPrevious moves the selection backward, wrapping past the
// start; with no selection it selects the last comment. No-op on an
// empty collection.
func (v *View) SelectPrevious() {
	if len(v.items) == 0 {
		return
	}
	if v.cursor <= 0 {
		v.cursor = len(v.items) - 1
		return
	}
	v.cursor--
}

// EnterChild drills one level into the selected comment's subtree. The
// new focal parent is the selected comment's path element at the new
// level: the comment itself when entering from its own depth, otherwise
// its ancestor there, 0 when the path is too short to say. Without a
// selection this is a no-op.
func (v *View) EnterChild() {
	cur, ok := v.Current()
	if !ok {
		return
	}
	v.level++
	v.focal = domain.AncestorAt(cur.Path, v.level-1)
}

// ExitToParent backs out one level, recomputing the focal parent from
// the path of the comment that was focal, falling back to the root
// when that comment is no longer in the collection. Level floors at 0,
// where the focal parent is always 0.
func (v *View) ExitToParent() {
	prior := v.focal
	if v.level > 0 {
		v.level--
	}
	if v.level == 0 {
		v.focal = 0
		return
	}
	v.focal = 0
	for _, c := range v.items {
		if c.ID == prior {
			v.focal = domain.AncestorAt(c.Path, v.level-1)
			return
		}
	}
}
