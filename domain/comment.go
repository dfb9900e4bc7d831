package domain

import (
	"strconv"
	"strings"
)

// Comment is one decoded comment from a post's thread.
//
// Path is the dotted ancestry path as reported by the server:
// "0.<root_id>. ... .<id>". Element 0 is a synthetic forest-root
// sentinel, element 1 is the top-level ancestor, and the last element
// is the comment's own id.
type Comment struct {
	ID         uint64
	PostID     uint64
	Path       string
	Content    string
	Author     string
	Published  string // Sortable ISO-8601-like timestamp, kept as reported.
	ChildCount uint64
}

// ParsePath splits a dotted ancestry path into its numeric elements.
// Segments that do not parse as unsigned integers become 0. The result
// always has at least one element, so callers never index into nothing.
func ParsePath(path string) []uint64 {
	segs := strings.Split(path, ".")
	ids := make([]uint64, len(segs))
	for i, s := range segs {
		if id, err := strconv.ParseUint(s, 10, 64); err == nil {
			ids[i] = id
		}
	}
	return ids
}

// PathDepth reports how many ancestors sit between a comment and its
// post: 0 for a top-level comment, and 0 again for short or malformed
// paths.
func PathDepth(path string) int {
	if d := len(ParsePath(path)) - 2; d > 0 {
		return d
	}
	return 0
}

// AncestorAt returns the path element at index level+1: the ancestor
// occupying the given navigation level. Out-of-range levels, negative
// ones included, return 0, the forest-root sentinel.
func AncestorAt(path string, level int) uint64 {
	ids := ParsePath(path)
	i := level + 1
	if i < 0 || i >= len(ids) {
		return 0
	}
	return ids[i]
}

// Depth is PathDepth of the comment's own path.
func (c Comment) Depth() int { return PathDepth(c.Path) }

// RootID is the id of the comment's top-level ancestor: itself for a
// top-level comment, 0 when the path is too short to tell.
func (c Comment) RootID() uint64 { return AncestorAt(c.Path, 0) }

// AncestorChain lists the ids strictly between the root ancestor and
// the comment itself, root to leaf. Empty at depth 0 and 1.
func (c Comment) AncestorChain() []uint64 {
	ids := ParsePath(c.Path)
	if len(ids) <= 3 {
		return nil
	}
	return ids[2 : len(ids)-1]
}

// OwnPosition is the index of the comment's id within its own path.
// Paths are server data and not trusted to be self-consistent; an id
// that never appears yields 0.
func (c Comment) OwnPosition() int {
	for i, id := range ParsePath(c.Path) {
		if id == c.ID {
			return i
		}
	}
	return 0
}
