package domain

import (
	"reflect"
	"testing"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []uint64
	}{
		{name: "nested", path: "0.5.9.14", want: []uint64{0, 5, 9, 14}},
		{name: "top level", path: "0.5", want: []uint64{0, 5}},
		{name: "empty", path: "", want: []uint64{0}},
		{name: "non-numeric segment", path: "0.abc.7", want: []uint64{0, 0, 7}},
		{name: "no sentinel", path: "42", want: []uint64{42}},
		{name: "trailing dot", path: "0.5.", want: []uint64{0, 5, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ParsePath(tc.path)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ParsePath(%q) = %v, want %v", tc.path, got, tc.want)
			}
		})
	}
}

func TestPathDepth(t *testing.T) {
	tests := []struct {
		path string
		want int
	}{
		{path: "0.5.9.14", want: 2},
		{path: "0.5.9", want: 1},
		{path: "0.5", want: 0},
		{path: "", want: 0},
		{path: "garbage", want: 0},
	}

	for _, tc := range tests {
		if got := PathDepth(tc.path); got != tc.want {
			t.Fatalf("PathDepth(%q) = %d, want %d", tc.path, got, tc.want)
		}
	}
}

func TestAncestorAt(t *testing.T) {
	const path = "0.5.9.14"

	tests := []struct {
		level int
		want  uint64
	}{
		{level: -1, want: 0}, // sentinel
		{level: 0, want: 5},
		{level: 1, want: 9},
		{level: 2, want: 14},
		{level: 3, want: 0}, // past the leaf
		{level: -5, want: 0},
	}

	for _, tc := range tests {
		if got := AncestorAt(path, tc.level); got != tc.want {
			t.Fatalf("AncestorAt(%q, %d) = %d, want %d", path, tc.level, got, tc.want)
		}
	}
}

func TestCommentDerivedValues(t *testing.T) {
	c := Comment{ID: 14, Path: "0.5.9.14"}

	if got := c.Depth(); got != 2 {
		t.Fatalf("Depth = %d, want 2", got)
	}
	if got := c.RootID(); got != 5 {
		t.Fatalf("RootID = %d, want 5", got)
	}
	if got := c.AncestorChain(); !reflect.DeepEqual(got, []uint64{9}) {
		t.Fatalf("AncestorChain = %v, want [9]", got)
	}
	if got := c.OwnPosition(); got != 3 {
		t.Fatalf("OwnPosition = %d, want 3", got)
	}
}

func TestCommentDerivedValuesDegrade(t *testing.T) {
	// A path that never mentions the comment's own id.
	c := Comment{ID: 99, Path: "0.5"}

	if got := c.OwnPosition(); got != 0 {
		t.Fatalf("OwnPosition for inconsistent path = %d, want 0", got)
	}
	if got := c.AncestorChain(); got != nil {
		t.Fatalf("AncestorChain for top-level = %v, want nil", got)
	}

	empty := Comment{}
	if got := empty.Depth(); got != 0 {
		t.Fatalf("Depth of empty path = %d, want 0", got)
	}
	if got := empty.RootID(); got != 0 {
		t.Fatalf("RootID of empty path = %d, want 0", got)
	}
}
