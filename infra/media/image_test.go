package media

import (
	"errors"
	"testing"

	"github.com/threadiverse/temi/domain"
)

func TestIsImage(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://lemmy.ml/pictrs/image/abc.png", true},
		{"https://lemmy.ml/pictrs/image/ABC.JPG", true},
		{"https://lemmy.ml/pictrs/image/pic.jpeg", true},
		{"https://lemmy.ml/pictrs/image/anim.gif", true},
		{"https://lemmy.ml/pictrs/image/old.bmp", true},
		{"https://lemmy.ml/pictrs/image/new.webp", true},
		{"https://lemmy.ml/pictrs/image/abc.png?format=raw", true},
		{"https://example.com/video.mp4", false},
		{"https://example.com/article", false},
		{"", false},
	}

	for _, tc := range tests {
		if got := IsImage(tc.url); got != tc.want {
			t.Errorf("IsImage(%q) = %v, want %v", tc.url, got, tc.want)
		}
	}
}

func TestFileName(t *testing.T) {
	name, err := FileName("https://lemmy.ml/pictrs/image/3f9a.png?thumbnail=256")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "3f9a.png" {
		t.Fatalf("unexpected name: %q", name)
	}

	if _, err := FileName("https://example.com/clip.mp4"); !errors.Is(err, domain.ErrUnsupportedImage) {
		t.Fatalf("expected ErrUnsupportedImage, got %v", err)
	}
}
