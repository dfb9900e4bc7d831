package media

import (
	"net/url"
	"path"
	"strings"

	"github.com/threadiverse/temi/domain"
)

// imageExts are the extensions the preview pipeline can decode.
var imageExts = map[string]bool{
	".bmp":  true,
	".gif":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

func urlExt(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(path.Ext(u.Path))
}

// IsImage reports whether a URL points at a displayable image, judged
// by its path extension.
func IsImage(rawURL string) bool {
	return imageExts[urlExt(rawURL)]
}

// FileName returns the cache file name for an image URL, derived from
// the last path segment. Non-image URLs report
// domain.ErrUnsupportedImage.
func FileName(rawURL string) (string, error) {
	if !IsImage(rawURL) {
		return "", domain.ErrUnsupportedImage
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", domain.ErrUnsupportedImage
	}
	return path.Base(u.Path), nil
}
