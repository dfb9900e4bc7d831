package domain

import "errors"

var (
	// ErrUnsupportedImage indicates a URL that does not point to a known image type.
	ErrUnsupportedImage = errors.New("unsupported image type")

	// ErrNoPosts indicates a listing page past the end of the feed.
	ErrNoPosts = errors.New("no posts on page")
)
