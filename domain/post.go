package domain

// Post is one decoded post from a listing page.
type Post struct {
	ID           uint64
	Title        string
	Body         string
	URL          string // External link, often an image; may be empty.
	Creator      string
	Community    string
	Published    string
	CommentCount uint64
	Score        int64
}
