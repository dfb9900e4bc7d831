package thread

// PageSize is the fixed number of comments one API page carries.
const PageSize = 50

// NumPages reports how many page fetches cover count comments. The
// last page may come back short; that is the server's business, not
// ours.
func NumPages(count uint64) uint64 {
	return (count + PageSize - 1) / PageSize
}
