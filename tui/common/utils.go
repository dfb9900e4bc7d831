package common

import (
	"time"

	"github.com/charmbracelet/x/ansi"
)

// lemmyTimeLayouts covers the timestamp shapes Lemmy emits. Instances
// before 0.19 send naive timestamps without a zone suffix.
var lemmyTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// ParseWhen parses a Lemmy timestamp. Zoneless values are taken as UTC.
func ParseWhen(s string) (time.Time, bool) {
	for _, layout := range lemmyTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Truncate shortens s to at most width terminal cells, appending an
// ellipsis when it had to cut. Styled (ANSI) input is measured by
// display width, not bytes.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
