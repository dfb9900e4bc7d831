package browse

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/threadiverse/temi/infra/media"
)

const (
	previewCols = 24
	previewRows = 9
)

// ensurePreviewCmd schedules a thumbnail fetch for the image link under
// the cursor, unless one is already cached or in flight.
func (m *Model) ensurePreviewCmd() tea.Cmd {
	if !m.showPreview {
		return nil
	}
	rawURL := m.previewURL()
	if rawURL == "" {
		return nil
	}
	if _, ok := m.previews[rawURL]; ok {
		return nil
	}
	if m.previewLoading[rawURL] {
		return nil
	}
	m.previewLoading[rawURL] = true
	return fetchPreview(rawURL, previewCols, previewRows)
}

// previewURL is the image link the preview panel should show: the open
// post's link in detail, otherwise the selected post's link.
func (m Model) previewURL() string {
	var raw string
	if m.showDetail {
		raw = m.post.URL
	} else if m.cursor >= 0 && m.cursor < len(m.posts) {
		raw = m.posts[m.cursor].URL
	}
	if !media.IsImage(raw) {
		return ""
	}
	return raw
}

func fetchPreview(url string, w, h int) tea.Cmd {
	return func() tea.Msg {
		preview, err := loadPreview(url, w, h)
		return PreviewLoadedMsg{URL: url, Preview: preview, Err: err}
	}
}

func loadPreview(url string, w, h int) (string, error) {
	client := &http.Client{Timeout: 6 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("preview status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 4*1024*1024))
	if err != nil {
		return "", err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	return renderANSIThumbnail(img, w, h), nil
}

func renderANSIThumbnail(img image.Image, w, h int) string {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return ""
	}
	if w < 4 {
		w = 4
	}
	if h < 2 {
		h = 2
	}
	var out strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sx := b.Min.X + x*b.Dx()/w
			sy := b.Min.Y + y*b.Dy()/h
			c := color.NRGBAModel.Convert(img.At(sx, sy)).(color.NRGBA)
			fmt.Fprintf(&out, "\x1b[48;2;%d;%d;%dm  \x1b[0m", c.R, c.G, c.B)
		}
		if y < h-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}
